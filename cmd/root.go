package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ashdoc",
	Short: "Compile compact API descriptions into OpenAPI documentation",
	Long: `ashdoc compiles a compact YAML API description into an OpenAPI 3.1
document. Every operation is documented with the standard response set
(200, 400, 401, 403, 500) so response documentation stays consistent
across endpoints without restating it.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
