package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/AshishBagdane/ashdoc/compilation"
	"github.com/AshishBagdane/ashdoc/swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the compiled documentation with live reload",
	Run: func(cmd *cobra.Command, _ []string) {
		input, _ := cmd.Flags().GetString("input")
		addr, _ := cmd.Flags().GetString("addr")
		base, _ := cmd.Flags().GetString("base")

		if err := Serve(input, addr, base); err != nil {
			errorLogger.Print(err)
			os.Exit(1)
		}
	},
}

func compileDocument(input string) ([]byte, error) {
	document, err := readDocument(input)
	if err != nil {
		return nil, err
	}

	documentBytes, err := compilation.CompileToJSON(document)
	if err != nil {
		return nil, fmt.Errorf("compilation failed: %w", err)
	}

	return documentBytes, nil
}

// Serve compiles input and serves the documentation UI at addr, recompiling
// whenever the input file changes.
func Serve(input, addr, base string) error {
	document, err := compileDocument(input)
	if err != nil {
		return err
	}

	options := swagger.DefaultOptions()
	options.BaseUrl = base
	handler := swagger.New(document, options)

	watcher, err := swagger.WatchFile(input, options.DebounceTime)
	if err != nil {
		log.Printf("unable to watch for file updates: %v", err)
	} else {
		go func() {
			for err := range watcher.Update {
				if err != nil {
					log.Print(err)
					continue
				}

				documentBytes, err := compileDocument(input)
				if err != nil {
					log.Printf("unable to update document: %v", err)
					continue
				}

				handler.SetDocument(documentBytes)
				log.Print("document reloaded")
			}
		}()
	}

	log.Printf("serving documentation at %v%v", addr, options.BaseUrl)
	return http.ListenAndServe(addr, handler.Handler(nil))
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("input", "i", "api.yaml", "input API description")
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("base", "/", "base path for the documentation UI")
	serveCmd.MarkFlagFilename("input", "yaml", "yml")
}
