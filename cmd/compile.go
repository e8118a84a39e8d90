package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/AshishBagdane/ashdoc/compilation"
	"github.com/AshishBagdane/ashdoc/docs"
	"github.com/AshishBagdane/ashdoc/validation"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile an API description into an OpenAPI 3.1 document",
	Run: func(cmd *cobra.Command, _ []string) {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")

		if code := CompileFile(output, input); code != 0 {
			os.Exit(code)
		}
	},
}

var errorLogger = log.New(os.Stderr, "error: ", log.Ltime)

func validate(documentBytes []byte) error {
	var object any
	if err := yaml.Unmarshal(documentBytes, &object); err != nil {
		return err
	}
	return validation.ValidateObject(object)
}

func readDocument(input string) (*docs.Document, error) {
	documentBytes, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("unable to read %v: %w", input, err)
	}

	if err := validate(documentBytes); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var document docs.Document
	if err := yaml.Unmarshal(documentBytes, &document); err != nil {
		return nil, fmt.Errorf("unable to parse document: %w", err)
	}

	return &document, nil
}

// CompileFile compiles input into output, picking the format from the output
// extension. Returns a process exit code.
func CompileFile(output, input string) int {
	log.Printf("reading %v", input)

	document, err := readDocument(input)
	if err != nil {
		errorLogger.Print(err)
		return 1
	}

	log.Print("compiling api document")

	var outputBytes []byte
	switch filepath.Ext(output) {
	case ".json":
		outputBytes, err = compilation.CompileToJSON(document)
	default:
		outputBytes, err = compilation.CompileToYAML(document)
	}
	if err != nil {
		errorLogger.Printf("compilation failed: %v", err)
		return 2
	}

	if err := os.WriteFile(output, outputBytes, 0644); err != nil {
		errorLogger.Printf("unable to write %v: %v", output, err)
		return 3
	}

	log.Printf("wrote %v", output)
	return 0
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringP("input", "i", "api.yaml", "input API description")
	compileCmd.Flags().StringP("output", "o", "openapi.yaml", "output filepath (.json or .yaml)")
	compileCmd.MarkFlagFilename("input", "yaml", "yml")
	compileCmd.MarkFlagFilename("output", "yaml", "json")
}
