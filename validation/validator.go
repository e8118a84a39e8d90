// Package validation checks authored documents against the embedded JSON
// Schema before they reach the compiler, so authoring mistakes fail with a
// schema error instead of a confusing compile error.
package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaBytes []byte

var schema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft2020)

	var object any
	if err := json.Unmarshal(schemaBytes, &object); err != nil {
		panic(err)
	}

	if err := compiler.AddResource("ashdoc-schema.json", object); err != nil {
		panic(err)
	}

	schema = compiler.MustCompile("ashdoc-schema.json")
}

// ValidateObject validates an already-decoded document value.
func ValidateObject(document any) error {
	return schema.Validate(document)
}

// Validate validates a JSON-encoded document.
func Validate(documentBytes []byte) error {
	var document any
	if err := json.Unmarshal(documentBytes, &document); err != nil {
		return fmt.Errorf("unable to parse document: %w", err)
	}
	return schema.Validate(document)
}
