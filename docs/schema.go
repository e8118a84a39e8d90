package docs

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Schema is either a schema expression string (e.g. "string(email)?") or an
// object whose keys are property names. The distinction is resolved while
// unmarshaling; the compilation package interprets the expression syntax.
type Schema struct {
	Value any
}

type Property struct {
	Name   string
	Schema Schema
}

// Properties keeps the authored declaration order.
type Properties []Property

// TypedSchema maps a media type to the schema of its payload.
type TypedSchema = map[string]Schema

func (s *Schema) UnmarshalYAML(data []byte) error {
	var expr string
	if err := yaml.Unmarshal(data, &expr); err == nil {
		s.Value = expr
		return nil
	}

	// Not an expression, so it must be a property object. MapSlice keeps
	// the key order that plain maps would lose.
	var raw yaml.MapSlice
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("schema must be an expression string or a property object: %w", err)
	}

	props := make(Properties, 0, len(raw))
	for _, item := range raw {
		name, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("property name must be a string, got %T", item.Key)
		}

		valueBytes, err := yaml.Marshal(item.Value)
		if err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}

		var propSchema Schema
		if err := yaml.Unmarshal(valueBytes, &propSchema); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}

		props = append(props, Property{Name: name, Schema: propSchema})
	}

	s.Value = props
	return nil
}
