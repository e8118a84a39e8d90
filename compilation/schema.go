package compilation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

type SchemaType string

const (
	SchemaNull    SchemaType = "null"
	SchemaBoolean SchemaType = "boolean"
	SchemaInteger SchemaType = "integer"
	SchemaNumber  SchemaType = "number"
	SchemaString  SchemaType = "string"
	SchemaArray   SchemaType = "array"
	SchemaObject  SchemaType = "object"
)

type Schema struct {
	Type SchemaType `json:"type" yaml:"type"`

	Properties Properties   `json:"properties,omitempty" yaml:"properties,omitempty"`
	Items      *SchemaOrRef `json:"items,omitempty" yaml:"items,omitempty"`

	Required []string `json:"required,omitempty" yaml:"required,omitempty"`
	Format   string   `json:"format,omitempty" yaml:"format,omitempty"`

	Minimum *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`

	MinLength *uint `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *uint `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`

	MinItems    *uint `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems    *uint `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	UniqueItems bool  `json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`

	Examples []any `json:"examples,omitempty" yaml:"examples,omitempty"`

	nullable bool
}

// Property is one named property of an object schema.
type Property struct {
	Name   string
	Schema SchemaOrRef
}

// Properties preserves declaration order through marshaling, which plain
// maps would not.
type Properties []Property

func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, prop := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(prop.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(prop.Schema)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p Properties) MarshalYAML() (any, error) {
	out := make(yaml.MapSlice, 0, len(p))
	for _, prop := range p {
		out = append(out, yaml.MapItem{Key: prop.Name, Value: prop.Schema})
	}
	return out, nil
}

// SchemaOrRef holds either an inline Schema or a "$ref" string pointing at a
// component schema.
type SchemaOrRef struct {
	value any
}

func NewSchemaRef(ref string) SchemaOrRef {
	return SchemaOrRef{value: ref}
}

func NewSchemaDef(schema Schema) SchemaOrRef {
	return SchemaOrRef{value: schema}
}

func (t SchemaOrRef) IsRef() bool {
	_, ok := t.value.(string)
	return ok
}

func (t SchemaOrRef) GetRef() (string, bool) {
	ref, ok := t.value.(string)
	return ref, ok
}

func (t SchemaOrRef) GetSchema() (Schema, bool) {
	schema, ok := t.value.(Schema)
	return schema, ok
}

// nullableWrapper is the emitted form of a nullable schema:
// oneOf [ {type: null}, <schema> ].
func nullableWrapper(schema Schema) any {
	nonNull := schema
	nonNull.nullable = false

	return map[string]any{
		"oneOf": []any{
			map[string]string{"type": string(SchemaNull)},
			nonNull,
		},
	}
}

func (t SchemaOrRef) MarshalJSON() ([]byte, error) {
	switch v := t.value.(type) {
	case nil:
		return []byte("null"), nil
	case string:
		return json.Marshal(map[string]string{"$ref": v})
	case Schema:
		if v.nullable {
			return json.Marshal(nullableWrapper(v))
		}
		return json.Marshal(v)
	default:
		return nil, fmt.Errorf("invalid SchemaOrRef value type: %T", t.value)
	}
}

func (t SchemaOrRef) MarshalYAML() (any, error) {
	switch v := t.value.(type) {
	case nil:
		return nil, nil
	case string:
		return map[string]string{"$ref": v}, nil
	case Schema:
		if v.nullable {
			return nullableWrapper(v), nil
		}
		return v, nil
	default:
		return nil, fmt.Errorf("invalid SchemaOrRef value type: %T", t.value)
	}
}

func (t *SchemaOrRef) UnmarshalJSON(data []byte) error {
	var refObj struct {
		Ref string `json:"$ref"`
	}
	if err := json.Unmarshal(data, &refObj); err == nil && refObj.Ref != "" {
		t.value = refObj.Ref
		return nil
	}

	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return err
	}
	t.value = schema
	return nil
}

// MediaType documents the payload for one content type: its schema and an
// optional example value.
type MediaType struct {
	Schema  SchemaOrRef `json:"schema" yaml:"schema"`
	Example any         `json:"example,omitempty" yaml:"example,omitempty"`
}
