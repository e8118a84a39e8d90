package docs

import (
	"github.com/goccy/go-yaml"
)

type StatusCode = string

// Response is a documented response: a description plus one schema per media
// type. In YAML every key other than "description" is a media type:
//
//	"404":
//	  description: Not found
//	  application/json: <Error>
type Response struct {
	Description string `yaml:"description"`
	TypedSchema `yaml:"-"`
}

type Responses = map[StatusCode]Response

func (r *Response) UnmarshalYAML(data []byte) error {
	var raw map[string]yaml.RawMessage
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	if desc, ok := raw["description"]; ok {
		if err := yaml.Unmarshal(desc, &r.Description); err != nil {
			return err
		}
		delete(raw, "description")
	}

	if r.TypedSchema == nil {
		r.TypedSchema = make(TypedSchema, len(raw))
	}

	for mediaType, schemaData := range raw {
		var schema Schema
		if err := yaml.Unmarshal(schemaData, &schema); err != nil {
			return err
		}
		r.TypedSchema[mediaType] = schema
	}

	return nil
}
