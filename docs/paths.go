package docs

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Path is one node of the path tree. Route segments nest inside their
// parent, so
//
//	/users:
//	  tags: [users]
//	  get: ...
//	  "{id}":
//	    get: ...
//
// declares both /users and /users/{id}, the child inheriting the parent tags.
type Path struct {
	Tags   []string        `yaml:"tags,omitempty"`
	Get    *Method         `yaml:"get,omitempty"`
	Post   *Method         `yaml:"post,omitempty"`
	Put    *Method         `yaml:"put,omitempty"`
	Patch  *Method         `yaml:"patch,omitempty"`
	Delete *Method         `yaml:"delete,omitempty"`
	Nested map[string]Path `yaml:"-"`
}

type Paths = map[string]Path

// UnmarshalYAML splits a path mapping by hand: the declared keys go to their
// fields, every remaining key is a nested route segment.
func (p *Path) UnmarshalYAML(data []byte) error {
	var raw map[string]yaml.RawMessage
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	known := map[string]any{
		"tags":   &p.Tags,
		"get":    &p.Get,
		"post":   &p.Post,
		"put":    &p.Put,
		"patch":  &p.Patch,
		"delete": &p.Delete,
	}

	for key, target := range known {
		value, ok := raw[key]
		if !ok {
			continue
		}
		if err := yaml.Unmarshal(value, target); err != nil {
			return fmt.Errorf("%v: %w", key, err)
		}
		delete(raw, key)
	}

	if len(raw) == 0 {
		return nil
	}

	p.Nested = make(map[string]Path, len(raw))
	for segment, value := range raw {
		var nested Path
		if err := yaml.Unmarshal(value, &nested); err != nil {
			return fmt.Errorf("%v: %w", segment, err)
		}
		p.Nested[segment] = nested
	}

	return nil
}

type Method struct {
	Id          string `yaml:"id,omitempty"`
	Description string `yaml:"description,omitempty"`

	// SuccessMediaType overrides the standard 200 media type for this
	// operation only. Takes precedence over the document-level
	// standard.mediaType.
	SuccessMediaType string `yaml:"successMediaType,omitempty"`

	Params    Params      `yaml:"params,omitempty"`
	Headers   Params      `yaml:"headers,omitempty"`
	Body      TypedSchema `yaml:"body,omitempty"`
	Responses Responses   `yaml:"responses,omitempty"`
}
