// Package docs holds the authored API description model. Documents are
// written in a compact YAML dialect and compiled into OpenAPI by the
// compilation package.
package docs

type Document struct {
	Info     Info              `yaml:"info"`
	Servers  []Server          `yaml:"servers,omitempty"`
	Tags     []Tag             `yaml:"tags,omitempty"`
	Schemas  map[string]Schema `yaml:"schemas,omitempty"`
	Standard Standard          `yaml:"standard,omitempty"`
	Paths    Paths             `yaml:"paths,omitempty"`
}

type Info struct {
	Title       string `yaml:"title"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

type Server struct {
	Url         string `yaml:"url"`
	Description string `yaml:"description,omitempty"`
}

type Tag struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Standard configures the standard response set that the compiler attaches
// to every operation. Only the success media type is configurable; the error
// entries are fixed so that documentation stays uniform across endpoints.
type Standard struct {
	// MediaType overrides the content type recorded for the 200 entry.
	// Defaults to "application/json".
	MediaType string `yaml:"mediaType,omitempty"`

	// Disabled opts the whole document out of the standard response set.
	Disabled bool `yaml:"disabled,omitempty"`
}
