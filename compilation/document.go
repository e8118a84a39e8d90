// Package compilation turns an authored docs.Document into an OpenAPI 3.1
// document. The compiler owns the standard response set and merges it into
// every operation it emits.
package compilation

type Document struct {
	Openapi    string          `json:"openapi" yaml:"openapi"`
	Info       Info            `json:"info" yaml:"info"`
	Servers    []Server        `json:"servers,omitempty" yaml:"servers,omitempty"`
	Tags       []Tag           `json:"tags,omitempty" yaml:"tags,omitempty"`
	Components *Components     `json:"components,omitempty" yaml:"components,omitempty"`
	Paths      map[string]Path `json:"paths,omitempty" yaml:"paths,omitempty"`
}

type Info struct {
	Title       string `json:"title" yaml:"title"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type Server struct {
	Url         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type Components struct {
	Schemas map[string]SchemaOrRef `json:"schemas,omitempty" yaml:"schemas,omitempty"`
}
