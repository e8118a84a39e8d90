package compilation

type Path struct {
	Get    *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Post   *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Put    *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Patch  *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`
	Delete *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
}

type Operation struct {
	Summary     string       `json:"summary,omitempty" yaml:"summary,omitempty"`
	OperationId string       `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Tags        []string     `json:"tags,omitempty" yaml:"tags,omitempty"`
	Parameters  []Parameter  `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   Responses    `json:"responses,omitempty" yaml:"responses,omitempty"`
}

type ParamIn string

const (
	InPath   ParamIn = "path"
	InQuery  ParamIn = "query"
	InHeader ParamIn = "header"
)

type Parameter struct {
	Name     string      `json:"name" yaml:"name"`
	In       ParamIn     `json:"in" yaml:"in"`
	Required bool        `json:"required" yaml:"required"`
	Schema   SchemaOrRef `json:"schema" yaml:"schema"`
}

type RequestBody struct {
	Required    bool                 `json:"required,omitempty" yaml:"required,omitempty"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Content     map[string]MediaType `json:"content" yaml:"content"`
}
