package compilation

import (
	"encoding/json"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/AshishBagdane/ashdoc/docs"
)

type compileContext struct {
	in  *docs.Document
	out *Document
}

func (c *compileContext) compileInfo() {
	c.out.Info = Info{
		Title:       c.in.Info.Title,
		Version:     c.in.Info.Version,
		Description: c.in.Info.Description,
	}
}

func (c *compileContext) compileServers() {
	for _, server := range c.in.Servers {
		c.out.Servers = append(c.out.Servers, Server{
			Url:         server.Url,
			Description: server.Description,
		})
	}
}

func (c *compileContext) compileTags() {
	for _, tag := range c.in.Tags {
		c.out.Tags = append(c.out.Tags, Tag{
			Name:        tag.Name,
			Description: tag.Description,
		})
	}
}

func (c *compileContext) parseSchema(schema docs.Schema) (SchemaOrRef, error) {
	switch v := schema.Value.(type) {
	case string:
		return parseSchemaExpr(v)
	case docs.Properties:
		object := Schema{
			Type:       SchemaObject,
			Required:   make([]string, 0),
			Properties: make(Properties, 0, len(v)),
		}
		for _, property := range v {
			name, optional := strings.CutSuffix(property.Name, "?")
			compiled, err := c.parseSchema(property.Schema)
			if err != nil {
				return SchemaOrRef{}, err
			}
			object.Properties = append(object.Properties, Property{
				Name:   name,
				Schema: compiled,
			})
			if !optional {
				object.Required = append(object.Required, name)
			}
		}
		return NewSchemaDef(object), nil
	default:
		return SchemaOrRef{}, fmt.Errorf("invalid schema value type: %T", schema.Value)
	}
}

func (c *compileContext) components() *Components {
	if c.out.Components == nil {
		c.out.Components = &Components{
			Schemas: make(map[string]SchemaOrRef),
		}
	}
	return c.out.Components
}

func (c *compileContext) compileSchemas() error {
	for name, schema := range c.in.Schemas {
		compiled, err := c.parseSchema(schema)
		if err != nil {
			return fmt.Errorf("schema %q: %w", name, err)
		}
		c.components().Schemas[name] = compiled
	}

	// The error entries of the standard set reference ErrorResponse, so the
	// component must exist unless the document brings its own.
	if !c.in.Standard.Disabled {
		schemas := c.components().Schemas
		if _, declared := schemas[ErrorSchemaName]; !declared {
			schemas[ErrorSchemaName] = NewSchemaDef(errorResponseSchema())
		}
	}

	return nil
}

// successMediaType resolves the 200 media type: the method override wins,
// then the document-level setting, then the default.
func (c *compileContext) successMediaType(method *docs.Method) string {
	if method.SuccessMediaType != "" {
		return method.SuccessMediaType
	}
	if c.in.Standard.MediaType != "" {
		return c.in.Standard.MediaType
	}
	return DefaultSuccessMediaType
}

func (c *compileContext) compileMethod(method *docs.Method, tags []string, route string) (*Operation, error) {
	if method == nil {
		return nil, nil
	}

	out := Operation{
		OperationId: method.Id,
		Summary:     method.Description,
		Tags:        tags,
		Responses:   make(Responses),
	}

	if !c.in.Standard.Disabled {
		out.Responses = standardResponses(c.successMediaType(method))
	}

	makeParam := func(p docs.Param, in ParamIn) (Parameter, error) {
		// a query param whose name appears as {name} in the route is
		// actually a path param
		if in == InQuery && strings.Contains(route, "{"+p.Name+"}") {
			in = InPath
		}

		schema, err := c.parseSchema(p.Schema)
		if err != nil {
			return Parameter{}, err
		}

		return Parameter{
			Name:     p.Name,
			In:       in,
			Required: p.Required || in == InPath,
			Schema:   schema,
		}, nil
	}

	for _, param := range method.Params {
		compiled, err := makeParam(param, InQuery)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", param.Name, err)
		}
		out.Parameters = append(out.Parameters, compiled)
	}

	for _, header := range method.Headers {
		compiled, err := makeParam(header, InHeader)
		if err != nil {
			return nil, fmt.Errorf("header %q: %w", header.Name, err)
		}
		out.Parameters = append(out.Parameters, compiled)
	}

	if method.Body != nil {
		body := RequestBody{
			Required: true,
			Content:  make(map[string]MediaType, len(method.Body)),
		}
		for mediaType, schema := range method.Body {
			compiled, err := c.parseSchema(schema)
			if err != nil {
				return nil, fmt.Errorf("body %q: %w", mediaType, err)
			}
			body.Content[mediaType] = MediaType{Schema: compiled}
		}
		out.RequestBody = &body
	}

	// declared responses replace the standard entry for the same status code
	for statusCode, response := range method.Responses {
		compiled := Response{Description: response.Description}

		if len(response.TypedSchema) != 0 {
			compiled.Content = make(map[string]MediaType, len(response.TypedSchema))
			for mediaType, schema := range response.TypedSchema {
				compiledSchema, err := c.parseSchema(schema)
				if err != nil {
					return nil, fmt.Errorf("response %v %q: %w", statusCode, mediaType, err)
				}
				compiled.Content[mediaType] = MediaType{Schema: compiledSchema}
			}
		}

		out.Responses[statusCode] = compiled
	}

	return &out, nil
}

func mergeTags(parent, child []string) []string {
	out := slices.Clone(parent)
	for _, tag := range child {
		if !slices.Contains(out, tag) {
			out = append(out, tag)
		}
	}
	return out
}

func (c *compileContext) compilePaths() error {
	c.out.Paths = make(map[string]Path)

	hasAnyMethod := func(p *docs.Path) bool {
		return p.Get != nil || p.Post != nil || p.Put != nil ||
			p.Patch != nil || p.Delete != nil
	}

	var collect func(route string, current docs.Path, tags []string) error

	collect = func(route string, current docs.Path, tags []string) error {
		tags = mergeTags(tags, current.Tags)

		if hasAnyMethod(&current) {
			var outPath Path
			var err error

			if outPath.Get, err = c.compileMethod(current.Get, tags, route); err != nil {
				return fmt.Errorf("%v get: %w", route, err)
			}
			if outPath.Post, err = c.compileMethod(current.Post, tags, route); err != nil {
				return fmt.Errorf("%v post: %w", route, err)
			}
			if outPath.Put, err = c.compileMethod(current.Put, tags, route); err != nil {
				return fmt.Errorf("%v put: %w", route, err)
			}
			if outPath.Patch, err = c.compileMethod(current.Patch, tags, route); err != nil {
				return fmt.Errorf("%v patch: %w", route, err)
			}
			if outPath.Delete, err = c.compileMethod(current.Delete, tags, route); err != nil {
				return fmt.Errorf("%v delete: %w", route, err)
			}

			c.out.Paths[route] = outPath
		}

		for segment, next := range current.Nested {
			if err := collect(path.Join(route, segment), next, tags); err != nil {
				return err
			}
		}
		return nil
	}

	for route, current := range c.in.Paths {
		if err := collect(route, current, nil); err != nil {
			return err
		}
	}
	return nil
}

// Compile fills out with the OpenAPI rendition of in. Every operation gets
// the standard response set unless the document disables it.
func Compile(out *Document, in *docs.Document) error {
	c := compileContext{in: in, out: out}

	c.compileInfo()
	c.compileServers()
	c.compileTags()

	if err := c.compileSchemas(); err != nil {
		return err
	}

	return c.compilePaths()
}

const openapiVersion = "3.1.0"

func CompileToJSON(in *docs.Document) ([]byte, error) {
	out := Document{Openapi: openapiVersion}

	if err := Compile(&out, in); err != nil {
		return nil, err
	}

	return json.Marshal(out)
}

func CompileToYAML(in *docs.Document) ([]byte, error) {
	out := Document{Openapi: openapiVersion}

	if err := Compile(&out, in); err != nil {
		return nil, err
	}

	return yaml.Marshal(out)
}
