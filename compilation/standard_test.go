package compilation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AshishBagdane/ashdoc/docs"
)

func parseDocument(t *testing.T, source string) *docs.Document {
	t.Helper()

	var document docs.Document
	require.NoError(t, yaml.Unmarshal([]byte(source), &document))
	return &document
}

func compileDocument(t *testing.T, source string) *Document {
	t.Helper()

	out := Document{Openapi: "3.1.0"}
	require.NoError(t, Compile(&out, parseDocument(t, source)))
	return &out
}

const minimalDocument = `
info:
  title: Test API
  version: 1.0.0
paths:
  /users:
    get:
      id: listUsers
      description: List users
`

func TestStandardResponsesAttached(t *testing.T) {
	out := compileDocument(t, minimalDocument)

	operation := out.Paths["/users"].Get
	require.NotNil(t, operation)

	assert.Equal(t, StandardStatusCodes, operation.Responses.Codes())

	for code, response := range operation.Responses {
		assert.NotEmpty(t, response.Description, "status %v", code)
	}

	success := operation.Responses["200"]
	require.Contains(t, success.Content, DefaultSuccessMediaType)

	for _, code := range []StatusCode{"400", "401", "403", "500"} {
		response := operation.Responses[code]
		require.Contains(t, response.Content, "application/json", "status %v", code)

		ref, ok := response.Content["application/json"].Schema.GetRef()
		require.True(t, ok, "status %v should reference the error schema", code)
		assert.Equal(t, "#/components/schemas/"+ErrorSchemaName, ref)
	}
}

func TestStandardResponsesEmitOrder(t *testing.T) {
	document, err := CompileToJSON(parseDocument(t, minimalDocument))
	require.NoError(t, err)

	responses := string(document)
	idx := strings.Index(responses, `"responses":`)
	require.NotEqual(t, -1, idx)
	responses = responses[idx:]

	previous := -1
	for _, code := range StandardStatusCodes {
		position := strings.Index(responses, `"`+code+`":`)
		require.NotEqual(t, -1, position, "status %v missing", code)
		assert.Greater(t, position, previous, "status %v out of order", code)
		previous = position
	}
}

func TestSuccessMediaTypeOverride(t *testing.T) {
	out := compileDocument(t, `
info:
  title: Test API
  version: 1.0.0
standard:
  mediaType: application/xml
paths:
  /users:
    get:
      description: List users
`)

	operation := out.Paths["/users"].Get
	require.NotNil(t, operation)

	success := operation.Responses["200"]
	assert.Contains(t, success.Content, "application/xml")
	assert.NotContains(t, success.Content, "application/json")

	// the error entries are not configurable
	for _, code := range []StatusCode{"400", "401", "403", "500"} {
		assert.Contains(t, operation.Responses[code].Content, "application/json", "status %v", code)
	}
}

func TestMethodMediaTypeBeatsDocumentLevel(t *testing.T) {
	out := compileDocument(t, `
info:
  title: Test API
  version: 1.0.0
standard:
  mediaType: application/xml
paths:
  /users:
    get:
      description: List users
    post:
      description: Create user
      successMediaType: text/csv
`)

	get := out.Paths["/users"].Get
	require.NotNil(t, get)
	assert.Contains(t, get.Responses["200"].Content, "application/xml")

	post := out.Paths["/users"].Post
	require.NotNil(t, post)
	assert.Contains(t, post.Responses["200"].Content, "text/csv")
	assert.NotContains(t, post.Responses["200"].Content, "application/xml")
}

func TestErrorExamplesAreValidJSON(t *testing.T) {
	out := compileDocument(t, minimalDocument)

	operation := out.Paths["/users"].Get
	require.NotNil(t, operation)

	for _, code := range []StatusCode{"400", "401", "403", "500"} {
		example := operation.Responses[code].Content["application/json"].Example
		require.NotNil(t, example, "status %v", code)

		encoded, err := json.Marshal(example)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(encoded, &decoded))

		assert.Contains(t, decoded, "errorCode", "status %v", code)
		assert.Contains(t, decoded, "message", "status %v", code)
		assert.Contains(t, decoded, "timestamp", "status %v", code)
	}
}

func TestDeclaredResponseReplacesStandardEntry(t *testing.T) {
	out := compileDocument(t, `
info:
  title: Test API
  version: 1.0.0
paths:
  /users:
    get:
      description: List users
      responses:
        "400":
          description: Custom bad request
`)

	operation := out.Paths["/users"].Get
	require.NotNil(t, operation)

	assert.Equal(t, StandardStatusCodes, operation.Responses.Codes())
	assert.Equal(t, "Custom bad request", operation.Responses["400"].Description)
	assert.Equal(t, "Request processed successfully.", operation.Responses["200"].Description)
}

func TestDeclaredResponseAddsToStandardSet(t *testing.T) {
	out := compileDocument(t, `
info:
  title: Test API
  version: 1.0.0
paths:
  /users:
    get:
      description: List users
      responses:
        "404":
          description: Not found
`)

	operation := out.Paths["/users"].Get
	require.NotNil(t, operation)

	assert.Equal(t,
		[]StatusCode{"200", "400", "401", "403", "404", "500"},
		operation.Responses.Codes())
}

func TestStandardDisabled(t *testing.T) {
	out := compileDocument(t, `
info:
  title: Test API
  version: 1.0.0
standard:
  disabled: true
paths:
  /users:
    get:
      description: List users
      responses:
        "204":
          description: No content
`)

	operation := out.Paths["/users"].Get
	require.NotNil(t, operation)

	assert.Equal(t, []StatusCode{"204"}, operation.Responses.Codes())
	if out.Components != nil {
		assert.NotContains(t, out.Components.Schemas, ErrorSchemaName)
	}
}

func TestErrorSchemaComponent(t *testing.T) {
	out := compileDocument(t, minimalDocument)

	require.NotNil(t, out.Components)
	component, ok := out.Components.Schemas[ErrorSchemaName]
	require.True(t, ok)

	schema, ok := component.GetSchema()
	require.True(t, ok)

	assert.Equal(t, SchemaObject, schema.Type)
	assert.ElementsMatch(t, []string{"errorCode", "message", "timestamp"}, schema.Required)

	names := make([]string, 0, len(schema.Properties))
	for _, property := range schema.Properties {
		names = append(names, property.Name)
	}
	assert.Equal(t, []string{"errorCode", "message", "details", "timestamp"}, names)
}

func TestDeclaredErrorSchemaWins(t *testing.T) {
	out := compileDocument(t, `
info:
  title: Test API
  version: 1.0.0
schemas:
  ErrorResponse:
    code: string
    reason: string
paths:
  /users:
    get:
      description: List users
`)

	require.NotNil(t, out.Components)
	component, ok := out.Components.Schemas[ErrorSchemaName]
	require.True(t, ok)

	schema, ok := component.GetSchema()
	require.True(t, ok)
	require.Len(t, schema.Properties, 2)
	assert.Equal(t, "code", schema.Properties[0].Name)
}

func TestCompilationIsDeterministic(t *testing.T) {
	source := `
info:
  title: Test API
  version: 1.0.0
schemas:
  User:
    id: integer
    email: string(email)
    nickname?: string
paths:
  /users:
    tags: [users]
    get:
      description: List users
      responses:
        "200":
          description: The users
          application/json: <User>[]
    "{id}":
      get:
        description: Get one user
        params:
          - name: id
            schema: integer
            required: true
`

	first, err := CompileToJSON(parseDocument(t, source))
	require.NoError(t, err)

	second, err := CompileToJSON(parseDocument(t, source))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
