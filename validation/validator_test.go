package validation

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validateYAML(t *testing.T, source string) error {
	t.Helper()

	var object any
	require.NoError(t, yaml.Unmarshal([]byte(source), &object))
	return ValidateObject(object)
}

func TestValidDocument(t *testing.T) {
	assert.NoError(t, validateYAML(t, `
info:
  title: Test API
  version: 1.0.0
standard:
  mediaType: application/xml
paths:
  /users:
    tags: [users]
    get:
      description: List users
      params:
        - name: verbose
          schema: boolean
      responses:
        "404":
          description: Not found
    "{id}":
      get:
        description: Get one user
`))
}

func TestValidateJSONBytes(t *testing.T) {
	assert.NoError(t, Validate([]byte(`{
		"info": {"title": "Test API", "version": "1.0.0"}
	}`)))

	assert.Error(t, Validate([]byte(`{"info": {"title": "Test API"}}`)),
		"missing version")
	assert.Error(t, Validate([]byte(`not json`)))
}

func TestMissingInfoRejected(t *testing.T) {
	assert.Error(t, validateYAML(t, `
paths:
  /users:
    get:
      description: List users
`))
}

func TestMissingVersionRejected(t *testing.T) {
	assert.Error(t, validateYAML(t, `
info:
  title: Test API
`))
}

func TestInvalidMediaTypeRejected(t *testing.T) {
	assert.Error(t, validateYAML(t, `
info:
  title: Test API
  version: 1.0.0
standard:
  mediaType: not a media type
`))
}

func TestUnknownStandardFieldRejected(t *testing.T) {
	assert.Error(t, validateYAML(t, `
info:
  title: Test API
  version: 1.0.0
standard:
  color: red
`))
}

func TestUnknownMethodFieldRejected(t *testing.T) {
	assert.Error(t, validateYAML(t, `
info:
  title: Test API
  version: 1.0.0
paths:
  /users:
    get:
      summarry: typo
`))
}
