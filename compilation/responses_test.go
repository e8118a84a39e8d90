package compilation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponsesCodesOrder(t *testing.T) {
	responses := Responses{
		"default": {Description: "fallback"},
		"500":     {Description: "server error"},
		"200":     {Description: "ok"},
		"404":     {Description: "not found"},
		"400":     {Description: "bad request"},
	}

	assert.Equal(t,
		[]StatusCode{"200", "400", "404", "500", "default"},
		responses.Codes())
}

func TestResponsesMarshalOrder(t *testing.T) {
	responses := Responses{
		"500": {Description: "server error"},
		"200": {Description: "ok"},
	}

	encoded, err := json.Marshal(responses)
	require.NoError(t, err)
	assert.Equal(t,
		`{"200":{"description":"ok"},"500":{"description":"server error"}}`,
		string(encoded))
}
