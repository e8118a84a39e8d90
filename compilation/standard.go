package compilation

// The standard response set documents the five response scenarios every
// endpoint shares: success plus the common error cases. It is merged into
// each compiled operation so endpoint authors never restate them; a response
// the method declares itself replaces the standard entry for that status
// code, and everything else stays.
//
// Only the success media type is configurable. Resolution order:
// method successMediaType, then document standard.mediaType, then
// DefaultSuccessMediaType. The error entries are always application/json and
// all reference the shared ErrorResponse component schema.

// DefaultSuccessMediaType is recorded for the 200 entry when neither the
// document nor the method overrides it.
const DefaultSuccessMediaType = "application/json"

// ErrorSchemaName is the component schema shared by the 400/401/403/500
// entries. A document may declare its own schema under this name, which then
// takes precedence over the built-in one.
const ErrorSchemaName = "ErrorResponse"

const (
	errorMediaType = "application/json"
	errorSchemaRef = "#/components/schemas/" + ErrorSchemaName
)

// StandardStatusCodes lists the fixed set, in emit order.
var StandardStatusCodes = []StatusCode{"200", "400", "401", "403", "500"}

// ErrorExample is the example payload attached to each error entry. It
// mirrors the error object the documented application returns.
type ErrorExample struct {
	ErrorCode string   `json:"errorCode" yaml:"errorCode"`
	Message   string   `json:"message" yaml:"message"`
	Details   []string `json:"details,omitempty" yaml:"details,omitempty"`
	Timestamp string   `json:"timestamp" yaml:"timestamp"`
}

const exampleTimestamp = "2024-01-09T10:15:30.123Z"

func standardResponses(successMediaType string) Responses {
	if successMediaType == "" {
		successMediaType = DefaultSuccessMediaType
	}

	return Responses{
		"200": {
			Description: "Request processed successfully.",
			Content: map[string]MediaType{
				successMediaType: {
					Schema: NewSchemaDef(Schema{Type: SchemaObject}),
				},
			},
		},
		"400": errorResponse(
			"Invalid request. This could be due to missing or invalid parameters, "+
				"malformed request syntax, or invalid field values.",
			ErrorExample{
				ErrorCode: "INVALID_REQUEST",
				Message:   "Invalid request parameters",
				Details:   []string{"Field 'email' must be a valid email address"},
				Timestamp: exampleTimestamp,
			},
		),
		"401": errorResponse(
			"Authentication required. The request lacks valid authentication "+
				"credentials or the provided credentials are invalid.",
			ErrorExample{
				ErrorCode: "UNAUTHORIZED",
				Message:   "Authentication required",
				Timestamp: exampleTimestamp,
			},
		),
		"403": errorResponse(
			"Permission denied. The authenticated user lacks sufficient "+
				"permissions to access the requested resource.",
			ErrorExample{
				ErrorCode: "FORBIDDEN",
				Message:   "Insufficient permissions",
				Timestamp: exampleTimestamp,
			},
		),
		"500": errorResponse(
			"Internal server error. An unexpected condition was encountered.",
			ErrorExample{
				ErrorCode: "INTERNAL_ERROR",
				Message:   "An unexpected error occurred",
				Timestamp: exampleTimestamp,
			},
		),
	}
}

func errorResponse(description string, example ErrorExample) Response {
	return Response{
		Description: description,
		Content: map[string]MediaType{
			errorMediaType: {
				Schema:  NewSchemaRef(errorSchemaRef),
				Example: example,
			},
		},
	}
}

func errorResponseSchema() Schema {
	str := NewSchemaDef(Schema{Type: SchemaString})

	return Schema{
		Type: SchemaObject,
		Properties: Properties{
			{Name: "errorCode", Schema: str},
			{Name: "message", Schema: str},
			{Name: "details", Schema: NewSchemaDef(Schema{
				Type:  SchemaArray,
				Items: &str,
			})},
			{Name: "timestamp", Schema: NewSchemaDef(Schema{
				Type:   SchemaString,
				Format: "date-time",
			})},
		},
		Required: []string{"errorCode", "message", "timestamp"},
	}
}
