package orgconfig

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// mappingSchema is the JSON Schema every organization mapping document must
// satisfy before it is decoded.
const mappingSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "required": ["organizationName"],
    "properties": {
      "organizationName": {"type": "string", "minLength": 1},
      "logoPath": {"type": "string"},
      "faviconPath": {"type": "string"},
      "websiteUrl": {"type": "string"}
    },
    "additionalProperties": false
  }
}`

// validateMappingJSON checks a raw mapping document against mappingSchema.
func validateMappingJSON(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(mappingSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate organization mapping: %w", err)
	}

	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		schemaErr.Errors = append(schemaErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return schemaErr
}
