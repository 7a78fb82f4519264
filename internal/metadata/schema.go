package metadata

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed dataset.schema.json
var datasetSchemaJSON []byte

// Schema validates raw dataset objects before they are decoded
type Schema struct {
	schema *gojsonschema.Schema
}

// NewSchema compiles the embedded dataset schema
func NewSchema() (*Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(datasetSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compile dataset schema: %w", err)
	}
	return &Schema{schema: s}, nil
}

// Check validates one dataset object and returns every failing field.
// A nil slice with a nil error means the document is valid.
func (s *Schema) Check(raw []byte) ([]FieldError, error) {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}

	fields := make([]FieldError, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		field := re.Field()
		// Missing required keys are reported against the parent object.
		if re.Type() == "required" {
			if prop, ok := re.Details()["property"].(string); ok {
				field = prop
			}
		}
		fields = append(fields, FieldError{Field: field, Description: re.Description()})
	}
	return fields, nil
}
