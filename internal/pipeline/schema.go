package processor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/docstack-labs/idverify/constants"
)

// BuildDocumentJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// extracted_data payload. Every property is optional — unresolved fields are
// simply absent — but present values must already be normalized.
func BuildDocumentJSONSchema() map[string]any {
	props := map[string]any{
		string(constants.FieldFullName): map[string]any{"type": "string", "minLength": 2},
		string(constants.FieldAge):      map[string]any{"type": "string", "pattern": `^\d{1,2}$`},
		string(constants.FieldGender):   map[string]any{"type": "string", "minLength": 2},
		string(constants.FieldAddress):  map[string]any{"type": "string", "minLength": 2},
		string(constants.FieldEmail):    map[string]any{"type": "string", "pattern": `^[a-z0-9._%\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`},
		string(constants.FieldPhone):    map[string]any{"type": "string", "pattern": `^\d{10}$`},
		string(constants.FieldIDNumber): map[string]any{"type": "string", "pattern": `^[A-Za-z0-9]{5,}$`},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
