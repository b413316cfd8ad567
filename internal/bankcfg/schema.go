package bankcfg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
)

// BuildPatternSetJSONSchema returns the closed JSON-Schema for pattern set
// files. Field names are enumerated properties with additionalProperties off,
// so a config naming an unknown field fails at load rather than at use.
func BuildPatternSetJSONSchema() map[string]any {
	patternItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"expr":     map[string]any{"type": "string", "minLength": 1},
			"group":    map[string]any{"type": "integer", "minimum": 0},
			"priority": map[string]any{"type": "integer"},
		},
		"required": []string{"expr"},
	}

	fieldProps := map[string]any{}
	for _, f := range constants.CanonicalFields {
		fieldProps[string(f)] = map[string]any{
			"type":  "array",
			"items": patternItem,
		}
	}

	// ParseBank is case-insensitive; accept both spellings in configs
	banks := make([]string, 0, 2*len(constants.Banks()))
	for _, b := range constants.Banks() {
		banks = append(banks, string(b), strings.ToLower(string(b)))
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"bank": map[string]any{"type": "string", "enum": banks},
			"fields": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           fieldProps,
			},
		},
		"required": []string{"bank", "fields"},
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
