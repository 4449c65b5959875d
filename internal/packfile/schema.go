package packfile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// fileSchema is the JSON schema a pack file must satisfy before import.
var fileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"packs": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"keywords": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"questions": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"type": map[string]any{
									"type": "string",
									"enum": []any{"multiple", "truefalse", "choiceblank"},
								},
								"question": map[string]any{
									"type":      "string",
									"minLength": 1,
								},
								"passage":     map[string]any{"type": "string"},
								"hint":        map[string]any{"type": "string"},
								"explanation": map[string]any{"type": "string"},
								"blank_count": map[string]any{
									"type":    "integer",
									"minimum": 0,
									"maximum": 3,
								},
								"choices": map[string]any{
									"type":     "array",
									"minItems": 2,
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"text": map[string]any{
												"type":      "string",
												"minLength": 1,
											},
											"correct": map[string]any{"type": "boolean"},
											"blank_position": map[string]any{
												"type":    "integer",
												"minimum": 1,
											},
										},
										"required":             []any{"text"},
										"additionalProperties": false,
									},
								},
							},
							"required":             []any{"type", "question", "choices"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"keywords", "questions"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"packs"},
	"additionalProperties": false,
}

var (
	compiledOnce sync.Once
	compiled     *jsonschema.Schema
	compileErr   error
)

// compiledSchema compiles the pack-file schema once and caches it.
func compiledSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(fileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://packfile.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
