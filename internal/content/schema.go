package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bundleSchemaDef is the JSON schema every content bundle must satisfy
// before anything reaches the cache. Structural validation happens
// here; referential checks (objective membership, duplicate IDs) are
// done in validateBundle.
var bundleSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"unit": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":    map[string]any{"type": "string", "minLength": 1},
				"title": map[string]any{"type": "string", "minLength": 1},
				"objectives": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id":   map[string]any{"type": "string", "minLength": 1},
							"text": map[string]any{"type": "string", "minLength": 1},
						},
						"required":             []any{"id", "text"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"id", "title", "objectives"},
			"additionalProperties": false,
		},
		"lessons": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"title": map[string]any{"type": "string", "minLength": 1},
					"exercises": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":           map[string]any{"type": "string", "minLength": 1},
								"objective_id": map[string]any{"type": "string", "minLength": 1},
								"prompt":       map[string]any{"type": "string", "minLength": 1},
								"choices": map[string]any{
									"type":     "array",
									"items":    map[string]any{"type": "string"},
									"minItems": 2,
								},
								"answer_index": map[string]any{
									"type":    "integer",
									"minimum": 0,
								},
							},
							"required":             []any{"id", "objective_id", "prompt", "choices", "answer_index"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "title", "exercises"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"unit", "lessons"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// bundleSchema returns the compiled bundle schema, compiling it on
// first use.
func bundleSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any),
		// not raw bytes. Marshal then unmarshal for a clean copy.
		defBytes, err := json.Marshal(bundleSchemaDef)
		if err != nil {
			compileErr = fmt.Errorf("marshal bundle schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse bundle schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://content-bundle.json", defParsed); err != nil {
			compileErr = fmt.Errorf("add bundle schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://content-bundle.json")
	})
	return compiledSchema, compileErr
}
