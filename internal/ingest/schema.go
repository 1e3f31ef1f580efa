// Package ingest validates raw JSON payloads arriving from the external
// transport layer before they touch any derived state. Unknown enum values
// are rejected here, at the boundary, not at read time.
package ingest

import "github.com/avinash/preptrack/internal/taxonomy"

// Schema pairs a stable name with a JSON Schema definition.
type Schema struct {
	Name       string
	Definition map[string]any
}

// TestResultSchema describes a raw test submission.
func TestResultSchema() *Schema {
	return &Schema{
		Name: "test_result",
		Definition: map[string]any{
			"type":                 "object",
			"required":             []any{"test_name", "category"},
			"additionalProperties": false,
			"properties": map[string]any{
				"test_name": map[string]any{"type": "string", "minLength": 1},
				"category":  map[string]any{"type": "string", "enum": skillNames()},
				"difficulty": map[string]any{
					"type": "string",
				},
				"score":         map[string]any{"type": "integer"},
				"total_score":   map[string]any{"type": "integer"},
				"accuracy":      map[string]any{"type": "number"},
				"duration_secs": map[string]any{"type": "integer"},
				"topics": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
		},
	}
}

// ActivitySchema describes a raw activity submission.
func ActivitySchema() *Schema {
	return &Schema{
		Name: "activity",
		Definition: map[string]any{
			"type":                 "object",
			"required":             []any{"user_id", "activity_type"},
			"additionalProperties": false,
			"properties": map[string]any{
				"activity_id":   map[string]any{"type": "string"},
				"user_id":       map[string]any{"type": "string", "minLength": 1},
				"activity_type": map[string]any{"type": "string", "enum": activityNames()},
				"metadata":      map[string]any{"type": "object"},
			},
		},
	}
}

func skillNames() []any {
	skills := taxonomy.AllSkills()
	out := make([]any, len(skills))
	for i, s := range skills {
		out[i] = string(s)
	}
	return out
}

func activityNames() []any {
	types := taxonomy.AllActivityTypes()
	out := make([]any, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}
