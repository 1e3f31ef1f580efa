package ingest

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_TestResultPayload(t *testing.T) {
	valid := json.RawMessage(`{
		"test_name": "Graph Basics",
		"category": "algorithms",
		"difficulty": "medium",
		"score": 7,
		"total_score": 10,
		"duration_secs": 600,
		"topics": ["bfs", "dfs"]
	}`)
	require.NoError(t, Validate(TestResultSchema(), valid))
}

func TestValidate_TestResultRejections(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing test_name", `{"category": "algorithms"}`},
		{"missing category", `{"test_name": "t"}`},
		{"unknown category", `{"test_name": "t", "category": "astrology"}`},
		{"empty test_name", `{"test_name": "", "category": "algorithms"}`},
		{"unknown field", `{"test_name": "t", "category": "algorithms", "bonus": 1}`},
		{"wrong score type", `{"test_name": "t", "category": "algorithms", "score": "seven"}`},
		{"not json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(TestResultSchema(), json.RawMessage(tt.payload))
			require.Error(t, err)

			var invalid *ErrInvalidPayload
			assert.True(t, errors.As(err, &invalid), "expected ErrInvalidPayload, got %T", err)
		})
	}
}

func TestValidate_ActivityPayload(t *testing.T) {
	require.NoError(t, Validate(ActivitySchema(), json.RawMessage(`{
		"activity_id": "00000000-0000-0000-0000-000000000001",
		"user_id": "u1",
		"activity_type": "problem_solved",
		"metadata": {"difficulty": "hard"}
	}`)))

	err := Validate(ActivitySchema(), json.RawMessage(`{
		"user_id": "u1",
		"activity_type": "interpretive_dance"
	}`))
	require.Error(t, err)
}

func TestValidate_SchemaIsCompiledOnce(t *testing.T) {
	// Repeated validation must reuse the cached compiled schema.
	payload := json.RawMessage(`{"test_name": "t", "category": "databases"}`)
	for i := 0; i < 3; i++ {
		require.NoError(t, Validate(TestResultSchema(), payload))
	}
	cached, ok := schemaCache.Load("test_result")
	require.True(t, ok)
	again, err := getCompiledSchema(TestResultSchema())
	require.NoError(t, err)
	assert.Same(t, cached, again)
}
