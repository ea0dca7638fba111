package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/saimohit20/gemini-mcp-tools/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanRemovesDisallowedKeys(t *testing.T) {
	in := map[string]any{
		"title": "Weather request",
		"type":  "object",
		"properties": map[string]any{
			"city": map[string]any{
				"title":       "City",
				"type":        "string",
				"description": "City name",
			},
		},
		"required": []any{"city"},
	}

	got := schema.CleanMap(in)

	want := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"city": map[string]any{
				"type":        "string",
				"description": "City name",
			},
		},
		"required": []any{"city"},
	}
	assert.Empty(t, cmp.Diff(want, got))

	// the input must not be mutated
	assert.Equal(t, "Weather request", in["title"])
	assert.Contains(t, in["properties"].(map[string]any)["city"], "title")
}

func TestCleanThreeLevelsDeep(t *testing.T) {
	in := map[string]any{
		"title": "level 1",
		"type":  "object",
		"properties": map[string]any{
			"filters": map[string]any{
				"title": "level 2",
				"type":  "object",
				"properties": map[string]any{
					"range": map[string]any{
						"title": "level 3",
						"type":  "string",
					},
				},
			},
		},
	}

	got := schema.CleanMap(in)

	js, err := json.Marshal(got)
	require.NoError(t, err)
	assert.NotContains(t, string(js), "title")

	l2 := got["properties"].(map[string]any)["filters"].(map[string]any)
	l3 := l2["properties"].(map[string]any)["range"].(map[string]any)
	assert.Equal(t, "object", l2["type"])
	assert.Equal(t, "string", l3["type"])
}

func TestCleanArrays(t *testing.T) {
	in := map[string]any{
		"anyOf": []any{
			map[string]any{"title": "first", "type": "string"},
			map[string]any{"title": "second", "type": "integer"},
			"scalar stays",
			float64(42),
		},
	}

	got := schema.CleanMap(in)

	want := map[string]any{
		"anyOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
			"scalar stays",
			float64(42),
		},
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestCleanScalarsAndNil(t *testing.T) {
	assert.Equal(t, "text", schema.Clean("text"))
	assert.Equal(t, float64(1.5), schema.Clean(float64(1.5)))
	assert.Equal(t, true, schema.Clean(true))
	assert.Nil(t, schema.Clean(nil))
	assert.Nil(t, schema.CleanMap(nil))
}

func TestCleanIdempotent(t *testing.T) {
	in := map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$id":     "https://example.com/get_weather",
		"title":   "Weather",
		"type":    "object",
		"properties": map[string]any{
			"city": map[string]any{"title": "City", "type": "string"},
			"days": map[string]any{
				"type":  "array",
				"items": map[string]any{"title": "Day", "type": "string"},
			},
		},
		"additionalProperties": false,
	}

	once := schema.Clean(in)
	twice := schema.Clean(once)
	assert.Empty(t, cmp.Diff(once, twice))
}

func TestCleanerCustomKeys(t *testing.T) {
	c := schema.NewCleaner("examples")
	got := c.CleanMap(map[string]any{
		"title":    "kept with custom key set",
		"examples": []any{"a", "b"},
	})
	want := map[string]any{"title": "kept with custom key set"}
	assert.Empty(t, cmp.Diff(want, got))
}
