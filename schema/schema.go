// Package schema prepares tool parameter schemas for the Gemini
// function-declaration format.
//
// MCP servers describe tool inputs with full JSON Schema documents, which
// often carry presentation-only or bookkeeping fields ("title", "$schema")
// that the Gemini API rejects. Clean strips those fields recursively while
// preserving everything else.
package schema

// DefaultDisallowedKeys are the keys removed by Clean. "title" is purely
// presentational; the rest are JSON Schema bookkeeping that the Gemini
// function-declaration format does not accept.
var DefaultDisallowedKeys = []string{
	"title",
	"$schema",
	"$id",
	"additionalProperties",
}

// Cleaner removes a fixed set of keys from JSON-like values at any
// nesting depth. Construct with NewCleaner.
type Cleaner struct {
	disallowed map[string]bool
}

// NewCleaner creates a Cleaner that removes the given keys. With no keys
// it falls back to DefaultDisallowedKeys.
func NewCleaner(disallowedKeys ...string) *Cleaner {
	if len(disallowedKeys) == 0 {
		disallowedKeys = DefaultDisallowedKeys
	}
	m := make(map[string]bool, len(disallowedKeys))
	for _, k := range disallowedKeys {
		m[k] = true
	}
	return &Cleaner{disallowed: m}
}

// Clean returns a copy of v with disallowed keys removed from every object
// at every depth. Objects and arrays are copied, scalars are returned
// unchanged, and the input is never mutated. Clean is idempotent.
//
// JSON-like values are expected: map[string]any for objects, []any for
// arrays, and bool/float64/string/nil scalars as produced by
// encoding/json. Schemas are tree-shaped, so no cycle detection is done.
func (c *Cleaner) Clean(v any) any {
	switch typ := v.(type) {
	case map[string]any:
		return c.CleanMap(typ)
	case []any:
		out := make([]any, 0, len(typ))
		for _, item := range typ {
			out = append(out, c.Clean(item))
		}
		return out
	default:
		return v
	}
}

// CleanMap is Clean specialized for an object root, which is what a tool
// parameter schema always is. A nil map yields a nil map.
func (c *Cleaner) CleanMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for key, value := range m {
		if c.disallowed[key] {
			continue
		}
		out[key] = c.Clean(value)
	}
	return out
}

// Clean removes DefaultDisallowedKeys from v using a default Cleaner.
func Clean(v any) any {
	return NewCleaner().Clean(v)
}

// CleanMap removes DefaultDisallowedKeys from m using a default Cleaner.
func CleanMap(m map[string]any) map[string]any {
	return NewCleaner().CleanMap(m)
}
