// Package genaiutils converts provider-neutral tool declarations into the
// genai function-declaration types.
package genaiutils

import (
	"github.com/cockroachdb/errors"
	"github.com/saimohit20/gemini-mcp-tools/pkg/llms"
	"google.golang.org/genai"
)

// ConvertTools converts from a list of llms tools to a list of genai tools.
func ConvertTools(tools []llms.Tool) ([]*genai.Tool, error) {
	if len(tools) == 0 {
		return nil, nil
	}
	genaiTools := make([]*genai.Tool, 0, len(tools))
	for i, tool := range tools {
		if tool.Type != "function" {
			return nil, errors.Errorf("tool [%d]: unsupported type %q, want 'function'", i, tool.Type)
		}

		genaiFuncDecl := &genai.FunctionDeclaration{
			Name:        tool.Function.Name,
			Description: tool.Function.Description,
		}

		if tool.Function.Parameters != nil {
			schema, err := ConvertSchemaMap(tool.Function.Parameters)
			if err != nil {
				return nil, errors.Wrapf(err, "tool [%d]", i)
			}
			genaiFuncDecl.Parameters = schema
		}

		genaiTools = append(genaiTools, &genai.Tool{
			FunctionDeclarations: []*genai.FunctionDeclaration{genaiFuncDecl},
		})
	}

	return genaiTools, nil
}

// ConvertSchemaMap converts a JSON schema, decoded as a plain map, to a
// genai.Schema. The map is expected to be already cleaned of the fields
// the function-declaration format rejects.
func ConvertSchemaMap(m map[string]any) (*genai.Schema, error) {
	if m == nil {
		return nil, nil
	}

	schema := &genai.Schema{
		Type:        ConvertSchemaType(stringValue(m["type"])),
		Description: stringValue(m["description"]),
		Format:      stringValue(m["format"]),
		Required:    stringSlice(m["required"]),
		Enum:        stringSlice(m["enum"]),
	}

	if props, ok := m["properties"].(map[string]any); ok {
		schema.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			prop, ok := raw.(map[string]any)
			if !ok {
				return nil, errors.Errorf("property [%s]: expected object, got %T", name, raw)
			}
			propSchema, err := ConvertSchemaMap(prop)
			if err != nil {
				return nil, errors.Wrapf(err, "property [%s]", name)
			}
			schema.Properties[name] = propSchema
		}
	}

	if rawItems, ok := m["items"].(map[string]any); ok {
		itemsSchema, err := ConvertSchemaMap(rawItems)
		if err != nil {
			return nil, errors.Wrap(err, "items")
		}
		schema.Items = itemsSchema
	}

	return schema, nil
}

// ConvertSchemaType converts a JSON schema type name to a genai.Type.
func ConvertSchemaType(dt string) genai.Type {
	switch dt {
	case "object":
		return genai.TypeObject
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	default:
		return genai.TypeUnspecified
	}
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// stringSlice accepts either []string or a JSON-decoded []any of strings.
func stringSlice(v any) []string {
	switch typ := v.(type) {
	case []string:
		return typ
	case []any:
		out := make([]string, 0, len(typ))
		for _, item := range typ {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}

func Float32Ptr(f float32) *float32 {
	if f == 0 {
		return nil
	}
	return &f
}
