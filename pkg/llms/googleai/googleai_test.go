package googleai

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/saimohit20/gemini-mcp-tools/pkg/llms"
)

func TestConvertContentRoles(t *testing.T) {
	t.Parallel()

	tcases := []struct {
		role llms.Role
		exp  string
	}{
		{llms.RoleSystem, RoleSystem},
		{llms.RoleAI, RoleModel},
		{llms.RoleHuman, RoleUser},
		{llms.RoleTool, RoleTool},
	}
	for _, tc := range tcases {
		c, err := convertContent(llms.MessageFromTextParts(tc.role, "hello"))
		require.NoError(t, err)
		assert.Equal(t, tc.exp, c.Role)
	}

	_, err := convertContent(llms.MessageFromTextParts(llms.Role("other"), "hello"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, llms.ErrUnexpectedRole))
}

func TestConvertParts(t *testing.T) {
	t.Parallel()

	parts, err := convertParts([]llms.ContentPart{
		llms.TextPart("hi"),
		llms.ToolCall{
			ID:   "c1",
			Type: "function",
			FunctionCall: &llms.FunctionCall{
				Name:      "get_weather",
				Arguments: `{"city":"London"}`,
			},
		},
		llms.ToolCallResponse{
			ToolCallID: "c1",
			Name:       "get_weather",
			Content:    "It's cloudy and 18°C in London.",
		},
	})
	require.NoError(t, err)
	require.Len(t, parts, 3)

	assert.Equal(t, "hi", parts[0].Text)

	require.NotNil(t, parts[1].FunctionCall)
	assert.Equal(t, "get_weather", parts[1].FunctionCall.Name)
	assert.Equal(t, map[string]any{"city": "London"}, parts[1].FunctionCall.Args)

	require.NotNil(t, parts[2].FunctionResponse)
	assert.Equal(t, "get_weather", parts[2].FunctionResponse.Name)
	assert.Equal(t, map[string]any{"result": "It's cloudy and 18°C in London."}, parts[2].FunctionResponse.Response)
}

func TestConvertCandidates(t *testing.T) {
	t.Parallel()

	resp, err := convertCandidates([]*genai.Candidate{
		{
			FinishReason: genai.FinishReasonStop,
			Content: &genai.Content{
				Role: RoleModel,
				Parts: []*genai.Part{
					{Text: "thinking...", Thought: true},
					{Text: "Let me check. "},
					{FunctionCall: &genai.FunctionCall{
						ID:   "c1",
						Name: "get_weather",
						Args: map[string]any{"city": "London"},
					}},
				},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Choices, 1)

	choice := resp.Choices[0]
	// thought parts are not part of the answer
	assert.Equal(t, "Let me check. ", choice.Content)
	assert.Equal(t, string(genai.FinishReasonStop), choice.StopReason)

	require.Len(t, choice.ToolCalls, 1)
	call := choice.ToolCalls[0]
	assert.Equal(t, "c1", call.ID)
	assert.Equal(t, "function", call.Type)
	assert.Equal(t, "get_weather", call.FunctionCall.Name)
	assert.JSONEq(t, `{"city":"London"}`, call.FunctionCall.Arguments)
}

func TestConvertCandidatesEmpty(t *testing.T) {
	t.Parallel()

	resp, err := convertCandidates(nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Choices)
}
