package mathexpr_test

import (
	"testing"

	"github.com/saimohit20/gemini-mcp-tools/mathexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	tcases := []struct {
		expression string
		expected   float64
	}{
		{"123 * 45 + 9", 5544},
		{"2 + 2", 4},
		{"(1 + 2) * 3", 9},
		{"10 / 4", 2.5},
		{"sqrt(16)", 4},
		{"sqrt(pow(3, 2) + pow(4, 2))", 5},
		{"abs(-7.5)", 7.5},
		{"min(3, max(1, 2))", 2},
		{"floor(2.9) + ceil(2.1)", 5},
		{"round(2.5)", 3},
		{"pi > 3.14 ? 1.0 : 0.0", 1},
	}
	for _, tc := range tcases {
		t.Run(tc.expression, func(t *testing.T) {
			got, err := mathexpr.Eval(tc.expression)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tcases := []string{
		"",
		"2 +",
		"unknown(1)",
		"os.Getenv('HOME')",
		"'not' + 'numeric'",
		"1 / 0 + log(0) * 0", // NaN
	}
	for _, expression := range tcases {
		t.Run(expression, func(t *testing.T) {
			_, err := mathexpr.Eval(expression)
			assert.Error(t, err)
		})
	}
}
