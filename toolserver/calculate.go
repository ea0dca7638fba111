package toolserver

import (
	"context"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/saimohit20/gemini-mcp-tools/mathexpr"
)

// CalculateInput is the input for the calculate tool.
type CalculateInput struct {
	Expression string `json:"expression" jsonschema:"title=Expression,description=The math expression to evaluate,required"`
}

// Calculate evaluates a math expression in a restricted environment.
// Only arithmetic and a whitelisted set of math functions are allowed.
func Calculate(_ context.Context, input CalculateInput) (string, error) {
	result, err := mathexpr.Eval(input.Expression)
	if err != nil {
		return "", errors.WithMessage(err, "error evaluating expression")
	}
	return formatNumber(result), nil
}

// formatNumber renders integral results without a decimal point, so that
// "123 * 45 + 9" yields "5544" rather than "5544.000000".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
