// Package mathexpr evaluates arithmetic expressions against a fixed
// whitelist of math functions and constants. Expressions are compiled and
// run in a closed environment with no access to anything else, so
// user-supplied input can never execute arbitrary code.
package mathexpr

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/expr-lang/expr"
)

// env is the complete set of identifiers available to expressions.
func env() map[string]any {
	return map[string]any{
		"pi":    math.Pi,
		"e":     math.E,
		"sqrt":  math.Sqrt,
		"abs":   math.Abs,
		"floor": math.Floor,
		"ceil":  math.Ceil,
		"round": math.Round,
		"log":   math.Log,
		"log2":  math.Log2,
		"log10": math.Log10,
		"exp":   math.Exp,
		"pow":   math.Pow,
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"min":   math.Min,
		"max":   math.Max,
	}
}

// Eval evaluates a numeric expression such as "123 * 45 + 9" or
// "sqrt(pow(3,2) + pow(4,2))" and returns the result. Compile errors,
// runtime errors, unknown identifiers, and non-numeric results are all
// reported as errors.
func Eval(expression string) (float64, error) {
	environment := env()

	program, err := expr.Compile(expression, expr.Env(environment))
	if err != nil {
		return 0, errors.WithMessage(err, "invalid expression")
	}

	out, err := expr.Run(program, environment)
	if err != nil {
		return 0, errors.WithMessage(err, "failed to evaluate expression")
	}

	switch v := out.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, errors.Newf("expression has no finite result")
		}
		return v, nil
	default:
		return 0, errors.Newf("expression result is %T, not a number", out)
	}
}
