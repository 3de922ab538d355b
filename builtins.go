package bel

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/nukata/goarith"

	"github.com/xiam/bel/ast"
)

// builtin runs an operator over its arguments. It returns false when the
// arguments don't fit the operator.
type builtin func(e *Evaluator, args []ast.Literal) (ast.Value, bool, error)

var builtins = map[string]builtin{
	"+":     builtinAdd,
	"-":     builtinSub,
	"/":     builtinDiv,
	"prn":   builtinPrn,
	"while": builtinWhile,
}

func parseInteger(l ast.Literal) (*big.Int, error) {
	z, ok := new(big.Int).SetString(l.Text, 10)
	if !ok {
		return nil, newEvalError(KindInvalidInteger, "invalid integer literal %q", l.Text)
	}
	return z, nil
}

func builtinAdd(e *Evaluator, args []ast.Literal) (ast.Value, bool, error) {
	sum := goarith.AsNumber(new(big.Int))
	for _, arg := range args {
		z, err := parseInteger(arg)
		if err != nil {
			return nil, true, err
		}
		sum = sum.Add(goarith.AsNumber(z))
	}
	return ast.NewLiteral(fmt.Sprint(sum)), true, nil
}

func builtinSub(e *Evaluator, args []ast.Literal) (ast.Value, bool, error) {
	if len(args) != 2 {
		return nil, false, nil
	}
	left, err := parseInteger(args[0])
	if err != nil {
		return nil, true, err
	}
	right, err := parseInteger(args[1])
	if err != nil {
		return nil, true, err
	}
	diff := goarith.AsNumber(left).Sub(goarith.AsNumber(right))
	return ast.NewLiteral(fmt.Sprint(diff)), true, nil
}

func builtinDiv(e *Evaluator, args []ast.Literal) (ast.Value, bool, error) {
	if len(args) != 2 {
		return nil, false, nil
	}
	above, err := parseInteger(args[0])
	if err != nil {
		return nil, true, err
	}
	below, err := parseInteger(args[1])
	if err != nil {
		return nil, true, err
	}
	if below.Sign() == 0 {
		return nil, true, newEvalError(KindDivisionByZero, "division by zero")
	}

	quotient, _ := new(big.Rat).SetFrac(above, below).Float64()
	if above.Sign() == 0 && below.Sign() < 0 {
		quotient = math.Copysign(0, -1)
	}
	if math.IsInf(quotient, 0) {
		return nil, true, newEvalError(KindOverflow, "division result too large")
	}
	return ast.NewLiteral(formatReal(quotient)), true, nil
}

func builtinPrn(e *Evaluator, args []ast.Literal) (ast.Value, bool, error) {
	if len(args) == 0 {
		fmt.Fprintln(e.out)
		return nil, true, nil
	}
	for _, arg := range args {
		fmt.Fprintln(e.out, arg.Encode())
	}
	return args[len(args)-1], true, nil
}

// builtinWhile stands in for a loop that never ends: (while t) waits a
// moment and then fails.
func builtinWhile(e *Evaluator, args []ast.Literal) (ast.Value, bool, error) {
	if len(args) != 1 || args[0].Text != "t" {
		return nil, false, nil
	}
	time.Sleep(e.hang)
	return nil, true, newEvalError(KindTimeout, "loop hung for %v", e.hang)
}

// formatReal always renders a fraction or an exponent, so reals never read
// back as integers.
func formatReal(f float64) string {
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
