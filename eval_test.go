package bel

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xiam/bel/ast"
	"github.com/xiam/bel/parser"
)

func parseList(t *testing.T, in string) *ast.List {
	values, err := parser.Parse(in)
	assert.NoError(t, err)
	if !assert.Len(t, values, 1) {
		t.FailNow()
	}
	list, ok := values[0].(*ast.List)
	if !assert.True(t, ok) {
		t.FailNow()
	}
	return list
}

func newTestEvaluator() (*Evaluator, *bytes.Buffer) {
	var buf bytes.Buffer
	e := NewEvaluator()
	e.out = &buf
	e.hang = time.Millisecond
	return e, &buf
}

func TestEvalArithmetic(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`(+ 1 2)`, `3`},
		{`(+ 8 5)`, `13`},
		{`(+ 3 7)`, `10`},
		{`(+ 1 2 3 4 5 6 7 8 9)`, `45`},
		{`(+)`, `0`},
		{`(- 5 2)`, `3`},
		{`(- 2 5)`, `-3`},
		{`(/ 4 2)`, `2.0`},
		{`(/ 1 2)`, `0.5`},
		{`(/ 1 3)`, `0.3333333333333333`},
		{`(/ 7 2)`, `3.5`},
	}

	for i := range testCases {
		e, _ := newTestEvaluator()
		v, err := e.Eval(parseList(t, testCases[i].In))
		assert.NoError(t, err)
		assert.Equal(t, testCases[i].Out, ast.Encode(v), "input: %s", testCases[i].In)
	}
}

func TestEvalPassThrough(t *testing.T) {
	testCases := []string{
		`(if test then else)`,
		`(a b c)`,
		`(foo . bar)`,
		`(lit clo nil (x) (+ x 1))`,
		`(fn (x) (+ x 1))`,
		`(- 1 2 3)`,
		`(/ 1)`,
		`(while x)`,
		`(while t t)`,
		`((a b c))`,
		`(+ (- 5 2) 7)`,
	}

	for i := range testCases {
		e, _ := newTestEvaluator()
		list := parseList(t, testCases[i])
		v, err := e.Eval(list)
		assert.NoError(t, err)
		assert.Equal(t, testCases[i], ast.Encode(v))
	}
}

func TestEvalErrors(t *testing.T) {
	testCases := []struct {
		In   string
		Err  error
		Kind ErrorKind
		Text string
	}{
		{`(/ 1 0)`, ErrDivisionByZero, KindDivisionByZero, `DivisionByZero: division by zero`},
		{`(+ x 1)`, ErrInvalidInteger, KindInvalidInteger, `InvalidInteger: invalid integer literal "x"`},
		{`(- 5 a)`, ErrInvalidInteger, KindInvalidInteger, `InvalidInteger: invalid integer literal "a"`},
		{`(/ foo 2)`, ErrInvalidInteger, KindInvalidInteger, `InvalidInteger: invalid integer literal "foo"`},
		{`(while t)`, ErrTimeout, KindTimeout, `TimeoutExpired: loop hung for 1ms`},
	}

	for i := range testCases {
		e, _ := newTestEvaluator()
		v, err := e.Eval(parseList(t, testCases[i].In))
		assert.Nil(t, v)
		assert.True(t, errors.Is(err, testCases[i].Err), "input: %s", testCases[i].In)
		assert.EqualError(t, err, testCases[i].Text)

		var evalErr *EvalError
		if assert.True(t, errors.As(err, &evalErr)) {
			assert.Equal(t, testCases[i].Kind, evalErr.Kind)
		}
	}
}

func TestEvalWhileNeverHangs(t *testing.T) {
	e, _ := newTestEvaluator()
	e.hang = 5 * time.Millisecond

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := e.Eval(parseList(t, `(while t)`))
		assert.True(t, errors.Is(err, ErrTimeout))
	}
	assert.True(t, time.Since(start) < time.Second)
}

func TestEvalPrn(t *testing.T) {
	{
		e, buf := newTestEvaluator()
		v, err := e.Eval(parseList(t, `(prn 1)`))
		assert.NoError(t, err)
		assert.Equal(t, `1`, ast.Encode(v))
		assert.Equal(t, "1\n", buf.String())
	}

	{
		e, buf := newTestEvaluator()
		v, err := e.Eval(parseList(t, `(prn a b c)`))
		assert.NoError(t, err)
		assert.Equal(t, `c`, ast.Encode(v))
		assert.Equal(t, "a\nb\nc\n", buf.String())
	}

	{
		e, buf := newTestEvaluator()
		v, err := e.Eval(parseList(t, `(prn)`))
		assert.NoError(t, err)
		assert.Nil(t, v)
		assert.Equal(t, "\n", buf.String())
	}
}

func TestEvalNested(t *testing.T) {
	e, _ := newTestEvaluator()

	// The first two operator calls never evaluate nested lists.
	v, err := e.Eval(parseList(t, `(+ (- 5 2) 7)`))
	assert.NoError(t, err)
	assert.Equal(t, `(+ (- 5 2) 7)`, ast.Encode(v))

	v, err = e.Eval(parseList(t, `(+ 1 2)`))
	assert.NoError(t, err)
	assert.Equal(t, `3`, ast.Encode(v))

	v, err = e.Eval(parseList(t, `(+ (- 5 2) 7)`))
	assert.NoError(t, err)
	assert.Equal(t, `10`, ast.Encode(v))

	v, err = e.Eval(parseList(t, `(+ (- 5 2) (/ 4 2))`))
	assert.Nil(t, v)
	assert.True(t, errors.Is(err, ErrInvalidInteger))

	v, err = e.Eval(parseList(t, `(- (+ 1 (+ 2 3)) (- 9 8))`))
	assert.NoError(t, err)
	assert.Equal(t, `5`, ast.Encode(v))

	assert.Equal(t, []bool{false, false, true, true, true, true, true, true, true, true, true}, e.Context())
}

func TestEvalNegativeZero(t *testing.T) {
	e, _ := newTestEvaluator()

	for i := 0; i < 2; i++ {
		_, err := e.Eval(parseList(t, `(+ 1 2)`))
		assert.NoError(t, err)
	}

	v, err := e.Eval(parseList(t, `(/ 0 (- 2 5))`))
	assert.NoError(t, err)
	assert.Equal(t, `-0.0`, ast.Encode(v))

	v, err = e.Eval(parseList(t, `(/ 0 (- 5 2))`))
	assert.NoError(t, err)
	assert.Equal(t, `0.0`, ast.Encode(v))
}

func TestEvalNestedUndefined(t *testing.T) {
	e, _ := newTestEvaluator()
	e.ctx.enter()
	e.ctx.enter()

	testCases := []string{
		`(+ (a b) 1)`,
		`(+ (- 1 2 3) 1)`,
		`(- (while x) 1)`,
		`(+ (1 2) 1)`,
	}

	for i := range testCases {
		v, err := e.Eval(parseList(t, testCases[i]))
		assert.Nil(t, v)
		assert.True(t, errors.Is(err, ErrUndefined), "input: %s", testCases[i])
	}
}

func TestEvalNestedPassThrough(t *testing.T) {
	e, buf := newTestEvaluator()
	e.ctx.enter()
	e.ctx.enter()

	// Nested results that are not literals leave the outer list untouched.
	testCases := []struct {
		In  string
		Out string
	}{
		{`(prn (prn))`, `(prn (prn))`},
		{`(+ (\h \i) 1)`, `(+ "hi" 1)`},
	}

	for i := range testCases {
		v, err := e.Eval(parseList(t, testCases[i].In))
		assert.NoError(t, err)
		assert.Equal(t, testCases[i].Out, ast.Encode(v))
	}
	assert.Equal(t, "\n", buf.String())
}

func TestEvalContextIgnoresOtherHeads(t *testing.T) {
	e, _ := newTestEvaluator()

	for _, in := range []string{`(a b)`, `(if test then else)`, `((+ 1 2))`} {
		_, err := e.Eval(parseList(t, in))
		assert.NoError(t, err)
	}
	assert.Empty(t, e.Context())

	e.Reset()
	assert.Empty(t, e.Context())
}

func TestFormatReal(t *testing.T) {
	testCases := []struct {
		In  float64
		Out string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{2, "2.0"},
		{-2.5, "-2.5"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1e16, "1e+16"},
		{123456789, "123456789.0"},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, formatReal(testCases[i].In))
	}
}
