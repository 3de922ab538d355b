package bel

import (
	"io"
	"os"
	"time"

	"github.com/xiam/bel/ast"
	"github.com/xiam/bel/parser"
)

// DefaultHang is how long (while t) waits before giving up.
const DefaultHang = 10 * time.Millisecond

// Evaluator runs the built-in operators over closed top-level lists.
type Evaluator struct {
	out  io.Writer
	hang time.Duration

	ctx evalContext
}

// NewEvaluator creates an evaluator that prints to os.Stdout.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		out:  os.Stdout,
		hang: DefaultHang,
	}
}

// Eval returns the value of a top-level list. Lists that don't match any
// operator are returned as they are.
func (e *Evaluator) Eval(list *ast.List) (ast.Value, error) {
	return e.evalList(list, true)
}

// Reset empties the evaluation context.
func (e *Evaluator) Reset() {
	e.ctx.reset()
}

// Context returns one flag per operator invocation seen since the last reset.
func (e *Evaluator) Context() []bool {
	return e.ctx.snapshot()
}

func (e *Evaluator) evalList(list *ast.List, top bool) (ast.Value, error) {
	head, _ := list.Head().(ast.Literal)
	fn, recognized := builtins[head.Text]

	items := list.Items
	if recognized && e.ctx.enter() {
		var err error
		if items, err = e.evalItems(list.Items); err != nil {
			return nil, err
		}
	}

	if args, ok := literals(items); ok && recognized {
		v, matched, err := fn(e, args[1:])
		if err != nil {
			return nil, err
		}
		if matched {
			return v, nil
		}
	}

	if top {
		return list, nil
	}
	return nil, newEvalError(KindUndefined, "cannot evaluate %s", list.Encode())
}

func (e *Evaluator) evalItems(items []ast.Value) ([]ast.Value, error) {
	out := make([]ast.Value, 0, len(items))
	for _, item := range items {
		switch item := item.(type) {
		case *ast.List:
			v, err := e.evalList(item, false)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		case ast.Literal, ast.Char, ast.String:
			out = append(out, item)
		default:
			panic("unknown value type")
		}
	}
	return out, nil
}

// literals returns the items as literals if every one of them is a literal.
func literals(items []ast.Value) ([]ast.Literal, bool) {
	out := make([]ast.Literal, 0, len(items))
	for _, item := range items {
		l, ok := item.(ast.Literal)
		if !ok {
			return nil, false
		}
		out = append(out, l)
	}
	return out, true
}

var _ = parser.Evaluator(&Evaluator{})
