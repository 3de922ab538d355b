package bel

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/xiam/bel/ast"
	"github.com/xiam/bel/lexer"
	"github.com/xiam/bel/parser"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput sets where printed values and diagnostics go.
func WithOutput(w io.Writer) Option {
	return func(it *Interpreter) {
		it.SetOutput(w)
	}
}

// WithLogger enables tracing of tokens, values and parser state.
func WithLogger(l *log.Logger) Option {
	return func(it *Interpreter) {
		it.log, it.trace = l, l != nil
	}
}

// WithHang sets how long (while t) waits before failing.
func WithHang(d time.Duration) Option {
	return func(it *Interpreter) {
		it.ev.hang = d
	}
}

// Interpreter is a single session: one lexer, one parser and one evaluator
// sharing state from line to line.
type Interpreter struct {
	lx *lexer.Lexer
	p  *parser.Parser
	ev *Evaluator

	out   io.Writer
	log   *log.Logger
	trace bool
}

// New creates an interpreter that writes to os.Stdout.
func New(opts ...Option) *Interpreter {
	it := &Interpreter{
		lx:  lexer.New(),
		ev:  NewEvaluator(),
		out: os.Stdout,
	}
	it.p = parser.New(it.ev)

	for _, opt := range opts {
		opt(it)
	}
	if it.log == nil {
		it.log = log.New(io.Discard, "", 0)
	}

	return it
}

// SetOutput replaces the output writer and returns the previous one.
func (it *Interpreter) SetOutput(w io.Writer) io.Writer {
	prev := it.out
	it.out, it.ev.out = w, w
	return prev
}

// EvalLine reads one line of input and returns the values it yields, in
// order. A nil value stands for an expression that produced nothing.
// Malformed input and unmatched parentheses are reported on the output and
// don't stop the session; evaluation errors are returned.
func (it *Interpreter) EvalLine(line string) ([]ast.Value, error) {
	it.lx.Feed(line)
	if it.trace {
		defer func() {
			it.log.Printf("state: %s", it.Dump())
		}()
	}

	values := []ast.Value{}
	for {
		tok, err := it.lx.Next()
		if err != nil {
			var syntaxErr *lexer.SyntaxError
			if errors.As(err, &syntaxErr) {
				fmt.Fprintf(it.out, "ERROR: Bel choked at:  %s\n", syntaxErr.Remainder)
				it.Reset()
				return values, nil
			}
			return values, err
		}

		it.log.Printf("tok: %v", tok)
		if tok.Is(lexer.TokenEOL) {
			return values, nil
		}

		v, ok, err := it.p.Push(tok)
		if err != nil {
			if errors.Is(err, parser.ErrUnmatchedClose) {
				fmt.Fprintln(it.out, "ERROR: Insert more '(' ahead of this ')'")
				continue
			}
			it.lx.Drop()
			return values, err
		}

		if ok {
			it.log.Printf("value: %s", ast.Encode(v))
			values = append(values, v)
		}
	}
}

// Reset abandons any open list and empties the evaluation context.
func (it *Interpreter) Reset() {
	it.p.Reset()
	it.ev.Reset()
}

// Depth returns the number of lists still open.
func (it *Interpreter) Depth() int {
	return it.p.Depth()
}

// Dump describes the open lists and the evaluation context.
func (it *Interpreter) Dump() string {
	return dumper.Sdump(struct {
		Pending     []*ast.List
		EvalContext []bool
	}{
		Pending:     it.p.Pending(),
		EvalContext: it.ev.Context(),
	})
}
