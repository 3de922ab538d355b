package repl

import (
	"fmt"
	"io"

	"github.com/xiam/bel/ast"
)

// Prompt is shown before every line read.
const Prompt = "plbel>"

// Session evaluates one line at a time.
type Session interface {
	EvalLine(line string) ([]ast.Value, error)
}

// REPL reads lines, evaluates them and prints the values they yield.
type REPL struct {
	s    Session
	in   LineReader
	out  io.Writer
	diag io.Writer
}

// New creates a REPL that prints values to out and the final newline to diag.
func New(s Session, in LineReader, out io.Writer, diag io.Writer) *REPL {
	return &REPL{
		s:    s,
		in:   in,
		out:  out,
		diag: diag,
	}
}

// Run loops until input is over, which is not an error. Evaluation errors
// end the loop and are returned.
func (r *REPL) Run() error {
	for {
		line, err := r.in.ReadLine(Prompt + " ")
		if err == io.EOF {
			fmt.Fprintln(r.diag)
			return nil
		}
		if err != nil {
			return err
		}

		values, err := r.s.EvalLine(line)
		for _, v := range values {
			if v != nil {
				fmt.Fprintln(r.out, ast.Encode(v))
			}
		}
		if err != nil {
			return err
		}
	}
}
