package bel

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/xiam/bel/ast"
)

// Reader evaluates source text line by line with a single interpreter.
type Reader struct {
	r  io.Reader
	it *Interpreter
}

// Eval evaluates every line of in and returns the values they yield.
func Eval(in []byte, opts ...Option) ([]ast.Value, error) {
	r := NewReader(bytes.NewReader(in), opts...)
	return r.Eval()
}

func NewReader(r io.Reader, opts ...Option) *Reader {
	return &Reader{r: r, it: New(opts...)}
}

// Eval stops at the first evaluation error and returns the values yielded
// before it. Lines may be of any length.
func (r *Reader) Eval() ([]ast.Value, error) {
	values := []ast.Value{}

	br := bufio.NewReader(r.r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return values, err
		}
		if line == "" && err == io.EOF {
			return values, nil
		}

		vs, evalErr := r.it.EvalLine(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		values = append(values, vs...)
		if evalErr != nil {
			return values, evalErr
		}
		if err == io.EOF {
			return values, nil
		}
	}
}
