package doctest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lithammer/dedent"

	"github.com/xiam/bel"
	"github.com/xiam/bel/ast"
)

var (
	ErrMismatch   = errors.New("self test failed")
	ErrReplyCount = errors.New("expected exactly one value")
)

// MismatchError holds the first reply that differed from the transcript.
type MismatchError struct {
	Input string
	Want  string
	Got   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v at: %s", ErrMismatch, e.Input)
}

func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// Session evaluates input lines and lets its output be captured.
type Session interface {
	EvalLine(line string) ([]ast.Value, error)
	SetOutput(w io.Writer) io.Writer
}

// Harness replays a transcript against a session and compares every reply.
type Harness struct {
	s   Session
	out io.Writer
}

// New creates a harness that echoes the transcript to out as it runs.
func New(s Session, out io.Writer) *Harness {
	return &Harness{s: s, out: out}
}

// Run replays the built-in transcript.
func Run(s Session, out io.Writer) error {
	return New(s, out).Run(Transcript)
}

// Run replays src and stops at the first reply that doesn't match.
func (h *Harness) Run(src string) error {
	records := Parse(strings.TrimSpace(dedent.Dedent(src)))

	for _, rec := range records {
		io.WriteString(h.out, rec.Between+rec.Prompt)
		if !rec.HasInput {
			continue
		}
		fmt.Fprintln(h.out, rec.Input)

		if rec.Input == "" {
			io.WriteString(h.out, rec.Reply)
			continue
		}

		got, err := h.reply(rec.Input)
		if err != nil {
			return err
		}
		io.WriteString(h.out, indent(got, rec.Indent()))

		if want := rec.Want(); got != want {
			h.report(rec.Input, want, got)
			return &MismatchError{Input: rec.Input, Want: want, Got: got}
		}
	}

	return nil
}

// reply evaluates a single input and formats what it printed and yielded
// the way a transcript shows it.
func (h *Harness) reply(input string) (string, error) {
	var buf bytes.Buffer

	prev := h.s.SetOutput(&buf)
	values, err := h.s.EvalLine(input)
	h.s.SetOutput(prev)

	if err != nil {
		return Traceback(err), nil
	}

	if len(values) != 1 {
		return "", fmt.Errorf("%w: %q yielded %d values", ErrReplyCount, input, len(values))
	}
	if values[0] == nil {
		return buf.String(), nil
	}
	return buf.String() + ast.Encode(values[0]) + "\n", nil
}

func (h *Harness) report(input, want, got string) {
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, "Self Test failed at:", input)

	fmt.Fprintln(h.out, "Want:")
	io.WriteString(h.out, indent(want, "    "))

	fmt.Fprintln(h.out, "Got:")
	io.WriteString(h.out, indent(got, "    "))
}

// Traceback formats an evaluation error as a three line reply.
func Traceback(err error) string {
	kind, msg := "Error", err.Error()

	var evalErr *bel.EvalError
	if errors.As(err, &evalErr) {
		kind, msg = string(evalErr.Kind), evalErr.Message
	}

	return fmt.Sprintf("Traceback (most recent call last):\n  ...\n%s: %s\n", kind, msg)
}

func indent(text, prefix string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n") + "\n"
}
