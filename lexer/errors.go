package lexer

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned when the rest of a line can't be tokenized.
var ErrMalformed = errors.New("malformed input")

// SyntaxError describes where a line stopped making sense.
type SyntaxError struct {
	Col       int
	Remainder string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at column %d: %s", ErrMalformed, e.Col, e.Remainder)
}

func (e *SyntaxError) Unwrap() error {
	return ErrMalformed
}
