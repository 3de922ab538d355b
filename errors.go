package bel

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInteger = errors.New("invalid integer")
	ErrDivisionByZero = errors.New("division by zero")
	ErrTimeout        = errors.New("timeout expired")
	ErrUndefined      = errors.New("undefined value")
	ErrOverflow       = errors.New("overflow")
)

// ErrorKind names a class of evaluation failure.
type ErrorKind string

// Error kinds
const (
	KindInvalidInteger ErrorKind = "InvalidInteger"
	KindDivisionByZero ErrorKind = "DivisionByZero"
	KindTimeout        ErrorKind = "TimeoutExpired"
	KindUndefined      ErrorKind = "Undefined"
	KindOverflow       ErrorKind = "Overflow"
)

var kindErrors = map[ErrorKind]error{
	KindInvalidInteger: ErrInvalidInteger,
	KindDivisionByZero: ErrDivisionByZero,
	KindTimeout:        ErrTimeout,
	KindUndefined:      ErrUndefined,
	KindOverflow:       ErrOverflow,
}

// EvalError is returned when a built-in operator fails.
type EvalError struct {
	Kind    ErrorKind
	Message string
}

func newEvalError(kind ErrorKind, format string, args ...interface{}) *EvalError {
	return &EvalError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *EvalError) Unwrap() error {
	return kindErrors[e.Kind]
}
