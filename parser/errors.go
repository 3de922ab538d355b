package parser

import (
	"errors"
)

var (
	ErrUnmatchedClose  = errors.New("unmatched close")
	ErrUnexpectedToken = errors.New("unexpected token")
)
