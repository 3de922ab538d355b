package doctest

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xiam/bel"
)

func TestTranscript(t *testing.T) {
	var out bytes.Buffer

	err := Run(bel.New(), &out)
	assert.NoError(t, err)

	echo := out.String()
	assert.Contains(t, echo, "From: The Bel Language, 12 Oct 2019\n")
	assert.Contains(t, echo, "    plbel> (+ (- 5 2) 7)\n    10\n")
	assert.Contains(t, echo, "\nLists\n")
	assert.NotContains(t, echo, "Self Test failed")
}

func TestMismatch(t *testing.T) {
	src := `
		Numbers

			plbel> (+ 1 2)
			3
			plbel> (+ 2 2)
			5
			plbel> (+ 3 3)
			6
	`

	var out bytes.Buffer
	err := New(bel.New(), &out).Run(src)

	var mismatch *MismatchError
	if assert.True(t, errors.As(err, &mismatch)) {
		assert.Equal(t, "(+ 2 2)", mismatch.Input)
		assert.Equal(t, "5\n", mismatch.Want)
		assert.Equal(t, "4\n", mismatch.Got)
	}
	assert.True(t, errors.Is(err, ErrMismatch))

	echo := out.String()
	assert.Contains(t, echo, "Self Test failed at: (+ 2 2)\nWant:\n    5\nGot:\n    4\n")
	assert.NotContains(t, echo, "(+ 3 3)")
}

func TestTracebackReply(t *testing.T) {
	src := `
		plbel> (/ 1 0)
		Traceback (most recent call last):
		  ...
		DivisionByZero: division by zero
	`

	var out bytes.Buffer
	err := New(bel.New(), &out).Run(src)
	assert.NoError(t, err)
}

func TestReplyCount(t *testing.T) {
	testCases := []string{
		"plbel> a b\na\n",
		"plbel> (a\n\n",
	}

	for i := range testCases {
		var out bytes.Buffer
		err := New(bel.New(), &out).Run(testCases[i])
		assert.True(t, errors.Is(err, ErrReplyCount), "transcript: %q", testCases[i])
	}
}

func TestAbsentValue(t *testing.T) {
	src := "plbel> (prn)\n\nplbel> foo\nfoo\n"

	var out bytes.Buffer
	err := New(bel.New(), &out).Run(src)
	assert.NoError(t, err)
}

func TestTraceback(t *testing.T) {
	_, err := bel.Eval([]byte("(+ x 1)"))
	assert.Equal(t,
		"Traceback (most recent call last):\n  ...\nInvalidInteger: invalid integer literal \"x\"\n",
		Traceback(err),
	)

	assert.Equal(t,
		"Traceback (most recent call last):\n  ...\nError: boom\n",
		Traceback(errors.New("boom")),
	)
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "", indent("", "  "))
	assert.Equal(t, "  a\n  b\n", indent("a\nb\n", "  "))
	assert.Equal(t, "  a\n", indent("a", "  "))
	assert.True(t, strings.HasPrefix(indent("x\n", "\t"), "\t"))
}
