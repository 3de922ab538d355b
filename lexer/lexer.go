package lexer

import (
	"strings"
	"unicode"
)

type lexState func(*Lexer) lexState

// Lexer splits input lines into tokens. Whatever is left of a line after a
// call to Next is kept for the following call.
type Lexer struct {
	line string
	rem  string

	tok     *Token
	lastErr error
}

// New initializes a Lexer object
func New() *Lexer {
	return &Lexer{}
}

// Feed replaces the remainder with a new line of input.
func (lx *Lexer) Feed(line string) {
	lx.line, lx.rem = line, line
}

// Remainder returns the part of the current line that was not consumed yet.
func (lx *Lexer) Remainder() string {
	return lx.rem
}

// Drop abandons the rest of the current line.
func (lx *Lexer) Drop() {
	lx.rem = ""
}

// Next returns the next token of the current line. A token of type TokenEOL
// means the line is exhausted and a new one must be fed. A *SyntaxError means
// the rest of the line was dropped.
func (lx *Lexer) Next() (*Token, error) {
	lx.tok, lx.lastErr = nil, nil

	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr != nil {
		return nil, lx.lastErr
	}
	return lx.tok, nil
}

// pending returns the remainder without surrounding whitespace.
func (lx *Lexer) pending() string {
	return strings.TrimSpace(lx.rem)
}

func (lx *Lexer) col() int {
	return len(lx.line) - len(strings.TrimLeftFunc(lx.rem, unicode.IsSpace)) + 1
}

func (lx *Lexer) emit(tt TokenType, word string) {
	lx.tok = NewToken(tt, word, lx.col())
	lx.rem = strings.TrimLeftFunc(lx.rem, unicode.IsSpace)[len(word):]
}

func lexDefaultState(lx *Lexer) lexState {
	chars := lx.pending()

	switch {
	case chars == "":
		return lexEOL

	case strings.HasPrefix(chars, markOpen):
		return lexEmit(TokenOpenList, markOpen)
	case strings.HasPrefix(chars, markClose):
		return lexEmit(TokenCloseList, markClose)

	case strings.HasPrefix(chars, quote):
		return lexQuoted

	case strings.HasPrefix(chars, blankEscape):
		return lexEmit(TokenBlank, blankEscape)
	}

	return lexWord
}

func lexEOL(lx *Lexer) lexState {
	lx.tok = NewToken(TokenEOL, "", len(lx.line)+1)
	lx.rem = ""
	return nil
}

// lexQuoted takes everything up to the next double quote. An unterminated
// quote is handed over to lexWord, which rejects it.
func lexQuoted(lx *Lexer) lexState {
	chars := lx.pending()

	end := strings.Index(chars[len(quote):], quote)
	if end < 0 {
		return lexWord
	}

	return lexEmit(TokenString, chars[:len(quote)+end+len(quote)])
}

func lexWord(lx *Lexer) lexState {
	chars := lx.pending()

	word := chars
	if end := strings.IndexFunc(chars, unicode.IsSpace); end >= 0 {
		word = chars[:end]
	}
	word = trimMarks(word)

	switch {
	case IsLiteral(word):
		if isEscape(word) {
			return lexEmit(TokenChar, word)
		}
		return lexEmit(TokenLiteral, word)

	case isEscape(word):
		return lexEmit(TokenChar, word)
	}

	return lexStateError(&SyntaxError{Col: lx.col(), Remainder: chars})
}

func lexEmit(tt TokenType, word string) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt, word)
		return nil
	}
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		lx.rem = ""
		return nil
	}
}

// Tokenize takes a line and returns all the tokens within it, including the
// final TokenEOL, or an error if a token can't be identified.
func Tokenize(line string) ([]*Token, error) {
	tokens := []*Token{}

	lx := New()
	lx.Feed(line)

	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Is(TokenEOL) {
			return tokens, nil
		}
	}
}
