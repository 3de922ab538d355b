package lexer

import (
	"strings"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenOpenList            // Open parenthesis: "("
	TokenCloseList           // Close parenthesis: ")"
	TokenString              // Quoted span: "..."
	TokenBlank               // Escaped blank: "\ "
	TokenChar                // Char escape: "\a", "\bel"
	TokenLiteral             // Word from the vocabulary
	TokenEOL                 // Line exhausted
)

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenString:    "string",
	TokenBlank:     "blank",
	TokenChar:      "char",
	TokenLiteral:   "literal",
	TokenEOL:       "EOL",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

const (
	markOpen    = "("
	markClose   = ")"
	quote       = `"`
	backslash   = `\`
	blankEscape = `\ `
)

// Vocabulary lists every word the reader accepts as a literal. Words outside
// of it are only accepted when they are char escapes.
var Vocabulary = []string{
	"+", ".", "-", "/",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	`\bel`, `\bs`, `\tab`, `\lf`, `\cr`,
	"a", "b", "bar", "baz", "c", "clo", "fn", "foo", "lit", "prn", "nil", "t", "while", "x",
	"if", "then", "test", "else",
}

var vocabulary = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Vocabulary))
	for _, w := range Vocabulary {
		m[w] = struct{}{}
	}
	return m
}()

// IsLiteral returns true if the word belongs to the vocabulary.
func IsLiteral(word string) bool {
	_, ok := vocabulary[word]
	return ok
}

func isMark(s string) bool {
	return s == markOpen || s == markClose
}

// trimMarks strips trailing parentheses, one at a time.
func trimMarks(word string) string {
	for word != "" && isMark(word[len(word)-1:]) {
		word = word[:len(word)-1]
	}
	return word
}

func isEscape(word string) bool {
	return strings.HasPrefix(word, backslash)
}
