package main

import (
	"fmt"
	"log"

	"github.com/xiam/bel/lexer"
)

func main() {
	input := `(lit clo nil (x) (+ x 1)) (\h \i) "Hello Bel world!"`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		col := tok.Col()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, col: %d)\n\t-> %q\n\n", i, tt, col, lexeme)
	}
}
