package main

import (
	"log"
	"os"

	"github.com/xiam/bel/ast"
	"github.com/xiam/bel/parser"
)

func main() {
	input := `(foo . (bar . baz)) (a (b) c) (\h \e \l \l \o)`

	values, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, v := range values {
		ast.Print(os.Stdout, v)
	}
}
