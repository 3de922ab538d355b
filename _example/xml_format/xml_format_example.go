package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/bel/ast"
	"github.com/xiam/bel/parser"
)

func printTree(v ast.Value) {
	printIndentedTree(v, 0)
}

func printIndentedTree(v ast.Value, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if list, ok := v.(*ast.List); ok {
		fmt.Printf("%s<%s>\n", indent, v.Type())
		for i := range list.Items {
			printIndentedTree(list.Items[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, v.Type())
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, v.Type(), v.Encode(), v.Type())
}

func main() {
	input := `(lit clo nil (x) (+ x 1) "Hello Bel world!" \bel)`

	values, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, v := range values {
		printTree(v)
	}
}
