package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable tree of a value, one node per line.
func Print(w io.Writer, v Value) {
	printLevel(w, v, 0)
}

// Dump returns the same tree Print writes.
func Dump(v Value) string {
	var b strings.Builder
	Print(&b, v)
	return b.String()
}

func printLevel(w io.Writer, v Value, level int) {
	indent := strings.Repeat("    ", level)
	if v == nil {
		fmt.Fprintf(w, "%s:absent\n", indent)
		return
	}

	fmt.Fprintf(w, "%s(%s): ", indent, v.Type())
	switch v := v.(type) {

	case *List:
		fmt.Fprintf(w, "[%d]\n", v.Len())
		for i := range v.Items {
			printLevel(w, v.Items[i], level+1)
		}

	case Literal, Char, String:
		fmt.Fprintf(w, "%s\n", v.Encode())

	default:
		panic("unknown value type")
	}
}

// Encode transforms a value into its textual representation. An absent value
// encodes as the empty string.
func Encode(v Value) string {
	if v == nil {
		return ""
	}
	return v.Encode()
}
