package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/xiam/bel"
	"github.com/xiam/bel/doctest"
	"github.com/xiam/bel/repl"
)

const historyFile = ".plbel_history"

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func main() {
	var (
		testSelf bool
		trace    bool
		history  string
	)

	flag.BoolVar(&testSelf, "t", false, "run the plbel self-test")
	flag.BoolVar(&testSelf, "test-self", false, "run the plbel self-test")
	flag.BoolVar(&trace, "trace", false, "log tokens, values and parser state to stderr")
	flag.StringVar(&history, "history", defaultHistory(), "line editing history file, empty disables history")
	flag.Parse()

	opts := []bel.Option{}
	if trace {
		opts = append(opts, bel.WithLogger(log.New(os.Stderr, "trace: ", log.Lmicroseconds)))
	}
	it := bel.New(opts...)

	if testSelf {
		if err := doctest.Run(it, os.Stdout); err != nil {
			if errors.Is(err, doctest.ErrMismatch) {
				os.Exit(-1)
			}
			log.Fatalf("self test: %v", err)
		}
		fmt.Println()
		fmt.Fprintln(os.Stderr, "Test Self Passed Once")
		return
	}

	var in repl.LineReader
	if repl.IsTerminal() {
		in = repl.NewLinerReader(history)
	} else {
		in = repl.NewStreamReader(os.Stdin, os.Stderr)
	}

	err := repl.New(it, in, os.Stdout, os.Stderr).Run()
	in.Close()
	if err != nil {
		log.Fatal(err)
	}
}
