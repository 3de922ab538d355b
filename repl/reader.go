package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/xiam/bel/lexer"
)

// LineReader shows a prompt and reads one line of input. It returns io.EOF
// once input is over.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

type streamReader struct {
	in     *bufio.Reader
	prompt io.Writer
}

// NewStreamReader reads lines from in and writes prompts to prompt.
func NewStreamReader(in io.Reader, prompt io.Writer) LineReader {
	return &streamReader{
		in:     bufio.NewReader(in),
		prompt: prompt,
	}
}

func (r *streamReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.prompt, prompt)

	line, err := r.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

func (r *streamReader) Close() error {
	return nil
}

type linerReader struct {
	st      *liner.State
	history string
}

// NewLinerReader reads lines from the terminal with line editing. History is
// loaded from and saved to the given file, unless it is empty. liner draws
// the prompt on the terminal itself, so it is not written to stderr.
func NewLinerReader(history string) LineReader {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	st.SetCompleter(Complete)

	if history != "" {
		if f, err := os.Open(history); err == nil {
			_, _ = st.ReadHistory(f)
			_ = f.Close()
		}
	}

	return &linerReader{st: st, history: history}
}

func (r *linerReader) ReadLine(prompt string) (string, error) {
	line, err := r.st.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(line) != "" {
		r.st.AppendHistory(line)
	}
	return line, nil
}

func (r *linerReader) Close() error {
	if r.history != "" {
		if f, err := os.Create(r.history); err == nil {
			_, _ = r.st.WriteHistory(f)
			_ = f.Close()
		}
	}
	return r.st.Close()
}

// IsTerminal returns true when standard input is attached to a terminal that
// supports line editing.
func IsTerminal() bool {
	mode, err := liner.TerminalMode()
	return err == nil && mode != nil
}

// Complete offers every vocabulary word that starts like the last word of
// the line.
func Complete(line string) []string {
	at := strings.LastIndexAny(line, " \t(") + 1
	head, word := line[:at], line[at:]

	completions := []string{}
	if word == "" {
		return completions
	}
	for _, w := range lexer.Vocabulary {
		if strings.HasPrefix(w, word) && w != word {
			completions = append(completions, head+w)
		}
	}
	return completions
}
