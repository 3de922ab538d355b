package doctest

import (
	_ "embed"
	"strings"
	"unicode"

	"github.com/lithammer/dedent"
)

// Prompt marks the lines of a transcript that carry an input.
const Prompt = "plbel>"

// Transcript is the built-in self-test.
//
//go:embed transcript.txt
var Transcript string

// Record is one prompt of a transcript: the text before it, the input typed
// after it and the reply that follows, up to the next prompt.
type Record struct {
	Between string
	Prompt  string
	Input   string
	Reply   string

	// HasInput is false for the text left after the last prompt.
	HasInput bool
}

// Want returns the reply without its common indentation.
func (r Record) Want() string {
	return dedent.Dedent(r.Reply)
}

// Indent returns the whitespace in front of the prompt.
func (r Record) Indent() string {
	return r.Prompt[:len(r.Prompt)-len(strings.TrimLeftFunc(r.Prompt, unicode.IsSpace))]
}

// Parse splits a transcript into records. The last record holds whatever
// text follows the last prompt.
func Parse(src string) []Record {
	records := []Record{}

	lines := []string{}
	if src != "" {
		lines = strings.Split(src, "\n")
	}

	var between strings.Builder
	for len(lines) > 0 {
		line := lines[0]
		lines = lines[1:]

		prompt, input, ok := splitPrompt(line)
		if !ok {
			between.WriteString(line + "\n")
			continue
		}

		var reply strings.Builder
		for len(lines) > 0 && !isPrompt(lines[0]) {
			reply.WriteString(lines[0] + "\n")
			lines = lines[1:]
		}

		records = append(records, Record{
			Between:  between.String(),
			Prompt:   prompt,
			Input:    input,
			Reply:    reply.String(),
			HasInput: true,
		})
		between.Reset()
	}

	records = append(records, Record{Between: between.String()})
	return records
}

func isPrompt(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), Prompt)
}

// splitPrompt cuts a prompt line after the marker and the blanks that follow
// it.
func splitPrompt(line string) (string, string, bool) {
	if !isPrompt(line) {
		return "", line, false
	}

	at := strings.Index(line, Prompt) + len(Prompt)
	beyond := line[at:]
	at += len(beyond) - len(strings.TrimLeftFunc(beyond, unicode.IsSpace))

	return line[:at], line[at:], true
}
