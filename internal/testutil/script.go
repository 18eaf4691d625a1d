package testutil

import (
	"io"
	"strings"
)

// Script joins lines into console input, one line per entry.
func Script(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// Answers is a scripted prompter. Each Prompt call writes the label to Out
// (when set) and returns the next answer, or io.EOF once they run out.
type Answers struct {
	Out     io.Writer
	Lines   []string
	Prompts []string // labels seen, in order
}

// NewAnswers creates a prompter that replies with lines in order.
func NewAnswers(lines ...string) *Answers {
	return &Answers{Lines: lines}
}

// Prompt implements commands.Prompter.
func (a *Answers) Prompt(label string) (string, error) {
	a.Prompts = append(a.Prompts, label)
	if a.Out != nil {
		io.WriteString(a.Out, label)
	}
	if len(a.Lines) == 0 {
		return "", io.EOF
	}
	line := a.Lines[0]
	a.Lines = a.Lines[1:]
	return line, nil
}
