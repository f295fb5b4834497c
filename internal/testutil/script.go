package testutil

import (
	"io"

	"github.com/specialistvlad/corequiz/internal/console"
)

// AbortLine, placed in a script, makes the read that consumes it fail with
// console.ErrAborted, as Ctrl-C would on a terminal.
const AbortLine = "\x03"

// Prompt records one read request made against a ScriptedConsole.
type Prompt struct {
	Text    string
	Default string // only set by ReadLineWithDefault
}

// ScriptedConsole is a console.LineReader that replays a fixed list of lines
// and records every prompt it was asked to show. Once the lines run out every
// read returns io.EOF. Empty lines at a defaulted prompt select the default,
// matching console.StreamReader.
type ScriptedConsole struct {
	lines   []string
	Prompts []Prompt
	Closed  bool
}

// NewScriptedConsole creates a console that will answer with lines in order.
func NewScriptedConsole(lines ...string) *ScriptedConsole {
	return &ScriptedConsole{lines: lines}
}

// ReadLine implements console.LineReader.
func (c *ScriptedConsole) ReadLine(prompt string) (string, error) {
	c.Prompts = append(c.Prompts, Prompt{Text: prompt})
	return c.next()
}

// ReadLineWithDefault implements console.LineReader.
func (c *ScriptedConsole) ReadLineWithDefault(prompt, def string) (string, error) {
	c.Prompts = append(c.Prompts, Prompt{Text: prompt, Default: def})
	line, err := c.next()
	if err == nil && line == "" {
		return def, nil
	}
	return line, err
}

// Close implements console.LineReader.
func (c *ScriptedConsole) Close() error {
	c.Closed = true
	return nil
}

// Remaining returns the lines that were never read.
func (c *ScriptedConsole) Remaining() []string {
	return c.lines
}

// PromptTexts returns the text of every prompt shown, in order.
func (c *ScriptedConsole) PromptTexts() []string {
	texts := make([]string, len(c.Prompts))
	for i, p := range c.Prompts {
		texts[i] = p.Text
	}
	return texts
}

func (c *ScriptedConsole) next() (string, error) {
	if len(c.lines) == 0 {
		return "", io.EOF
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	if line == AbortLine {
		return "", console.ErrAborted
	}
	return line, nil
}
