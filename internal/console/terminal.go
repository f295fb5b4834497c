package console

import (
	"errors"
	"sync"

	"github.com/peterh/liner"
)

// TerminalReader is a line editor with history, tab completion and
// pre-filled editable text, backed by liner.
type TerminalReader struct {
	state *liner.State

	closeOnce sync.Once
	closeErr  error
}

// NewTerminalReader puts the terminal into line-editing mode. Close must be
// called to restore it.
func NewTerminalReader(complete Completer) *TerminalReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	if complete != nil {
		state.SetCompleter(liner.Completer(complete))
	}
	return &TerminalReader{state: state}
}

// ReadLine implements LineReader.
func (r *TerminalReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	return r.finish(line, err)
}

// ReadLineWithDefault implements LineReader. def is placed on the line with
// the cursor at its end, ready to be edited.
func (r *TerminalReader) ReadLineWithDefault(prompt, def string) (string, error) {
	line, err := r.state.PromptWithSuggestion(prompt, def, -1)
	return r.finish(line, err)
}

// Close implements LineReader. It restores the terminal mode and may be
// called more than once.
func (r *TerminalReader) Close() error {
	r.closeOnce.Do(func() {
		r.closeErr = r.state.Close()
	})
	return r.closeErr
}

func (r *TerminalReader) finish(line string, err error) (string, error) {
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	if line != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}
