package console

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrAborted is returned by a LineReader when the user interrupts a prompt
// (Ctrl-C on a terminal). End of input is reported as io.EOF.
var ErrAborted = errors.New("prompt aborted")

// ErrLineTooLong is returned when an input line exceeds the reader's limit.
// The whole line has been consumed; the next read starts on the next line.
var ErrLineTooLong = errors.New("input line too long")

// LineReader reads one line of user input per call. At most one prompt is
// ever pending: every method blocks until its line arrives.
type LineReader interface {
	// ReadLine shows prompt and returns the next line without its newline.
	ReadLine(prompt string) (string, error)

	// ReadLineWithDefault shows prompt with def offered as editable text.
	// Readers that cannot pre-fill return def when the user enters an
	// empty line.
	ReadLineWithDefault(prompt, def string) (string, error)

	// Close releases the reader and restores the terminal.
	Close() error
}

// Completer returns candidate completions for a partial line.
type Completer func(line string) []string

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsTerminalOutput reports whether w is an interactive terminal.
func IsTerminalOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewLineReader returns a terminal line editor when in is a terminal and a
// plain stream reader otherwise.
func NewLineReader(in io.Reader, out io.Writer, complete Completer) LineReader {
	if IsTerminal(in) {
		return NewTerminalReader(complete)
	}
	return NewStreamReader(in, out)
}
