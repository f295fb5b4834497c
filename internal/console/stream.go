package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// MaxLineLength is the longest line, in bytes, a StreamReader accepts.
const MaxLineLength = 1 << 20

// StreamReader reads lines from a plain io.Reader such as a pipe or a file.
// Prompts are written to out so transcripts read naturally.
type StreamReader struct {
	in      *bufio.Reader
	src     io.Reader
	out     io.Writer
	maxLine int

	closeOnce sync.Once
	closeErr  error
}

// NewStreamReader creates a StreamReader over in, echoing prompts to out.
func NewStreamReader(in io.Reader, out io.Writer) *StreamReader {
	return &StreamReader{
		in:      bufio.NewReader(in),
		src:     in,
		out:     out,
		maxLine: MaxLineLength,
	}
}

// ReadLine implements LineReader. A line longer than MaxLineLength is
// consumed up to its newline and reported as ErrLineTooLong.
func (r *StreamReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := r.readLine()
	if errors.Is(err, io.EOF) {
		// Finish the prompt line so whatever comes next starts clean.
		fmt.Fprintln(r.out)
	}
	return line, err
}

// ReadLineWithDefault implements LineReader. A stream cannot pre-fill text,
// so an empty line selects def.
func (r *StreamReader) ReadLineWithDefault(prompt, def string) (string, error) {
	line, err := r.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Close implements LineReader. It closes the underlying input when that is
// an io.Closer, which unblocks a pending read on pipes. Close may be called
// from another goroutine and more than once.
func (r *StreamReader) Close() error {
	r.closeOnce.Do(func() {
		if c, ok := r.src.(io.Closer); ok {
			r.closeErr = c.Close()
		}
	})
	return r.closeErr
}

func (r *StreamReader) readLine() (string, error) {
	var sb strings.Builder
	started, tooLong := false, false
	for {
		chunk, more, err := r.in.ReadLine()
		if err != nil {
			// A final line without a newline ends at EOF.
			if errors.Is(err, io.EOF) && started {
				break
			}
			return "", err
		}
		started = true
		if !tooLong {
			if sb.Len()+len(chunk) > r.maxLine {
				tooLong = true
				sb.Reset()
			} else {
				sb.Write(chunk)
			}
		}
		if !more {
			break
		}
	}
	if tooLong {
		return "", ErrLineTooLong
	}
	return strings.TrimRight(sb.String(), "\r"), nil
}
