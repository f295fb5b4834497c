package console

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamReader_ReadsLinesAndEchoesPrompts(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}
	r := NewStreamReader(strings.NewReader("list\r\nshow 1\n"), out)

	first, err := r.ReadLine("quiz > ")
	require.NoError(t, err)
	second, err := r.ReadLine("quiz > ")
	require.NoError(t, err)
	_, err = r.ReadLine("quiz > ")

	assert.Equal(t, "list", first, "carriage returns are stripped")
	assert.Equal(t, "show 1", second)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "quiz > quiz > quiz > \n", out.String())
}

func TestStreamReader_LongLines(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		maxLine int
		input   string
		want    []string
		wantErr []error
	}{
		{
			name:    "beyond the default scanner buffer",
			maxLine: MaxLineLength,
			input:   "add\n" + strings.Repeat("x", 70000) + "\nans\n",
			want:    []string{"add", strings.Repeat("x", 70000), "ans"},
			wantErr: []error{nil, nil, nil},
		},
		{
			name:    "over the limit is consumed whole",
			maxLine: 8,
			input:   "short\n" + strings.Repeat("y", 20) + "\r\nlist\n",
			want:    []string{"short", "", "list"},
			wantErr: []error{nil, ErrLineTooLong, nil},
		},
		{
			name:    "exactly at the limit",
			maxLine: 4,
			input:   "abcd\nabcde\n",
			want:    []string{"abcd", ""},
			wantErr: []error{nil, ErrLineTooLong},
		},
		{
			name:    "last line without newline",
			maxLine: MaxLineLength,
			input:   "list\nquit",
			want:    []string{"list", "quit"},
			wantErr: []error{nil, nil},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := NewStreamReader(strings.NewReader(tc.input), io.Discard)
			r.maxLine = tc.maxLine

			for i, want := range tc.want {
				got, err := r.ReadLine("> ")
				if tc.wantErr[i] != nil {
					require.ErrorIs(t, err, tc.wantErr[i], "line %d", i)
				} else {
					require.NoError(t, err, "line %d", i)
				}
				assert.Equal(t, want, got, "line %d", i)
			}
			_, err := r.ReadLine("> ")
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestStreamReader_CloseUnblocksPendingRead(t *testing.T) {
	t.Parallel()
	pr, pw := io.Pipe()
	defer pw.Close()
	r := NewStreamReader(pr, io.Discard)

	errCh := make(chan error, 1)
	go func() {
		_, err := r.ReadLine("> ")
		errCh <- err
	}()

	require.NoError(t, r.Close())
	require.NoError(t, r.Close(), "closing twice is harmless")

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, io.ErrClosedPipe)
	case <-time.After(2 * time.Second):
		t.Fatal("read still blocked after Close")
	}
}

func TestStreamReader_DefaultOnEmptyLine(t *testing.T) {
	t.Parallel()
	r := NewStreamReader(strings.NewReader("\nnew value\n"), io.Discard)

	kept, err := r.ReadLineWithDefault("Question: ", "old value")
	require.NoError(t, err)
	replaced, err := r.ReadLineWithDefault("Answer: ", "old answer")
	require.NoError(t, err)

	assert.Equal(t, "old value", kept)
	assert.Equal(t, "new value", replaced)
}

func TestNewLineReader_NonTerminalIsStream(t *testing.T) {
	t.Parallel()
	r := NewLineReader(strings.NewReader(""), io.Discard, nil)
	_, ok := r.(*StreamReader)
	assert.True(t, ok)
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminalOutput(io.Discard))
}

func TestPrefixCompleter(t *testing.T) {
	t.Parallel()
	complete := PrefixCompleter("h", "help", "list", "show", "p", "play", "q", "quit")

	testCases := []struct {
		line string
		want []string
	}{
		{line: "h", want: []string{"h", "help"}},
		{line: "he", want: []string{"help"}},
		{line: "PL", want: []string{"play"}},
		{line: "sh", want: []string{"show"}},
		{line: "", want: []string{"h", "help", "list", "show", "p", "play", "q", "quit"}},
		{line: "xyz", want: []string{"h", "help", "list", "show", "p", "play", "q", "quit"}},
	}
	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, complete(tc.line))
		})
	}
}

func TestPrinter_PlainOutput(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}
	p := NewPrinter(out, PrinterOptions{})

	p.Log("hello")
	p.Logf(" [%d]:  %s", 0, "Capital of Italy")
	p.Error("no quiz with index \"9\"")
	p.Big("CORRECT", "green")

	assert.Equal(t, "hello\n [0]:  Capital of Italy\nError: no quiz with index \"9\"\n", out.String())
	assert.Equal(t, "x", p.Colorize("x", "red"))
}

func TestPrinter_Banner(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}
	p := NewPrinter(out, PrinterOptions{Banner: true})

	p.Big("OK", "green")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Greater(t, len(lines), 1, "banner text should span several lines")
}
