package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/specialistvlad/corequiz/internal/console"
	"github.com/specialistvlad/corequiz/internal/ctxlog"
	"github.com/specialistvlad/corequiz/internal/quiz"
)

// DefaultPrompt is shown before every top-level read.
const DefaultPrompt = "quiz > "

// Options tunes an Engine. The zero value is usable.
type Options struct {
	Prompt  string
	Rand    *rand.Rand // nil draws from the global source
	Credits []string
}

// Engine is the line-oriented command interpreter.
type Engine struct {
	store    *quiz.Store
	printer  *console.Printer
	rng      *rand.Rand
	prompt   string
	credits  []string
	commands *registry

	// reader is only set while Run is active.
	reader console.LineReader
}

// New creates an Engine operating on store and printing through printer.
func New(store *quiz.Store, printer *console.Printer, opts Options) *Engine {
	e := &Engine{
		store:    store,
		printer:  printer,
		rng:      opts.Rand,
		prompt:   opts.Prompt,
		credits:  opts.Credits,
		commands: newRegistry(),
	}
	if e.prompt == "" {
		e.prompt = DefaultPrompt
	}
	e.registerCommands()
	return e
}

// CommandNames returns every accepted command name, for tab completion.
func (e *Engine) CommandNames() []string {
	return e.commands.names()
}

// Run reads and executes commands from reader until quit, end of input or
// cancellation of ctx. Quit and end of input are normal endings and return nil.
// Cancellation returns ctx.Err(); to interrupt a blocked read the caller must
// also close the reader.
func (e *Engine) Run(ctx context.Context, reader console.LineReader) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Engine loop started.", "entries", e.store.Len())
	defer logger.Debug("Engine loop finished.")

	e.reader = reader
	defer func() { e.reader = nil }()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := reader.ReadLine(e.prompt)
		switch {
		case err == nil:
		case ctx.Err() != nil:
			// The reader was closed to unblock the read.
			return ctx.Err()
		case errors.Is(err, console.ErrLineTooLong):
			e.printer.Error(err.Error())
			continue
		case errors.Is(err, io.EOF), errors.Is(err, console.ErrAborted):
			logger.Debug("Input closed at top-level prompt.", "reason", err)
			return nil
		default:
			return fmt.Errorf("failed to read command: %w", err)
		}

		if stop := e.execute(ctx, line); stop {
			return ctx.Err()
		}
	}
}

// Tokenize splits a command line into a lower-cased command name and its
// first argument. Extra arguments are ignored.
func Tokenize(line string) (name, arg string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}
	name = strings.ToLower(fields[0])
	if len(fields) > 1 {
		arg = fields[1]
	}
	return name, arg
}

// execute dispatches one line. It reports whether the loop must stop.
func (e *Engine) execute(ctx context.Context, line string) bool {
	logger := ctxlog.FromContext(ctx)

	name, arg := Tokenize(line)
	if name == "" {
		return false
	}

	cmd, ok := e.commands.lookup(name)
	if !ok {
		logger.Debug("Unknown command.", "command", name)
		e.printer.Logf("Unknown command: '%s'", e.printer.Colorize(name, "red"))
		e.printer.Logf("Use %s to see all available commands.", e.printer.Colorize("help", "green"))
		return false
	}

	logger.Debug("Command dispatched.", "command", cmd.Names[0], "arg", arg)

	var err error
	if cmd.NeedsIndex && arg == "" {
		err = &MissingArgumentError{Command: cmd.Names[0]}
	} else {
		err = cmd.Run(ctx, arg)
	}

	switch {
	case err == nil:
		return false
	case ctx.Err() != nil:
		logger.Debug("Command interrupted by cancellation.", "command", cmd.Names[0], "error", err)
		return true
	case errors.Is(err, errQuit):
		return true
	case errors.Is(err, io.EOF):
		logger.Info("Input ended during a command, nothing committed.", "command", cmd.Names[0])
		return true
	case errors.Is(err, console.ErrAborted):
		logger.Debug("Command cancelled by user.", "command", cmd.Names[0])
		e.printer.Log("Cancelled.")
		return false
	default:
		logger.Debug("Command failed.", "command", cmd.Names[0], "error", err)
		e.printer.Error(err.Error())
		return false
	}
}
