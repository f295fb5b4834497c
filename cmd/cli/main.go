package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/specialistvlad/corequiz/internal/app"
	"github.com/specialistvlad/corequiz/internal/cli"
)

const (
	exitTerminated = 128 + int(syscall.SIGTERM)
	shutdownGrace  = 2 * time.Second
)

// main is the entrypoint for the corequiz application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		// A second SIGTERM kills the process outright.
		stop()
		// A read blocked on a terminal cannot always be interrupted.
		time.Sleep(shutdownGrace)
		os.Exit(exitTerminated)
	}()

	// The real main function handles errors and exit codes.
	if err := run(ctx, app.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}, os.Args[1:]); err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			os.Exit(exitTerminated)
		}
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, streams app.Streams, args []string) (err error) {
	cfg, shouldExit, err := cli.Parse(args, streams.Out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	quizApp, err := app.NewApp(streams, cfg, nil)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := quizApp.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close app: %w", closeErr)
		}
	}()

	return quizApp.Run(ctx)
}
