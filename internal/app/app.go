package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/corequiz/internal/ctxlog"
	"github.com/specialistvlad/corequiz/internal/deck"
	"github.com/specialistvlad/corequiz/internal/quiz"
)

// Streams are the process streams an App talks through.
type Streams struct {
	In  io.Reader
	Out io.Writer // interactive output
	Err io.Writer // logs, unless a log file is configured
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	streams   Streams
	config    *Config
	logger    *slog.Logger
	logCloser io.Closer
	store     *quiz.Store
}

// NewApp is the constructor for the main application. It sets up an isolated
// logger and seeds the quiz store from the configured decks, or from the
// embedded default deck when none are configured. A nil loader selects the
// file loader for HCL and YAML decks.
func NewApp(streams Streams, cfg *Config, loader deck.Loader) (*App, error) {
	if streams.Err == nil {
		streams.Err = io.Discard
	}

	sink, closer, err := openLogSink(cfg.LogFile, streams.Err)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, sink)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var entries []quiz.Entry
	if len(cfg.DeckPaths) == 0 {
		logger.Debug("No deck configured, using the embedded default deck.")
		entries, err = deck.Default(ctx)
	} else {
		if loader == nil {
			loader = deck.NewLoader(deck.WithLockTimeout(cfg.LockTimeout))
		}
		entries, err = loader.Load(ctx, cfg.DeckPaths...)
	}
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	logger.Info("Quiz store seeded.", "entries", len(entries))

	return &App{
		streams:   streams,
		config:    cfg,
		logger:    logger,
		logCloser: closer,
		store:     quiz.NewStore(entries...),
	}, nil
}

// Store returns the application's quiz store. This is primarily for testing.
func (a *App) Store() *quiz.Store {
	return a.store
}

// Close releases the log file, if one was opened.
func (a *App) Close() error {
	if a.logCloser == nil {
		return nil
	}
	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}
