package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/specialistvlad/corequiz/internal/deck"
	"github.com/specialistvlad/corequiz/internal/engine"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DeckPaths []string // hcl/yaml files or directories; empty means the embedded deck

	LogFormat string
	LogLevel  string
	LogFile   string // empty logs to the error stream

	NoColor  bool
	NoBanner bool
	Prompt   string
	Seed     uint64 // 0 draws from the global random source
	Credits  []string

	LockTimeout time.Duration
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "warn"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.Prompt == "" {
		cfg.Prompt = engine.DefaultPrompt
	}

	if cfg.LockTimeout < 0 {
		return nil, errors.New("lock-timeout cannot be negative")
	}
	if cfg.LockTimeout == 0 {
		cfg.LockTimeout = deck.DefaultLockTimeout
	}

	paths := make([]string, 0, len(cfg.DeckPaths))
	for _, p := range cfg.DeckPaths {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	cfg.DeckPaths = paths

	if len(cfg.Credits) == 0 {
		cfg.Credits = nil
	}

	return &cfg, nil
}
