package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/specialistvlad/corequiz/internal/app"
	"github.com/specialistvlad/corequiz/internal/deck"
	"github.com/specialistvlad/corequiz/internal/engine"
)

// EnvPrefix prefixes every environment variable that mirrors a flag.
const EnvPrefix = "QUIZ"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	v := viper.New()
	var config *app.Config

	cmd := &cobra.Command{
		Use:   "corequiz [flags] [DECK_PATH...]",
		Short: "CORE Quiz - an interactive question and answer trainer.",
		Long: `CORE Quiz - an interactive question and answer trainer.

Quizzes are seeded from deck files (.hcl, .yaml, .yml) or directories of them.
With no deck, a small built-in deck is used. Type 'help' at the prompt to see
the available commands.

Each deck file is read under a shared lock on a '<file>.lock' file created
next to it and kept there. Tools that rewrite decks can hold an exclusive lock
on it to avoid partial reads. In a read-only location decks are read unlocked.

Configuration sources, highest precedence first:
  1. Command line flags
  2. Environment variables (QUIZ_LOG_LEVEL, QUIZ_DECK, ...), including
     those set by the .env file
  3. The config file given with --config (YAML, JSON or TOML)
  4. Defaults`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			cfg, err := resolve(v, cmd.Flags(), positional)
			if err != nil {
				return err
			}
			config = cfg
			return nil
		},
	}
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%s", err)
	})
	defineFlags(cmd.Flags())

	if err := cmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, usageError("%s", err)
	}
	if config == nil {
		slog.Debug("Help requested, exiting.")
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func defineFlags(flags *pflag.FlagSet) {
	flags.StringSliceP("deck", "d", nil, "Deck file or directory to seed quizzes from. Repeatable.")
	flags.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.String("log-file", "", "Append logs to this file instead of stderr.")
	flags.Bool("no-color", false, "Disable colored output.")
	flags.Bool("no-banner", false, "Disable large-character banners.")
	flags.String("prompt", engine.DefaultPrompt, "Top-level prompt text.")
	flags.Uint64("seed", 0, "Seed for the play order. 0 picks a random seed.")
	flags.Duration("lock-timeout", deck.DefaultLockTimeout, "How long to wait for a locked deck file.")
	flags.String("config", "", "Config file (YAML, JSON or TOML).")
	flags.String("env-file", ".env", "Environment file loaded before anything else. A missing file is ignored.")
}

// resolve layers flags, environment and config file into a validated Config.
func resolve(v *viper.Viper, flags *pflag.FlagSet, positional []string) (*app.Config, error) {
	envFile, _ := flags.GetString("env-file")
	if err := loadEnvFile(envFile); err != nil {
		return nil, usageError("failed to load env file %q: %s", envFile, err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, usageError("failed to read config file %q: %s", path, err)
		}
		slog.Debug("Config file loaded.", "path", path)
	}

	deckPaths := append(v.GetStringSlice("deck"), positional...)
	slog.Debug("Deck paths determined.", "paths", deckPaths)

	cfg, err := app.NewConfig(app.Config{
		DeckPaths:   deckPaths,
		LogLevel:    v.GetString("log-level"),
		LogFormat:   v.GetString("log-format"),
		LogFile:     v.GetString("log-file"),
		NoColor:     v.GetBool("no-color"),
		NoBanner:    v.GetBool("no-banner"),
		Prompt:      v.GetString("prompt"),
		Seed:        v.GetUint64("seed"),
		Credits:     v.GetStringSlice("credits"),
		LockTimeout: v.GetDuration("lock-timeout"),
	})
	if err != nil {
		return nil, usageError("%s", err)
	}
	return cfg, nil
}

// loadEnvFile exports the variables in path without overriding ones that are
// already set.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No env file found.", "path", path)
		return nil
	}
	return err
}
