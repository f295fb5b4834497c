package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/specialistvlad/corequiz/internal/app"
	"github.com/specialistvlad/corequiz/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test, restoring it afterwards
// even if something else sets it meanwhile.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse_Help(t *testing.T) {
	t.Parallel()
	for _, args := range [][]string{{"-h"}, {"--help"}} {
		out := &bytes.Buffer{}

		cfg, shouldExit, err := Parse(args, out)

		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
		assert.Contains(t, out.String(), "--deck")
		assert.Contains(t, out.String(), "'<file>.lock'")
	}
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse(nil, &bytes.Buffer{})

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, &app.Config{
		DeckPaths:   []string{},
		LogLevel:    "warn",
		LogFormat:   "text",
		Prompt:      "quiz > ",
		LockTimeout: deck.DefaultLockTimeout,
	}, cfg)
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()
	args := []string{
		"-d", "one.hcl", "--deck", "two.yaml,three",
		"--log-level", "INFO", "--log-format", "json", "--log-file", "quiz.log",
		"--no-color", "--no-banner", "--prompt", "> ", "--seed", "7", "--lock-timeout", "500ms",
		"four.yml",
	}

	cfg, shouldExit, err := Parse(args, &bytes.Buffer{})

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, []string{"one.hcl", "two.yaml", "three", "four.yml"}, cfg.DeckPaths)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "quiz.log", cfg.LogFile)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.NoBanner)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 500*time.Millisecond, cfg.LockTimeout)
}

func TestParse_UsageErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"--this-is-not-a-valid-flag"}, wantMsg: "unknown flag: --this-is-not-a-valid-flag"},
		{name: "bad level", args: []string{"--log-level", "loud"}, wantMsg: "invalid log-level"},
		{name: "bad format", args: []string{"--log-format", "xml"}, wantMsg: "invalid log-format"},
		{name: "bad seed", args: []string{"--seed", "-1"}, wantMsg: "invalid argument"},
		{name: "missing config file", args: []string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}, wantMsg: "failed to read config file"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.False(t, shouldExit)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "error should be an ExitError")
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestParse_ConfigFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "quiz.yaml", `
log-level: debug
prompt: "? "
deck:
  - from-file.hcl
credits:
  - Ada Lovelace
  - Grace Hopper
`)

	cfg, _, err := Parse([]string{"--config", path, "--prompt", "! "}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "! ", cfg.Prompt, "flags take precedence over the config file")
	assert.Equal(t, []string{"from-file.hcl"}, cfg.DeckPaths)
	assert.Equal(t, []string{"Ada Lovelace", "Grace Hopper"}, cfg.Credits)
}

func TestParse_Environment(t *testing.T) {
	t.Setenv("QUIZ_LOG_LEVEL", "error")
	t.Setenv("QUIZ_NO_BANNER", "true")
	t.Setenv("QUIZ_LOCK_TIMEOUT", "3s")
	path := writeFile(t, "quiz.yaml", "log-level: debug\nno-banner: false\n")

	cfg, _, err := Parse([]string{"--config", path}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel, "env takes precedence over the config file")
	assert.True(t, cfg.NoBanner)
	assert.Equal(t, 3*time.Second, cfg.LockTimeout)

	cfg, _, err = Parse([]string{"--log-level", "info"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel, "flags take precedence over env")
}

func TestParse_EnvFile(t *testing.T) {
	unsetEnv(t, "QUIZ_SEED")
	t.Setenv("QUIZ_PROMPT", "from-env> ")
	path := writeFile(t, "test.env", "QUIZ_SEED=99\nQUIZ_PROMPT=from-file> \n")

	cfg, _, err := Parse([]string{"--env-file", path}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, "from-env> ", cfg.Prompt, "the env file never overrides the real environment")
}

func TestParse_MissingEnvFileIsIgnored(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"--env-file", filepath.Join(t.TempDir(), "absent.env")}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.NotNil(t, cfg)
}
