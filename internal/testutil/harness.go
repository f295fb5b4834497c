package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"
	"testing"

	"github.com/specialistvlad/corequiz/internal/console"
	"github.com/specialistvlad/corequiz/internal/ctxlog"
	"github.com/specialistvlad/corequiz/internal/engine"
	"github.com/specialistvlad/corequiz/internal/quiz"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// ScriptResult holds the outcome of a scripted engine run.
type ScriptResult struct {
	Output    string
	LogOutput string
	Err       error
	Store     *quiz.Store
	Console   *ScriptedConsole
}

// RunScript seeds a store with entries, feeds lines to a fresh engine and
// runs it until the script is exhausted or the engine stops. Output is
// captured without colors or banners, and the random source is seeded so
// runs are reproducible.
func RunScript(t *testing.T, entries []quiz.Entry, lines ...string) *ScriptResult {
	t.Helper()
	return RunScriptWithContext(context.Background(), t, entries, lines...)
}

// RunScriptWithContext is RunScript with a caller-supplied context.
func RunScriptWithContext(ctx context.Context, t *testing.T, entries []quiz.Entry, lines ...string) *ScriptResult {
	t.Helper()

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx = ctxlog.WithLogger(ctx, logger)

	store := quiz.NewStore(entries...)
	printer := console.NewPrinter(out, console.PrinterOptions{})
	eng := engine.New(store, printer, engine.Options{
		Rand: rand.New(rand.NewPCG(1, 2)),
	})
	script := NewScriptedConsole(lines...)

	err := eng.Run(ctx, script)

	if os.Getenv("QUIZ_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &ScriptResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       err,
		Store:     store,
		Console:   script,
	}
}
