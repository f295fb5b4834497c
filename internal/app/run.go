package app

import (
	"context"
	"math/rand/v2"

	"github.com/specialistvlad/corequiz/internal/console"
	"github.com/specialistvlad/corequiz/internal/ctxlog"
	"github.com/specialistvlad/corequiz/internal/engine"
)

const title = "CORE Quiz"

// Run shows the banner and drives the interactive loop until the user quits,
// input ends, or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	printer := console.NewPrinter(a.streams.Out, console.PrinterOptions{
		Color:  !a.config.NoColor && console.IsTerminalOutput(a.streams.Out),
		Banner: !a.config.NoBanner,
	})

	var rng *rand.Rand
	if a.config.Seed != 0 {
		rng = rand.New(rand.NewPCG(a.config.Seed, a.config.Seed))
		a.logger.Debug("Using seeded random source.", "seed", a.config.Seed)
	}

	eng := engine.New(a.store, printer, engine.Options{
		Prompt:  a.config.Prompt,
		Rand:    rng,
		Credits: a.config.Credits,
	})

	reader := console.NewLineReader(a.streams.In, a.streams.Out, console.PrefixCompleter(eng.CommandNames()...))
	defer func() {
		if err := reader.Close(); err != nil {
			a.logger.Warn("Failed to close line reader.", "error", err)
		}
	}()

	// Closing the reader is the only way to unblock a pending read.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			a.logger.Debug("Context cancelled, closing input.", "reason", ctx.Err())
			if err := reader.Close(); err != nil {
				a.logger.Warn("Failed to close line reader.", "error", err)
			}
		case <-done:
		}
	}()

	printer.Big(title, "cyan")

	if err := eng.Run(ctx, reader); err != nil {
		return err
	}

	printer.Log(printer.Colorize("Bye!", "cyan"))
	a.logger.Debug("App.Run method finished.")
	return nil
}
