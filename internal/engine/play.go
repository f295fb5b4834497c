package engine

import (
	"context"
	"strconv"

	"github.com/specialistvlad/corequiz/internal/ctxlog"
	"github.com/specialistvlad/corequiz/internal/game"
)

// play runs one game session over a snapshot of the store: random order, no
// repeats, first wrong answer ends the game.
func (e *Engine) play(ctx context.Context, _ string) error {
	session := game.NewSession(e.store.All(), e.rng)
	ctx = ctxlog.With(ctx, "session_id", session.ID)
	logger := ctxlog.FromContext(ctx)
	logger.Info("Play session started.", "questions", len(session.Remaining()))

	for {
		entry, ok := session.Next()
		if !ok {
			e.printer.Log(e.printer.Colorize("No more questions", "green"))
			e.finishGame(session.Score())
			logger.Info("Play session finished.", "outcome", "completed", "score", session.Score())
			return nil
		}

		answer, err := e.reader.ReadLine(entry.Question + " ")
		if err != nil {
			logger.Info("Play session interrupted.", "score", session.Score(), "error", err)
			return err
		}

		correct, err := session.Answer(answer)
		if err != nil {
			return err
		}
		if !correct {
			e.printer.Log("INCORRECT.")
			e.finishGame(session.Score())
			logger.Info("Play session finished.", "outcome", "missed", "score", session.Score(), "unanswered", len(session.Remaining()))
			return nil
		}

		e.printer.Log("CORRECT")
		e.printer.Logf("Score so far: %d", session.Score())
		e.printer.Big(strconv.Itoa(session.Score()), "magenta")
	}
}

func (e *Engine) finishGame(score int) {
	e.printer.Logf("Game over. You answered a total of %d questions correctly.", score)
	e.printer.Big(strconv.Itoa(score), "magenta")
}
