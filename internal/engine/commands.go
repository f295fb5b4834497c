package engine

import (
	"context"
	"strconv"

	"github.com/specialistvlad/corequiz/internal/ctxlog"
	"github.com/specialistvlad/corequiz/internal/quiz"
)

// DefaultCredits lists the authors shown by the credits command.
var DefaultCredits = []string{
	"Jesus Sousa Herranz",
	"Agustin Rivero Ibañez",
}

func (e *Engine) registerCommands() {
	for _, cmd := range []*Command{
		{Names: []string{"help", "h"}, Usage: "h|help", Summary: "Show this help.", Run: e.help},
		{Names: []string{"list"}, Usage: "list", Summary: "List all quizzes.", Run: e.list},
		{Names: []string{"show"}, Usage: "show <id>", Summary: "Show the question and answer of a quiz.", NeedsIndex: true, Run: e.show},
		{Names: []string{"add"}, Usage: "add", Summary: "Add a new quiz interactively.", Run: e.add},
		{Names: []string{"delete"}, Usage: "delete <id>", Summary: "Delete a quiz.", NeedsIndex: true, Run: e.delete},
		{Names: []string{"edit"}, Usage: "edit <id>", Summary: "Edit a quiz.", NeedsIndex: true, Run: e.edit},
		{Names: []string{"test"}, Usage: "test <id>", Summary: "Test yourself on a quiz.", NeedsIndex: true, Run: e.test},
		{Names: []string{"play", "p"}, Usage: "p|play", Summary: "Play all quizzes in random order.", Run: e.play},
		{Names: []string{"credits"}, Usage: "credits", Summary: "Show the credits.", Run: e.showCredits},
		{Names: []string{"quit", "q"}, Usage: "q|quit", Summary: "Quit the program.", Run: e.quit},
	} {
		e.commands.register(cmd)
	}
}

func (e *Engine) help(context.Context, string) error {
	e.printer.Log("Commands:")
	for _, cmd := range e.commands.ordered {
		e.printer.Logf("  %s - %s", cmd.Usage, cmd.Summary)
	}
	return nil
}

func (e *Engine) list(context.Context, string) error {
	for i, entry := range e.store.All() {
		e.printer.Logf(" [%s]:  %s", e.printer.Colorize(strconv.Itoa(i), "magenta"), entry.Question)
	}
	return nil
}

func (e *Engine) show(_ context.Context, arg string) error {
	index, entry, err := e.lookup(arg)
	if err != nil {
		return err
	}
	e.printer.Logf(" [%s]:  %s %s %s",
		e.printer.Colorize(strconv.Itoa(index), "magenta"),
		entry.Question,
		e.printer.Colorize("=>", "magenta"),
		entry.Answer,
	)
	return nil
}

func (e *Engine) delete(ctx context.Context, arg string) error {
	index, err := quiz.ParseIndex(arg)
	if err != nil {
		return err
	}
	if err := e.store.Delete(index); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Quiz deleted.", "index", index, "remaining", e.store.Len())
	e.printer.Logf(" Deleted quiz %s", e.printer.Colorize(strconv.Itoa(index), "magenta"))
	return nil
}

func (e *Engine) showCredits(context.Context, string) error {
	credits := e.credits
	if len(credits) == 0 {
		credits = DefaultCredits
	}
	e.printer.Log("Authors:")
	for _, name := range credits {
		e.printer.Log(e.printer.Colorize(name, "green"))
	}
	return nil
}

func (e *Engine) quit(context.Context, string) error {
	return errQuit
}

// lookup resolves a raw index argument to its entry.
func (e *Engine) lookup(arg string) (int, quiz.Entry, error) {
	index, err := quiz.ParseIndex(arg)
	if err != nil {
		return 0, quiz.Entry{}, err
	}
	entry, err := e.store.Get(index)
	if err != nil {
		return 0, quiz.Entry{}, err
	}
	return index, entry, nil
}
