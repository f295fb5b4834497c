package engine

import (
	"context"
	"strconv"
	"strings"

	"github.com/specialistvlad/corequiz/internal/ctxlog"
)

const (
	questionPrompt = " Enter a question: "
	answerPrompt   = " Enter the answer: "
)

// add asks for a question, then an answer, then commits.
func (e *Engine) add(ctx context.Context, _ string) error {
	question, err := e.reader.ReadLine(questionPrompt)
	if err != nil {
		return err
	}
	answer, err := e.reader.ReadLine(answerPrompt)
	if err != nil {
		return err
	}
	if err := checkPresent(question, answer); err != nil {
		return err
	}

	index := e.store.Add(question, answer)
	ctxlog.FromContext(ctx).Info("Quiz added.", "index", index)
	e.printer.Logf(" %s: %s %s %s",
		e.printer.Colorize("Added", "magenta"),
		question,
		e.printer.Colorize("=>", "magenta"),
		answer,
	)
	return nil
}

// edit fetches the entry first, so a bad index fails before any follow-up
// prompt is shown. The current question and answer are offered as editable
// defaults.
func (e *Engine) edit(ctx context.Context, arg string) error {
	index, entry, err := e.lookup(arg)
	if err != nil {
		return err
	}

	question, err := e.reader.ReadLineWithDefault(questionPrompt, entry.Question)
	if err != nil {
		return err
	}
	answer, err := e.reader.ReadLineWithDefault(answerPrompt, entry.Answer)
	if err != nil {
		return err
	}
	if err := checkPresent(question, answer); err != nil {
		return err
	}

	if err := e.store.Update(index, question, answer); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Quiz updated.", "index", index)
	e.printer.Logf(" Quiz %s changed to: %s %s %s",
		e.printer.Colorize(strconv.Itoa(index), "magenta"),
		question,
		e.printer.Colorize("=>", "magenta"),
		answer,
	)
	return nil
}

// test asks a single question and grades the answer.
func (e *Engine) test(ctx context.Context, arg string) error {
	index, entry, err := e.lookup(arg)
	if err != nil {
		return err
	}

	answer, err := e.reader.ReadLine(entry.Question + "? ")
	if err != nil {
		return err
	}

	correct := entry.Matches(answer)
	ctxlog.FromContext(ctx).Debug("Quiz tested.", "index", index, "correct", correct)
	if correct {
		e.printer.Log("CORRECT")
		e.printer.Big("CORRECT", "green")
	} else {
		e.printer.Log("INCORRECT")
		e.printer.Big("INCORRECT", "red")
	}
	return nil
}

func checkPresent(question, answer string) error {
	if strings.TrimSpace(question) == "" {
		return errEmptyField("question")
	}
	if strings.TrimSpace(answer) == "" {
		return errEmptyField("answer")
	}
	return nil
}
