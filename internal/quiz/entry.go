// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Entry, the single question/answer pair stored in a quiz
// set, and the rule used to grade an answer against it.
package quiz

import "strings"

// Entry is one question and its expected answer.
type Entry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// NewEntry returns an Entry holding the given question and answer as-is.
func NewEntry(question, answer string) Entry {
	return Entry{Question: question, Answer: answer}
}

// Matches reports whether a user-supplied answer is correct. The given answer
// is trimmed of surrounding whitespace and compared without regard to case.
// The stored answer is used verbatim.
func (e Entry) Matches(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), e.Answer)
}
