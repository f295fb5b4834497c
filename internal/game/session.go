// Package game implements the "play all" session: every entry of a quiz set
// is asked once, in random order, until the pool is exhausted or the first
// wrong answer ends the game.
package game

import (
	"errors"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/specialistvlad/corequiz/internal/quiz"
)

// ErrNoPendingQuestion is returned by Answer when Next has not drawn a question.
var ErrNoPendingQuestion = errors.New("no question is pending")

// Session is one run of the game. It owns a private copy of the entries, so
// answering questions never changes the store the entries came from.
type Session struct {
	ID string

	pool    []quiz.Entry
	score   int
	rng     *rand.Rand
	pending int // position in pool of the question being asked, -1 when none
}

// NewSession creates a session over a copy of entries. A nil rng uses the
// package-level random source.
func NewSession(entries []quiz.Entry, rng *rand.Rand) *Session {
	pool := make([]quiz.Entry, len(entries))
	copy(pool, entries)
	return &Session{
		ID:      uuid.NewString(),
		pool:    pool,
		rng:     rng,
		pending: -1,
	}
}

// Next draws a uniformly random entry from the remaining pool and marks it as
// the pending question. It returns false when the pool is empty. Calling Next
// again before Answer redraws.
func (s *Session) Next() (quiz.Entry, bool) {
	if len(s.pool) == 0 {
		s.pending = -1
		return quiz.Entry{}, false
	}
	s.pending = s.intN(len(s.pool))
	return s.pool[s.pending], true
}

// Answer grades the answer to the pending question. A correct answer bumps
// the score and removes the entry from the pool by its drawn position; a wrong
// answer leaves the pool untouched. Either way the question stops being pending.
func (s *Session) Answer(answer string) (bool, error) {
	if s.pending < 0 {
		return false, ErrNoPendingQuestion
	}
	pos := s.pending
	s.pending = -1

	if !s.pool[pos].Matches(answer) {
		return false, nil
	}
	s.score++
	s.pool = append(s.pool[:pos], s.pool[pos+1:]...)
	return true, nil
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	return s.score
}

// Remaining returns a copy of the entries not yet answered correctly.
func (s *Session) Remaining() []quiz.Entry {
	out := make([]quiz.Entry, len(s.pool))
	copy(out, s.pool)
	return out
}

func (s *Session) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	return s.rng.IntN(n)
}
