package game

import (
	"math/rand/v2"
	"testing"

	"github.com/specialistvlad/corequiz/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoEntries() []quiz.Entry {
	return []quiz.Entry{
		quiz.NewEntry("Q1", "A1"),
		quiz.NewEntry("Q2", "A2"),
	}
}

func TestSession_AllCorrectEndsWithFullScore(t *testing.T) {
	t.Parallel()

	// Run with several seeds so both draw orders are exercised.
	for seed := uint64(0); seed < 8; seed++ {
		s := NewSession(twoEntries(), rand.New(rand.NewPCG(seed, seed)))
		seen := map[string]bool{}

		for {
			e, ok := s.Next()
			if !ok {
				break
			}
			require.False(t, seen[e.Question], "entry %q asked twice in one session", e.Question)
			seen[e.Question] = true

			correct, err := s.Answer(e.Answer)
			require.NoError(t, err)
			require.True(t, correct)
		}

		assert.Equal(t, 2, s.Score())
		assert.Empty(t, s.Remaining())
		assert.Len(t, seen, 2)
	}
}

func TestSession_FirstMissKeepsUnseenEntry(t *testing.T) {
	t.Parallel()
	entries := twoEntries()
	s := NewSession(entries, rand.New(rand.NewPCG(1, 2)))

	e, ok := s.Next()
	require.True(t, ok)

	correct, err := s.Answer("definitely wrong")
	require.NoError(t, err)

	assert.False(t, correct)
	assert.Equal(t, 0, s.Score())
	assert.Len(t, s.Remaining(), 2, "a wrong answer must not remove anything from the pool")
	assert.Contains(t, s.Remaining(), e)
	assert.Equal(t, twoEntries(), entries, "the source entries must not be touched")
}

func TestSession_SingleEntryIsAlwaysDrawn(t *testing.T) {
	t.Parallel()
	s := NewSession([]quiz.Entry{quiz.NewEntry("only", "one")}, nil)

	e, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "only", e.Question)
}

func TestSession_RemovesByPositionWithDuplicateQuestions(t *testing.T) {
	t.Parallel()
	// Same question text, different answers: removal by value would be ambiguous.
	entries := []quiz.Entry{
		quiz.NewEntry("same", "first"),
		quiz.NewEntry("same", "second"),
		quiz.NewEntry("same", "third"),
	}
	s := NewSession(entries, rand.New(rand.NewPCG(7, 7)))

	e, ok := s.Next()
	require.True(t, ok)
	correct, err := s.Answer(e.Answer)
	require.NoError(t, err)
	require.True(t, correct)

	remaining := s.Remaining()
	require.Len(t, remaining, 2)
	assert.NotContains(t, remaining, e, "the answered entry is the one that must be gone")
}

func TestSession_EmptyPool(t *testing.T) {
	t.Parallel()
	s := NewSession(nil, nil)

	_, ok := s.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Score())
}

func TestSession_AnswerWithoutPending(t *testing.T) {
	t.Parallel()
	s := NewSession(twoEntries(), nil)

	_, err := s.Answer("A1")
	require.ErrorIs(t, err, ErrNoPendingQuestion)

	e, _ := s.Next()
	_, err = s.Answer(e.Answer)
	require.NoError(t, err)

	_, err = s.Answer(e.Answer)
	require.ErrorIs(t, err, ErrNoPendingQuestion, "a question can only be answered once")
}

func TestSession_AnswerIsCaseAndSpaceTolerant(t *testing.T) {
	t.Parallel()
	s := NewSession([]quiz.Entry{quiz.NewEntry("Capital of France", "Paris")}, nil)

	_, _ = s.Next()
	correct, err := s.Answer("  pArIs ")
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, 1, s.Score())
}

func TestSession_HasUniqueID(t *testing.T) {
	t.Parallel()
	a := NewSession(nil, nil)
	b := NewSession(nil, nil)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}
