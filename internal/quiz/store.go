// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// An entry's index is its slice position: Add appends, and Delete shifts every
// later entry down by one so the range stays contiguous.

package quiz

import (
	"strconv"
	"sync"
)

// Store is an ordered, index-addressed collection of entries. It is safe for
// concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewStore creates a store pre-populated with the given entries, in order.
func NewStore(seed ...Entry) *Store {
	entries := make([]Entry, len(seed))
	copy(entries, seed)
	return &Store{entries: entries}
}

// ParseIndex coerces a raw index token into an integer. Anything that is not
// a base-10 integer yields a *NotFoundError naming the token. Range is not
// checked here; the store methods do that.
func ParseIndex(raw string) (int, error) {
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &NotFoundError{Index: raw}
	}
	return i, nil
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Add appends a new entry and returns its index.
func (s *Store) Add(question, answer string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, NewEntry(question, answer))
	return len(s.entries) - 1
}

// Get returns a copy of the entry at index.
func (s *Store) Get(index int) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.inRange(index) {
		return Entry{}, notFound(index)
	}
	return s.entries[index], nil
}

// Update replaces both fields of the entry at index.
func (s *Store) Update(index int, question, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inRange(index) {
		return notFound(index)
	}
	s.entries[index] = NewEntry(question, answer)
	return nil
}

// Delete removes the entry at index. Every entry after it moves down one
// position, keeping the index range contiguous.
func (s *Store) Delete(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inRange(index) {
		return notFound(index)
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return nil
}

// All returns a snapshot of every entry in ascending index order. The slice
// position of each entry is its index. Later mutations of the store do not
// affect the returned slice.
func (s *Store) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// inRange must be called with the lock held.
func (s *Store) inRange(index int) bool {
	return index >= 0 && index < len(s.entries)
}
