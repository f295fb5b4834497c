// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package quiz holds the quiz set: an ordered collection of question/answer
// entries addressed by a dense, zero-based index.
//
// # Indexing
//
// The index of an entry is its position in insertion order. Indices are always
// contiguous in [0, Len()): removing an entry shifts every following entry
// down by one, so there are never gaps or tombstones. Any lookup outside that
// range, or with a token that is not an integer, fails with a *NotFoundError
// that names the offending index.
//
// # Lifecycle
//
// A Store is created empty (or seeded by the deck loader) at startup, mutated
// by the interactive engine, and discarded at exit. Nothing is persisted.
package quiz
