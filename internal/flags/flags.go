// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

// Package flags backs the transient per-insertion Node flag (NONE /
// IN_MAIN_PATH / IN_PARALLEL_PATH) with a stack-scoped table keyed by arena
// node-id rather than an in-struct field, so concurrent readers remain safe
// and every flag reverts to NONE automatically on scope exit.
package flags

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/nanocube/nanocube/internal/arena"
)

// Flag is the transient state a node carries while an insertion is
// in-flight. The zero value is None.
type Flag uint8

const (
	None Flag = iota
	InMainPath
	InParallelPath
)

// Table tracks IN_MAIN_PATH / IN_PARALLEL_PATH membership for a single
// insertion. Main and Parallel are mutually exclusive by construction: every
// mutator clears the opposite bit first.
//
// touched remembers every id ever set so Reset can restore every flag to
// NONE in O(touched) rather than O(arena size), acting as a scope guard that
// clears on every exit path.
type Table struct {
	main     bitset.BitSet
	parallel bitset.BitSet
	touched  []arena.ID
}

// New returns an empty, ready-to-use flag table.
func New() *Table {
	return &Table{}
}

// SetMain marks id IN_MAIN_PATH.
func (t *Table) SetMain(id arena.ID) {
	t.mark(id)
	t.parallel.Clear(uint(id))
	t.main.Set(uint(id))
}

// SetParallel marks id IN_PARALLEL_PATH.
func (t *Table) SetParallel(id arena.ID) {
	t.mark(id)
	t.main.Clear(uint(id))
	t.parallel.Set(uint(id))
}

// Clear restores id to NONE.
func (t *Table) Clear(id arena.ID) {
	t.main.Clear(uint(id))
	t.parallel.Clear(uint(id))
}

// Get reports id's current flag.
func (t *Table) Get(id arena.ID) Flag {
	switch {
	case t.main.Test(uint(id)):
		return InMainPath
	case t.parallel.Test(uint(id)):
		return InParallelPath
	default:
		return None
	}
}

// Reset clears every id this table ever touched, restoring every flag to
// NONE after an insertion completes (normally or via a recovered panic).
func (t *Table) Reset() {
	for _, id := range t.touched {
		t.Clear(id)
	}
	t.touched = t.touched[:0]
}

func (t *Table) mark(id arena.ID) {
	if !t.main.Test(uint(id)) && !t.parallel.Test(uint(id)) {
		t.touched = append(t.touched, id)
	}
}
