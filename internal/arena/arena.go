// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

// Package arena hands out stable, monotonically increasing identities for
// nanocube nodes and summaries.
//
// The core index never reclaims a node (it is append-only, per design), so
// unlike a sync.Pool-backed allocator this arena only ever grows. What it
// buys the rest of the package is a dense integer id — suitable as a bitset
// index (see internal/flags) — and a stable uuid.UUID per id, used solely to
// give the out-of-scope event-log collaborator a cross-process node name
// instead of a raw pointer.
package arena

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// ID is a dense, monotonically increasing node identity assigned by an Arena.
// Dense means it is fit to index a bitset.BitSet directly.
type ID uint64

// Arena assigns IDs and trace UUIDs. The zero value is ready to use.
type Arena struct {
	next   atomic.Uint64
	traces sync.Map // ID -> uuid.UUID
}

// New allocates the next ID and a fresh trace UUID for it.
func (a *Arena) New() (ID, uuid.UUID) {
	id := ID(a.next.Add(1) - 1)
	trace := uuid.New()
	a.traces.Store(id, trace)
	return id, trace
}

// Trace returns the uuid.UUID stamped for id by New, or the zero UUID if id
// was never allocated by this arena.
func (a *Arena) Trace(id ID) uuid.UUID {
	v, ok := a.traces.Load(id)
	if !ok {
		return uuid.UUID{}
	}
	return v.(uuid.UUID)
}

// Len reports how many IDs this arena has ever allocated.
func (a *Arena) Len() int {
	return int(a.next.Load())
}
