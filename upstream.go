// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package nanocube

import (
	"cmp"

	"github.com/nanocube/nanocube/internal/flags"
)

// UpstreamWalker enumerates the chain obtained by repeatedly following a
// Node's single PROPER incoming edge: proper-parent if set, else owner, else
// the chain ends. It is read-only and mutates no links; termination is
// guaranteed because the PROPER chain is acyclic.
type UpstreamWalker[O cmp.Ordered] struct {
	cur *Node[O]
}

// NewUpstreamWalker starts a walker positioned at start. Advance must be
// called to move to start's proper ancestor.
func NewUpstreamWalker[O cmp.Ordered](start *Node[O]) *UpstreamWalker[O] {
	return &UpstreamWalker[O]{cur: start}
}

// Advance moves to the current node's proper parent or owner. ok is false if
// the chain has ended (neither back-pointer is set), in which case the
// walker's position is unchanged.
func (w *UpstreamWalker[O]) Advance() (next *Node[O], ok bool) {
	if w.cur.properParent != nil {
		w.cur = w.cur.properParent
		return w.cur, true
	}
	if w.cur.owner != nil {
		w.cur = w.cur.owner
		return w.cur, true
	}
	return nil, false
}

// Current returns the walker's current position.
func (w *UpstreamWalker[O]) Current() *Node[O] {
	return w.cur
}

// switchable is the switch-equivalence proof: starting from start, walk the
// PROPER ancestor chain until a flagged node is found. An IN_PARALLEL_PATH
// node proves start lies beneath the current parallel frontier (switchable);
// an IN_MAIN_PATH node, or the chain ending with no proof, means not
// switchable.
func switchable[O cmp.Ordered](start *Node[O], table *flags.Table) bool {
	w := NewUpstreamWalker(start)
	for {
		next, ok := w.Advance()
		if !ok {
			return false
		}
		switch next.flag(table) {
		case flags.InParallelPath:
			return true
		case flags.InMainPath:
			return false
		}
	}
}

// switchableSelfOrAncestors is the last-dimension variant of the same proof:
// the content owner reached via a SHARED summary link may itself already be
// a live thread frontier (it was pushed as a parallel root in the
// intermediate-dimension step), so its own flag is checked before falling
// back to the ancestor walk. switchable never checks the starting node
// itself, only its ancestors, because a not-yet-descended child cannot yet
// be a thread's current frontier.
func switchableSelfOrAncestors[O cmp.Ordered](start *Node[O], table *flags.Table) bool {
	switch start.flag(table) {
	case flags.InParallelPath:
		return true
	case flags.InMainPath:
		return false
	default:
		return switchable(start, table)
	}
}
