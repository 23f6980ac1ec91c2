// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package nanocube

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/nanocube/nanocube/internal/arena"
)

// Summary is the leaf aggregate of a Nanocube: an unordered set of inserted
// Objects. Equal objects collapse (Insert is idempotent); this is a set, not
// a true multiset.
type Summary[O cmp.Ordered] struct {
	id      arena.ID
	owner   *Node[O] // set iff some Node's PROPER content link points here
	objects map[O]struct{}
}

func newSummary[O cmp.Ordered](id arena.ID) *Summary[O] {
	return &Summary[O]{id: id, objects: make(map[O]struct{})}
}

// isContent marks Summary as a valid Node content payload.
func (*Summary[O]) isContent() {}

func (s *Summary[O]) setOwner(o *Node[O]) { s.owner = o }

// Insert adds obj to the set. Idempotent for equal objects.
func (s *Summary[O]) Insert(obj O) {
	s.objects[obj] = struct{}{}
}

// Objects returns the set of inserted objects, in no particular order.
func (s *Summary[O]) Objects() []O {
	out := make([]O, 0, len(s.objects))
	for o := range s.objects {
		out = append(out, o)
	}
	return out
}

// Len reports the number of distinct objects stored.
func (s *Summary[O]) Len() int {
	return len(s.objects)
}

// Info returns the stored objects in sorted order as a space-joined string,
// for debugging and tests. It plays no part in query results.
func (s *Summary[O]) Info() string {
	objs := s.Objects()
	slices.Sort(objs)
	parts := make([]string, len(objs))
	for i, o := range objs {
		parts[i] = fmt.Sprint(o)
	}
	return strings.Join(parts, " ")
}

// shallowCopy returns a new Summary with an independent object container.
// The copy starts with no owner and is immediately re-attached by the
// caller.
func (s *Summary[O]) shallowCopy(id arena.ID) *Summary[O] {
	cp := newSummary[O](id)
	for o := range s.objects {
		cp.objects[o] = struct{}{}
	}
	return cp
}
