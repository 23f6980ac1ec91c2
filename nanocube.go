// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package nanocube

import (
	"cmp"

	"go.uber.org/zap"

	"github.com/nanocube/nanocube/internal/arena"
)

// Nanocube is a configuration (per-dimension maximum depth) plus a single
// root Node, built incrementally by Insert and queried read-only by Query.
// The zero value is not usable; construct with New.
type Nanocube[O cmp.Ordered] struct {
	levels []int
	dim    int

	root *Node[O]

	arena  arena.Arena
	log    *zap.Logger
	events EventSink
}

// Option configures a Nanocube at construction time.
type Option[O cmp.Ordered] func(*Nanocube[O])

// WithLogger sets the ambient logger used for insertion tracing. Defaults to
// zap.NewNop(). Also seeds the default EventSink unless WithEventSink
// overrides it.
func WithLogger[O cmp.Ordered](log *zap.Logger) Option[O] {
	return func(n *Nanocube[O]) { n.log = log }
}

// WithEventSink overrides the default zap-backed EventSink, e.g. to let the
// out-of-scope visualization collaborator observe insertions directly.
func WithEventSink[O cmp.Ordered](sink EventSink) Option[O] {
	return func(n *Nanocube[O]) { n.events = sink }
}

// New constructs a Nanocube with one maximum depth per dimension. levels is
// informational: the insertion/query algorithms do not consult it while
// descending the DAG, only the API boundary validates against it.
func New[O cmp.Ordered](levels []int, opts ...Option[O]) *Nanocube[O] {
	n := &Nanocube[O]{
		levels: append([]int(nil), levels...),
		dim:    len(levels),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.events == nil {
		n.events = NewZapEventSink(n.log)
	}
	return n
}

// Dimensions reports the configured dimension count D.
func (n *Nanocube[O]) Dimensions() int {
	return n.dim
}

// Levels returns the configured per-dimension maximum depth.
func (n *Nanocube[O]) Levels() []int {
	return append([]int(nil), n.levels...)
}

func (n *Nanocube[O]) validateAddress(addr Address) error {
	if len(addr) != n.dim {
		return malformedAddressf("address has %d dimensions, want %d", len(addr), n.dim)
	}
	for d, path := range addr {
		if len(path) > n.levels[d] {
			return malformedAddressf("dimension %d path length %d exceeds declared depth %d", d, len(path), n.levels[d])
		}
	}
	return nil
}

// newNode allocates a fresh Node and emits new-node at (dim, layer).
func (n *Nanocube[O]) newNode(dim, layer int) *Node[O] {
	id, trace := n.arena.New()
	nd := newNode[O](id, trace)
	n.events.NewNode(trace.String(), dim, layer)
	return nd
}

// newSummary allocates a fresh Summary; summaries only ever live at the
// last dimension's content, layer 0.
func (n *Nanocube[O]) newSummary() *Summary[O] {
	id, trace := n.arena.New()
	s := newSummary[O](id)
	n.events.NewNode(trace.String(), n.dim, 0)
	return s
}
