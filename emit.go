// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package nanocube

import (
	"cmp"
	"slices"
)

// traceOfContent resolves a content link (Node or Summary) to the stable
// uuid string an EventSink consumer identifies it by.
func (n *Nanocube[O]) traceOfContent(c content[O]) string {
	switch v := c.(type) {
	case *Node[O]:
		return v.trace.String()
	case *Summary[O]:
		return n.arena.Trace(v.id).String()
	default:
		return ""
	}
}

// emitChildLink re-reads parent's link under label and emits it, logged
// after the mutation so the emitted link type reflects what was actually
// installed.
func (n *Nanocube[O]) emitChildLink(parent *Node[O], label Label) {
	child, linkType, ok := parent.getChild(label)
	if !ok {
		return
	}
	n.events.SetChildLink(parent.trace.String(), child.trace.String(), label, linkType)
}

// emitContentLink re-reads node's content link and emits it.
func (n *Nanocube[O]) emitContentLink(node *Node[O]) {
	c, linkType, ok := node.getContent()
	if !ok {
		return
	}
	n.events.SetContentLink(node.trace.String(), n.traceOfContent(c), linkType)
}

func (n *Nanocube[O]) emitStore(s *Summary[O], obj O) {
	n.events.Store(n.arena.Trace(s.id).String(), obj)
}

// cloneNode allocates a fresh id/trace for a shallow copy of orig and emits
// the new-node plus every (now SHARED) outgoing link.
func (n *Nanocube[O]) cloneNode(orig *Node[O], dim, layer int) *Node[O] {
	id, trace := n.arena.New()
	cp := orig.shallowCopy(id, trace)
	n.events.NewNode(trace.String(), dim, layer)
	if cp.content != nil {
		n.events.SetContentLink(trace.String(), n.traceOfContent(cp.content), Shared)
	}
	for _, l := range cp.children {
		n.events.SetChildLink(trace.String(), l.child.trace.String(), l.label, Shared)
	}
	return cp
}

// cloneSummary allocates a fresh id for a shallow copy of orig and emits the
// new-node plus a store event per object.
func (n *Nanocube[O]) cloneSummary(orig *Summary[O], dim, layer int) *Summary[O] {
	id, trace := n.arena.New()
	cp := orig.shallowCopy(id)
	n.events.NewNode(trace.String(), dim, layer)
	objs := cp.Objects()
	slices.SortFunc(objs, func(a, b O) int { return cmp.Compare(a, b) })
	for _, o := range objs {
		n.events.Store(trace.String(), o)
	}
	return cp
}
