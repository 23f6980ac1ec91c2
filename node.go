// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package nanocube

import (
	"cmp"
	"slices"

	"github.com/google/uuid"

	"github.com/nanocube/nanocube/internal/arena"
	"github.com/nanocube/nanocube/internal/flags"
)

// content is whatever a Node's single content link may point to: another
// Node (intermediate dimensions) or a Summary (last dimension). Both carry
// an owner back-pointer, set iff reached via a PROPER content link.
type content[O cmp.Ordered] interface {
	isContent()
	setOwner(*Node[O])
}

// childLink is one entry of a Node's sorted child vector.
type childLink[O cmp.Ordered] struct {
	label    Label
	child    *Node[O]
	linkType LinkType
}

// Node is a DAG vertex: an ordered list of child links keyed by Label, one
// content link, and back-pointers identifying the unique PROPER owner of
// this node, if any.
type Node[O cmp.Ordered] struct {
	id    arena.ID
	trace uuid.UUID

	children []childLink[O]

	content     content[O]
	contentType LinkType

	properParent *Node[O] // set iff some parent's PROPER child link points here
	parentLabel  Label

	owner *Node[O] // set iff some Node's PROPER content link points here
}

func newNode[O cmp.Ordered](id arena.ID, trace uuid.UUID) *Node[O] {
	return &Node[O]{id: id, trace: trace}
}

// isContent marks Node as a valid content payload for another Node (used in
// intermediate dimensions, where content points to the next dimension's
// root).
func (*Node[O]) isContent() {}

func (n *Node[O]) setOwner(o *Node[O]) { n.owner = o }

// getChild performs a binary search over the sorted child vector, comparing
// labels with cmp.Compare.
func (n *Node[O]) getChild(label Label) (*Node[O], LinkType, bool) {
	i, ok := slices.BinarySearchFunc(n.children, label, func(l childLink[O], target Label) int {
		return cmp.Compare(l.label, target)
	})
	if !ok {
		return nil, Shared, false
	}
	return n.children[i].child, n.children[i].linkType, true
}

// setChildLink upserts the child link under label, preserving sort order.
// If linkType is Proper, child's proper-parent/label back-pointer is set;
// child's owner is left untouched, since content ownership and
// child-parent ownership are independent.
func (n *Node[O]) setChildLink(label Label, child *Node[O], linkType LinkType) {
	i, ok := slices.BinarySearchFunc(n.children, label, func(l childLink[O], target Label) int {
		return cmp.Compare(l.label, target)
	})
	link := childLink[O]{label: label, child: child, linkType: linkType}
	if ok {
		n.children[i] = link
	} else {
		n.children = slices.Insert(n.children, i, link)
	}
	if linkType == Proper {
		child.properParent = n
		child.parentLabel = label
	}
}

// numChildren reports how many child links this node holds.
func (n *Node[O]) numChildren() int {
	return len(n.children)
}

// getContent returns the single content link and its classification. ok is
// false if no content link has been set.
func (n *Node[O]) getContent() (content[O], LinkType, bool) {
	if n.content == nil {
		return nil, Shared, false
	}
	return n.content, n.contentType, true
}

// setContent replaces the content link. If linkType is Proper, the
// pointee's owner back-pointer is set to n.
func (n *Node[O]) setContent(c content[O], linkType LinkType) {
	n.content = c
	n.contentType = linkType
	if linkType == Proper && c != nil {
		c.setOwner(n)
	}
}

// contentAsNode returns the content link interpreted as a Node, for
// intermediate-dimension descent.
func (n *Node[O]) contentAsNode() (*Node[O], bool) {
	if n.content == nil {
		return nil, false
	}
	cn, ok := n.content.(*Node[O])
	return cn, ok
}

// contentAsSummary returns the content link interpreted as a Summary, valid
// only at the last dimension.
func (n *Node[O]) contentAsSummary() (*Summary[O], bool) {
	if n.content == nil {
		return nil, false
	}
	cs, ok := n.content.(*Summary[O])
	return cs, ok
}

// shallowCopy returns a new Node whose child vector and content link are
// bit-copies of n, with every outgoing link forced Shared and both
// back-pointers cleared. The caller re-attaches the copy, which
// re-establishes whichever back-pointer applies.
func (n *Node[O]) shallowCopy(id arena.ID, trace uuid.UUID) *Node[O] {
	cp := newNode[O](id, trace)
	cp.children = make([]childLink[O], len(n.children))
	for i, l := range n.children {
		cp.children[i] = childLink[O]{label: l.label, child: l.child, linkType: Shared}
	}
	cp.content = n.content
	if n.content != nil {
		cp.contentType = Shared
	}
	return cp
}

// flag reports the node's transient insertion-scoped state, tracked
// out-of-line in a flags.Table rather than as a field on Node.
func (n *Node[O]) flag(table *flags.Table) flags.Flag {
	return table.Get(n.id)
}
