// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package nanocube

import (
	"cmp"

	"github.com/nanocube/nanocube/internal/flags"
)

type frameKind uint8

const (
	frameRoot frameKind = iota
	frameChild
	frameContent
)

type threadKind uint8

const (
	threadMain threadKind = iota
	threadParallel
)

// frame is one entry of a Thread's descent stack: the node visited, how it
// was reached, and its (dimension, layer) coordinates.
type frame[O cmp.Ordered] struct {
	node  *Node[O]
	kind  frameKind
	dim   int
	layer int
}

// Thread is a single descent stack through the DAG. A MAIN thread tracks
// the address currently being inserted; a PARALLEL thread tracks a sibling
// content subgraph that may supply switch-equivalent subtrees. Both are
// backed by the same stack-scoped flags.Table.
type Thread[O cmp.Ordered] struct {
	kind  threadKind
	stack []frame[O]
	table *flags.Table
}

func newThread[O cmp.Ordered](kind threadKind, table *flags.Table) *Thread[O] {
	return &Thread[O]{kind: kind, table: table}
}

func (t *Thread[O]) flagTop(set bool) {
	top := t.stack[len(t.stack)-1].node
	if !set {
		t.table.Clear(top.id)
		return
	}
	if t.kind == threadMain {
		t.table.SetMain(top.id)
	} else {
		t.table.SetParallel(top.id)
	}
}

// start pushes root as the thread's first frame and flags it.
func (t *Thread[O]) start(root *Node[O], dim, layer int) {
	t.stack = append(t.stack, frame[O]{node: root, kind: frameRoot, dim: dim, layer: layer})
	t.flagTop(true)
}

// advanceChild pushes top's child under label.
func (t *Thread[O]) advanceChild(label Label) {
	top := t.top()
	child, _, ok := top.getChild(label)
	if !ok {
		panic("nanocube: advanceChild on a label with no child")
	}
	cur := t.stack[len(t.stack)-1]
	t.stack = append(t.stack, frame[O]{node: child, kind: frameChild, dim: cur.dim, layer: cur.layer + 1})
	t.flagTop(true)
}

// advanceContent pushes top's content interpreted as a Node, incrementing
// dim and resetting layer to 0.
func (t *Thread[O]) advanceContent() {
	top := t.top()
	content, ok := top.contentAsNode()
	if !ok {
		panic("nanocube: advanceContent on a node with no content-as-node")
	}
	cur := t.stack[len(t.stack)-1]
	t.stack = append(t.stack, frame[O]{node: content, kind: frameContent, dim: cur.dim + 1, layer: 0})
	t.flagTop(true)
}

// rewind clears the top frame's flag and pops it.
func (t *Thread[O]) rewind() {
	t.flagTop(false)
	t.stack = t.stack[:len(t.stack)-1]
}

// top returns the node at the top of the descent stack.
func (t *Thread[O]) top() *Node[O] {
	return t.stack[len(t.stack)-1].node
}

func (t *Thread[O]) currentDim() int {
	return t.stack[len(t.stack)-1].dim
}

func (t *Thread[O]) currentLayer() int {
	return t.stack[len(t.stack)-1].layer
}

// ParallelThreadSet is an ordered collection of PARALLEL Threads advanced in
// lockstep with the MAIN thread during insertion.
type ParallelThreadSet[O cmp.Ordered] struct {
	table   *flags.Table
	threads []*Thread[O]
}

func newParallelThreadSet[O cmp.Ordered](table *flags.Table) *ParallelThreadSet[O] {
	return &ParallelThreadSet[O]{table: table}
}

// push starts a new parallel thread at a coarser-dimension sibling
// discovered during insertion.
func (p *ParallelThreadSet[O]) push(root *Node[O], dim, layer int) {
	th := newThread[O](threadParallel, p.table)
	th.start(root, dim, layer)
	p.threads = append(p.threads, th)
}

// pop discards the most recently pushed thread. The caller must rewind it
// first.
func (p *ParallelThreadSet[O]) pop() {
	p.threads = p.threads[:len(p.threads)-1]
}

func (p *ParallelThreadSet[O]) advanceChild(label Label) {
	for _, th := range p.threads {
		th.advanceChild(label)
	}
}

func (p *ParallelThreadSet[O]) advanceContent() {
	for _, th := range p.threads {
		th.advanceContent()
	}
}

// rewind rewinds every contained thread by one frame.
func (p *ParallelThreadSet[O]) rewind() {
	for _, th := range p.threads {
		th.rewind()
	}
}

// top returns the most recently pushed thread, for callers that need to
// rewind it individually before popping.
func (p *ParallelThreadSet[O]) top() *Thread[O] {
	return p.threads[len(p.threads)-1]
}

// getFirstProperChild scans the threads in push order and returns the PROPER
// child under label of the first thread whose top has one, or nil if none of
// the contained threads has one.
func (p *ParallelThreadSet[O]) getFirstProperChild(label Label) *Node[O] {
	for _, th := range p.threads {
		child, linkType, ok := th.top().getChild(label)
		if ok && linkType == Proper {
			return child
		}
	}
	return nil
}

// getFirstSummary returns the first thread's top content interpreted as a
// Summary, or nil if there is no first thread or its content isn't a
// Summary. By design it only ever inspects the first contained thread.
func (p *ParallelThreadSet[O]) getFirstSummary() *Summary[O] {
	if len(p.threads) == 0 {
		return nil
	}
	s, _ := p.threads[0].top().contentAsSummary()
	return s
}

// getAnyContent returns the first thread's top content link, or nil if there
// is no first thread.
func (p *ParallelThreadSet[O]) getAnyContent() content[O] {
	if len(p.threads) == 0 {
		return nil
	}
	c, _, _ := p.threads[0].top().getContent()
	return c
}

// len reports how many parallel threads are active.
func (p *ParallelThreadSet[O]) len() int {
	return len(p.threads)
}
