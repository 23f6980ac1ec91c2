// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package nanocube

import (
	"cmp"

	"go.uber.org/zap"

	"github.com/nanocube/nanocube/internal/flags"
)

// inserter holds the state shared by every frame of the recursive insertAt
// procedure for a single top-level Insert call.
type inserter[O cmp.Ordered] struct {
	nc    *Nanocube[O]
	addr  Address
	obj   O
	table *flags.Table
}

// Insert adds obj under address addr, creating the root if absent and
// cascading a copy-on-write / switch-equivalence pass through every
// dimension. addr must have one path per configured dimension.
func (n *Nanocube[O]) Insert(addr Address, obj O) error {
	if err := n.validateAddress(addr); err != nil {
		return err
	}
	if n.root == nil {
		n.root = n.newNode(0, 0)
	}

	table := flags.New()
	defer table.Reset() // clear every flag on every exit path

	main := newThread[O](threadMain, table)
	parallel := newParallelThreadSet[O](table)
	main.start(n.root, 0, 0)
	n.events.HighlightNode(n.root.trace.String(), ColorMain)
	defer n.events.HighlightNode(n.root.trace.String(), ColorClear)

	ins := &inserter[O]{nc: n, addr: addr, obj: obj, table: table}
	return ins.insertAt(main, parallel)
}

// insertAt is the recursive per-dimension insertion procedure. main tracks
// the address currently being inserted; parallel tracks sibling content
// subgraphs that may supply switch-equivalent subtrees.
func (ins *inserter[O]) insertAt(main *Thread[O], parallel *ParallelThreadSet[O]) error {
	nc := ins.nc
	d := main.currentDim()
	path := ins.addr[d]
	lastDim := d == nc.dim-1

	nc.log.Debug("insertAt", zap.Int("dim", d), zap.Int("path_len", len(path)))

	// Phase 1: descend dimension d along labels path, reconciling sharing.
	index := 0
	for index < len(path) {
		label := path[index]
		parent := main.top()
		child, linkType, ok := parent.getChild(label)

		halt := false
		switch {
		case ok && linkType == Shared:
			if switchable(child, ins.table) {
				newChild := parallel.getFirstProperChild(label)
				if newChild == nil {
					return invariantViolationf(
						"phase1: child under label %d proved switchable but no parallel thread owns a proper child there", label)
				}
				if newChild != child {
					parent.setChildLink(label, newChild, Shared)
					nc.emitChildLink(parent, label)
				}
				halt = true
			} else {
				cp := nc.cloneNode(child, main.currentDim(), main.currentLayer()+1)
				parent.setChildLink(label, cp, Proper)
				nc.emitChildLink(parent, label)
			}
		case ok:
			// Case B: PROPER child already present, just descend.
		default:
			// Case C: no child under label.
			if sibling := parallel.getFirstProperChild(label); sibling != nil {
				parent.setChildLink(label, sibling, Shared)
				nc.emitChildLink(parent, label)
				halt = true
			} else {
				nn := nc.newNode(main.currentDim(), main.currentLayer()+1)
				parent.setChildLink(label, nn, Proper)
				nc.emitChildLink(parent, label)
			}
		}

		if halt {
			break
		}
		main.advanceChild(label)
		parallel.advanceChild(label)
		index++
	}

	// Phase 2: ascend back up dimension d, updating content links.
	for i := index; i >= 0; i-- {
		parent := main.top()

		switch {
		case parent.numChildren() == 1:
			child := parent.children[0].child
			content, _, _ := child.getContent()
			parent.setContent(content, Shared)
			nc.emitContentLink(parent)

		case !lastDim:
			if err := ins.intermediateStep(main, parallel, parent, i); err != nil {
				return err
			}

		default:
			if err := ins.lastDimStep(parallel, parent, d); err != nil {
				return err
			}
		}

		parallel.rewind()
		main.rewind()
	}

	return nil
}

func (ins *inserter[O]) intermediateStep(main *Thread[O], parallel *ParallelThreadSet[O], parent *Node[O], i int) error {
	nc := ins.nc

	_, contentType, hasContent := parent.getContent()
	switch {
	case !hasContent:
		child := nc.newNode(main.currentDim()+1, 0)
		parent.setContent(child, Proper)
		nc.emitContentLink(parent)
	case contentType == Shared:
		oldContent, _ := parent.contentAsNode()
		cp := nc.cloneNode(oldContent, main.currentDim()+1, 0)
		parent.setContent(cp, Proper)
		nc.emitContentLink(parent)
	}

	pushed := false
	dimPath := ins.addr[main.currentDim()]
	if i < len(dimPath) && parent.numChildren() > 0 {
		label := dimPath[i]
		sibling, _, ok := parent.getChild(label)
		if ok {
			parallel.push(sibling, main.currentDim(), main.currentLayer()+1)
			pushed = true
		}
	}

	main.advanceContent()
	parallel.advanceContent()

	err := ins.insertAt(main, parallel)

	if pushed {
		parallel.top().rewind()
		parallel.pop()
	}

	return err
}

// lastDimStep implements the last Phase 2 step: the content link at the
// last dimension addresses a Summary rather than another Node.
func (ins *inserter[O]) lastDimStep(parallel *ParallelThreadSet[O], parent *Node[O], dim int) error {
	nc := ins.nc

	_, contentType, hasContent := parent.getContent()
	switch {
	case !hasContent:
		if sibling := parallel.getFirstSummary(); sibling != nil {
			parent.setContent(sibling, Shared)
			nc.emitContentLink(parent)
			return nil
		}
		s := nc.newSummary()
		s.Insert(ins.obj)
		parent.setContent(s, Proper)
		nc.emitContentLink(parent)
		nc.emitStore(s, ins.obj)

	case contentType == Shared:
		summary, _ := parent.contentAsSummary()
		if switchableSelfOrAncestors(summary.owner, ins.table) {
			sibling := parallel.getFirstSummary()
			if sibling == nil {
				return invariantViolationf("phase2(last-dim): summary proved switchable but no parallel thread offers one")
			}
			if sibling.owner != nil {
				return invariantViolationf("phase2(last-dim): switching would give summary a second PROPER owner")
			}
			// Asymmetric with the intermediate-dimension switch: re-parenting
			// ownership to the current node is what "needs its own mutable
			// summary going forward" means here.
			parent.setContent(sibling, Proper)
			nc.emitContentLink(parent)
		} else {
			cp := nc.cloneSummary(summary, dim+1, 0)
			cp.Insert(ins.obj)
			parent.setContent(cp, Proper)
			nc.emitContentLink(parent)
			nc.emitStore(cp, ins.obj)
		}

	default: // Proper
		summary, _ := parent.contentAsSummary()
		summary.Insert(ins.obj)
		nc.emitStore(summary, ins.obj)
	}

	return nil
}
