// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package nanocube

import (
	"testing"

	"github.com/nanocube/nanocube/internal/flags"
)

func TestThread_StartFlagsTop(t *testing.T) {
	table := flags.New()
	root := mkNode(0)

	th := newThread[int](threadMain, table)
	th.start(root, 0, 0)

	if got := root.flag(table); got != flags.InMainPath {
		t.Fatalf("expected root flagged IN_MAIN_PATH, got %v", got)
	}
}

func TestThread_AdvanceChild_PushesAndFlags(t *testing.T) {
	table := flags.New()
	root := mkNode(0)
	child := mkNode(1)
	root.setChildLink(5, child, Proper)

	th := newThread[int](threadParallel, table)
	th.start(root, 0, 0)
	th.advanceChild(5)

	if th.top() != child {
		t.Fatalf("expected top to be child after advanceChild")
	}
	if got := child.flag(table); got != flags.InParallelPath {
		t.Fatalf("expected child flagged IN_PARALLEL_PATH, got %v", got)
	}
	if th.currentLayer() != 1 {
		t.Fatalf("expected layer 1 after one advanceChild, got %d", th.currentLayer())
	}
}

func TestThread_AdvanceContent_IncrementsDimResetsLayer(t *testing.T) {
	table := flags.New()
	root := mkNode(0)
	child := mkNode(1)
	root.setChildLink(1, child, Proper)
	next := mkNode(2)
	child.setContent(next, Proper)

	th := newThread[int](threadMain, table)
	th.start(root, 0, 0)
	th.advanceChild(1)
	th.advanceContent()

	if th.currentDim() != 1 || th.currentLayer() != 0 {
		t.Fatalf("expected (dim=1,layer=0) after advanceContent, got (%d,%d)", th.currentDim(), th.currentLayer())
	}
}

func TestThread_Rewind_ClearsFlagAndPops(t *testing.T) {
	table := flags.New()
	root := mkNode(0)
	child := mkNode(1)
	root.setChildLink(2, child, Proper)

	th := newThread[int](threadMain, table)
	th.start(root, 0, 0)
	th.advanceChild(2)
	th.rewind()

	if th.top() != root {
		t.Fatalf("expected top to be root after rewind")
	}
	if got := child.flag(table); got != flags.None {
		t.Fatalf("expected child's flag cleared after rewind, got %v", got)
	}
}

func TestParallelThreadSet_GetFirstProperChild(t *testing.T) {
	table := flags.New()
	root1 := mkNode(0)
	root2 := mkNode(1)
	properChild := mkNode(2)
	root2.setChildLink(9, properChild, Proper)

	set := newParallelThreadSet[int](table)
	set.push(root1, 0, 0)
	set.push(root2, 0, 0)

	got := set.getFirstProperChild(9)
	if got != properChild {
		t.Fatalf("expected to find proper child from the second thread, got %v", got)
	}
	if got := set.getFirstProperChild(123); got != nil {
		t.Fatalf("expected nil for an absent label, got %v", got)
	}
}

func TestParallelThreadSet_GetFirstSummary_OnlyInspectsFirstThread(t *testing.T) {
	table := flags.New()
	rootWithSummary := mkNode(0)
	s := newSummary[int](10)
	rootWithSummary.setContent(s, Proper)

	rootWithoutSummary := mkNode(1)

	set := newParallelThreadSet[int](table)
	set.push(rootWithoutSummary, 0, 0)
	set.push(rootWithSummary, 0, 0)

	// The first pushed thread has no summary; getFirstSummary must not fall
	// through to the second.
	if got := set.getFirstSummary(); got != nil {
		t.Fatalf("expected nil because the first thread's content isn't a summary, got %v", got)
	}
}

func TestParallelThreadSet_PushPopSymmetry(t *testing.T) {
	table := flags.New()
	root := mkNode(0)

	set := newParallelThreadSet[int](table)
	set.push(root, 0, 0)
	if set.len() != 1 {
		t.Fatalf("expected 1 thread after push")
	}
	set.top().rewind()
	set.pop()
	if set.len() != 0 {
		t.Fatalf("expected 0 threads after pop")
	}
}
