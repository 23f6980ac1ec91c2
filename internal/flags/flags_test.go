// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package flags

import (
	"testing"

	"github.com/nanocube/nanocube/internal/arena"
)

func TestTable_SetMainThenGet(t *testing.T) {
	table := New()
	table.SetMain(5)

	if got := table.Get(5); got != InMainPath {
		t.Fatalf("Get(5) = %v, want InMainPath", got)
	}
	if got := table.Get(6); got != None {
		t.Fatalf("Get(6) = %v, want None for an untouched id", got)
	}
}

func TestTable_SetMainAndParallel_AreMutuallyExclusive(t *testing.T) {
	table := New()
	table.SetMain(1)
	table.SetParallel(1)

	if got := table.Get(1); got != InParallelPath {
		t.Fatalf("Get(1) = %v, want InParallelPath after overriding SetMain", got)
	}

	table.SetMain(1)
	if got := table.Get(1); got != InMainPath {
		t.Fatalf("Get(1) = %v, want InMainPath after overriding SetParallel", got)
	}
}

func TestTable_Clear(t *testing.T) {
	table := New()
	table.SetMain(3)
	table.Clear(3)

	if got := table.Get(3); got != None {
		t.Fatalf("Get(3) = %v, want None after Clear", got)
	}
}

func TestTable_Reset_ClearsEveryTouchedID(t *testing.T) {
	table := New()
	ids := []arena.ID{1, 2, 3}
	for _, id := range ids {
		table.SetMain(id)
	}
	table.SetParallel(4)

	table.Reset()

	for _, id := range append(ids, 4) {
		if got := table.Get(id); got != None {
			t.Fatalf("Get(%d) = %v after Reset, want None", id, got)
		}
	}
}

func TestTable_Reset_IsIdempotentAndReusable(t *testing.T) {
	table := New()
	table.SetMain(1)
	table.Reset()
	table.Reset()

	table.SetParallel(1)
	if got := table.Get(1); got != InParallelPath {
		t.Fatalf("table should remain usable after repeated Reset calls, got %v", got)
	}
}
