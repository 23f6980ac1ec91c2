// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package nanocube

import "testing"

func TestSummary_Insert_IdempotentForEqualObjects(t *testing.T) {
	s := newSummary[int](0)
	s.Insert(7)
	s.Insert(7)
	s.Insert(3)

	if s.Len() != 2 {
		t.Fatalf("expected 2 distinct objects, got %d: %v", s.Len(), s.Objects())
	}
}

func TestSummary_Info_SortedSpaceJoined(t *testing.T) {
	s := newSummary[int](0)
	s.Insert(3)
	s.Insert(1)
	s.Insert(2)

	if got, want := s.Info(), "1 2 3"; got != want {
		t.Fatalf("Info() = %q, want %q", got, want)
	}
}

func TestSummary_ShallowCopy_IsIndependent(t *testing.T) {
	orig := newSummary[int](0)
	orig.Insert(1)

	cp := orig.shallowCopy(1)
	cp.Insert(2)

	if orig.Len() != 1 {
		t.Fatalf("mutating the copy must not affect the original, original has %v", orig.Objects())
	}
	if cp.Len() != 2 {
		t.Fatalf("expected copy to have both objects, got %v", cp.Objects())
	}
	if cp.owner != nil {
		t.Fatalf("fresh shallow copy must have no owner until re-attached")
	}
}
