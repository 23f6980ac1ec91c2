// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package main

import (
	"slices"
	"testing"

	"github.com/nanocube/nanocube"
)

func TestParseAddress_TwoDimensions(t *testing.T) {
	got, err := parseAddress("0.1/2")
	if err != nil {
		t.Fatalf("parseAddress error: %v", err)
	}
	want := nanocube.Address{
		{0, 1},
		{2},
	}
	if !slices.Equal(got[0], want[0]) || !slices.Equal(got[1], want[1]) {
		t.Fatalf("parseAddress(%q) = %v, want %v", "0.1/2", got, want)
	}
}

func TestParseAddress_EmptySegmentIsZeroLengthPath(t *testing.T) {
	got, err := parseAddress("0.0/")
	if err != nil {
		t.Fatalf("parseAddress error: %v", err)
	}
	if len(got) != 2 || got[1] != nil {
		t.Fatalf("expected an empty second-dimension path, got %v", got)
	}
}

func TestParseAddress_InvalidLabel(t *testing.T) {
	if _, err := parseAddress("abc"); err == nil {
		t.Fatalf("expected an error for a non-numeric label")
	}
}
