// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package nanocube

// LinkType classifies every outgoing link (child or content) of a Node as
// either owning (Proper) or non-owning (Shared).
type LinkType uint8

const (
	// Shared marks a non-owning link: the pointee's back-pointer refers
	// elsewhere, and the pointee must remain reachable via some other
	// Proper chain.
	Shared LinkType = iota
	// Proper marks the unique owning link: the pointee's back-pointer
	// refers here.
	Proper
)

func (t LinkType) String() string {
	if t == Proper {
		return "PROPER"
	}
	return "SHARED"
}

// Label identifies one edge out of a Node within a single dimension. Labels
// are small non-negative integers; the zero value is a valid label.
type Label int

// Address gives, for every dimension, the root-to-leaf sequence of Labels
// identifying a hierarchical cell in that dimension. len(Address) must equal
// the Nanocube's dimension count on Insert; a Query may supply a shorter
// per-dimension path (a prefix query).
type Address [][]Label
