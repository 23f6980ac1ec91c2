// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

// Package nanocube implements an in-memory multidimensional aggregation
// index: a directed acyclic graph of nodes, shared across dimensions
// whenever two inserted addresses agree on a suffix, that answers aggregate
// queries at any prefix of an address in any dimension.
//
// A Nanocube is configured with one maximum depth per dimension and built up
// by repeated calls to Insert; Query answers a prefix lookup by returning the
// Summary reachable at that prefix, or nil if no inserted address extends it.
//
// The index is single-threaded, append-only, and never reclaims a node: the
// sharing invariant (structural reuse of subtrees that agree on an address
// suffix) is what keeps memory sublinear in the number of inserted objects,
// and preserving that invariant while mutating only the paths that change is
// the whole point of the Inserter in insert.go.
package nanocube
