// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package nanocube

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for a specific kind; wrapped errors
// carry the offending address/dimension for diagnostics.
var (
	// ErrMalformedAddress is returned at the API boundary: address length
	// != D, or a per-dimension path longer than the declared depth for
	// that dimension. No state change occurs.
	ErrMalformedAddress = errors.New("nanocube: malformed address")

	// ErrInternalInvariantViolation marks a bug in the sharing/switch
	// proof, e.g. Phase 1 declaring a branch switchable when no parallel
	// thread actually owns a proper child under the label. It is raised
	// before the link under consideration is rewritten; links already
	// rewritten earlier in the same Insert stay as they are.
	ErrInternalInvariantViolation = errors.New("nanocube: internal invariant violation")

	// ErrAllocationFailure names the allocation-failure error kind. No code
	// path in this package returns it: allocating a Node or Summary does
	// not report failure as an error.
	ErrAllocationFailure = errors.New("nanocube: allocation failure")
)

func malformedAddressf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedAddress, fmt.Sprintf(format, args...))
}

func invariantViolationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInternalInvariantViolation, fmt.Sprintf(format, args...))
}
