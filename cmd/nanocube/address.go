// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nanocube/nanocube"
)

// parseAddress parses the CLI address format: per-dimension paths separated
// by "/", labels within a path separated by ".". An empty segment between
// slashes denotes a zero-length (prefix) path for that dimension, e.g.
// "0.0/" for a 2-dimension address whose second dimension path is empty.
func parseAddress(s string) (nanocube.Address, error) {
	dims := strings.Split(s, "/")
	addr := make(nanocube.Address, len(dims))
	for d, seg := range dims {
		if seg == "" {
			addr[d] = nil
			continue
		}
		labels := strings.Split(seg, ".")
		path := make([]nanocube.Label, len(labels))
		for i, l := range labels {
			v, err := strconv.Atoi(l)
			if err != nil {
				return nil, fmt.Errorf("address: dimension %d label %q: %w", d, l, err)
			}
			path[i] = nanocube.Label(v)
		}
		addr[d] = path
	}
	return addr, nil
}
