// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package nanocube

// Query walks addr from the root: for each dimension, each label descends
// by child link; between dimensions it steps through the content link as a
// Node. Returns the Summary reachable at addr, or nil if any descent fails
// or the cube is empty. A per-dimension path shorter than the declared
// depth is a valid prefix query.
func (n *Nanocube[O]) Query(addr Address) (*Summary[O], error) {
	if err := n.validateAddress(addr); err != nil {
		return nil, err
	}
	if n.root == nil {
		return nil, nil
	}

	node := n.root
	for d, path := range addr {
		for _, label := range path {
			child, _, ok := node.getChild(label)
			if !ok {
				return nil, nil
			}
			node = child
		}
		if d < len(addr)-1 {
			next, ok := node.contentAsNode()
			if !ok {
				return nil, nil
			}
			node = next
		}
	}

	summary, _ := node.contentAsSummary()
	return summary, nil
}
