// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

// Merge folds layers, lowest precedence first, into a single mapping.
// A nil layer counts as empty. The inputs are not modified; unchanged
// subtrees are shared with the result.
func Merge(layers ...*Node) *Node {
	merged := Empty()
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		merged = mergePair(merged, layer)
	}
	return merged
}

// mergePair overlays b on a. Keys holding plain mappings on both sides are
// merged recursively, everything else is taken from b as is.
func mergePair(a, b *Node) *Node {
	children := make(map[string]*Node, len(a.children)+len(b.children))
	for key, child := range a.children {
		children[key] = child
	}

	for key, bChild := range b.children {
		aChild, ok := a.children[key]
		if ok && aChild.kind == Mapping && bChild.kind == Mapping {
			children[key] = mergePair(aChild, bChild)
			continue
		}
		children[key] = bChild
	}

	return &Node{kind: Mapping, children: children}
}
