// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"iter"
	"maps"
	"slices"
)

// Kind is the classification of a [Node].
type Kind uint8

const (
	Scalar Kind = iota
	Sequence
	Mapping
	Directive
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	case Directive:
		return "directive"
	default:
		return "unknown"
	}
}

// Node is an immutable configuration tree node. The zero value is not
// usable; build nodes with [FromMap], [FromValue] or the New* constructors.
type Node struct {
	kind Kind

	// value holds the scalar value or, for sequences, the raw []any items.
	value any

	children map[string]*Node

	loader string
	params any
}

// Empty returns a mapping with no keys, the identity element of [Merge].
func Empty() *Node {
	return &Node{kind: Mapping, children: map[string]*Node{}}
}

// FromMap classifies a decoded document. The root is always a mapping,
// even when its only key is bracketed: directives are recognised on values,
// never on the layer itself.
func FromMap(m map[string]any) *Node {
	children := make(map[string]*Node, len(m))
	for key, value := range m {
		children[key] = FromValue(value)
	}
	return &Node{kind: Mapping, children: children}
}

// FromValue classifies a decoded JSON value.
func FromValue(v any) *Node {
	switch value := v.(type) {
	case map[string]any:
		if name, params, ok := DirectiveOf(value); ok {
			return NewDirective(name, params)
		}
		return FromMap(value)
	case []any:
		return NewSequence(value)
	default:
		return NewScalar(value)
	}
}

// NewMapping wraps children into a mapping node. The map is owned by the
// returned node afterwards.
func NewMapping(children map[string]*Node) *Node {
	if children == nil {
		children = map[string]*Node{}
	}
	return &Node{kind: Mapping, children: children}
}

// NewDirective returns a directive invoking loader with params.
func NewDirective(loader string, params any) *Node {
	return &Node{kind: Directive, loader: loader, params: params}
}

// NewSequence returns an opaque sequence leaf.
func NewSequence(items []any) *Node {
	return &Node{kind: Sequence, value: items}
}

// NewScalar returns a scalar leaf.
func NewScalar(v any) *Node {
	return &Node{kind: Scalar, value: v}
}

// Kind returns the node classification.
func (n *Node) Kind() Kind {
	return n.kind
}

// Value returns the scalar value, or the []any items of a sequence.
func (n *Node) Value() any {
	return n.value
}

// Loader returns the loader name of a directive.
func (n *Node) Loader() string {
	return n.loader
}

// Params returns the parameter payload of a directive.
func (n *Node) Params() any {
	return n.params
}

// Len returns the number of keys of a mapping and zero for other kinds.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the child stored under key in a mapping.
func (n *Node) Child(key string) (*Node, bool) {
	child, ok := n.children[key]
	return child, ok
}

// Keys returns the keys of a mapping in sorted order.
func (n *Node) Keys() []string {
	return slices.Sorted(maps.Keys(n.children))
}

// All iterates over the children of a mapping in unspecified order.
func (n *Node) All() iter.Seq2[string, *Node] {
	return maps.All(n.children)
}

// Lookup walks path through nested mappings.
func (n *Node) Lookup(path ...string) (*Node, bool) {
	current := n
	for _, key := range path {
		if current.kind != Mapping {
			return nil, false
		}
		next, ok := current.children[key]
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Interface converts the node back into plain values: map[string]any for
// mappings, {"[name]": params} for directives, []any for sequences.
func (n *Node) Interface() any {
	switch n.kind {
	case Mapping:
		m := make(map[string]any, len(n.children))
		for key, child := range n.children {
			m[key] = child.Interface()
		}
		return m
	case Directive:
		return map[string]any{"[" + n.loader + "]": n.params}
	default:
		return n.value
	}
}
