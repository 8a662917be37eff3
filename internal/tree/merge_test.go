// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func merged(layers ...map[string]any) any {
	nodes := make([]*Node, 0, len(layers))
	for _, layer := range layers {
		nodes = append(nodes, FromMap(layer))
	}
	return Merge(nodes...).Interface()
}

// ── precedence ────────────────────────────────────────────────────────────────

// TestMerge_NestedMappingsRecurse verifies the default/environment example:
// nested mappings merge key by key.
func TestMerge_NestedMappingsRecurse(t *testing.T) {
	base := map[string]any{"foo": "default", "bar": map[string]any{"a": 1.0, "b": 2.0}}
	env := map[string]any{"bar": map[string]any{"a": 1.0, "b": 5.0}}

	assert.Equal(t,
		map[string]any{"foo": "default", "bar": map[string]any{"a": 1.0, "b": 5.0}},
		merged(base, env),
	)
}

// TestMerge_ArraysReplaceWholesale verifies that arrays are never
// concatenated nor merged element-wise.
func TestMerge_ArraysReplaceWholesale(t *testing.T) {
	base := map[string]any{"x": []any{1.0, 2.0, 3.0}}
	env := map[string]any{"x": []any{4.0, 5.0, 6.0}}

	assert.Equal(t, map[string]any{"x": []any{4.0, 5.0, 6.0}}, merged(base, env))
}

// TestMerge_ShorterArrayWins verifies that a shorter array does not keep the
// tail of a longer one.
func TestMerge_ShorterArrayWins(t *testing.T) {
	base := map[string]any{"x": []any{1.0, 2.0, 3.0}}
	env := map[string]any{"x": []any{9.0}}

	assert.Equal(t, map[string]any{"x": []any{9.0}}, merged(base, env))
}

// TestMerge_DirectivesAreOpaque verifies that a directive replaces a
// mapping, and a mapping replaces a directive, with no key-level merge.
func TestMerge_DirectivesAreOpaque(t *testing.T) {
	tests := []struct {
		name string
		a, b map[string]any
		want map[string]any
	}{
		{
			name: "directive over mapping",
			a:    map[string]any{"db": map[string]any{"host": "localhost", "port": 5432.0}},
			b:    map[string]any{"db": map[string]any{"[secret]": "db"}},
			want: map[string]any{"db": map[string]any{"[secret]": "db"}},
		},
		{
			name: "mapping over directive",
			a:    map[string]any{"db": map[string]any{"[secret]": "db"}},
			b:    map[string]any{"db": map[string]any{"host": "remote"}},
			want: map[string]any{"db": map[string]any{"host": "remote"}},
		},
		{
			name: "directive over directive",
			a:    map[string]any{"db": map[string]any{"[secret]": "a"}},
			b:    map[string]any{"db": map[string]any{"[file]": "b"}},
			want: map[string]any{"db": map[string]any{"[file]": "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, merged(tt.a, tt.b))
		})
	}
}

// TestMerge_MixedKindsHigherPrecedenceWins verifies collisions between
// different kinds.
func TestMerge_MixedKindsHigherPrecedenceWins(t *testing.T) {
	tests := []struct {
		name string
		a, b any
	}{
		{name: "scalar over mapping", a: map[string]any{"k": "v"}, b: "flat"},
		{name: "mapping over scalar", a: "flat", b: map[string]any{"k": "v"}},
		{name: "array over mapping", a: map[string]any{"k": "v"}, b: []any{"x"}},
		{name: "mapping over array", a: []any{"x"}, b: map[string]any{"k": "v"}},
		{name: "null over mapping", a: map[string]any{"k": "v"}, b: nil},
		{name: "scalar over scalar", a: 1.0, b: "one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := merged(map[string]any{"key": tt.a}, map[string]any{"key": tt.b})
			assert.Equal(t, map[string]any{"key": tt.b}, got)
		})
	}
}

// TestMerge_FiveLayerOrder verifies the fixed precedence of a full layer set.
func TestMerge_FiveLayerOrder(t *testing.T) {
	base := map[string]any{"a": "base", "b": "base", "c": "base", "d": "base", "e": "base"}
	env := map[string]any{"b": "env", "c": "env", "d": "env", "e": "env"}
	dep := map[string]any{"c": "dep", "d": "dep", "e": "dep"}
	user := map[string]any{"d": "user", "e": "user"}
	over := map[string]any{"e": "override"}

	assert.Equal(t,
		map[string]any{"a": "base", "b": "env", "c": "dep", "d": "user", "e": "override"},
		merged(base, env, dep, user, over),
	)
}

// ── identities ────────────────────────────────────────────────────────────────

func TestMerge_NoLayers(t *testing.T) {
	assert.Equal(t, map[string]any{}, Merge().Interface())
}

func TestMerge_TwoEmptyLayers(t *testing.T) {
	assert.Equal(t, map[string]any{}, merged(map[string]any{}, map[string]any{}))
}

// TestMerge_SingleLayerUnchanged verifies that the empty mapping is the
// identity element of the fold.
func TestMerge_SingleLayerUnchanged(t *testing.T) {
	layer := map[string]any{
		"a": map[string]any{"b": []any{1.0}, "c": map[string]any{"[x]": nil}},
		"d": nil,
	}
	assert.Equal(t, layer, merged(layer))
}

// TestMerge_EmptyLayerIsRightIdentity verifies that merging an empty
// override onto a result changes nothing.
func TestMerge_EmptyLayerIsRightIdentity(t *testing.T) {
	base := map[string]any{"a": map[string]any{"b": 1.0}, "c": []any{"x"}}
	env := map[string]any{"a": map[string]any{"z": true}}

	assert.Equal(t, merged(base, env), merged(base, env, map[string]any{}))
}

// TestMerge_NilLayerIsEmpty verifies that absent layers are skipped.
func TestMerge_NilLayerIsEmpty(t *testing.T) {
	base := FromMap(map[string]any{"a": 1.0})
	assert.Equal(t, map[string]any{"a": 1.0}, Merge(nil, base, nil).Interface())
}

// TestMerge_KeysFromSingleLayerPreserved verifies identity preservation for
// keys that only one layer defines.
func TestMerge_KeysFromSingleLayerPreserved(t *testing.T) {
	base := map[string]any{"only_base": map[string]any{"x": []any{1.0}}}
	env := map[string]any{"only_env": map[string]any{"[load]": "p"}}

	got := merged(base, env).(map[string]any)
	assert.Equal(t, base["only_base"], got["only_base"])
	assert.Equal(t, env["only_env"], got["only_env"])
}

// TestMerge_LeftFoldAssociativity verifies merge([A,B,C]) == merge([merge([A,B]),C]).
func TestMerge_LeftFoldAssociativity(t *testing.T) {
	a := FromMap(map[string]any{
		"s": "a",
		"m": map[string]any{"x": 1.0, "y": map[string]any{"p": "a"}},
		"d": map[string]any{"[load]": 1.0},
	})
	b := FromMap(map[string]any{
		"m": map[string]any{"y": map[string]any{"q": "b"}, "arr": []any{1.0}},
		"d": map[string]any{"k": "b"},
	})
	c := FromMap(map[string]any{
		"s": map[string]any{"now": "mapping"},
		"m": map[string]any{"x": []any{"c"}, "y": map[string]any{"p": "c"}},
	})

	assert.Equal(t, Merge(a, b, c).Interface(), Merge(Merge(a, b), c).Interface())
}

// TestMerge_InputsNotModified verifies that merging never mutates a layer.
func TestMerge_InputsNotModified(t *testing.T) {
	a := FromMap(map[string]any{"m": map[string]any{"x": 1.0}})
	b := FromMap(map[string]any{"m": map[string]any{"y": 2.0}})

	_ = Merge(a, b)

	assert.Equal(t, map[string]any{"m": map[string]any{"x": 1.0}}, a.Interface())
	assert.Equal(t, map[string]any{"m": map[string]any{"y": 2.0}}, b.Interface())
}
