// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tree models layered configuration trees and merges them.
//
// A decoded JSON document is classified once, by [FromMap] or [FromValue],
// into a [Node] of one of four kinds:
//   - [Mapping]: an object whose keys are merged and resolved one by one.
//   - [Sequence]: an array, kept as an opaque leaf.
//   - [Scalar]: a string, number, boolean or null.
//   - [Directive]: an object with exactly one key of the form "[name]",
//     a deferred call to the loader registered under name.
//
// [Merge] folds layers of increasing precedence into one tree. Only plain
// mappings are merged key by key; every other kind at a colliding key is
// replaced wholesale by the higher-precedence layer.
package tree
