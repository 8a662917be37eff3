// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package typedconf resolves layered JSON configuration for applications
// that embed it.
//
// # Layers
//
// A configuration directory holds default.json and, optionally,
// environments/{name}.json, deployments/{name}.json and users/{name}.json.
// Layers are deep-merged in that order of increasing precedence, followed by
// an inline override object. Arrays and directives replace rather than merge.
//
// # Resolution
//
// An object with a single "[name]" key is a directive: the loader registered
// under name is called with the key's value and its result replaces the
// object. A string of the form "${VAR}" is replaced by the environment
// variable VAR, and its key is dropped when VAR is unset. Loaders at one
// level of the tree run concurrently.
//
//	conf := typedconf.New("config", typedconf.Loaders{
//		"secret": func(ctx context.Context, params any) (any, error) {
//			return vault.Read(ctx, params.(string))
//		},
//	})
//	snapshot, err := conf.Load(ctx)
//
// The first successful Load publishes a [Snapshot] that Get and Value serve
// until the next successful Load or Reload.
package typedconf
