// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides settings loading, merging, and validation for
// typedconf, and turns those settings into the layer selectors of a
// resolution cycle.
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON settings file
//
// The main entry point is [GetSettings]; [Settings.Selectors] derives the
// environment, deployment, user and override layers.
package config
