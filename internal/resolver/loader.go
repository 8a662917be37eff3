// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"context"
	"maps"
	"slices"
	"time"
)

// Loader computes the value of a directive from its parameter payload. The
// payload is passed exactly as decoded from the configuration source.
// Loaders may block; they are called concurrently with their siblings and
// must be safe for concurrent use.
type Loader func(ctx context.Context, params any) (any, error)

// Loaders is a loader table keyed by the name used inside directive
// brackets.
type Loaders map[string]Loader

// Names returns the registered loader names in sorted order.
func (l Loaders) Names() []string {
	return slices.Sorted(maps.Keys(l))
}

// Observer is notified after every loader call.
type Observer interface {
	ObserveLoader(name string, duration time.Duration, err error)
}
