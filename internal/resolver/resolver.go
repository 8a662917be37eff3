// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver turns a merged configuration tree into concrete values.
//
// Directives are replaced by the result of the named [Loader]; strings that
// are exactly one "${NAME}" placeholder are replaced by the environment
// variable NAME. Every key of a mapping is resolved in its own goroutine and
// a mapping is complete only once all of its descendants are. Sequences are
// opaque: nothing inside an array is resolved.
package resolver

import (
	"context"
	"maps"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/MKhiriev/typedconf/internal/tree"
)

// Resolver resolves trees against a fixed loader table. It is safe for
// concurrent use.
type Resolver struct {
	loaders   Loaders
	names     []string
	lookupEnv func(string) (string, bool)
	observer  Observer
	logger    *logger.Logger
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithLookupEnv replaces os.LookupEnv as the placeholder source.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(r *Resolver) {
		r.lookupEnv = lookup
	}
}

// WithObserver registers an observer of loader calls.
func WithObserver(o Observer) Option {
	return func(r *Resolver) {
		r.observer = o
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(l *logger.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// New returns a resolver for loaders. The table is copied, later changes to
// the caller's map are not seen.
func New(loaders Loaders, opts ...Option) *Resolver {
	table := maps.Clone(loaders)
	if table == nil {
		table = Loaders{}
	}

	r := &Resolver{
		loaders:   table,
		names:     table.Names(),
		lookupEnv: os.LookupEnv,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the concrete values of root. It returns as soon as the
// first loader is missing or fails, without waiting for loaders still in
// flight, and never returns a partial tree. An unset placeholder variable
// leaves its key out of the result.
//
// No timeout is applied and loader calls are not cancelled when a sibling
// fails; ctx is handed to every loader unchanged. Loaders left running after
// a failure finish in the background and their results are discarded.
func (r *Resolver) Resolve(ctx context.Context, root *tree.Node) (map[string]any, error) {
	if root == nil {
		return map[string]any{}, nil
	}
	if root.Kind() != tree.Mapping {
		return nil, ErrNotMapping
	}

	return r.resolveMapping(ctx, root, nil)
}

type resolvedValue struct {
	value any
	set   bool
}

func (r *Resolver) resolveMapping(ctx context.Context, node *tree.Node, path []string) (map[string]any, error) {
	keys := node.Keys()
	results := make([]resolvedValue, len(keys))

	// failed carries the first error so the mapping fails without waiting
	// for siblings that are still running.
	failed := make(chan error, 1)

	var g errgroup.Group
	for i, key := range keys {
		child, _ := node.Child(key)
		childPath := append(path[:len(path):len(path)], key)

		g.Go(func() error {
			value, set, err := r.resolveNode(ctx, child, childPath)
			if err != nil {
				select {
				case failed <- err:
				default:
				}
				return err
			}
			results[i] = resolvedValue{value: value, set: set}
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-failed:
		return nil, err
	case err := <-done:
		if err != nil {
			return nil, err
		}
	}

	out := make(map[string]any, len(keys))
	for i, key := range keys {
		if results[i].set {
			out[key] = results[i].value
		}
	}

	return out, nil
}

func (r *Resolver) resolveNode(ctx context.Context, node *tree.Node, path []string) (any, bool, error) {
	switch node.Kind() {
	case tree.Directive:
		value, err := r.callLoader(ctx, node, path)
		if err != nil {
			return nil, false, err
		}
		return value, true, nil

	case tree.Mapping:
		value, err := r.resolveMapping(ctx, node, path)
		if err != nil {
			return nil, false, err
		}
		return value, true, nil

	case tree.Scalar:
		if s, ok := node.Value().(string); ok {
			if name, ok := tree.PlaceholderName(s); ok {
				value, found := r.lookupEnv(name)
				return value, found, nil
			}
		}
		return node.Value(), true, nil

	default:
		return node.Value(), true, nil
	}
}

func (r *Resolver) callLoader(ctx context.Context, node *tree.Node, path []string) (any, error) {
	name := node.Loader()

	load, ok := r.loaders[name]
	if !ok {
		return nil, &LoaderNotFoundError{
			Name:      name,
			Path:      strings.Join(path, "."),
			Available: r.names,
		}
	}

	start := time.Now()
	value, err := load(ctx, node.Params())
	duration := time.Since(start)

	if r.observer != nil {
		r.observer.ObserveLoader(name, duration, err)
	}
	if err != nil {
		return nil, err
	}

	r.logger.Debug().
		Str("loader", name).
		Str("path", strings.Join(path, ".")).
		Dur("duration", duration).
		Msg("directive resolved")

	return value, nil
}
