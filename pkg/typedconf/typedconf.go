// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package typedconf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/typedconf/internal/loaders"
	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/MKhiriev/typedconf/internal/resolver"
	"github.com/MKhiriev/typedconf/internal/service"
	"github.com/MKhiriev/typedconf/internal/source"
	"github.com/MKhiriev/typedconf/models"
)

// Loader produces the value of a directive from its parameters. Its result
// is stored in the snapshot as is.
type Loader = resolver.Loader

// Loaders maps directive names to loaders.
type Loaders = resolver.Loaders

// Selectors choose the optional layers and the override of one Load.
type Selectors = models.Selectors

// Snapshot is the outcome of one successful resolution.
type Snapshot = models.Snapshot

// LoaderNotFoundError reports a directive naming an unregistered loader.
type LoaderNotFoundError = resolver.LoaderNotFoundError

// MalformedError reports a layer file or override that is not a JSON object.
type MalformedError = source.MalformedError

var (
	ErrConfigMissing  = service.ErrConfigMissing
	ErrMalformed      = source.ErrMalformed
	ErrLoaderNotFound = resolver.ErrLoaderNotFound
	ErrNotLoaded      = service.ErrNotLoaded
	ErrPathNotFound   = service.ErrPathNotFound
)

// Environment variables read by [Conf.Load].
const (
	EnvEnvironment = "ENVIRONMENT"
	EnvDeployment  = "DEPLOYMENT"
	EnvUser        = "USER"
	EnvOverride    = "OVERRIDE"
)

// Builtin returns the file, json, env and literal loaders. Relative paths
// are resolved against dir.
func Builtin(dir string) Loaders {
	return loaders.Builtin(dir)
}

type options struct {
	lookupEnv func(string) (string, bool)
	logger    *logger.Logger
}

// Option configures a [Conf].
type Option func(*options)

// WithLookupEnv replaces os.LookupEnv for placeholders and for the
// selectors read by [Conf.Load].
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(o *options) {
		o.lookupEnv = lookup
	}
}

// WithLogger sends resolution events to l. Nothing is logged by default.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger.Logger{Logger: l}
	}
}

// Conf is a configuration context bound to one directory and loader table.
// It is safe for concurrent use.
type Conf struct {
	conf      service.ConfService
	lookupEnv func(string) (string, bool)
}

// New returns a context reading layers from dir and resolving directives
// with loaders. Nothing is read until Load.
func New(dir string, loaders Loaders, opts ...Option) *Conf {
	o := options{
		lookupEnv: os.LookupEnv,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	res := resolver.New(loaders,
		resolver.WithLookupEnv(o.lookupEnv),
		resolver.WithLogger(o.logger),
	)

	return &Conf{
		conf:      service.NewConfService(source.NewDir(dir, o.logger), res, o.logger),
		lookupEnv: o.lookupEnv,
	}
}

// Load resolves the layers named by the ENVIRONMENT, DEPLOYMENT and USER
// variables, with OVERRIDE as a strict JSON object on top.
func (c *Conf) Load(ctx context.Context) (*Snapshot, error) {
	sel, err := c.selectors()
	if err != nil {
		return nil, err
	}

	return c.conf.Load(ctx, sel)
}

// LoadSelectors resolves the layers named by sel, ignoring the environment.
func (c *Conf) LoadSelectors(ctx context.Context, sel Selectors) (*Snapshot, error) {
	return c.conf.Load(ctx, sel)
}

// Reload repeats the last successful Load with the same selectors.
func (c *Conf) Reload(ctx context.Context) (*Snapshot, error) {
	return c.conf.Reload(ctx)
}

// Get returns the current snapshot or [ErrNotLoaded].
func (c *Conf) Get() (*Snapshot, error) {
	return c.conf.Get()
}

// Value returns the value at a dotted or slashed path of the current
// snapshot.
func (c *Conf) Value(path string) (any, error) {
	return c.conf.Value(path)
}

func (c *Conf) selectors() (Selectors, error) {
	env := func(name string) string {
		v, _ := c.lookupEnv(name)
		return v
	}

	sel := Selectors{
		Environment: env(EnvEnvironment),
		Deployment:  env(EnvDeployment),
		User:        env(EnvUser),
	}

	override := env(EnvOverride)
	if strings.TrimSpace(override) == "" {
		return sel, nil
	}

	overrides, err := source.ParseStrict([]byte(override))
	if err != nil {
		return Selectors{}, fmt.Errorf("error reading override: %w",
			&source.MalformedError{Source: EnvOverride, Err: err})
	}
	sel.Overrides = overrides

	return sel, nil
}
