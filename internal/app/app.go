// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles typedconf from its settings: the layer source, the
// resolver with the built-in loaders, the optional history store and the
// services on top of them. The command-line tool builds one [App] per
// invocation.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/typedconf/internal/config"
	"github.com/MKhiriev/typedconf/internal/handler"
	"github.com/MKhiriev/typedconf/internal/loaders"
	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/MKhiriev/typedconf/internal/metrics"
	"github.com/MKhiriev/typedconf/internal/resolver"
	"github.com/MKhiriev/typedconf/internal/server"
	"github.com/MKhiriev/typedconf/internal/service"
	"github.com/MKhiriev/typedconf/internal/source"
	"github.com/MKhiriev/typedconf/internal/store"
	"github.com/MKhiriev/typedconf/internal/workers"
	"github.com/MKhiriev/typedconf/models"
)

// ErrHistoryNotConfigured is returned when history is requested without a
// storage DSN.
var ErrHistoryNotConfigured = errors.New("history storage is not configured (set STORAGE_DB_DSN or --db-dsn)")

type App struct {
	Settings *config.Settings
	Services *service.Services
	Metrics  *metrics.Metrics

	// History is nil unless storage was requested and configured.
	History store.SnapshotRepository

	db     *store.DB
	build  models.AppBuildInfo
	logger *logger.Logger
}

// Option configures [New].
type Option func(*options)

type options struct {
	storage bool
}

// WithStorage opens the history store when a DSN is configured.
func WithStorage() Option {
	return func(o *options) {
		o.storage = true
	}
}

// New wires an App. Close must be called to release the history store.
func New(ctx context.Context, settings *config.Settings, build models.AppBuildInfo, logger *logger.Logger, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{
		Settings: settings,
		Metrics:  metrics.New(),
		build:    build,
		logger:   logger,
	}

	res := resolver.New(
		loaders.Builtin(settings.Layers.Dir),
		resolver.WithObserver(a.Metrics),
		resolver.WithLogger(logger),
	)

	confOpts := []service.ConfOption{service.WithRecorder(a.Metrics)}
	if o.storage && settings.Storage.DSN != "" {
		db, err := store.Open(ctx, settings.Storage.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("error opening history store: %w", err)
		}
		a.db = db
		a.History = store.NewSnapshotRepository(db, logger)
		confOpts = append(confOpts, service.WithHistory(a.History))
	}

	a.Services = service.NewServices(
		service.NewConfService(source.NewDir(settings.Layers.Dir, logger), res, logger, confOpts...),
		service.NewAuthService(settings.Auth, logger),
	)

	return a, nil
}

// Close releases the history store, if open.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Load resolves the configuration selected by the settings.
func (a *App) Load(ctx context.Context) (*models.Snapshot, error) {
	sel, err := a.Settings.Selectors()
	if err != nil {
		return nil, err
	}
	return a.Services.ConfService.Load(ctx, sel)
}

// Serve resolves the configuration once and then serves it until ctx ends
// or a termination signal arrives. A failed initial resolution aborts
// startup.
func (a *App) Serve(ctx context.Context) error {
	if _, err := a.Load(ctx); err != nil {
		return fmt.Errorf("initial resolution failed: %w", err)
	}

	handlers, err := handler.NewHandlers(a.Services, a.Settings.Server, a.Metrics.Handler(), a.build.Response(), a.logger)
	if err != nil {
		return err
	}

	var bg []workers.Worker
	if pruner := workers.NewHistoryPruner(a.History, a.Settings.History, a.logger); pruner != nil {
		bg = append(bg, pruner)
	}

	srv, err := server.NewServer(handlers, workers.New(bg...), a.Settings.Server, a.logger)
	if err != nil {
		return err
	}

	return srv.RunServer(ctx)
}

// Snapshots lists stored snapshots, newest first.
func (a *App) Snapshots(ctx context.Context, limit int) ([]models.Snapshot, error) {
	if a.History == nil {
		return nil, ErrHistoryNotConfigured
	}
	return a.Services.ConfService.History(ctx, limit)
}
