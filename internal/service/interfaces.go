// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/typedconf/internal/tree"
	"github.com/MKhiriev/typedconf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConfService owns the configuration context: it assembles layers, runs
// resolution cycles and publishes the resulting snapshot.
type ConfService interface {
	// Unresolved loads and merges the layers selected by sel without
	// resolving directives or placeholders.
	Unresolved(ctx context.Context, sel models.Selectors) (*tree.Node, error)
	// Load runs a full resolution cycle and publishes its snapshot.
	Load(ctx context.Context, sel models.Selectors) (*models.Snapshot, error)
	// Reload repeats Load with the selectors of the current snapshot.
	Reload(ctx context.Context) (*models.Snapshot, error)
	// Get returns the current snapshot or [ErrNotLoaded].
	Get() (*models.Snapshot, error)
	// Value returns the value at a dotted or slashed path of the current
	// snapshot.
	Value(path string) (any, error)
	// History returns up to limit stored snapshots, newest first.
	History(ctx context.Context, limit int) ([]models.Snapshot, error)
}

// AuthService issues and verifies operator tokens for remote reloads.
type AuthService interface {
	CreateToken(ctx context.Context, operator string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// LayerSource reads one layer file relative to the configuration directory.
// A missing file must be reported with an error matching source.ErrNotFound.
type LayerSource interface {
	Load(name string) (map[string]any, error)
}

// Resolver resolves a merged tree into plain values.
type Resolver interface {
	Resolve(ctx context.Context, root *tree.Node) (map[string]any, error)
}

// Recorder receives the outcome of every resolution cycle.
type Recorder interface {
	RecordResolution(duration time.Duration, err error)
}
