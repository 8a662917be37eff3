// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a running typedconf server.
//
// [ConfAdapter] hides the transport from the CLI. HTTP statuses are mapped
// to the sentinel errors in errors.go so callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/typedconf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ConfAdapter reads from and controls a remote configuration server.
type ConfAdapter interface {
	// Conf returns the whole resolved tree and its fingerprint.
	Conf(ctx context.Context) (map[string]any, string, error)

	// Get returns the value at a dotted or slashed path.
	Get(ctx context.Context, path string) (any, error)

	// Reload asks the server to run a new resolution cycle. token must
	// grant the reload scope.
	Reload(ctx context.Context, token string) (models.ReloadResponse, error)

	// History lists up to limit stored snapshots, newest first.
	History(ctx context.Context, limit int) (models.HistoryResponse, error)

	// Version returns the server's build metadata.
	Version(ctx context.Context) (models.VersionResponse, error)
}
