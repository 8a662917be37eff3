// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/typedconf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotRepository persists the history of resolution cycles.
type SnapshotRepository interface {
	// Save stores snapshot. A duplicate ID fails with [ErrSnapshotExists].
	Save(ctx context.Context, snapshot models.Snapshot) error
	// List returns up to limit snapshots, newest first. A non-positive limit
	// returns all of them.
	List(ctx context.Context, limit int) ([]models.Snapshot, error)
	// Latest returns the most recent snapshot or [ErrSnapshotNotFound].
	Latest(ctx context.Context) (models.Snapshot, error)
	// DeleteOlderThan removes snapshots resolved before cutoff and reports
	// how many were deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
