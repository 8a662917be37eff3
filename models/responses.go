// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// SnapshotSummary describes a stored snapshot without its tree.
type SnapshotSummary struct {
	ID          uuid.UUID `json:"id"`
	Environment string    `json:"environment,omitempty"`
	Deployment  string    `json:"deployment,omitempty"`
	User        string    `json:"user,omitempty"`
	Fingerprint string    `json:"fingerprint"`
	ResolvedAt  time.Time `json:"resolved_at"`
}

// HistoryResponse lists recent resolution runs, newest first.
type HistoryResponse struct {
	Snapshots []SnapshotSummary `json:"snapshots"`

	// Length is the total number of entries in Snapshots.
	Length int `json:"length"`
}

// ValueResponse carries the value found at a configuration path.
type ValueResponse struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// ReloadResponse is returned after a successful resolution triggered
// remotely.
type ReloadResponse struct {
	ID          uuid.UUID `json:"id"`
	Fingerprint string    `json:"fingerprint"`
	ResolvedAt  time.Time `json:"resolved_at"`
}

// VersionResponse carries build metadata.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
