// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Snapshot is the outcome of one successful resolution cycle. It is never
// modified after it has been published.
type Snapshot struct {
	// ID identifies the resolution run.
	ID uuid.UUID `json:"id"`
	// Selectors are the layer selectors the run was started with.
	Selectors Selectors `json:"selectors"`
	// Tree is the fully resolved configuration.
	Tree map[string]any `json:"tree"`
	// Fingerprint is the hex BLAKE2b-256 digest of Tree's canonical JSON.
	// It is empty when a loader result has no JSON encoding.
	Fingerprint string `json:"fingerprint"`
	// ResolvedAt is the time the run completed.
	ResolvedAt time.Time `json:"resolved_at"`
}

// Lookup returns the value at path, walking nested objects. An empty path
// returns the whole tree.
func (s *Snapshot) Lookup(path []string) (any, bool) {
	var current any = s.Tree
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// SplitPath splits a dotted ("db.host") or slashed ("db/host") path into
// keys. Empty segments are dropped.
func SplitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '.' || r == '/'
	})
}

// Summary returns the listing view of the snapshot, without its tree.
func (s *Snapshot) Summary() SnapshotSummary {
	return SnapshotSummary{
		ID:          s.ID,
		Environment: s.Selectors.Environment,
		Deployment:  s.Selectors.Deployment,
		User:        s.Selectors.User,
		Fingerprint: s.Fingerprint,
		ResolvedAt:  s.ResolvedAt,
	}
}
