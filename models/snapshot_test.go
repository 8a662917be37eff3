// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Lookup(t *testing.T) {
	s := &Snapshot{Tree: map[string]any{
		"db":   map[string]any{"host": "localhost", "ports": []any{1.0}},
		"name": "svc",
	}}

	v, ok := s.Lookup([]string{"db", "host"})
	require.True(t, ok)
	assert.Equal(t, "localhost", v)

	v, ok = s.Lookup(nil)
	require.True(t, ok)
	assert.Equal(t, s.Tree, v)

	_, ok = s.Lookup([]string{"db", "ports", "0"})
	assert.False(t, ok, "arrays are not indexed")

	_, ok = s.Lookup([]string{"name", "x"})
	assert.False(t, ok)

	_, ok = s.Lookup([]string{"missing"})
	assert.False(t, ok)
}

func TestSplitPath(t *testing.T) {
	assert.Equal(t, []string{"db", "host"}, SplitPath("db.host"))
	assert.Equal(t, []string{"db", "host"}, SplitPath("/db/host/"))
	assert.Equal(t, []string{"a", "b", "c"}, SplitPath("a/b.c"))
	assert.Empty(t, SplitPath(""))
	assert.Empty(t, SplitPath("/"))
}

func TestSnapshot_Summary(t *testing.T) {
	id := uuid.New()
	now := time.Now()
	s := &Snapshot{
		ID:          id,
		Selectors:   Selectors{Environment: "prod", Deployment: "eu", User: "ops"},
		Tree:        map[string]any{"a": 1.0},
		Fingerprint: "abc",
		ResolvedAt:  now,
	}

	assert.Equal(t, SnapshotSummary{
		ID: id, Environment: "prod", Deployment: "eu", User: "ops", Fingerprint: "abc", ResolvedAt: now,
	}, s.Summary())
}

func TestAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, VersionResponse{Version: "N/A", Date: "2026-01-01", Commit: "N/A"}, info.Response())
}

func TestToken_HasScope(t *testing.T) {
	tok := &Token{Scope: "conf:read " + ScopeReload}
	assert.True(t, tok.HasScope(ScopeReload))
	assert.False(t, tok.HasScope("conf:write"))
	assert.False(t, (&Token{}).HasScope(ScopeReload))
}
