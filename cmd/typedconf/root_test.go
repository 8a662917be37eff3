// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/typedconf/internal/app"
	"github.com/MKhiriev/typedconf/internal/service"
	"github.com/MKhiriev/typedconf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"CONF_DIR", "ENVIRONMENT", "DEPLOYMENT", "USER", "OVERRIDE",
		"LOG_LEVEL", "SERVER_ADDRESS", "SERVER_GRPC_ADDRESS", "SERVER_REQUEST_TIMEOUT",
		"STORAGE_DB_DSN", "HISTORY_RETENTION", "HISTORY_PRUNE_INTERVAL",
		"AUTH_TOKEN_SIGN_KEY", "AUTH_TOKEN_ISSUER", "AUTH_TOKEN_DURATION",
		"DECLARATION_PATH", "DECLARATION_PACKAGE", "DECLARATION_TYPE", "SETTINGS",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func newConfDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "environments"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "default.json"), []byte(`{
		"db": {"host": "localhost", "port": 5432, "password": {"[file]": "password.txt"}},
		"port": "${TYPEDCONF_TEST_PORT}",
		"tags": ["a", "b"]
	}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "environments", "prod.json"), []byte(`{
		"db": {"host": "db.internal"}
	}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "password.txt"), []byte("s3cret\n"), 0o600))
	return dir
}

// run executes the command line args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCommand(models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"))
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestResolve_JSON(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("TYPEDCONF_TEST_PORT", "8080")
	dir := newConfDir(t)

	out, _, err := run(t, "resolve", "--conf-dir", dir, "-e", "prod", "--log-level", "error")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{
		"db":   map[string]any{"host": "db.internal", "port": 5432.0, "password": "s3cret"},
		"port": "8080",
		"tags": []any{"a", "b"},
	}, got)
}

func TestResolve_YAMLWithOverride(t *testing.T) {
	clearSettingsEnv(t)
	dir := newConfDir(t)

	out, _, err := run(t, "resolve", "--conf-dir", dir, "--override", `{"db": {"port": 6432}}`, "-o", "yaml", "--log-level", "error")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	db, ok := got["db"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "localhost", db["host"])
	assert.Equal(t, 6432, db["port"])
	assert.NotContains(t, got, "port", "unset placeholder must be omitted")
}

func TestResolve_Unresolved(t *testing.T) {
	clearSettingsEnv(t)
	dir := newConfDir(t)

	out, _, err := run(t, "resolve", "--conf-dir", dir, "--unresolved", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, `"[file]": "password.txt"`)
	assert.Contains(t, out, `"${TYPEDCONF_TEST_PORT}"`)
}

func TestResolve_UnknownOutput(t *testing.T) {
	clearSettingsEnv(t)

	_, _, err := run(t, "resolve", "--conf-dir", newConfDir(t), "-o", "toml", "--log-level", "error")
	assert.ErrorIs(t, err, errUnknownOutput)
}

func TestResolve_MissingBase(t *testing.T) {
	clearSettingsEnv(t)

	_, _, err := run(t, "resolve", "--conf-dir", t.TempDir(), "--log-level", "error")
	assert.ErrorIs(t, err, service.ErrConfigMissing)
}

func TestGet(t *testing.T) {
	clearSettingsEnv(t)
	dir := newConfDir(t)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "string printed bare", path: "db.host", want: "db.internal"},
		{name: "slashed path", path: "db/password", want: "s3cret"},
		{name: "number as json", path: "db.port", want: "5432"},
		{name: "array as json", path: "tags", want: `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "get", tt.path, "--conf-dir", dir, "-e", "prod", "--log-level", "error")
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestGet_PathNotFound(t *testing.T) {
	clearSettingsEnv(t)

	_, _, err := run(t, "get", "db.user", "--conf-dir", newConfDir(t), "--log-level", "error")
	assert.ErrorIs(t, err, service.ErrPathNotFound)
}

func TestGet_NeedsPath(t *testing.T) {
	clearSettingsEnv(t)

	_, stderr, err := run(t, "get")
	require.Error(t, err)
	assert.Contains(t, stderr, "accepts 1 arg")
}

func TestDeclare(t *testing.T) {
	clearSettingsEnv(t)
	dir := newConfDir(t)

	t.Run("stdout", func(t *testing.T) {
		out, _, err := run(t, "declare", "--out", "-", "--package", "settings", "--conf-dir", dir, "--log-level", "error")
		require.NoError(t, err)
		assert.Contains(t, out, "package settings")
		assert.Contains(t, out, "type Conf struct")
	})

	t.Run("file", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "gen", "conf.go")
		_, _, err := run(t, "declare", "--out", target, "--type", "AppConf", "--conf-dir", dir, "--log-level", "error")
		require.NoError(t, err)

		src, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Contains(t, string(src), "package conf")
		assert.Contains(t, string(src), "type AppConf struct")
	})
}

func TestToken(t *testing.T) {
	clearSettingsEnv(t)

	t.Run("disabled without sign key", func(t *testing.T) {
		_, _, err := run(t, "token", "alice", "--conf-dir", newConfDir(t), "--log-level", "error")
		assert.ErrorIs(t, err, service.ErrReloadDisabled)
	})

	t.Run("issued", func(t *testing.T) {
		t.Setenv("AUTH_TOKEN_SIGN_KEY", "test-key")
		out, _, err := run(t, "token", "alice", "--conf-dir", newConfDir(t), "--log-level", "error")
		require.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimSpace(out), "."), 3)
	})
}

func TestHistory(t *testing.T) {
	clearSettingsEnv(t)
	dir := newConfDir(t)

	t.Run("not configured", func(t *testing.T) {
		_, _, err := run(t, "history", "--conf-dir", dir, "--log-level", "error")
		assert.ErrorIs(t, err, app.ErrHistoryNotConfigured)
	})

	t.Run("empty table", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "history.db")
		out, _, err := run(t, "history", "--conf-dir", dir, "--db-dsn", dsn, "--log-level", "error")
		require.NoError(t, err)
		assert.Contains(t, out, "RESOLVED AT")
		assert.Contains(t, out, "FINGERPRINT")
	})

	t.Run("empty json", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "history.db")
		out, _, err := run(t, "history", "--json", "--conf-dir", dir, "--db-dsn", dsn, "--log-level", "error")
		require.NoError(t, err)
		assert.JSONEq(t, `{"snapshots": [], "length": 0}`, out)
	})
}

func TestVersionFlag(t *testing.T) {
	clearSettingsEnv(t)

	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
}

func TestScalarText(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{in: "plain", want: "plain"},
		{in: true, want: "true"},
		{in: nil, want: "null"},
		{in: map[string]any{"a": 1.0}, want: `{"a":1}`},
	}
	for _, tt := range tests {
		got, err := scalarText(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
