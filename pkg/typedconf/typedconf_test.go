// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package typedconf_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/typedconf/pkg/typedconf"
)

func writeLayer(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func envMap(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestConf_LoadWithCustomLoader(t *testing.T) {
	dir := t.TempDir()
	writeLayer(t, dir, "default.json", `{
		"db": {"host": "localhost", "password": {"[secret]": "db"}},
		"token": "${TOKEN}"
	}`)
	writeLayer(t, dir, "environments/prod.json", `{"db": {"host": "db.internal"}}`)

	var calls []any
	conf := typedconf.New(dir, typedconf.Loaders{
		"secret": func(_ context.Context, params any) (any, error) {
			calls = append(calls, params)
			return "s3cr3t", nil
		},
	}, typedconf.WithLookupEnv(envMap(map[string]string{
		typedconf.EnvEnvironment: "prod",
		typedconf.EnvOverride:    `{"db": {"port": 5433}}`,
		"TOKEN":                  "abc",
	})))

	_, err := conf.Get()
	assert.ErrorIs(t, err, typedconf.ErrNotLoaded)

	snapshot, err := conf.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []any{"db"}, calls)
	assert.Equal(t, "prod", snapshot.Selectors.Environment)
	assert.Equal(t, map[string]any{
		"db": map[string]any{
			"host":     "db.internal",
			"password": "s3cr3t",
			"port":     5433.0,
		},
		"token": "abc",
	}, snapshot.Tree)

	current, err := conf.Get()
	require.NoError(t, err)
	assert.Same(t, snapshot, current)

	host, err := conf.Value("db.host")
	require.NoError(t, err)
	assert.Equal(t, "db.internal", host)

	_, err = conf.Value("db.missing")
	assert.ErrorIs(t, err, typedconf.ErrPathNotFound)
}

func TestConf_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		layers  map[string]string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "missing base",
			wantErr: typedconf.ErrConfigMissing,
		},
		{
			name:    "malformed layer",
			layers:  map[string]string{"default.json": `[1, 2]`},
			wantErr: typedconf.ErrMalformed,
		},
		{
			name:    "unknown loader",
			layers:  map[string]string{"default.json": `{"a": {"[vault]": "x"}}`},
			wantErr: typedconf.ErrLoaderNotFound,
		},
		{
			name:    "override with comment",
			layers:  map[string]string{"default.json": `{}`},
			env:     map[string]string{typedconf.EnvOverride: `{"a": 1} // local`},
			wantErr: typedconf.ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, body := range tt.layers {
				writeLayer(t, dir, name, body)
			}

			conf := typedconf.New(dir, nil, typedconf.WithLookupEnv(envMap(tt.env)))
			snapshot, err := conf.Load(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, snapshot)

			_, err = conf.Get()
			assert.ErrorIs(t, err, typedconf.ErrNotLoaded)
		})
	}
}

func TestConf_LoaderNotFoundNamesDirective(t *testing.T) {
	dir := t.TempDir()
	writeLayer(t, dir, "default.json", `{"db": {"password": {"[vault]": "x"}}}`)

	conf := typedconf.New(dir, typedconf.Builtin(dir), typedconf.WithLookupEnv(envMap(nil)))
	_, err := conf.Load(context.Background())

	var notFound *typedconf.LoaderNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "vault", notFound.Name)
	assert.Equal(t, "db.password", notFound.Path)
	assert.Contains(t, notFound.Available, "file")
}

func TestConf_LoadSelectorsAndReload(t *testing.T) {
	dir := t.TempDir()
	writeLayer(t, dir, "default.json", `{"name": "base", "level": 1}`)
	writeLayer(t, dir, "users/alice.json", `{"name": "alice"}`)

	conf := typedconf.New(dir, nil, typedconf.WithLookupEnv(envMap(map[string]string{
		typedconf.EnvUser: "bob",
	})))

	snapshot, err := conf.LoadSelectors(context.Background(), typedconf.Selectors{User: "alice"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "alice", "level": 1.0}, snapshot.Tree)

	writeLayer(t, dir, "users/alice.json", `{"name": "alice", "level": 2}`)

	reloaded, err := conf.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", reloaded.Selectors.User)
	assert.Equal(t, map[string]any{"name": "alice", "level": 2.0}, reloaded.Tree)
}

func TestConf_FailedLoadKeepsSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeLayer(t, dir, "default.json", `{"a": 1}`)

	conf := typedconf.New(dir, nil, typedconf.WithLookupEnv(envMap(nil)))
	first, err := conf.Load(context.Background())
	require.NoError(t, err)

	writeLayer(t, dir, "default.json", `{"a": `)
	_, err = conf.Reload(context.Background())
	require.ErrorIs(t, err, typedconf.ErrMalformed)

	current, err := conf.Get()
	require.NoError(t, err)
	assert.Same(t, first, current)
}
