// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package loaders provides the default loader table registered by the CLI
// and the server. Embedding applications reach it through
// typedconf.Builtin in pkg/typedconf, or pass their own table to
// typedconf.New.
package loaders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/typedconf/internal/resolver"
	"github.com/tidwall/jsonc"
)

// Names of the built-in loaders.
const (
	File    = "file"
	JSON    = "json"
	Env     = "env"
	Literal = "literal"
)

// Builtin returns the default loader table. Relative paths in file and json
// payloads are resolved against baseDir.
func Builtin(baseDir string) resolver.Loaders {
	return BuiltinWithEnv(baseDir, os.LookupEnv)
}

// BuiltinWithEnv is [Builtin] with an explicit environment lookup for the
// env loader.
func BuiltinWithEnv(baseDir string, lookupEnv func(string) (string, bool)) resolver.Loaders {
	return resolver.Loaders{
		File:    fileLoader(baseDir),
		JSON:    jsonLoader(baseDir),
		Env:     envLoader(lookupEnv),
		Literal: literalLoader,
	}
}

// fileLoader returns the trimmed contents of the file named by the payload.
func fileLoader(baseDir string) resolver.Loader {
	return func(_ context.Context, params any) (any, error) {
		path, err := pathParam(File, baseDir, params)
		if err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s loader: %w", File, err)
		}

		return strings.TrimSpace(string(data)), nil
	}
}

// jsonLoader returns the decoded JSON value of the file named by the
// payload. Comments and trailing commas are accepted.
func jsonLoader(baseDir string) resolver.Loader {
	return func(_ context.Context, params any) (any, error) {
		path, err := pathParam(JSON, baseDir, params)
		if err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s loader: %w", JSON, err)
		}

		var v any
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		if err = dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("%s loader: %s: %w", JSON, path, err)
		}

		return v, nil
	}
}

// envParams is the payload of the env loader.
type envParams struct {
	Name    string `json:"name"`
	Default any    `json:"default"`
}

// envLoader returns the named variable, or the default when it is unset.
// Unlike a placeholder, an unset variable without a default resolves to nil
// rather than dropping the key.
func envLoader(lookupEnv func(string) (string, bool)) resolver.Loader {
	return func(_ context.Context, params any) (any, error) {
		var p envParams
		switch v := params.(type) {
		case string:
			p.Name = v
		case map[string]any:
			name, _ := v["name"].(string)
			p = envParams{Name: name, Default: v["default"]}
		default:
			return nil, fmt.Errorf("%s loader: %w: got %T", Env, ErrInvalidParams, params)
		}

		if p.Name == "" {
			return nil, fmt.Errorf("%s loader: %w: empty name", Env, ErrInvalidParams)
		}

		if value, ok := lookupEnv(p.Name); ok {
			return value, nil
		}

		return p.Default, nil
	}
}

func literalLoader(_ context.Context, params any) (any, error) {
	return params, nil
}

func pathParam(loader, baseDir string, params any) (string, error) {
	path, ok := params.(string)
	if !ok || path == "" {
		return "", fmt.Errorf("%s loader: %w: want a non-empty path, got %T", loader, ErrInvalidParams, params)
	}

	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}

	return path, nil
}
