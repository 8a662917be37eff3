// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package source reads configuration layers from a directory.
//
// Files are JSON with optional comments and trailing commas (JSONC). The
// directory layout is:
//
//	default.json
//	environments/{name}.json
//	deployments/{name}.json
//	users/{name}.json
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/MKhiriev/typedconf/internal/logger"
)

// Layer file names relative to the configuration directory.
const (
	BaseFile        = "default.json"
	EnvironmentsDir = "environments"
	DeploymentsDir  = "deployments"
	UsersDir        = "users"
)

// EnvironmentFile returns the file of the named environment layer.
func EnvironmentFile(name string) string {
	return filepath.Join(EnvironmentsDir, name+".json")
}

// DeploymentFile returns the file of the named deployment layer.
func DeploymentFile(name string) string {
	return filepath.Join(DeploymentsDir, name+".json")
}

// UserFile returns the file of the named user layer.
func UserFile(name string) string {
	return filepath.Join(UsersDir, name+".json")
}

// Dir loads layer files from a configuration directory.
type Dir struct {
	root   string
	logger *logger.Logger
}

// NewDir returns a loader rooted at root.
func NewDir(root string, logger *logger.Logger) *Dir {
	return &Dir{root: root, logger: logger}
}

// Root returns the configuration directory.
func (d *Dir) Root() string {
	return d.root
}

// Load reads name, relative to the configuration directory, and returns its
// top-level object. A missing file yields [ErrNotFound]; a file that is not
// a JSON object yields a [*MalformedError] naming the file.
func (d *Dir) Load(name string) (map[string]any, error) {
	path := filepath.Join(d.root, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			d.logger.Debug().Str("path", path).Msg("configuration file absent")
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("error reading configuration file %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, &MalformedError{Source: path, Err: err}
	}

	d.logger.Debug().Str("path", path).Int("keys", len(m)).Msg("configuration file loaded")
	return m, nil
}

// Parse decodes a JSONC document whose top level must be an object.
// Numbers are decoded as float64.
func Parse(data []byte) (map[string]any, error) {
	return ParseStrict(jsonc.ToJSON(data))
}

// ParseStrict is [Parse] for plain JSON: comments and trailing commas are
// rejected.
func ParseStrict(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty document")
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top level is %T, want an object", doc)
	}

	return m, nil
}
