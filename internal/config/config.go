// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Settings is the top-level settings container of typedconf. It is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON settings file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//   - validate:  go-playground/validator rules checked after merging.
type Settings struct {
	// Layers selects the configuration directory and layer files.
	Layers Layers

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the resolution history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// History controls retention of stored snapshots.
	History History `envPrefix:"HISTORY_"`

	// Auth holds token settings protecting the reload operation.
	Auth Auth `envPrefix:"AUTH_"`

	// Declaration controls the generated declaration file.
	Declaration Declaration `envPrefix:"DECLARATION_"`

	// SettingsFilePath is the optional path to a JSON settings file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the SETTINGS environment variable or the --settings flag.
	SettingsFilePath string `env:"SETTINGS"`
}

// Layers selects the layer files of a resolution cycle.
type Layers struct {
	// Dir is the configuration directory holding default.json and the
	// environments/, deployments/ and users/ subdirectories. A relative
	// path is resolved against the working directory.
	// Env: CONF_DIR
	Dir string `env:"CONF_DIR" validate:"required"`

	// Environment selects environments/{name}.json.
	// Env: ENVIRONMENT
	Environment string `env:"ENVIRONMENT" validate:"omitempty,excludesall=/\\"`

	// Deployment selects deployments/{name}.json.
	// Env: DEPLOYMENT
	Deployment string `env:"DEPLOYMENT" validate:"omitempty,excludesall=/\\"`

	// User selects users/{name}.json.
	// Env: USER
	User string `env:"USER" validate:"omitempty,excludesall=/\\"`

	// Override is a JSON object merged on top of all file layers.
	// Env: OVERRIDE
	Override string `env:"OVERRIDE"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum zerolog level emitted.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"omitempty,hostname_port"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS" validate:"omitempty,hostname_port"`

	// RequestTimeout bounds a single inbound request and outbound client
	// calls (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`
}

// Storage holds the resolution history database settings.
type Storage struct {
	// DSN selects the history database. "postgres://" and "postgresql://"
	// DSNs use PostgreSQL, anything else is a SQLite file. Empty disables
	// history.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DB_DSN"`
}

// History controls retention of stored snapshots.
type History struct {
	// Retention is how long snapshots are kept. Zero keeps them forever.
	// Env: HISTORY_RETENTION
	Retention time.Duration `env:"RETENTION" validate:"gte=0"`

	// PruneInterval is how often expired snapshots are deleted.
	// Env: HISTORY_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL" validate:"gte=0"`
}

// Auth holds token settings protecting the reload operation.
type Auth struct {
	// TokenSignKey is the HMAC key used to sign and verify reload tokens.
	// Empty disables remote reloads.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" validate:"gte=0"`
}

// Declaration controls the generated declaration file.
type Declaration struct {
	// Path is the output file.
	// Env: DECLARATION_PATH
	Path string `env:"PATH"`

	// Package is the Go package name of the generated file.
	// Env: DECLARATION_PACKAGE
	Package string `env:"PACKAGE" validate:"omitempty,alphanum"`

	// TypeName is the name of the generated root struct.
	// Env: DECLARATION_TYPE
	TypeName string `env:"TYPE" validate:"omitempty,alphanum"`
}

// defaultSettings returns the built-in defaults, the lowest-precedence
// source.
func defaultSettings() *Settings {
	return &Settings{
		Layers: Layers{Dir: "conf"},
		Log:    Log{Level: "info"},
		Server: Server{RequestTimeout: 30 * time.Second},
		History: History{
			PruneInterval: time.Hour,
		},
		Auth: Auth{
			TokenIssuer:   "typedconf",
			TokenDuration: time.Hour,
		},
		Declaration: Declaration{
			Path:     "conf.gen.go",
			Package:  "conf",
			TypeName: "Conf",
		},
	}
}

// GetSettings loads, merges, and validates the settings from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags registered on fs by [RegisterFlags] (fs may be nil)
//  4. JSON settings file (path resolved from sources 2 and 3)
//
// Returns a fully populated *Settings or an error if any source fails to
// load or the final settings fail validation.
func GetSettings(fs *pflag.FlagSet) (*Settings, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
