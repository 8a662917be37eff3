// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "empty host", input: ":9090", expectedAddr: NetAddress{Port: 9090}},
		{name: "missing colon", input: "localhost8080", errorMsg: "need address in a form `host:port`"},
		{name: "multiple colons", input: "host:port:extra", errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", errorMsg: "port number must be between 1 and 65535"},
		{name: "port too large", input: "localhost:70000", errorMsg: "port number must be between 1 and 65535"},
		{name: "invalid IP address", input: "invalid.host:8080", errorMsg: "incorrect IP-address provided"},
		{name: "empty string", input: "", errorMsg: "need address in a form `host:port`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

// TestParseFlags tests reading registered flags into Settings.
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *Settings)
	}{
		{
			name: "all flags set",
			args: []string{
				"--conf-dir", "/etc/conf",
				"-e", "production",
				"-d", "eu",
				"-u", "alice",
				"--override", `{"a": 1}`,
				"--log-level", "debug",
				"-a", "localhost:8080",
				"--grpc-address", "127.0.0.1:9090",
				"--request-timeout", "1m",
				"--db-dsn", "history.db",
				"-s", "/path/to/settings.json",
			},
			validate: func(t *testing.T, cfg *Settings) {
				assert.Equal(t, Layers{
					Dir: "/etc/conf", Environment: "production", Deployment: "eu",
					User: "alice", Override: `{"a": 1}`,
				}, cfg.Layers)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
				assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
				assert.Equal(t, "history.db", cfg.Storage.DSN)
				assert.Equal(t, "/path/to/settings.json", cfg.SettingsFilePath)
			},
		},
		{
			name: "partial flags",
			args: []string{"-e", "staging"},
			validate: func(t *testing.T, cfg *Settings) {
				assert.Equal(t, "staging", cfg.Layers.Environment)
				assert.Empty(t, cfg.Layers.Dir)
				assert.Empty(t, cfg.Server.HTTPAddress)
				assert.Zero(t, cfg.Server.RequestTimeout)
			},
		},
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *Settings) {
				assert.Equal(t, &Settings{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(newFlagSet(t, tt.args...))
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_NilFlagSet verifies that a nil flag set yields empty settings.
func TestParseFlags_NilFlagSet(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, cfg)
}

// TestParseFlags_UnregisteredFlagSet verifies that a flag set without the
// settings flags contributes nothing.
func TestParseFlags_UnregisteredFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("bare", pflag.ContinueOnError)
	cfg, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, cfg)
}

// TestRegisterFlags_InvalidAddress verifies that address flags reject bad input
// at parse time.
func TestRegisterFlags_InvalidAddress(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	assert.Error(t, fs.Parse([]string{"--address", "nowhere"}))
}
