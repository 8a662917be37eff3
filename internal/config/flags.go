// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfDir        = "conf-dir"
	FlagEnvironment    = "environment"
	FlagDeployment     = "deployment"
	FlagUser           = "user"
	FlagOverride       = "override"
	FlagLogLevel       = "log-level"
	FlagAddress        = "address"
	FlagGRPCAddress    = "grpc-address"
	FlagRequestTimeout = "request-timeout"
	FlagDSN            = "db-dsn"
	FlagSettings       = "settings"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterFlags defines all settings flags on fs. Only flags the user
// actually sets take part in merging, so their defaults are zero values.
//
// Flags:
//
//	--conf-dir         configuration directory
//	-e/--environment   environment layer name
//	-d/--deployment    deployment layer name
//	-u/--user          user layer name
//	--override         JSON override layer
//	--log-level        log level
//	-a/--address       HTTP server address in format [host]:[port]
//	--grpc-address     gRPC server address in format [host]:[port]
//	--request-timeout  request timeout (e.g., "30s", "1m")
//	--db-dsn           history database DSN
//	-s/--settings      JSON settings file path
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfDir, "", "Configuration directory")
	fs.StringP(FlagEnvironment, "e", "", "Environment layer name")
	fs.StringP(FlagDeployment, "d", "", "Deployment layer name")
	fs.StringP(FlagUser, "u", "", "User layer name")
	fs.String(FlagOverride, "", "JSON object merged on top of all layers")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.VarP(&NetAddress{}, FlagAddress, "a", "HTTP server address host:port")
	fs.Var(&NetAddress{}, FlagGRPCAddress, "gRPC server address host:port")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.String(FlagDSN, "", "History database DSN")
	fs.StringP(FlagSettings, "s", "", "JSON settings file path")
}

// parseFlags reads the flags registered by [RegisterFlags] from fs. Flags
// that were not set on the command line, or were never registered, are left
// zero. A nil fs yields empty settings.
func parseFlags(fs *pflag.FlagSet) (*Settings, error) {
	cfg := &Settings{}
	if fs == nil {
		return cfg, nil
	}

	var err error
	str := func(name string) string {
		if !fs.Changed(name) {
			return ""
		}
		v, e := fs.GetString(name)
		err = errors.Join(err, e)
		return v
	}
	addr := func(name string) string {
		if !fs.Changed(name) {
			return ""
		}
		return fs.Lookup(name).Value.String()
	}

	cfg.Layers = Layers{
		Dir:         str(FlagConfDir),
		Environment: str(FlagEnvironment),
		Deployment:  str(FlagDeployment),
		User:        str(FlagUser),
		Override:    str(FlagOverride),
	}
	cfg.Log.Level = str(FlagLogLevel)
	cfg.Server.HTTPAddress = addr(FlagAddress)
	cfg.Server.GRPCAddress = addr(FlagGRPCAddress)
	if fs.Changed(FlagRequestTimeout) {
		timeout, e := fs.GetDuration(FlagRequestTimeout)
		err = errors.Join(err, e)
		cfg.Server.RequestTimeout = timeout
	}
	cfg.Storage.DSN = str(FlagDSN)
	cfg.SettingsFilePath = str(FlagSettings)

	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
