// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// settingsJSON is the on-disk shape of the JSON settings file.
type settingsJSON struct {
	Layers struct {
		Dir         string          `json:"dir"`
		Environment string          `json:"environment"`
		Deployment  string          `json:"deployment"`
		User        string          `json:"user"`
		Override    json.RawMessage `json:"override,omitempty"`
	} `json:"layers"`

	Log struct {
		Level string `json:"level"`
	} `json:"log"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage"`

	History struct {
		Retention     Duration `json:"retention"`
		PruneInterval Duration `json:"prune_interval"`
	} `json:"history"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth"`

	Declaration struct {
		Path     string `json:"path"`
		Package  string `json:"package"`
		TypeName string `json:"type_name"`
	} `json:"declaration"`
}

func parseJSON(jsonFilePath string) (*Settings, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg settingsJSON
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json settings: %w", err)
	}

	// The override may be written inline as an object; keep it as text so it
	// goes through the same parsing as the OVERRIDE variable.
	var override string
	if raw := jsonCfg.Layers.Override; len(raw) > 0 && string(raw) != "null" {
		var asString string
		if err := json.Unmarshal(raw, &asString); err == nil {
			override = asString
		} else {
			override = string(raw)
		}
	}

	cfg := &Settings{
		Layers: Layers{
			Dir:         jsonCfg.Layers.Dir,
			Environment: jsonCfg.Layers.Environment,
			Deployment:  jsonCfg.Layers.Deployment,
			User:        jsonCfg.Layers.User,
			Override:    override,
		},
		Log: Log{Level: jsonCfg.Log.Level},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{DSN: jsonCfg.Storage.DSN},
		History: History{
			Retention:     time.Duration(jsonCfg.History.Retention),
			PruneInterval: time.Duration(jsonCfg.History.PruneInterval),
		},
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Declaration: Declaration{
			Path:     jsonCfg.Declaration.Path,
			Package:  jsonCfg.Declaration.Package,
			TypeName: jsonCfg.Declaration.TypeName,
		},
		SettingsFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
