// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type configBuilder struct {
	configs []*Settings
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Settings, 0, 4),
	}
}

func (b *configBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, cfg := range b.configs {
		if err := mergo.Merge(settings, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	if b.err != nil {
		return b
	}

	b.configs = append(b.configs, defaultSettings())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	if b.err != nil {
		return b
	}

	envCfg := &Settings{}
	if err := parseEnv(envCfg); err != nil {
		b.err = err
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(fs *pflag.FlagSet) *configBuilder {
	if b.err != nil {
		return b
	}

	flagsCfg, err := parseFlags(fs)
	if err != nil {
		b.err = err
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.SettingsFilePath != "" {
			jsonPath = cfg.SettingsFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = err
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
