// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/MKhiriev/typedconf/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectors_CopiesLayerNames(t *testing.T) {
	cfg := &Settings{Layers: Layers{Dir: "conf", Environment: "prod", Deployment: "eu", User: "bob"}}

	sel, err := cfg.Selectors()
	require.NoError(t, err)
	assert.Equal(t, "prod", sel.Environment)
	assert.Equal(t, "eu", sel.Deployment)
	assert.Equal(t, "bob", sel.User)
	assert.Nil(t, sel.Overrides)
}

func TestSelectors_ParsesOverride(t *testing.T) {
	cfg := &Settings{Layers: Layers{Override: ` {"db": {"port": 5433}} `}}

	sel, err := cfg.Selectors()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"db": map[string]any{"port": float64(5433)}}, sel.Overrides)
}

func TestSelectors_MalformedOverride(t *testing.T) {
	for _, override := range []string{
		`{"db": `, `[1, 2]`, `"text"`,
		`{"db": {"port": 5433}} // local`,
		`{"db": /* c */ 1}`,
		`{"db": 1,}`,
	} {
		t.Run(override, func(t *testing.T) {
			cfg := &Settings{Layers: Layers{Override: override}}

			_, err := cfg.Selectors()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedOverride)
			assert.ErrorIs(t, err, source.ErrMalformed)
		})
	}
}
