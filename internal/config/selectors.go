// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/typedconf/internal/source"
	"github.com/MKhiriev/typedconf/models"
)

// Selectors returns the layer selectors described by the settings. The
// override text is parsed as a strict JSON object, without the comments
// layer files may carry; anything else fails with an
// error matching both [ErrMalformedOverride] and [source.ErrMalformed].
func (cfg *Settings) Selectors() (models.Selectors, error) {
	sel := models.Selectors{
		Environment: cfg.Layers.Environment,
		Deployment:  cfg.Layers.Deployment,
		User:        cfg.Layers.User,
	}

	if strings.TrimSpace(cfg.Layers.Override) == "" {
		return sel, nil
	}

	overrides, err := source.ParseStrict([]byte(cfg.Layers.Override))
	if err != nil {
		return models.Selectors{}, fmt.Errorf("%w: %w", ErrMalformedOverride,
			&source.MalformedError{Source: "OVERRIDE", Err: err})
	}
	sel.Overrides = overrides

	return sel, nil
}
