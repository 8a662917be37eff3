// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidSettings wraps validation failures of the merged settings.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrMalformedOverride indicates an OVERRIDE value that is not a JSON
	// object.
	ErrMalformedOverride = errors.New("malformed override")
)
