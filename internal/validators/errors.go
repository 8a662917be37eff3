// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidLayerName is returned for a selector that cannot name a
	// file inside its layer directory.
	ErrInvalidLayerName = errors.New("invalid layer name")
)
