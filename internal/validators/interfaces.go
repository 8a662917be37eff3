// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks input that reaches the services before it is
// used to address files or stored.
//
// Validators accept an optional list of field names that restricts the
// check to those fields; with no fields a default set is checked.
package validators

import "context"

// Validator validates obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
