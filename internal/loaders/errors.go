// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loaders

import "errors"

// ErrInvalidParams is returned when a directive payload has the wrong shape
// for its loader.
var ErrInvalidParams = errors.New("invalid loader params")
