// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by [Dir.Load] when the requested file does not
	// exist. Optional layers treat it as an empty tree.
	ErrNotFound = errors.New("configuration file not found")

	// ErrMalformed matches every [*MalformedError] via [errors.Is].
	ErrMalformed = errors.New("malformed configuration")
)

// MalformedError reports a configuration source that exists but cannot be
// parsed into a mapping.
type MalformedError struct {
	// Source identifies the offending file path or variable name.
	Source string
	Err    error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrMalformed, e.Source, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformed) hold.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}
