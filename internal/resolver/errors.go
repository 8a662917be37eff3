// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLoaderNotFound matches every [*LoaderNotFoundError] via [errors.Is].
	ErrLoaderNotFound = errors.New("loader not found")

	// ErrNotMapping is returned when the tree handed to Resolve is not a
	// mapping.
	ErrNotMapping = errors.New("configuration root is not a mapping")
)

// LoaderNotFoundError reports a directive naming a loader that is not
// registered in the loader table.
type LoaderNotFoundError struct {
	// Name is the requested loader.
	Name string
	// Path is the dotted key path of the directive.
	Path string
	// Available lists the registered loader names, sorted.
	Available []string
}

func (e *LoaderNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q at %q. Available loaders: %s",
		ErrLoaderNotFound, e.Name, e.Path, strings.Join(e.Available, ", "))
}

// Is makes errors.Is(err, ErrLoaderNotFound) hold.
func (e *LoaderNotFoundError) Is(target error) bool {
	return target == ErrLoaderNotFound
}
