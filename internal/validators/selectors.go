// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/typedconf/models"
)

// Field names accepted by [SelectorsValidator].
const (
	FieldEnvironment = "environment"
	FieldDeployment  = "deployment"
	FieldUser        = "user"
)

// SelectorsValidator validates [models.Selectors]. Empty selectors are
// valid and mean "no such layer".
type SelectorsValidator struct{}

func NewSelectorsValidator() Validator {
	return &SelectorsValidator{}
}

// Validate accepts models.Selectors and *models.Selectors. Anything else
// fails with [ErrUnsupportedType].
func (v *SelectorsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Selectors:
		return v.validateSelectors(ctx, value, fields...)
	case *models.Selectors:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSelectors(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SelectorsValidator) validateSelectors(_ context.Context, sel models.Selectors, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEnvironment, FieldDeployment, FieldUser}
	}

	for _, f := range fields {
		switch f {
		case FieldEnvironment:
			if err := validateLayerName(f, sel.Environment); err != nil {
				return err
			}
		case FieldDeployment:
			if err := validateLayerName(f, sel.Deployment); err != nil {
				return err
			}
		case FieldUser:
			if err := validateLayerName(f, sel.User); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLayerName rejects names that would escape the layer directory or
// address a hidden file.
func validateLayerName(field, name string) error {
	if name == "" {
		return nil
	}

	switch {
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %s %q contains a path separator", ErrInvalidLayerName, field, name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %s %q starts with a dot", ErrInvalidLayerName, field, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %s contains a NUL byte", ErrInvalidLayerName, field)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("%w: %s %q has surrounding whitespace", ErrInvalidLayerName, field, name)
	}

	return nil
}
