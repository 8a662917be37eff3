// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// validate checks that the final merged [Settings] satisfies all field
// rules declared in `validate` tags before it is used at startup.
//
// Returns nil if the settings are valid, or an error wrapping
// [ErrInvalidSettings] otherwise.
func (cfg *Settings) validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	return nil
}
