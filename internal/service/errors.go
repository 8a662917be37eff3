// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrConfigMissing is returned when the base layer (default.json) does
	// not exist.
	ErrConfigMissing = errors.New("unable to find default configuration")

	// ErrNotLoaded is returned by read operations before the first
	// successful Load.
	ErrNotLoaded = errors.New("configuration not loaded")

	// ErrPathNotFound is returned when a path does not address a value of
	// the current snapshot.
	ErrPathNotFound = errors.New("configuration path not found")

	// ErrHistoryDisabled is returned by History when no repository is
	// configured.
	ErrHistoryDisabled = errors.New("history is disabled")

	// ErrReloadDisabled is returned when tokens are requested or checked
	// without a signing key.
	ErrReloadDisabled = errors.New("remote reload is disabled")

	// ErrTokenIsExpired is returned when a reload token's exp claim has
	// passed.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrInvalidToken is returned for tokens that fail signature, issuer or
	// claim checks.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInsufficientScope is returned when a valid token does not grant
	// the reload scope.
	ErrInsufficientScope = errors.New("token lacks required scope")
)
