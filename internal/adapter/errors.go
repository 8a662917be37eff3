// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("configuration cannot be resolved")
	ErrNotLoaded           = errors.New("server has no configuration loaded")
	ErrInternalServerError = errors.New("internal server error")

	ErrInvalidAddress = errors.New("invalid server address")
)
