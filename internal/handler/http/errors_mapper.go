// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/typedconf/internal/resolver"
	"github.com/MKhiriev/typedconf/internal/service"
	"github.com/MKhiriev/typedconf/internal/source"
	"github.com/MKhiriev/typedconf/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrNotLoaded:         http.StatusServiceUnavailable,
	service.ErrPathNotFound:      http.StatusNotFound,
	service.ErrHistoryDisabled:   http.StatusNotFound,
	service.ErrReloadDisabled:    http.StatusForbidden,
	service.ErrTokenIsExpired:    http.StatusUnauthorized,
	service.ErrInvalidToken:      http.StatusUnauthorized,
	service.ErrInsufficientScope: http.StatusForbidden,
	service.ErrConfigMissing:     http.StatusUnprocessableEntity,

	source.ErrMalformed:        http.StatusUnprocessableEntity,
	resolver.ErrLoaderNotFound: http.StatusUnprocessableEntity,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
