// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"errors"

	"github.com/MKhiriev/typedconf/internal/resolver"
	"github.com/MKhiriev/typedconf/internal/service"
	"github.com/MKhiriev/typedconf/internal/source"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodeMap = map[error]codes.Code{
	service.ErrNotLoaded:         codes.Unavailable,
	service.ErrPathNotFound:      codes.NotFound,
	service.ErrReloadDisabled:    codes.PermissionDenied,
	service.ErrTokenIsExpired:    codes.Unauthenticated,
	service.ErrInvalidToken:      codes.Unauthenticated,
	service.ErrInsufficientScope: codes.PermissionDenied,
	service.ErrConfigMissing:     codes.FailedPrecondition,

	source.ErrMalformed:        codes.FailedPrecondition,
	resolver.ErrLoaderNotFound: codes.FailedPrecondition,
}

func statusFromError(err error) error {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return status.Error(code, err.Error())
		}
	}
	return status.Error(codes.Internal, err.Error())
}
