// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/MKhiriev/typedconf/internal/service"
	"github.com/MKhiriev/typedconf/models"
)

type Handler struct {
	services *service.Services

	// metrics serves /metrics; nil hides the route.
	metrics http.Handler
	version models.VersionResponse

	logger *logger.Logger
}

// Option configures a [Handler].
type Option func(*Handler)

// WithMetrics exposes h under /metrics.
func WithMetrics(h http.Handler) Option {
	return func(handler *Handler) {
		handler.metrics = h
	}
}

// WithVersion sets the build metadata reported by /api/version.
func WithVersion(v models.VersionResponse) Option {
	return func(handler *Handler) {
		handler.version = v
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
