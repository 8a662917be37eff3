// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers enabled by the server
// settings.
package handler

import (
	"net/http"

	"github.com/MKhiriev/typedconf/internal/config"
	"github.com/MKhiriev/typedconf/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/typedconf/internal/handler/http"
	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/MKhiriev/typedconf/internal/service"
	"github.com/MKhiriev/typedconf/models"
)

type Handlers struct {
	HTTP *myHTTP.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler per configured address. metrics may be nil.
func NewHandlers(services *service.Services, cfg config.Server, metrics http.Handler, version models.VersionResponse, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		opts := []myHTTP.Option{myHTTP.WithVersion(version)}
		if metrics != nil {
			opts = append(opts, myHTTP.WithMetrics(metrics))
		}
		handlers.HTTP = myHTTP.NewHandler(services, logger, opts...)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
