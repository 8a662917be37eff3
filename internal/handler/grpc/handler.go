// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the typedconf.Conf gRPC service on top of the
// service layer.
package grpc

import (
	"context"
	"strings"

	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/MKhiriev/typedconf/internal/service"
	"github.com/MKhiriev/typedconf/internal/utils"
	"github.com/MKhiriev/typedconf/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register installs the typedconf.Conf service on s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	RegisterConfServer(s, h)
}

func (h *Handler) Get(ctx context.Context, req *GetRequest) (*GetResponse, error) {
	log := logger.FromContext(ctx)

	snapshot, err := h.services.ConfService.Get()
	if err != nil {
		log.Err(err).Msg("error getting configuration")
		return nil, statusFromError(err)
	}

	value, ok := snapshot.Lookup(models.SplitPath(req.Path))
	if !ok {
		log.Error().Str("path", req.Path).Msg("configuration path not found")
		return nil, status.Errorf(codes.NotFound, "%s: %q", service.ErrPathNotFound, req.Path)
	}

	return &GetResponse{Path: req.Path, Value: value, Fingerprint: snapshot.Fingerprint}, nil
}

// Reload requires "authorization: Bearer <token>" metadata carrying a
// token with the reload scope.
func (h *Handler) Reload(ctx context.Context, _ *ReloadRequest) (*models.ReloadResponse, error) {
	log := logger.FromContext(ctx)

	md, _ := metadata.FromIncomingContext(ctx)
	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing authorization metadata")
	}

	tokenString, err := utils.ParseBearerToken(values[0])
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("token rejected")
		return nil, statusFromError(err)
	}
	operator, _ := token.Operator()

	snapshot, err := h.services.ConfService.Reload(ctx)
	if err != nil {
		log.Err(err).Str("operator", operator).Msg("reload failed")
		return nil, statusFromError(err)
	}

	log.Info().Str("operator", operator).Str("fingerprint", snapshot.Fingerprint).Msg("configuration reloaded")
	return &models.ReloadResponse{
		ID:          snapshot.ID,
		Fingerprint: snapshot.Fingerprint,
		ResolvedAt:  snapshot.ResolvedAt,
	}, nil
}

// LoggingInterceptor attaches a child logger with trace_id to the call
// context and logs every call with its status code.
func (h *Handler) LoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := utils.NewRunID().String()
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get("x-trace-id"); len(ids) > 0 && strings.TrimSpace(ids[0]) != "" {
			traceID = ids[0]
		}
	}

	log := h.logger.GetChildLogger().With().Str("trace_id", traceID).Logger()
	ctx = log.WithContext(ctx)

	resp, err := handler(ctx, req)

	log.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Send()

	return resp, err
}
