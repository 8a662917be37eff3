// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/typedconf/internal/config"
	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/MKhiriev/typedconf/internal/utils"
	"github.com/MKhiriev/typedconf/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It issues HS256 tokens granting the reload scope and verifies them on
// the way in.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Empty disables remote reloads.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a reload token for operator.
func (a *authService) CreateToken(ctx context.Context, operator string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if a.tokenSignKey == "" {
		return models.Token{}, ErrReloadDisabled
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, operator, models.ScopeReload, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("operator", operator).Msg("error generating token")
		return models.Token{}, fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}

// ParseToken verifies tokenString and checks that it grants
// [models.ScopeReload].
//
// Returns:
//   - ErrReloadDisabled if no signing key is configured.
//   - ErrTokenIsExpired if the token has expired.
//   - ErrInvalidToken for any other verification failure.
//   - ErrInsufficientScope if the token is valid but lacks the scope.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if a.tokenSignKey == "" {
		return models.Token{}, ErrReloadDisabled
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("error parsing token")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.HasScope(models.ScopeReload) {
		return models.Token{}, ErrInsufficientScope
	}

	return token, nil
}
