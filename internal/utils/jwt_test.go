// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/typedconf/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, "deploy-bot", models.ScopeReload, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Issuer)
	}
	if token.Subject != "deploy-bot" {
		t.Errorf("expected subject 'deploy-bot', got %s", token.Subject)
	}
	if !token.HasScope(models.ScopeReload) {
		t.Error("expected reload scope")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		operator string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "op", time.Hour, "key"},
		{"empty operator", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "op", 0, "key"},
		{"empty key", "iss", "op", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.operator, "", tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken("typedconf", "deploy-bot", models.ScopeReload, time.Hour, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, "k", "typedconf")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	operator, err := parsed.Operator()
	if err != nil || operator != "deploy-bot" {
		t.Errorf("expected operator deploy-bot, got %q (%v)", operator, err)
	}
	if !parsed.HasScope(models.ScopeReload) {
		t.Error("expected reload scope to survive parsing")
	}
	if parsed.String() != issued.SignedString {
		t.Error("expected signed string to be kept")
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, _ := GenerateJWTToken("typedconf", "op", "", time.Hour, "k")
	otherIssuer, _ := GenerateJWTToken("someone-else", "op", "", time.Hour, "k")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "typedconf",
		Subject:   "op",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredString, _ := expired.SignedString([]byte("k"))

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: "typedconf"})
	noSubjectString, _ := noSubject.SignedString([]byte("k"))

	tests := []struct {
		name   string
		token  string
		key    string
		target error
	}{
		{name: "wrong key", token: valid.SignedString, key: "other", target: jwt.ErrTokenSignatureInvalid},
		{name: "wrong issuer", token: otherIssuer.SignedString, key: "k", target: jwt.ErrTokenInvalidIssuer},
		{name: "expired", token: expiredString, key: "k", target: jwt.ErrTokenExpired},
		{name: "no subject", token: noSubjectString, key: "k"},
		{name: "garbage", token: "not.a.token", key: "k", target: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, "typedconf")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def", want: "abc.def"},
		{header: "  bearer   abc.def ", want: "abc.def"},
		{header: "abc.def", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error, got nil", tt.header)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%q: expected %q, got %q (%v)", tt.header, tt.want, got, err)
		}
	}
}
