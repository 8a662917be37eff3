// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the application services: the configuration
// context and reload token handling.
package service

type Services struct {
	ConfService ConfService
	AuthService AuthService
}

func NewServices(conf ConfService, auth AuthService) *Services {
	return &Services{
		ConfService: conf,
		AuthService: auth,
	}
}
