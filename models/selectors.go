// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Selectors choose which optional layers take part in a resolution cycle.
// Empty names skip their layer.
type Selectors struct {
	// Environment selects environments/{Environment}.json.
	Environment string `json:"environment,omitempty"`
	// Deployment selects deployments/{Deployment}.json.
	Deployment string `json:"deployment,omitempty"`
	// User selects users/{User}.json.
	User string `json:"user,omitempty"`
	// Overrides is the highest-precedence layer, supplied at runtime.
	Overrides map[string]any `json:"overrides,omitempty"`
}
