// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is a terminal browser for a resolved configuration tree.
//
// Every leaf is shown as a "path = value" row. The tree can come from a
// local resolution or from a running server; see [Source].
package tui

import (
	"context"

	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Source fetches the tree to browse together with its fingerprint.
type Source interface {
	Fetch(ctx context.Context) (tree map[string]any, fingerprint string, err error)
}

// SourceFunc adapts a function to [Source].
type SourceFunc func(ctx context.Context) (map[string]any, string, error)

func (f SourceFunc) Fetch(ctx context.Context) (map[string]any, string, error) {
	return f(ctx)
}

type TUI struct {
	source Source
	logger *logger.Logger
}

func New(source Source, logger *logger.Logger) *TUI {
	return &TUI{source: source, logger: logger}
}

// Run blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newBrowserModel(ctx, t.source, clipboard.WriteAll)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(browserModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil {
		t.logger.Err(result.err).Msg("browser closed with error")
	}

	return nil
}
