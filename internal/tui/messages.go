// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type treeLoadedMsg struct {
	tree        map[string]any
	fingerprint string
	err         error
}

type copiedMsg struct {
	path string
	err  error
}

type clearStatusMsg struct{}
