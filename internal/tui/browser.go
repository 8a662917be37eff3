// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusTTL = 2 * time.Second

	// title, blank, filter/help lines and padding
	chromeHeight = 7
)

type browserModel struct {
	ctx    context.Context
	source Source
	copy   func(string) error

	rows      []row
	visible   []row
	idx       int
	viewport  viewport.Model
	filter    textinput.Model
	filtering bool

	fingerprint string
	loading     bool
	status      string
	err         error
	width       int
}

func newBrowserModel(ctx context.Context, source Source, copy func(string) error) browserModel {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "path or value"

	return browserModel{
		ctx:      ctx,
		source:   source,
		copy:     copy,
		viewport: viewport.New(80, 20),
		filter:   filter,
		loading:  true,
		width:    80,
	}
}

func (m browserModel) Init() tea.Cmd {
	return m.cmdFetch()
}

func (m browserModel) cmdFetch() tea.Cmd {
	return func() tea.Msg {
		tree, fingerprint, err := m.source.Fetch(m.ctx)
		return treeLoadedMsg{tree: tree, fingerprint: fingerprint, err: err}
	}
}

func (m browserModel) cmdCopy(r row) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{path: r.path, err: m.copy(r.value)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.refresh()
		return m, nil

	case treeLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.rows = flatten(msg.tree)
		m.fingerprint = msg.fingerprint
		m.applyFilter()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.status = "copied " + msg.path
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m browserModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m browserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.move(-1)
	case key.Matches(msg, keys.down):
		m.move(1)
	case key.Matches(msg, keys.pageUp):
		m.move(-m.viewport.Height)
	case key.Matches(msg, keys.pageDown):
		m.move(m.viewport.Height)
	case key.Matches(msg, keys.home):
		m.move(-len(m.visible))
	case key.Matches(msg, keys.end):
		m.move(len(m.visible))
	case key.Matches(msg, keys.copy):
		if r, ok := m.current(); ok {
			return m, m.cmdCopy(r)
		}
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.cmdFetch()
	case key.Matches(msg, keys.filter):
		m.filtering = true
		cmd := m.filter.Focus()
		return m, cmd
	case key.Matches(msg, keys.esc):
		m.filter.SetValue("")
		m.applyFilter()
	}
	return m, nil
}

func (m *browserModel) current() (row, bool) {
	if m.idx < 0 || m.idx >= len(m.visible) {
		return row{}, false
	}
	return m.visible[m.idx], true
}

func (m *browserModel) move(delta int) {
	m.idx = min(max(m.idx+delta, 0), max(len(m.visible)-1, 0))
	m.refresh()
}

func (m *browserModel) applyFilter() {
	m.visible = filterRows(m.rows, m.filter.Value())
	m.move(0)
}

// refresh re-renders the rows and scrolls so the cursor stays visible.
func (m *browserModel) refresh() {
	var b strings.Builder
	for i, r := range m.visible {
		value := fitText(r.value, max(m.width-len(r.path)-8, 8))
		if i == m.idx {
			b.WriteString(selectedStyle.Render(r.path + " = " + value))
		} else {
			b.WriteString(pathStyle.Render(r.path) + " = " + value)
		}
		if i < len(m.visible)-1 {
			b.WriteString("\n")
		}
	}
	m.viewport.SetContent(b.String())

	switch {
	case m.idx < m.viewport.YOffset:
		m.viewport.SetYOffset(m.idx)
	case m.idx >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.idx - m.viewport.Height + 1)
	}
}

func (m browserModel) View() string {
	var b strings.Builder

	title := "typedconf"
	if m.fingerprint != "" {
		title += "  " + m.fingerprint[:min(12, len(m.fingerprint))]
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
	case m.loading:
		b.WriteString("loading...")
	case len(m.visible) == 0:
		b.WriteString("no values")
	default:
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(helpLine()))

	return appStyle.Render(b.String())
}
