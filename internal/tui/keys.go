// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	home     key.Binding
	end      key.Binding
	copy     key.Binding
	reload   key.Binding
	filter   key.Binding
	esc      key.Binding
	quit     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	pageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u")),
	pageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d")),
	home:     key.NewBinding(key.WithKeys("home", "g")),
	end:      key.NewBinding(key.WithKeys("end", "G")),
	copy:     key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("enter", "copy value")),
	reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func helpLine() string {
	line := ""
	for _, b := range []key.Binding{keys.up, keys.down, keys.copy, keys.filter, keys.reload, keys.quit} {
		if line != "" {
			line += "  "
		}
		line += b.Help().Key + " " + b.Help().Desc
	}
	return line
}
