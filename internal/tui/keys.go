// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	backtab       key.Binding
	quit          key.Binding
	logout        key.Binding
	newNote       key.Binding
	menu          key.Binding
	favorite      key.Binding
	search        key.Binding
	category      key.Binding
	tag           key.Binding
	favoritesOnly key.Binding
	clearFilters  key.Binding
	edit          key.Binding
	save          key.Binding
	toggle        key.Binding
	complete      key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k")),
	down:          key.NewBinding(key.WithKeys("down", "j")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab")),
	backtab:       key.NewBinding(key.WithKeys("shift+tab")),
	quit:          key.NewBinding(key.WithKeys("q")),
	logout:        key.NewBinding(key.WithKeys("l")),
	newNote:       key.NewBinding(key.WithKeys("n")),
	menu:          key.NewBinding(key.WithKeys("m", " ")),
	favorite:      key.NewBinding(key.WithKeys("f")),
	search:        key.NewBinding(key.WithKeys("/")),
	category:      key.NewBinding(key.WithKeys("c")),
	tag:           key.NewBinding(key.WithKeys("t")),
	favoritesOnly: key.NewBinding(key.WithKeys("*")),
	clearFilters:  key.NewBinding(key.WithKeys("x")),
	edit:          key.NewBinding(key.WithKeys("e")),
	save:          key.NewBinding(key.WithKeys("ctrl+s")),
	toggle:        key.NewBinding(key.WithKeys(" ")),
	complete:      key.NewBinding(key.WithKeys("ctrl+f")),
}
