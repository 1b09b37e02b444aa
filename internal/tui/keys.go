// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	next     key.Binding
	prev     key.Binding
	toggle   key.Binding
	quit     key.Binding
	about    key.Binding
	save     key.Binding
	test     key.Binding
	sync     key.Binding
	generate key.Binding
	reveal   key.Binding
	delete   key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	next:     key.NewBinding(key.WithKeys("tab", "down")),
	prev:     key.NewBinding(key.WithKeys("shift+tab", "up")),
	toggle:   key.NewBinding(key.WithKeys(" ", "enter")),
	quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	about:    key.NewBinding(key.WithKeys("f1")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	test:     key.NewBinding(key.WithKeys("ctrl+t")),
	sync:     key.NewBinding(key.WithKeys("ctrl+y")),
	generate: key.NewBinding(key.WithKeys("ctrl+g")),
	reveal:   key.NewBinding(key.WithKeys("ctrl+r")),
	delete:   key.NewBinding(key.WithKeys("ctrl+x")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}

const helpLine = "tab: next field  space: toggle  ctrl+s: save  ctrl+t: test  ctrl+y: sync now\n" +
	"ctrl+g: generate key  ctrl+r: show/hide key  ctrl+x: delete server data  f1: about"
