// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package picker provides the interactive option picker view.
//
// This file defines keyboard bindings for the picker. Navigation follows
// vim conventions alongside the arrow keys.
package picker

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the picker.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	CyclePrev key.Binding
	CycleNext key.Binding
	Edit      key.Binding
	Emit      key.Binding
	Copy      key.Binding
	Execute   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings for the picker.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "toggle"),
		),
		CyclePrev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev value"),
		),
		CycleNext: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next value"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit value"),
		),
		Emit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "emit"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy"),
		),
		Execute: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "execute"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/Esc", "abort"),
		),
	}
}

// ShortHelp returns the key bindings shown in the one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Edit, k.Emit, k.Copy, k.Execute, k.Quit}
}

// FullHelp returns the key bindings shown in the expanded help view,
// grouped for readability.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Up, k.Down},
		// Option state
		{k.Toggle, k.CyclePrev, k.CycleNext, k.Edit},
		// Emit
		{k.Emit, k.Copy, k.Execute},
		// Misc
		{k.Help, k.Quit},
	}
}
