// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package picker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/flagrun/internal/command"
	"github.com/jeranaias/flagrun/internal/engine"
	"github.com/jeranaias/flagrun/internal/output"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		if m.engine.Mode() == engine.ModeEditing {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

// updateNormal handles key presses while browsing the option list.
func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.engine.MoveUp()
		m.ensureVisible()

	case key.Matches(msg, m.keys.Down):
		m.engine.MoveDown()
		m.ensureVisible()

	case key.Matches(msg, m.keys.Toggle):
		m.engine.Toggle()
		if m.engine.Mode() == engine.ModeEditing {
			m.beginEdit()
		}

	case key.Matches(msg, m.keys.CyclePrev):
		m.engine.CyclePrev()

	case key.Matches(msg, m.keys.CycleNext):
		m.engine.CycleNext()

	case key.Matches(msg, m.keys.Edit):
		if m.engine.StartEdit() {
			m.beginEdit()
		}

	case key.Matches(msg, m.keys.Emit):
		return m.emit(m.defaultMode)

	case key.Matches(msg, m.keys.Copy):
		return m.emit(output.ModeClipboard)

	case key.Matches(msg, m.keys.Execute):
		return m.emit(output.ModeExecute)

	case key.Matches(msg, m.keys.Help):
		m.help = !m.help
	}

	return m, nil
}

// updateEditing handles key presses while the value input is active.
// Enter and Esc both commit; an empty value deselects the option.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.engine.SetBuffer(m.input.Value())
		m.engine.CommitEdit()
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// beginEdit prepares the text input with the engine's seeded buffer.
func (m *Model) beginEdit() {
	m.input.SetValue(m.engine.Buffer())
	m.input.CursorEnd()
	m.input.Focus()
}

// emit assembles the final command and quits.
func (m Model) emit(mode output.Mode) (tea.Model, tea.Cmd) {
	m.command = command.Build(m.base, m.engine.Snapshot())
	m.mode = mode
	m.aborted = false
	return m, tea.Quit
}
