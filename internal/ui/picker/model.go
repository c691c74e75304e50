// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package picker

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/flagrun/internal/engine"
	"github.com/jeranaias/flagrun/internal/model"
	"github.com/jeranaias/flagrun/internal/output"
	"github.com/jeranaias/flagrun/internal/ui/styles"
)

// =============================================================================
// PICKER MODEL
// =============================================================================

// Model is the Bubble Tea model for the option picker.
type Model struct {
	engine *engine.Engine
	base   []string
	theme  *styles.Theme
	keys   KeyMap
	input  textinput.Model

	width  int
	height int
	offset int // first visible option row
	help   bool

	// defaultMode is what Enter emits with; ctrl+y and ctrl+x override it.
	defaultMode output.Mode

	// Result fields, valid once the program has quit.
	command string
	mode    output.Mode
	aborted bool
}

// New creates a picker over the extracted options. base is the target
// command's tokens; defaultMode is the action bound to Enter.
func New(base []string, options []model.CliOption, theme *styles.Theme, defaultMode output.Mode) Model {
	ti := textinput.New()
	ti.Prompt = "value> "
	ti.CharLimit = 0

	return Model{
		engine:      engine.New(options),
		base:        base,
		theme:       theme,
		keys:        DefaultKeyMap(),
		input:       ti,
		defaultMode: defaultMode,
		aborted:     true, // until the user emits
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Result returns the assembled command, the output mode chosen by the final
// key press, and whether the user aborted instead of emitting. Call after
// the program has finished.
func (m Model) Result() (command string, mode output.Mode, aborted bool) {
	return m.command, m.mode, m.aborted
}

// visibleRows returns how many option rows fit in the current height,
// leaving room for the header, preview and help areas.
func (m Model) visibleRows() int {
	rows := m.height - chromeLines
	if rows < 1 {
		return 1
	}
	if rows > m.engine.Len() {
		return m.engine.Len()
	}
	return rows
}

// chromeLines is the vertical space the non-list parts of the view occupy:
// header, preview box, help bar and their separators.
const chromeLines = 8

// ensureVisible scrolls the window so the cursor row stays on screen.
func (m *Model) ensureVisible() {
	rows := m.visibleRows()
	cursor := m.engine.Cursor()
	if cursor < m.offset {
		m.offset = cursor
	}
	if cursor >= m.offset+rows {
		m.offset = cursor - rows + 1
	}
}
