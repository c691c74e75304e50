// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package engine

import "github.com/jeranaias/flagrun/internal/model"

// =============================================================================
// MODES
// =============================================================================

// Mode is the engine's interaction mode.
type Mode int

const (
	// ModeNormal is browsing: cursor movement, toggling, choice cycling.
	ModeNormal Mode = iota
	// ModeEditing is free-text value entry for the option under the cursor.
	ModeEditing
)

// =============================================================================
// ENGINE
// =============================================================================

// Engine drives user interaction over an owned option set. Options are
// addressed by stable index; their order never changes after construction.
type Engine struct {
	options []model.CliOption
	cursor  int
	mode    Mode
	buffer  string
}

// New creates an engine over the given options. The engine takes ownership
// of the slice; callers must not retain references into it. The cursor
// starts at index 0 and every option starts unselected as the extractor
// produced it.
func New(options []model.CliOption) *Engine {
	return &Engine{options: options}
}

// Len returns the number of options.
func (e *Engine) Len() int {
	return len(e.options)
}

// Cursor returns the current cursor index.
func (e *Engine) Cursor() int {
	return e.cursor
}

// Mode returns the current interaction mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Buffer returns the transient edit buffer. Only meaningful in ModeEditing.
func (e *Engine) Buffer() string {
	return e.buffer
}

// Option returns a copy of the option at index i. The copy keeps presentation
// code from aliasing engine-owned state.
func (e *Engine) Option(i int) (model.CliOption, bool) {
	if i < 0 || i >= len(e.options) {
		return model.CliOption{}, false
	}
	return e.options[i], true
}

// Snapshot returns a copy of the full option set in canonical order, for
// rendering and command assembly.
func (e *Engine) Snapshot() []model.CliOption {
	out := make([]model.CliOption, len(e.options))
	copy(out, e.options)
	return out
}

// =============================================================================
// NORMAL MODE TRANSITIONS
// =============================================================================

// MoveUp moves the cursor one option up, clamped at the top.
func (e *Engine) MoveUp() {
	if e.mode != ModeNormal {
		return
	}
	if e.cursor > 0 {
		e.cursor--
	}
}

// MoveDown moves the cursor one option down, clamped at the bottom.
func (e *Engine) MoveDown() {
	if e.mode != ModeNormal {
		return
	}
	if e.cursor < len(e.options)-1 {
		e.cursor++
	}
}

// Toggle flips the selection of the option under the cursor. Turning on an
// option that takes a free-form value (and has no choice list) immediately
// enters Editing mode with the buffer seeded from the option's current value.
func (e *Engine) Toggle() {
	if e.mode != ModeNormal || len(e.options) == 0 {
		return
	}
	opt := &e.options[e.cursor]
	opt.Selected = !opt.Selected

	if opt.Selected && opt.TakesValue && !opt.HasChoices() {
		e.mode = ModeEditing
		e.buffer = opt.Value
	}
}

// CycleNext advances the choice of the option under the cursor. Cycling is
// locked until the option is toggled on; unselected or choice-less options
// are a no-op.
func (e *Engine) CycleNext() {
	if opt := e.cyclable(); opt != nil {
		opt.NextChoice()
	}
}

// CyclePrev moves the choice of the option under the cursor backwards, under
// the same gating as CycleNext.
func (e *Engine) CyclePrev() {
	if opt := e.cyclable(); opt != nil {
		opt.PrevChoice()
	}
}

func (e *Engine) cyclable() *model.CliOption {
	if e.mode != ModeNormal || len(e.options) == 0 {
		return nil
	}
	opt := &e.options[e.cursor]
	if !opt.Selected || !opt.HasChoices() {
		return nil
	}
	return opt
}

// StartEdit explicitly enters Editing mode for the option under the cursor.
// Allowed only when that option is selected and takes a value. Returns true
// when the mode changed.
func (e *Engine) StartEdit() bool {
	if e.mode != ModeNormal || len(e.options) == 0 {
		return false
	}
	opt := &e.options[e.cursor]
	if !opt.Selected || !opt.TakesValue {
		return false
	}
	e.mode = ModeEditing
	e.buffer = opt.Value
	return true
}

// =============================================================================
// EDITING MODE TRANSITIONS
// =============================================================================

// TypeRune appends a character to the edit buffer.
func (e *Engine) TypeRune(r rune) {
	if e.mode != ModeEditing {
		return
	}
	e.buffer += string(r)
}

// Backspace removes the last character of the edit buffer. No-op on an empty
// buffer.
func (e *Engine) Backspace() {
	if e.mode != ModeEditing {
		return
	}
	if runes := []rune(e.buffer); len(runes) > 0 {
		e.buffer = string(runes[:len(runes)-1])
	}
}

// SetBuffer replaces the edit buffer wholesale. Front ends with their own
// line-editing widget commit through this before CommitEdit.
func (e *Engine) SetBuffer(s string) {
	if e.mode != ModeEditing {
		return
	}
	e.buffer = s
}

// CommitEdit writes the buffer into the option under the cursor and returns
// to Normal mode. Confirm and cancel both land here: the buffer is committed
// either way. Committing an empty value deselects the option, so a
// value-taking flag toggled on but left blank reverts to off.
func (e *Engine) CommitEdit() {
	if e.mode != ModeEditing {
		return
	}
	if e.cursor < len(e.options) {
		opt := &e.options[e.cursor]
		opt.Value = e.buffer
		if e.buffer == "" {
			opt.Selected = false
		}
	}
	e.mode = ModeNormal
	e.buffer = ""
}
