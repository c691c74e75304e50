// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package engine

import (
	"testing"

	"github.com/jeranaias/flagrun/internal/model"
)

func testOptions() []model.CliOption {
	return []model.CliOption{
		model.NewCliOption('a', "all", "Show all", false, "", nil),
		model.NewCliOption('o', "output", "Output file", true, "FILE", nil),
		model.NewCliOption(0, "color", "Coloring", true, "WHEN", []string{"auto", "always", "never"}),
	}
}

// =============================================================================
// CURSOR MOVEMENT
// =============================================================================

func TestCursorClamping(t *testing.T) {
	e := New(testOptions())

	e.MoveUp() // already at the top
	if e.Cursor() != 0 {
		t.Errorf("Cursor() = %d after MoveUp at top, want 0", e.Cursor())
	}

	e.MoveDown()
	e.MoveDown()
	e.MoveDown() // already at the bottom, no wraparound
	if e.Cursor() != 2 {
		t.Errorf("Cursor() = %d after MoveDown at bottom, want 2", e.Cursor())
	}
}

func TestEmptySet(t *testing.T) {
	e := New(nil)
	e.MoveDown()
	e.Toggle()
	e.CycleNext()
	if e.StartEdit() {
		t.Error("StartEdit() = true on an empty set")
	}
	if e.Len() != 0 || e.Cursor() != 0 || e.Mode() != ModeNormal {
		t.Error("empty engine should stay inert in Normal mode")
	}
}

// =============================================================================
// TOGGLING
// =============================================================================

func TestToggle_BooleanFlag(t *testing.T) {
	e := New(testOptions())

	e.Toggle()
	if opt, _ := e.Option(0); !opt.Selected {
		t.Error("Toggle did not select the boolean option")
	}
	if e.Mode() != ModeNormal {
		t.Error("toggling a boolean flag must not enter Editing")
	}

	e.Toggle()
	if opt, _ := e.Option(0); opt.Selected {
		t.Error("second Toggle did not deselect")
	}
}

func TestToggle_ValueTakingEntersEditing(t *testing.T) {
	e := New(testOptions())
	e.MoveDown() // -o, --output <FILE>

	e.Toggle()
	if e.Mode() != ModeEditing {
		t.Fatal("toggling on a value-taking option should enter Editing")
	}
	if e.Buffer() != "" {
		t.Errorf("Buffer() = %q, want seeded empty value", e.Buffer())
	}
}

func TestToggle_ChoiceOptionStaysNormal(t *testing.T) {
	e := New(testOptions())
	e.MoveDown()
	e.MoveDown() // --color with choices

	e.Toggle()
	if e.Mode() != ModeNormal {
		t.Error("a choice option never needs free-text entry")
	}
	if opt, _ := e.Option(2); !opt.Selected {
		t.Error("choice option not selected")
	}
}

// =============================================================================
// CHOICE CYCLING
// =============================================================================

func TestCycle_LockedUntilSelected(t *testing.T) {
	e := New(testOptions())
	e.MoveDown()
	e.MoveDown()

	e.CycleNext()
	if opt, _ := e.Option(2); opt.ChoiceIndex != 0 {
		t.Error("cycling an unselected option must be a no-op")
	}

	e.Toggle()
	e.CycleNext()
	if opt, _ := e.Option(2); opt.ChoiceIndex != 1 {
		t.Errorf("ChoiceIndex = %d, want 1", opt.ChoiceIndex)
	}

	e.CyclePrev()
	e.CyclePrev()
	if opt, _ := e.Option(2); opt.ChoiceIndex != 2 {
		t.Errorf("ChoiceIndex = %d after wrap backwards, want 2", opt.ChoiceIndex)
	}
}

func TestCycle_NoopOnChoicelessOption(t *testing.T) {
	e := New(testOptions())
	e.Toggle() // select the boolean -a
	e.CycleNext()
	if opt, _ := e.Option(0); opt.ChoiceIndex != 0 {
		t.Error("cycling a choice-less option must be a no-op")
	}
}

// =============================================================================
// EDITING
// =============================================================================

func TestEditing_TypeAndBackspace(t *testing.T) {
	e := New(testOptions())
	e.MoveDown()
	e.Toggle() // enters Editing

	for _, r := range "out.tzt" {
		e.TypeRune(r)
	}
	e.Backspace()
	e.Backspace()
	e.Backspace()
	for _, r := range "txt" {
		e.TypeRune(r)
	}
	e.CommitEdit()

	if e.Mode() != ModeNormal {
		t.Error("CommitEdit should return to Normal")
	}
	opt, _ := e.Option(1)
	if opt.Value != "out.txt" {
		t.Errorf("Value = %q, want %q", opt.Value, "out.txt")
	}
	if !opt.Selected {
		t.Error("option with committed value should stay selected")
	}
}

func TestEditing_BackspaceOnEmptyBuffer(t *testing.T) {
	e := New(testOptions())
	e.MoveDown()
	e.Toggle()
	e.Backspace()
	if e.Buffer() != "" {
		t.Errorf("Buffer() = %q, want empty", e.Buffer())
	}
}

func TestEditing_EmptyCommitDeselects(t *testing.T) {
	e := New(testOptions())
	e.MoveDown()
	e.Toggle()      // on; enters Editing with empty buffer
	e.CommitEdit()  // immediately confirm the empty buffer

	opt, _ := e.Option(1)
	if opt.Selected {
		t.Error("empty commit should deselect the option (round-trip)")
	}
	if e.Mode() != ModeNormal {
		t.Error("mode should be Normal after commit")
	}
}

func TestEditing_SeedsExistingValue(t *testing.T) {
	e := New(testOptions())
	e.MoveDown()
	e.Toggle()
	e.SetBuffer("report.txt")
	e.CommitEdit()

	if !e.StartEdit() {
		t.Fatal("StartEdit should work on a selected value-taking option")
	}
	if e.Buffer() != "report.txt" {
		t.Errorf("Buffer() = %q, want seeded %q", e.Buffer(), "report.txt")
	}
	e.CommitEdit()
}

func TestStartEdit_Gating(t *testing.T) {
	e := New(testOptions())

	// Cursor on -a (boolean): never editable.
	e.Toggle()
	if e.StartEdit() {
		t.Error("StartEdit() = true on a boolean option")
	}

	// Cursor on -o but unselected: locked.
	e.MoveDown()
	if e.StartEdit() {
		t.Error("StartEdit() = true on an unselected option")
	}
}

// =============================================================================
// NORMAL/EDITING MODE ISOLATION
// =============================================================================

func TestNormalTransitionsIgnoredWhileEditing(t *testing.T) {
	e := New(testOptions())
	e.MoveDown()
	e.Toggle() // Editing

	e.MoveDown()
	e.MoveUp()
	e.Toggle()
	e.CycleNext()
	if e.Cursor() != 1 {
		t.Errorf("Cursor() = %d, cursor must not move while editing", e.Cursor())
	}
	if opt, _ := e.Option(1); !opt.Selected {
		t.Error("Toggle must be inert while editing")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := New(testOptions())
	snap := e.Snapshot()
	snap[0].Selected = true
	if opt, _ := e.Option(0); opt.Selected {
		t.Error("mutating a snapshot must not affect engine state")
	}
}
