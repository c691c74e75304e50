// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()

	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}

	// Verify styles are initialized by rendering a test string
	if rendered := theme.Header.Render("test"); rendered == "" {
		t.Error("NewTheme() should initialize Header style")
	}
}

func TestThemeInitStyles(t *testing.T) {
	theme := NewTheme()

	// Test by rendering and checking for non-empty output; an uninitialized
	// style would still echo the input, so this catches zero values only.
	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Header", theme.Header},
		{"OptionRow", theme.OptionRow},
		{"OptionRowCursor", theme.OptionRowCursor},
		{"CheckboxOn", theme.CheckboxOn},
		{"CheckboxOff", theme.CheckboxOff},
		{"Flag", theme.Flag},
		{"FlagSelected", theme.FlagSelected},
		{"Description", theme.Description},
		{"ValueAnnotation", theme.ValueAnnotation},
		{"PreviewBox", theme.PreviewBox},
		{"PreviewCommand", theme.PreviewCommand},
		{"InputContainer", theme.InputContainer},
		{"InputPrompt", theme.InputPrompt},
		{"HelpBar", theme.HelpBar},
		{"ShortcutKey", theme.ShortcutKey},
		{"ErrorStyle", theme.ErrorStyle},
	}

	for _, s := range styles {
		rendered := s.style.Render("test")
		if rendered == "" {
			t.Errorf("%s style should be initialized", s.name)
		}
	}
}

func TestThemeSetSize(t *testing.T) {
	theme := NewTheme()

	tests := []struct {
		width  int
		height int
	}{
		{80, 24},
		{120, 40},
		{40, 10},
	}

	for _, tc := range tests {
		theme.SetSize(tc.width, tc.height)
		if theme.Width != tc.width {
			t.Errorf("SetSize(%d, %d) Width = %d, want %d", tc.width, tc.height, theme.Width, tc.width)
		}
		if theme.Height != tc.height {
			t.Errorf("SetSize(%d, %d) Height = %d, want %d", tc.width, tc.height, theme.Height, tc.height)
		}
	}
}

func TestThemeShowDescriptions(t *testing.T) {
	theme := NewTheme()

	tests := []struct {
		width int
		want  bool
	}{
		{0, true}, // unknown width, assume room
		{40, false},
		{59, false},
		{60, true},
		{120, true},
	}

	for _, tc := range tests {
		theme.SetSize(tc.width, 24)
		if got := theme.ShowDescriptions(); got != tc.want {
			t.Errorf("ShowDescriptions() at width %d = %v, want %v", tc.width, got, tc.want)
		}
	}
}

func TestThemeMultipleInitialization(t *testing.T) {
	theme1 := NewTheme()
	theme2 := NewTheme()

	if theme1 == theme2 {
		t.Error("NewTheme() should create distinct theme instances")
	}

	theme1.SetSize(100, 50)
	theme2.SetSize(200, 80)

	if theme1.Width == theme2.Width {
		t.Error("Themes should have independent state")
	}
}
