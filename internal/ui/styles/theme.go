// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the picker.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderMeta  lipgloss.Style

	// ==========================================================================
	// OPTION LIST STYLES
	// ==========================================================================

	OptionRow       lipgloss.Style
	OptionRowCursor lipgloss.Style
	CheckboxOn      lipgloss.Style
	CheckboxOff     lipgloss.Style
	Flag            lipgloss.Style
	FlagSelected    lipgloss.Style
	Description     lipgloss.Style
	ValueAnnotation lipgloss.Style
	ScrollIndicator lipgloss.Style

	// ==========================================================================
	// COMMAND PREVIEW STYLES
	// ==========================================================================

	PreviewBox     lipgloss.Style
	PreviewLabel   lipgloss.Style
	PreviewCommand lipgloss.Style

	// ==========================================================================
	// EDIT INPUT STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style

	// ==========================================================================
	// HELP BAR STYLES
	// ==========================================================================

	HelpBar      lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// STATUS STYLES
	// ==========================================================================

	ErrorStyle lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderMeta = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Option list
	t.OptionRow = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.OptionRowCursor = lipgloss.NewStyle().
		Background(Purple).
		Foreground(TextInverse).
		Bold(true).
		Padding(0, 1)

	t.CheckboxOn = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.CheckboxOff = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Flag = lipgloss.NewStyle().
		Foreground(Cyan)

	t.FlagSelected = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.Description = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.ValueAnnotation = lipgloss.NewStyle().
		Foreground(Amber)

	t.ScrollIndicator = lipgloss.NewStyle().
		Foreground(TextMuted).
		Align(lipgloss.Center)

	// Command preview
	t.PreviewBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.PreviewLabel = lipgloss.NewStyle().
		Foreground(TextMuted).
		Bold(true)

	t.PreviewCommand = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	// Edit input
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	// Help bar
	t.HelpBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextMuted).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Status
	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// ShowDescriptions reports whether option descriptions fit at the current
// width. Narrow terminals drop them rather than wrap every row.
func (t *Theme) ShowDescriptions() bool {
	return t.Width == 0 || t.Width >= 60
}
