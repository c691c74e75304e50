// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/flagrun/internal/cli"
)

func TestResolveConfig_FlagsWin(t *testing.T) {
	cfg := resolveConfig(cli.Args{Shell: "zsh", Output: "execute"})

	if cfg.Shell != "zsh" {
		t.Errorf("Shell = %q, want %q", cfg.Shell, "zsh")
	}
	if cfg.Output.DefaultMode != "execute" {
		t.Errorf("DefaultMode = %q, want %q", cfg.Output.DefaultMode, "execute")
	}
}

func TestResolveConfig_NoColorDisablesStyling(t *testing.T) {
	resolveConfig(cli.Args{NoColor: true})

	if lipgloss.ColorProfile() != termenv.Ascii {
		t.Errorf("color profile = %v, want Ascii with --no-color", lipgloss.ColorProfile())
	}
}

func TestResolveConfig_ColorProfileFollowsDetection(t *testing.T) {
	cfg := resolveConfig(cli.Args{})
	cfg.UI.NoColor = false
	resolveConfig(cli.Args{})

	// Without --no-color the profile must come from the shared detection
	// path, which folds in FORCE_COLOR and TTY state.
	if lipgloss.ColorProfile() != cli.GetColorProfile() {
		t.Errorf("color profile = %v, want %v from terminal detection",
			lipgloss.ColorProfile(), cli.GetColorProfile())
	}
}
