// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package command assembles the final command line from base tokens and the
// current option state.
package command

import (
	"strings"

	"github.com/jeranaias/flagrun/internal/model"
)

// Build joins the base command tokens with the argument of every selected
// option, in the option set's canonical extraction order. The function is
// pure: the same inputs always produce the same string, and the order the
// user toggled options in is irrelevant.
func Build(base []string, options []model.CliOption) string {
	parts := make([]string, 0, len(base)+len(options))
	parts = append(parts, base...)

	for i := range options {
		if arg, ok := options[i].ToArg(); ok {
			parts = append(parts, arg)
		}
	}

	return strings.Join(parts, " ")
}
