// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package parse

import (
	"regexp"
	"strings"

	"github.com/jeranaias/flagrun/internal/model"
)

// =============================================================================
// EXTRACTION PATTERNS
// =============================================================================

// Help-text shapes the primary pattern understands:
//
//	-f, --flag           Description
//	-f, --flag=VALUE     Description
//	-f, --flag <VALUE>   Description
//	-f, --flag...        Description (repeatable)
//	--flag               Description
//	-f                   Description
//
// At least two spaces must separate the flag column from the description.
var primaryPattern = regexp.MustCompile(
	`(?m)^\s*(-([a-zA-Z]),?\s*)?(?:--([\w-]+))?(?:\.\.\.)?(?:[=\s]<([^>]+)>|=(\S+))?\s{2,}(.+)$`,
)

// shortOnlyPattern catches bare "-f  description" lines that the primary
// pattern can miss in sparse help output.
var shortOnlyPattern = regexp.MustCompile(
	`(?m)^\s*(-([a-zA-Z]))\s{2,}(.+)$`,
)

// longOnlyPattern catches "--flag[=VALUE]  description" lines.
var longOnlyPattern = regexp.MustCompile(
	`(?m)^\s*--([\w-]+)(?:[=\s]<([^>]+)>|=(\S+))?\s{2,}(.+)$`,
)

// choicesPattern matches bracketed enumerations like
// "[possible values: auto, always, never]" or "[values: a, b]".
var choicesPattern = regexp.MustCompile(
	`(?i)\[(?:possible\s+)?values?:\s*([^\]]+)\]`,
)

// =============================================================================
// HELP TEXT EXTRACTION
// =============================================================================

// ParseHelp extracts an ordered, deduplicated option set from raw help text.
//
// The primary pattern runs first. Only when it yields nothing do the
// short-only and long-only fallback patterns run, and their results are
// merged. Duplicate (short, long) identities keep the first occurrence.
// An input with no recognizable option lines returns an empty slice.
func ParseHelp(input string) []model.CliOption {
	var options []model.CliOption

	for _, cap := range primaryPattern.FindAllStringSubmatch(input, -1) {
		short := captureRune(cap[2])
		long := cap[3]
		valueHint := cap[4]
		if valueHint == "" {
			valueHint = cap[5]
		}
		if short == 0 && long == "" {
			continue
		}
		description, choices := extractChoices(strings.TrimSpace(cap[6]))
		options = append(options, model.NewCliOption(
			short,
			long,
			description,
			valueHint != "" || choices != nil,
			valueHint,
			choices,
		))
	}

	if len(options) == 0 {
		for _, cap := range shortOnlyPattern.FindAllStringSubmatch(input, -1) {
			short := captureRune(cap[2])
			if short == 0 {
				continue
			}
			description, choices := extractChoices(strings.TrimSpace(cap[3]))
			options = append(options, model.NewCliOption(
				short,
				"",
				description,
				choices != nil,
				"",
				choices,
			))
		}

		for _, cap := range longOnlyPattern.FindAllStringSubmatch(input, -1) {
			long := cap[1]
			if long == "" {
				continue
			}
			valueHint := cap[2]
			if valueHint == "" {
				valueHint = cap[3]
			}
			description, choices := extractChoices(strings.TrimSpace(cap[4]))
			options = append(options, model.NewCliOption(
				0,
				long,
				description,
				valueHint != "" || choices != nil,
				valueHint,
				choices,
			))
		}
	}

	return dedupe(options)
}

// extractChoices searches a description for a bracketed choice enumeration.
// When one is found it returns the description with the annotation removed
// and the ordered choice values; otherwise the description is returned
// unchanged with a nil choice list.
func extractChoices(description string) (string, []string) {
	m := choicesPattern.FindStringSubmatch(description)
	if m == nil {
		return description, nil
	}

	var choices []string
	for _, part := range strings.Split(m[1], ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			choices = append(choices, trimmed)
		}
	}
	if len(choices) == 0 {
		return description, nil
	}

	clean := strings.TrimSpace(choicesPattern.ReplaceAllString(description, ""))
	return clean, choices
}

// dedupe drops later options that share a (short, long) identity with an
// earlier one, preserving first-seen order.
func dedupe(options []model.CliOption) []model.CliOption {
	seen := make(map[model.Identity]struct{}, len(options))
	result := options[:0]
	for _, opt := range options {
		id := opt.Identity()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, opt)
	}
	return result
}

// captureRune returns the first rune of a single-character capture group,
// or 0 when the group did not match.
func captureRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
