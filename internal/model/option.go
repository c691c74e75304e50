// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "fmt"

// =============================================================================
// CLI OPTION
// =============================================================================

// CliOption represents one distinct flag extracted from a program's help text.
//
// The extraction fields (Short, Long, Description, TakesValue, ValueHint,
// Choices) are fixed once the option leaves the extractor. Only the
// interaction fields (Selected, Value, ChoiceIndex) change afterwards, and
// only through the interaction engine.
type CliOption struct {
	// Short is the single-character flag, or 0 when the option has no short form.
	Short rune
	// Long is the long flag name without leading dashes, or "" when absent.
	Long string
	// Description is the help text for the flag, with any bracketed
	// choice-list annotation already stripped.
	Description string
	// TakesValue is true when a value placeholder or a choice list was
	// detected for this flag.
	TakesValue bool
	// ValueHint is the placeholder name shown in the help text (e.g. "FILE"
	// from "<FILE>"), or "" when none was captured.
	ValueHint string
	// Choices holds the enumerated values recovered from a
	// "[possible values: ...]" annotation. Nil when no annotation was found.
	Choices []string

	// Selected marks whether the user has toggled this option on.
	Selected bool
	// Value is the free-form value typed by the user. Only meaningful when
	// Choices is absent.
	Value string
	// ChoiceIndex indexes into Choices. Always a valid index while Choices
	// is non-empty.
	ChoiceIndex int
}

// NewCliOption creates an option in its initial state: unselected, empty
// value, first choice active. Pass 0 for short or "" for long when the flag
// has no such form.
func NewCliOption(short rune, long, description string, takesValue bool, valueHint string, choices []string) CliOption {
	return CliOption{
		Short:       short,
		Long:        long,
		Description: description,
		TakesValue:  takesValue,
		ValueHint:   valueHint,
		Choices:     choices,
	}
}

// Identity is the (short, long) pair that makes an option unique within a
// set. Two lines of help text producing the same identity collapse to one
// option.
type Identity struct {
	Short rune
	Long  string
}

// Identity returns the deduplication key for this option.
func (o *CliOption) Identity() Identity {
	return Identity{Short: o.Short, Long: o.Long}
}

// HasChoices reports whether the option carries a non-empty choice list.
func (o *CliOption) HasChoices() bool {
	return len(o.Choices) > 0
}

// CurrentChoice returns the choice at ChoiceIndex, or "" when the option has
// no choices or the index is out of range.
func (o *CliOption) CurrentChoice() string {
	if o.ChoiceIndex < 0 || o.ChoiceIndex >= len(o.Choices) {
		return ""
	}
	return o.Choices[o.ChoiceIndex]
}

// NextChoice advances ChoiceIndex cyclically. Wraps from the last choice back
// to the first. No-op when the option has no choices.
func (o *CliOption) NextChoice() {
	if len(o.Choices) == 0 {
		return
	}
	o.ChoiceIndex = (o.ChoiceIndex + 1) % len(o.Choices)
}

// PrevChoice moves ChoiceIndex backwards cyclically. Wraps from the first
// choice to the last. No-op when the option has no choices.
func (o *CliOption) PrevChoice() {
	if len(o.Choices) == 0 {
		return
	}
	if o.ChoiceIndex == 0 {
		o.ChoiceIndex = len(o.Choices) - 1
		return
	}
	o.ChoiceIndex--
}

// DisplayFlag renders the flag for presentation: "-v, --verbose", "-v" or
// "--verbose" depending on which forms exist. This is display-only and not
// part of the assembly contract; ToArg decides what reaches the command line.
func (o *CliOption) DisplayFlag() string {
	switch {
	case o.Short != 0 && o.Long != "":
		return fmt.Sprintf("-%c, --%s", o.Short, o.Long)
	case o.Short != 0:
		return fmt.Sprintf("-%c", o.Short)
	case o.Long != "":
		return "--" + o.Long
	default:
		return ""
	}
}

// ToArg renders the option's contribution to the assembled command from its
// current state. The second return is false when the option contributes
// nothing:
//
//   - the option is not selected
//   - the option has neither a short nor a long form
//   - the option takes a value but none has been provided
//
// The long form wins when both forms exist. A choice option emits the
// currently indexed choice; a value option emits its typed value; a boolean
// option emits the bare flag.
func (o *CliOption) ToArg() (string, bool) {
	if !o.Selected {
		return "", false
	}

	var flag string
	switch {
	case o.Long != "":
		flag = "--" + o.Long
	case o.Short != 0:
		flag = fmt.Sprintf("-%c", o.Short)
	default:
		return "", false
	}

	if choice := o.CurrentChoice(); choice != "" {
		return flag + " " + choice, true
	}
	if o.TakesValue && o.Value != "" {
		return flag + " " + o.Value, true
	}
	if o.TakesValue {
		// A flag that needs a value but has none would dangle; emit nothing.
		return "", false
	}
	return flag, true
}
