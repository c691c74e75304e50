// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package picker provides the interactive option picker view.

The picker is a Bubble Tea model over an option engine. It renders the
extracted options as a scrollable checklist with a live command preview,
and translates key presses into engine transitions:

	up/k, down/j    move the cursor
	space           toggle the option under the cursor
	left/h right/l  cycle choice values (selected choice options only)
	e               edit the value of a selected option
	enter           emit with the configured default action
	ctrl+y          copy the command to the clipboard
	ctrl+x          execute the command
	q, esc          abort without emitting

Value entry uses a bubbles textinput widget; the typed value is committed
into the engine when editing ends. After the program exits, Result reports
the assembled command, the chosen output mode, and whether the user aborted.
*/
package picker
