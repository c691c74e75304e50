// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine implements the interaction state machine over an option set.
//
// The engine owns the extracted options and is the only code that mutates
// them: the presentation layer reads snapshots and forwards input events, it
// never touches an option directly. One event produces exactly one state
// transition, which keeps the single-writer invariant trivially true in
// Bubble Tea's synchronous update loop.
//
// Two modes exist: Normal (browse, toggle, cycle) and Editing (free-text
// value entry through a transient buffer). There is no terminal state; the
// front end decides when the session ends.
package engine
