// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string helpers shared by the UI layers.
//
// Everything here is width-aware: terminal columns, not bytes or runes, are
// the unit that matters when laying out option rows, so the helpers lean on
// go-runewidth for CJK and other double-width characters.
package util
