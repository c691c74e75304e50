// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package parse recovers structured options from free-form help text.
//
// Help output has no grammar, so extraction is a cascade of regular
// expressions rather than a parser: a primary pattern that understands the
// common "-s, --long <HINT>  description" shape, and two narrower fallback
// patterns that only run when the primary pass finds nothing. An empty result
// is a valid result; the caller decides whether that is fatal.
package parse
