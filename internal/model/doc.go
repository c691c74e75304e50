// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for extracted command options.
//
// This package defines the core domain types used throughout the application
// for representing command-line flags recovered from help text, together with
// the live state each flag accumulates while the user interacts with it.
//
// # Key Types
//
//   - CliOption: One distinct flag with its extraction metadata and interaction state
//   - Identity: The (short, long) pair that makes an option unique within a set
//
// # Usage
//
// Create an option and render its argument:
//
//	opt := model.NewCliOption('v', "verbose", "Enable verbose output", false, "", nil)
//	opt.Selected = true
//	arg, ok := opt.ToArg() // "--verbose", true
package model
