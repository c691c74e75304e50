// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Argument parsing and command routing for flagrun.
package cli

import (
	"fmt"
	"os"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the flagrun command to execute.
type Command int

const (
	// CmdPick runs the interactive picker over the target command (default).
	CmdPick Command = iota
	// CmdInspect dumps the raw help text and the parsed option set without
	// entering interaction, for troubleshooting the extraction heuristics.
	CmdInspect
	// CmdHistory lists recently emitted commands.
	CmdHistory
	CmdVersion
	CmdHelp
)

// Args holds parsed flagrun arguments.
type Args struct {
	// Global flags (flagrun's own; everything from the first non-flag token
	// on belongs to the target verbatim)
	NoColor bool
	Shell   string
	Output  string

	// Target is the base command tokens for pick/inspect.
	Target []string

	// Rest holds the remaining tokens for subcommands like history.
	Rest []string
}

const usageText = `flagrun - interactive option picker for any command

Flagrun runs a program with --help, recovers its flags from the help text
and lets you compose a command line interactively.

Usage:
  flagrun [flags] <command> [args...]   Pick options for a command
  flagrun inspect <command> [args...]   Dump raw help text and parsed options
  flagrun history [--limit N]           Show recently emitted commands
  flagrun version                       Print version info
  flagrun help                          Show this help

Flags (must precede the target command):
  --no-color        Disable colored output
  --shell <SHELL>   Shell used by the execute action (default: sh, cmd on Windows)
  --output <MODE>   Default action for Enter: print, clipboard, execute

Picker keys:
  up/k down/j       Move cursor
  space             Toggle flag on/off
  left/h right/l    Cycle choice values (selected choice flags only)
  e                 Edit the value of a selected flag
  enter             Emit with the default action
  ctrl+y            Copy command to clipboard
  ctrl+x            Execute command
  q / esc           Abort without emitting

Examples:
  flagrun ls
  flagrun git commit
  flagrun --output execute cargo build
  flagrun inspect rsync
`

// Parse parses os.Args into a command and its arguments.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given argument list. Flagrun's own flags may only
// appear before the target command; the first token that is not one of them
// starts the target argv and is passed through untouched, so the target's
// own flags are never swallowed.
func ParseArgs(argv []string) (Command, Args) {
	var args Args

	i := 0
flags:
	for i < len(argv) {
		switch argv[i] {
		case "--no-color":
			args.NoColor = true
			i++
		case "--shell":
			if i+1 < len(argv) {
				args.Shell = argv[i+1]
				i += 2
			} else {
				i++
			}
		case "--output":
			if i+1 < len(argv) {
				args.Output = argv[i+1]
				i += 2
			} else {
				i++
			}
		default:
			break flags
		}
	}

	rest := argv[i:]
	if len(rest) == 0 {
		return CmdHelp, args
	}

	switch rest[0] {
	case "help", "--help", "-h":
		return CmdHelp, args
	case "version", "--version", "-V":
		return CmdVersion, args
	case "inspect":
		args.Target = rest[1:]
		return CmdInspect, args
	case "history":
		args.Rest = rest[1:]
		return CmdHistory, args
	default:
		args.Target = rest
		return CmdPick, args
	}
}

// HandleHelp prints usage information.
func HandleHelp() {
	fmt.Print(usageText)
}

// HandleVersion prints version information.
func HandleVersion() {
	fmt.Printf("flagrun %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
