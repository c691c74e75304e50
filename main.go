// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// main.go - flagrun entry point.
//
// Flagrun runs a target program with --help, extracts its options from the
// help text and opens an interactive picker to compose a command line. The
// result is printed, copied to the clipboard or executed.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/flagrun/internal/cli"
	"github.com/jeranaias/flagrun/internal/config"
	"github.com/jeranaias/flagrun/internal/history"
	"github.com/jeranaias/flagrun/internal/output"
	"github.com/jeranaias/flagrun/internal/parse"
	"github.com/jeranaias/flagrun/internal/probe"
	"github.com/jeranaias/flagrun/internal/ui/picker"
	"github.com/jeranaias/flagrun/internal/ui/styles"
	"github.com/jeranaias/flagrun/internal/util"
)

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdHelp:
		cli.HandleHelp()
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHistory:
		err = runHistory(args)
	case cli.CmdInspect:
		err = runInspect(args)
	case cli.CmdPick:
		err = runPick(args)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, styles.RenderError(err.Error()))
		os.Exit(1)
	}
}

// resolveConfig merges command-line flags over the loaded configuration.
// Flags always win.
func resolveConfig(args cli.Args) *config.Config {
	cfg := config.Global()
	if args.Shell != "" {
		cfg.Shell = args.Shell
	}
	if args.Output != "" {
		cfg.Output.DefaultMode = args.Output
	}
	if args.NoColor {
		cfg.UI.NoColor = true
	}
	if cfg.UI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	} else {
		// Honors FORCE_COLOR and falls back to stdout TTY detection.
		lipgloss.SetColorProfile(cli.GetColorProfile())
	}
	return cfg
}

// =============================================================================
// PICK
// =============================================================================

// runPick is the default command: probe, parse, interact, emit.
func runPick(args cli.Args) error {
	cfg := resolveConfig(args)

	if err := cli.RequiresTTY("pick options"); err != nil {
		return err
	}

	target := strings.Join(args.Target, " ")
	helpText, err := probe.New().Fetch(context.Background(), args.Target)
	if err != nil {
		return fmt.Errorf("fetch help for %q: %w", target, err)
	}

	options := parse.ParseHelp(helpText)
	if len(options) == 0 {
		return fmt.Errorf("no options recognized in help output of %q", target)
	}

	defaultMode, err := output.ParseMode(cfg.Output.DefaultMode)
	if err != nil {
		return err
	}

	m := picker.New(args.Target, options, styles.NewTheme(), defaultMode)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	result, ok := final.(picker.Model)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}
	commandLine, mode, aborted := result.Result()
	if aborted {
		return nil
	}

	sink := output.NewSink()
	sink.Shell = cfg.Shell
	if err := sink.Handle(commandLine, mode); err != nil {
		return err
	}

	recordHistory(cfg, args.Target, commandLine, mode)
	return nil
}

// recordHistory stores the emitted command. Best-effort: a broken history
// database warns but never fails the run.
func recordHistory(cfg *config.Config, base []string, commandLine string, mode output.Mode) {
	if !cfg.History.Enabled {
		return
	}
	path, err := cfg.HistoryPath()
	if err == nil {
		var store *history.Store
		if store, err = history.Open(path); err == nil {
			err = store.Record(base, commandLine, mode.String())
			store.Close()
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record history: %v\n", err)
	}
}

// =============================================================================
// INSPECT
// =============================================================================

// runInspect dumps the raw help text and the parsed option set without
// entering interaction. Useful for checking what the extractor recognizes.
func runInspect(args cli.Args) error {
	resolveConfig(args)

	if len(args.Target) == 0 {
		return fmt.Errorf("inspect needs a command, e.g. `flagrun inspect ls`")
	}

	target := strings.Join(args.Target, " ")
	helpText, err := probe.New().Fetch(context.Background(), args.Target)
	if err != nil {
		return fmt.Errorf("fetch help for %q: %w", target, err)
	}

	fmt.Println("=== Help text ===")
	fmt.Println(helpText)

	options := parse.ParseHelp(helpText)
	fmt.Printf("=== Parsed %d options ===\n", len(options))
	for _, opt := range options {
		line := "  " + opt.DisplayFlag()
		if opt.HasChoices() {
			line += " [" + strings.Join(opt.Choices, "|") + "]"
		} else if opt.TakesValue {
			hint := opt.ValueHint
			if hint == "" {
				hint = "value"
			}
			line += " <" + hint + ">"
		}
		if opt.Description != "" {
			line += "  " + opt.Description
		}
		fmt.Println(fitToTerminal(line))
	}
	return nil
}

// fitToTerminal truncates a display line to the terminal width. Piped
// output is left intact so it stays grep-able.
func fitToTerminal(line string) string {
	if !cli.IsStdoutTTY() {
		return line
	}
	return util.TruncateWidth(line, cli.GetTerminalWidth())
}

// =============================================================================
// HISTORY
// =============================================================================

// runHistory lists or clears recorded commands.
func runHistory(args cli.Args) error {
	cfg := resolveConfig(args)

	path, err := cfg.HistoryPath()
	if err != nil {
		return err
	}
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	parser := cli.NewArgParser(args.Rest)
	if parser.BoolFlag("clear") {
		n, err := store.Count()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Printf("History cleared (%d entries removed)\n", n)
		return nil
	}

	entries, err := store.Recent(parser.FlagIntOrDefault("limit", 20))
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No history yet")
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  [%s]  %s", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Mode, e.Command)
		fmt.Println(fitToTerminal(line))
	}
	return nil
}
