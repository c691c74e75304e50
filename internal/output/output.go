// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package output delivers the assembled command to its destination.
//
// Three modes exist: Print writes the command to stdout for shell
// substitution or manual copy, Clipboard places it on the system clipboard,
// and Execute runs it through the platform shell and waits for it. The
// picker has already exited by the time any of this runs, so failures here
// are reported, never retried.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// =============================================================================
// OUTPUT MODES
// =============================================================================

// Mode selects what happens to the assembled command.
type Mode int

const (
	// ModePrint writes the command to stdout.
	ModePrint Mode = iota
	// ModeClipboard copies the command to the system clipboard.
	ModeClipboard
	// ModeExecute runs the command through the platform shell.
	ModeExecute
)

// String returns the mode's configuration name.
func (m Mode) String() string {
	switch m {
	case ModePrint:
		return "print"
	case ModeClipboard:
		return "clipboard"
	case ModeExecute:
		return "execute"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "print", "":
		return ModePrint, nil
	case "clipboard", "copy":
		return ModeClipboard, nil
	case "execute", "exec":
		return ModeExecute, nil
	default:
		return ModePrint, fmt.Errorf("unknown output mode %q (print, clipboard, execute)", s)
	}
}

// =============================================================================
// SINK
// =============================================================================

// Sink writes assembled commands to their destination.
type Sink struct {
	// Stdout receives the command in ModePrint and the child's output in
	// ModeExecute. Defaults to os.Stdout.
	Stdout io.Writer
	// Stderr receives status notices (e.g. the clipboard confirmation) and
	// the child's stderr. Defaults to os.Stderr.
	Stderr io.Writer
	// Shell overrides the platform shell used by ModeExecute.
	Shell string
}

// NewSink returns a sink bound to the process's standard streams.
func NewSink() *Sink {
	return &Sink{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Handle delivers the command according to mode.
func (s *Sink) Handle(command string, mode Mode) error {
	switch mode {
	case ModePrint:
		_, err := fmt.Fprintln(s.stdout(), command)
		return err

	case ModeClipboard:
		if err := clipboard.WriteAll(command); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(s.stderr(), "Command copied to clipboard")
		return nil

	case ModeExecute:
		return s.execute(command)

	default:
		return fmt.Errorf("unknown output mode %v", mode)
	}
}

// execute runs the command through the shell and waits for completion. The
// child inherits the terminal's streams so interactive targets behave
// normally. cmd.Run always reaps the child before returning.
func (s *Sink) execute(command string) error {
	shell, flag := s.shellCommand()

	cmd := exec.Command(shell, flag, command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = s.stdout()
	cmd.Stderr = s.stderr()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("command exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("run command: %w", err)
	}
	return nil
}

// shellCommand picks the shell and its command flag for the current platform,
// honoring the configured override.
func (s *Sink) shellCommand() (string, string) {
	if s.Shell != "" {
		return s.Shell, "-c"
	}
	if runtime.GOOS == "windows" {
		return "cmd", "/C"
	}
	return "sh", "-c"
}

func (s *Sink) stdout() io.Writer {
	if s.Stdout != nil {
		return s.Stdout
	}
	return os.Stdout
}

func (s *Sink) stderr() io.Writer {
	if s.Stderr != nil {
		return s.Stderr
	}
	return os.Stderr
}
