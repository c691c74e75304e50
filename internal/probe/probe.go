// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package probe obtains a target program's help text by running it.
//
// The acquisition order is fixed: `<cmd> --help` stdout, then stderr of the
// same run, then the same two captures again with `-h`. The first non-blank
// capture wins. Many programs print help to stderr or exit non-zero after
// printing it, so a failed exit status is not an error here; only a fully
// silent target is.
package probe

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// ErrHelpUnavailable is returned when none of the four acquisition attempts
// produced any output.
var ErrHelpUnavailable = errors.New("target produced no help output")

// helpFlags are tried in order; the full stdout-then-stderr capture runs for
// each.
var helpFlags = []string{"--help", "-h"}

// Runner executes a command line and returns its captured stdout and stderr.
// The process must be waited on before Runner returns, regardless of outcome.
type Runner func(ctx context.Context, argv []string) (stdout, stderr []byte, err error)

// Prober fetches help text for arbitrary commands.
type Prober struct {
	run Runner
}

// New creates a Prober that executes commands on the local system.
func New() *Prober {
	return &Prober{run: execRunner}
}

// NewWithRunner creates a Prober with a custom runner, used by tests to avoid
// spawning real processes.
func NewWithRunner(run Runner) *Prober {
	return &Prober{run: run}
}

// Fetch returns the first non-empty help text for the given base command
// tokens, or ErrHelpUnavailable. The text is returned exactly as captured;
// no trimming or normalization is applied.
//
// There is deliberately no default timeout: a target that hangs on --help
// hangs the fetch. Callers that care pass a context with a deadline.
func (p *Prober) Fetch(ctx context.Context, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", ErrHelpUnavailable
	}

	var lastErr error
	for _, flag := range helpFlags {
		withFlag := append(append([]string{}, argv...), flag)
		stdout, stderr, err := p.run(ctx, withFlag)
		if err != nil {
			// Exit status is irrelevant as long as something was printed;
			// remember the error only in case every attempt stays silent.
			lastErr = err
		}
		if strings.TrimSpace(string(stdout)) != "" {
			return string(stdout), nil
		}
		if strings.TrimSpace(string(stderr)) != "" {
			return string(stderr), nil
		}
		if ctx.Err() != nil {
			break
		}
	}

	if lastErr != nil {
		return "", errors.Join(ErrHelpUnavailable, lastErr)
	}
	return "", ErrHelpUnavailable
}

// execRunner runs the command via os/exec with both streams captured. The
// child is always waited on: cmd.Run does not return before the process has
// been reaped, so no exit path can leak an orphaned child.
func execRunner(ctx context.Context, argv []string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
