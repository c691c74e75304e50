// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package parse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Help text captured from real tools, verbatim. These guard the extraction
// heuristics against the layouts people actually run flagrun on.

const gitStatusHelp = `usage: git status [<options>] [--] [<pathspec>...]

    -v, --verbose         be verbose
    -s, --short           show status concisely
    -b, --branch          show branch information
    --porcelain[=<version>]
                          machine-readable output
    --ahead-behind        compute full ahead/behind values
    -z, --null            terminate entries with NUL
    -u, --untracked-files[=<mode>]
                          show untracked files, optional modes: all, normal, no. (Default: all)
    --ignored[=<mode>]    show ignored files, optional modes: traditional, matching, no. (Default: traditional)
`

const grepStyleHelp = `Usage: grep [OPTION]... PATTERNS [FILE]...
Search for PATTERNS in each FILE.

Pattern selection and interpretation:
  -E, --extended-regexp     PATTERNS are extended regular expressions
  -F, --fixed-strings       PATTERNS are strings
  -i, --ignore-case         ignore case distinctions in patterns and data
  -w, --word-regexp         match only whole words

Output control:
  -n, --line-number         print line number with output lines
  -H, --with-filename       print file name with output lines
  --color=WHEN              use markers to highlight the matching strings [possible values: always, never, auto]
  -c, --count               print only a count of selected lines per FILE
`

func TestParseHelp_GitStatus(t *testing.T) {
	options := ParseHelp(gitStatusHelp)
	require.NotEmpty(t, options, "git status help should produce options")

	byLong := make(map[string]int)
	for i, opt := range options {
		byLong[opt.Long] = i
	}

	require.Contains(t, byLong, "verbose")
	require.Contains(t, byLong, "short")
	require.Contains(t, byLong, "ahead-behind")

	verbose := options[byLong["verbose"]]
	require.Equal(t, 'v', verbose.Short)
	require.Equal(t, "be verbose", verbose.Description)
	require.False(t, verbose.TakesValue)
}

func TestParseHelp_GrepStyle(t *testing.T) {
	options := ParseHelp(grepStyleHelp)
	require.NotEmpty(t, options)

	colorIdx := -1
	for i := range options {
		if options[i].Long == "color" {
			colorIdx = i
			break
		}
	}
	require.NotEqual(t, -1, colorIdx, "--color should be extracted")

	opt := options[colorIdx]
	require.True(t, opt.TakesValue)
	require.Equal(t, []string{"always", "never", "auto"}, opt.Choices)
	require.NotContains(t, opt.Description, "possible values",
		"choice annotation should be stripped from the description")

	// Section headers and the usage line must not turn into options.
	for _, o := range options {
		require.NotEqual(t, "", o.DisplayFlag(), "every option needs a flag form")
	}
}

func TestParseHelp_OrderIsDocumentOrder(t *testing.T) {
	options := ParseHelp(grepStyleHelp)
	require.NotEmpty(t, options)

	require.Equal(t, "extended-regexp", options[0].Long,
		"first extracted option should be the first one in the help text")
}
