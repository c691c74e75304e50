// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the flagrun picker.

This package defines the color palette and the Theme struct used by the
interactive option picker. All colors use Lip Gloss AdaptiveColor for
automatic light/dark terminal detection.

# Color System (colors.go)

  - Purple - Primary accent, cursor row
  - Cyan - Flag names and key hints
  - Emerald - Selected flags
  - Amber - Value annotations and editing mode
  - Rose - Errors

Hierarchical text colors:

	TextPrimary   - Main content text
	TextSecondary - Option descriptions
	TextMuted     - Key legend, hints
	TextInverse   - Text on colored backgrounds

# Theme System (theme.go)

The Theme struct provides runtime color adaptation:

	theme := styles.NewTheme()
	if theme.IsDark {
		// Dark terminal detected
	}

# Usage Example

	import "github.com/jeranaias/flagrun/internal/ui/styles"

	row := theme.OptionRowCursor.Render("[x] -a, --all  Show all files")
*/
package styles
