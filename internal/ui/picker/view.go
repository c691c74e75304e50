// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package picker

import (
	"fmt"
	"strings"

	"github.com/jeranaias/flagrun/internal/command"
	"github.com/jeranaias/flagrun/internal/engine"
	"github.com/jeranaias/flagrun/internal/model"
	"github.com/jeranaias/flagrun/internal/ui/styles"
	"github.com/jeranaias/flagrun/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderOptions())
	b.WriteString("\n")
	b.WriteString(m.renderPreview())
	b.WriteString("\n")

	if m.engine.Mode() == engine.ModeEditing {
		b.WriteString(m.renderInput())
	} else if m.help {
		b.WriteString(m.renderFullHelp())
	} else {
		b.WriteString(m.renderHelpBar())
	}

	return b.String()
}

func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("flagrun")
	target := m.theme.Header.Render(strings.Join(m.base, " "))
	meta := m.theme.HeaderMeta.Render(fmt.Sprintf("%d options", m.engine.Len()))
	return title + " " + target + " " + meta
}

// renderOptions renders the visible window of the option list.
func (m Model) renderOptions() string {
	var b strings.Builder

	rows := m.visibleRows()
	end := m.offset + rows
	if end > m.engine.Len() {
		end = m.engine.Len()
	}

	if m.offset > 0 {
		b.WriteString(m.theme.ScrollIndicator.Render(fmt.Sprintf("... %d more above", m.offset)))
		b.WriteString("\n")
	}

	for i := m.offset; i < end; i++ {
		opt, ok := m.engine.Option(i)
		if !ok {
			break
		}
		b.WriteString(m.renderRow(opt, i == m.engine.Cursor()))
		b.WriteString("\n")
	}

	if remaining := m.engine.Len() - end; remaining > 0 {
		b.WriteString(m.theme.ScrollIndicator.Render(fmt.Sprintf("... %d more below", remaining)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderRow renders one option line: checkbox, flag, value annotation and
// description, truncated to the terminal width.
func (m Model) renderRow(opt model.CliOption, isCursor bool) string {
	var checkbox, flag string
	if opt.Selected {
		checkbox = m.theme.CheckboxOn.Render(styles.CheckboxOn)
		flag = m.theme.FlagSelected.Render(opt.DisplayFlag())
	} else {
		checkbox = m.theme.CheckboxOff.Render(styles.CheckboxOff)
		flag = m.theme.Flag.Render(opt.DisplayFlag())
	}

	line := checkbox + " " + flag
	if ann := annotation(opt); ann != "" {
		line += " " + m.theme.ValueAnnotation.Render(ann)
	}
	if m.theme.ShowDescriptions() && opt.Description != "" {
		desc := opt.Description
		if m.width > 0 {
			used := util.StringWidth(opt.DisplayFlag()) + 12
			desc = util.TruncateWidth(desc, m.width-used)
		}
		line += "  " + m.theme.Description.Render(desc)
	}

	if isCursor {
		return m.theme.OptionRowCursor.Render("> ") + line
	}
	return m.theme.OptionRow.Render("  ") + line
}

// annotation renders the value part of an option row: the active choice, the
// typed value, or the placeholder hint when nothing is set yet.
func annotation(opt model.CliOption) string {
	switch {
	case opt.HasChoices():
		return "<" + opt.CurrentChoice() + ">"
	case opt.TakesValue && opt.Value != "":
		return "=" + opt.Value
	case opt.TakesValue && opt.ValueHint != "":
		return "<" + opt.ValueHint + ">"
	case opt.TakesValue:
		return "<value>"
	default:
		return ""
	}
}

// renderPreview shows the command as it would be emitted right now.
func (m Model) renderPreview() string {
	cmd := command.Build(m.base, m.engine.Snapshot())
	if m.width > 0 {
		cmd = util.TruncateWidth(cmd, m.width-6)
	}
	label := m.theme.PreviewLabel.Render("$ ")
	return m.theme.PreviewBox.Render(label + m.theme.PreviewCommand.Render(cmd))
}

// renderInput shows the value entry line while editing.
func (m Model) renderInput() string {
	opt, _ := m.engine.Option(m.engine.Cursor())
	prompt := m.theme.InputPrompt.Render(opt.DisplayFlag())
	hint := m.theme.ShortcutDesc.Render("  Enter to confirm, empty value turns the flag off")
	return m.theme.InputContainer.Render(prompt + " " + m.input.View() + hint)
}

// renderHelpBar renders the one-line key legend.
func (m Model) renderHelpBar() string {
	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		parts = append(parts,
			m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
	}
	parts = append(parts, m.theme.ShortcutKey.Render("?")+" "+m.theme.ShortcutDesc.Render("help"))
	return m.theme.HelpBar.Render(strings.Join(parts, "  "))
}

// renderFullHelp renders the expanded key reference.
func (m Model) renderFullHelp() string {
	var b strings.Builder
	for _, group := range m.keys.FullHelp() {
		var parts []string
		for _, binding := range group {
			h := binding.Help()
			parts = append(parts,
				m.theme.ShortcutKey.Render(util.PadRight(h.Key, 10))+m.theme.ShortcutDesc.Render(h.Desc))
		}
		b.WriteString(m.theme.HelpBar.Render(strings.Join(parts, "  ")))
		b.WriteString("\n")
	}
	return b.String()
}
