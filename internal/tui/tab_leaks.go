package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/safespend/internal/cli"
	"github.com/theirongolddev/safespend/internal/tui/components"
	"github.com/theirongolddev/safespend/internal/tui/theme"
)

func (a App) renderLeaksTab(cw int) string {
	t := theme.Active
	leaks := a.state.Leaks()
	b := a.state.Budget()
	inner := components.CardInnerWidth(cw)

	nameW := 10
	for _, l := range leaks {
		nameW = max(nameW, lipgloss.Width(l.Name))
	}
	nameW = min(nameW, max(10, inner-32))

	var body strings.Builder
	for i, l := range leaks {
		selected := i == a.leakCursor

		bg := t.Surface
		if selected {
			bg = t.SurfaceHover
		}
		nameColor := t.TextPrimary
		if !l.Enabled {
			nameColor = t.TextDim
		}

		marker := "  "
		if selected {
			marker = "▸ "
		}

		cell := lipgloss.NewStyle().Background(bg)
		markerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(bg).Bold(true)
		glyphStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(bg)
		nameStyle := lipgloss.NewStyle().Foreground(nameColor).Background(bg)
		costStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(bg)

		var pill string
		if l.Enabled {
			pill = lipgloss.NewStyle().Foreground(t.Danger).Background(bg).Bold(true).Render("● ON ")
		} else {
			pill = lipgloss.NewStyle().Foreground(t.Unlocked).Background(bg).Bold(true).Render("○ OFF")
		}

		line := markerStyle.Render(marker) +
			glyphStyle.Render(cli.CategoryGlyph(l.Category)) + cell.Render(" ") +
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(l.Name, nameW))) + cell.Render("  ") +
			costStyle.Render(fmt.Sprintf("%12s", cli.FormatDailyCost(l.DailyCost))) + cell.Render("  ") +
			pill

		if !l.Enabled {
			line += lipgloss.NewStyle().Foreground(t.Unlocked).Background(bg).
				Render("  saving " + cli.FormatMoney(l.DailyCost))
		}

		gap := inner - lipgloss.Width(line)
		if gap > 0 {
			line += cell.Render(strings.Repeat(" ", gap))
		}
		body.WriteString(line)
		if i < len(leaks)-1 {
			body.WriteString("\n")
		}
	}

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	accent := lipgloss.NewStyle().Foreground(t.Unlocked).Background(t.Surface).Bold(true)
	hint := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	body.WriteString("\n\n")
	body.WriteString(muted.Render(fmt.Sprintf("%d of %d cut  ·  ", b.DisabledCount, len(leaks))))
	body.WriteString(accent.Render(cli.FormatDelta(b.Unlocked) + "/day"))
	body.WriteString(muted.Render("  ·  daily budget " + cli.FormatMoney(b.Current)))
	body.WriteString("\n")
	body.WriteString(hint.Render("j/k select  ·  space toggle"))

	return components.ContentCard("Recurring Costs", body.String(), cw)
}
