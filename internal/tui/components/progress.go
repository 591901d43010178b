package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/safespend/internal/tui/theme"
)

func clampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

func solidBar(pct float64, color lipgloss.Color, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(theme.Active.TextDim)
	return bar.ViewAs(pct)
}

// LabeledBar renders "label [bar] caption" on one line.
func LabeledBar(label string, pct float64, color lipgloss.Color, caption string, labelW, barWidth int) string {
	t := theme.Active
	pct = clampPct(pct)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	captionStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		solidBar(pct, color, max(4, barWidth)) +
		spaceStyle.Render(" ") +
		captionStyle.Render(caption)
}
