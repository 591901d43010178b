package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/safespend/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// info text on the right.
func RenderStatusBar(width int, hints, info string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	left := style.Render(" ") + hints
	right := style.Render(info + " ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		// hints win when space is short
		return style.Width(width).MaxWidth(width).Render(left)
	}

	return left + style.Render(strings.Repeat(" ", padding)) + right
}
