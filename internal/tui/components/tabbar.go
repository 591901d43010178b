package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/safespend/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Home", Key: 'h', KeyPos: 0},
	{Name: "Leaks", Key: 'l', KeyPos: 0},
	{Name: "Trends", Key: 't', KeyPos: 0},
	{Name: "Settings", Key: 'x', KeyPos: -1}, // x is not in "Settings"
}

func renderTab(tab Tab, active bool) string {
	t := theme.Active

	if active {
		return lipgloss.NewStyle().
			Foreground(t.AccentBright).
			Background(t.SurfaceHover).
			Bold(true).
			Padding(0, 1).
			Render(tab.Name)
	}

	pad := lipgloss.NewStyle().Background(t.Surface).Render(" ")
	name := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	key := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
		return pad +
			name.Render(tab.Name[:tab.KeyPos]) +
			key.Render(string(tab.Name[tab.KeyPos])) +
			name.Render(tab.Name[tab.KeyPos+1:]) +
			pad
	}
	return pad + name.Render(tab.Name) +
		dim.Render("[") + key.Render(string(tab.Key)) + dim.Render("]") + pad
}

// TabVisualWidth is the rendered width of a tab, used for mouse hit testing.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// RenderTabBar renders the one-line tab bar with a title on the right.
func RenderTabBar(activeIdx int, title string, width int) string {
	t := theme.Active
	sep := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface).Render("│")

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}
	left := strings.Join(parts, sep)

	right := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true).Render(title + " ")
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(left)
	}
	return left + lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", gap)) + right
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
