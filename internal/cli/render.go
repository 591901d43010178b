package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/safespend/internal/tui/theme"
)

// Align controls how a table column pads its cells.
type Align int

const (
	AlignAuto Align = iota // first column left, the rest right
	AlignLeft
	AlignRight
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int   // optional column widths, auto-calculated if nil
	Aligns  []Align // optional per-column alignment
}

// Separator is a row value that draws a horizontal rule.
const Separator = "---"

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Active.TextPrimary).Align(lipgloss.Center)
}

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Active.Accent)
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.TextPrimary)
}

func mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.TextMuted)
}

func dimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.TextDim)
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle().Render(title))
}

// RenderLabel renders a "label  value" line with a muted label.
func RenderLabel(label, value string) string {
	return fmt.Sprintf("  %s %s", mutedStyle().Render(fmt.Sprintf("%-18s", label)), valueStyle().Render(value))
}

// RenderWarning renders a highlighted warning line.
func RenderWarning(msg string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Active.Alert).Render("  ! " + msg)
}

func (t Table) columns() int {
	if len(t.Headers) > 0 {
		return len(t.Headers)
	}
	if len(t.Rows) > 0 {
		return len(t.Rows[0])
	}
	return 0
}

func (t Table) widths(n int) []int {
	widths := make([]int, n)
	if t.Widths != nil {
		copy(widths, t.Widths)
		return widths
	}
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < n && cell != Separator {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	return widths
}

func (t Table) align(i int) Align {
	if i < len(t.Aligns) && t.Aligns[i] != AlignAuto {
		return t.Aligns[i]
	}
	if i == 0 {
		return AlignLeft
	}
	return AlignRight
}

func rule(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(dimStyle().Render(left))
	for i, w := range widths {
		b.WriteString(dimStyle().Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(dimStyle().Render(mid))
		}
	}
	b.WriteString(dimStyle().Render(right))
	b.WriteString("\n")
}

func pad(cell string, w int, a Align) string {
	gap := w - lipgloss.Width(cell)
	if gap < 0 {
		gap = 0
	}
	if a == AlignRight {
		return " " + strings.Repeat(" ", gap) + cell + " "
	}
	return " " + cell + strings.Repeat(" ", gap) + " "
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	n := t.columns()
	if n == 0 {
		return ""
	}
	widths := t.widths(n)

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle().Render(t.Title))
		b.WriteString("\n")
	}

	rule(&b, widths, "╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle().Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle().Render(pad(h, widths[i], AlignLeft)))
			if i < n-1 {
				b.WriteString(dimStyle().Render("│"))
			}
		}
		b.WriteString(dimStyle().Render("│"))
		b.WriteString("\n")
		rule(&b, widths, "├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == Separator {
			rule(&b, widths, "├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle().Render("│"))
		for i := 0; i < n; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle().Render(pad(cell, widths[i], t.align(i))))
			if i < n-1 {
				b.WriteString(dimStyle().Render("│"))
			}
		}
		b.WriteString(dimStyle().Render("│"))
		b.WriteString("\n")
	}

	rule(&b, widths, "╰", "┴", "╯")

	return b.String()
}

// RenderProgressBar renders a plain text bar for a 0-1 fraction, followed
// by a caption.
func RenderProgressBar(fraction float64, width int, caption string) string {
	if width <= 0 {
		return caption
	}
	fraction = min(max(fraction, 0), 1)
	filled := int(fraction * float64(width))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", mutedStyle().Render(bar), caption)
}

// RenderVelocityStrip renders one block per signed velocity value. Saving
// days rise from the baseline; overspend days sit below it.
func RenderVelocityStrip(values []int) string {
	if len(values) == 0 {
		return ""
	}

	up := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	down := []rune{'▔', '▔', '▀', '▀'}

	peak := 1
	for _, v := range values {
		if v < 0 {
			v = -v
		}
		peak = max(peak, v)
	}

	var b strings.Builder
	for _, v := range values {
		if v >= 0 {
			idx := v * (len(up) - 1) / peak
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Active.Velocity(v)).Render(string(up[idx])))
			continue
		}
		idx := -v * (len(down) - 1) / peak
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Active.Velocity(v)).Render(string(down[idx])))
	}
	return b.String()
}
