package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/safespend/internal/tui/theme"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from non-negative values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := values[0]
	for _, v := range values[1:] {
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		idx = max(0, min(idx, len(sparkBlocks)-1))
		buf.WriteRune(sparkBlocks[idx])
	}

	return style.Render(buf.String())
}

// BarChart renders a bar chart of daily amounts with a dollar Y axis.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	maxVal := 0.0
	for _, v := range values {
		maxVal = math.Max(maxVal, v)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Y-axis: compute tick step and ceiling
	tickStep := chartTickStep(maxVal)
	maxIntervals := max(2, height/2)
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := max(1, int(math.Round(ceiling/tickStep)))

	rowsPerTick := max(2, height/numIntervals)
	chartH := rowsPerTick * numIntervals

	yLabelW := max(4, len(formatChartLabel(ceiling))+1)
	tickLabels := make(map[int]string)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = formatChartLabel(tickStep * float64(i))
	}

	chartW := max(5, width-yLabelW-1)
	values, labels, barW, gap := fitBars(values, labels, chartW)
	n := len(values)
	axisLen := n*barW + max(0, n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)
		rowPct := float64(row) / float64(chartH)

		barColor := color
		if rowPct > 0.8 {
			barColor = t.AccentBright
		}
		barStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(blank.Render(strings.Repeat(" ", gap)))
			}
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := max(1, min(8, int(frac*8)))
				b.WriteString(barStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(blank.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	if xl := xLabels(labels, n, barW, gap, axisLen); xl != "" {
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(xl))
	}

	return b.String()
}

// VelocityChart renders signed values as bars rising above or hanging
// below a zero axis. Saving days use the Safe color, overspend days Danger.
// height is the number of rows shared by both halves.
func VelocityChart(values []int, labels []string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	height = max(4, height)
	upRows := height / 2
	downRows := height - upRows

	peak := 1
	for _, v := range values {
		if v < 0 {
			v = -v
		}
		peak = max(peak, v)
	}

	topLabel := fmt.Sprintf("+%d", peak)
	bottomLabel := fmt.Sprintf("-%d", peak)
	yLabelW := max(len(topLabel), len(bottomLabel)) + 1

	floats := make([]float64, len(values))
	for i, v := range values {
		floats[i] = float64(v)
	}
	chartW := max(5, width-yLabelW-1)
	floats, labels, barW, gap := fitBars(floats, labels, chartW)
	n := len(floats)
	axisLen := n*barW + max(0, n-1)*gap

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)
	upStyle := lipgloss.NewStyle().Foreground(t.Safe).Background(t.Surface)
	downStyle := lipgloss.NewStyle().Foreground(t.Danger).Background(t.Surface)

	// bar height in rows, rounded up so any non-zero value shows
	size := func(v float64, rows int) int {
		if v == 0 {
			return 0
		}
		return int(math.Ceil(math.Abs(v) / float64(peak) * float64(rows)))
	}

	var rows []string
	writeRow := func(label string, fill func(v float64) bool, style lipgloss.Style) {
		b := &strings.Builder{}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))
		for i, v := range floats {
			if i > 0 && gap > 0 {
				b.WriteString(blank.Render(strings.Repeat(" ", gap)))
			}
			if fill(v) {
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			} else {
				b.WriteString(blank.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
		rows = append(rows, b.String())
	}

	for row := upRows; row >= 1; row-- {
		label := ""
		if row == upRows {
			label = topLabel
		}
		r := row
		writeRow(label, func(v float64) bool { return v > 0 && size(v, upRows) >= r }, upStyle)
	}

	axis := axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")) +
		axisStyle.Render("┼") +
		axisStyle.Render(strings.Repeat("─", axisLen)) + "\n"
	rows = append(rows, axis)

	for row := 1; row <= downRows; row++ {
		label := ""
		if row == downRows {
			label = bottomLabel
		}
		r := row
		writeRow(label, func(v float64) bool { return v < 0 && size(v, downRows) >= r }, downStyle)
	}

	out := strings.Join(rows, "")
	out = strings.TrimSuffix(out, "\n")

	if xl := xLabels(labels, n, barW, gap, axisLen); xl != "" {
		out += "\n" + blank.Render(strings.Repeat(" ", yLabelW+1)) +
			lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(xl)
	}
	return out
}

// VelocityLegend renders the zone key shown under the velocity chart.
func VelocityLegend() string {
	t := theme.Active
	bg := lipgloss.NewStyle().Background(t.Surface)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	return lipgloss.NewStyle().Foreground(t.Safe).Background(t.Surface).Render("■") +
		muted.Render(" Green Zone") + bg.Render("   ") +
		lipgloss.NewStyle().Foreground(t.Danger).Background(t.Surface).Render("■") +
		muted.Render(" Overspend")
}

// fitBars sizes bars to chartW, sampling the series when there are more
// values than columns.
func fitBars(values []float64, labels []string, chartW int) ([]float64, []string, int, int) {
	n := len(values)
	gap := 1
	if n <= 1 {
		return values, labels, max(2, min(6, chartW)), 0
	}
	barW := (chartW - (n - 1)) / n
	if barW < 2 {
		maxN := max(2, (chartW+1)/3)
		sampled := make([]float64, maxN)
		var sampledLabels []string
		if len(labels) == n {
			sampledLabels = make([]string, maxN)
		}
		for i := range sampled {
			src := i * (n - 1) / (maxN - 1)
			sampled[i] = values[src]
			if sampledLabels != nil {
				sampledLabels[i] = labels[src]
			}
		}
		values, labels, barW = sampled, sampledLabels, 2
	}
	return values, labels, min(barW, 6), gap
}

// xLabels lays labels under their bars, skipping any that would overlap.
func xLabels(labels []string, n, barW, gap, axisLen int) string {
	if len(labels) != n || n == 0 {
		return ""
	}
	buf := []byte(strings.Repeat(" ", axisLen))

	lastEnd := -1
	for i := 0; i < n; i++ {
		pos := i * (barW + gap)
		lbl := labels[i]
		end := pos + len(lbl)
		if pos <= lastEnd || end > axisLen {
			continue
		}
		copy(buf[pos:end], lbl)
		lastEnd = end
	}
	return strings.TrimRight(string(buf), " ")
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e3:
		return fmt.Sprintf("$%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("$%.0f", v)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}
