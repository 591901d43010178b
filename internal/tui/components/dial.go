package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/safespend/internal/tui/theme"
)

const (
	dialSweep   = 270.0 // degrees covered by the gauge arc
	dialStart   = 225.0 // arc starts bottom-left and runs clockwise
	dialMinRows = 11

	dialFilled = '●'
	dialEmpty  = '·'
)

type dialCell struct {
	ch   rune
	kind int // 0 blank, 1 filled arc, 2 empty arc, 3 label, 4 amount
}

// Dial renders the three-quarter radial gauge with up to three centered
// lines of text. fraction is the filled share of the arc, clamped to [0,1].
// rows is the gauge height; the width is 2*rows+1 columns.
func Dial(fraction float64, top, amount, bottom string, rows int, color lipgloss.Color) string {
	t := theme.Active

	if rows < dialMinRows {
		rows = dialMinRows
	}
	if rows%2 == 0 {
		rows++
	}
	fraction = math.Max(0, math.Min(1, fraction))

	cols := rows*2 + 1
	cx, cy := cols/2, rows/2
	radius := float64(rows-1) / 2

	grid := make([][]dialCell, rows)
	for y := range grid {
		grid[y] = make([]dialCell, cols)
		for x := range grid[y] {
			grid[y][x] = dialCell{ch: ' '}

			dx := float64(x-cx) / 2 // terminal cells are about twice as tall as wide
			dy := float64(cy - y)
			if math.Abs(math.Hypot(dx, dy)-radius) > 0.55 {
				continue
			}

			angle := math.Atan2(dy, dx) * 180 / math.Pi
			progress := math.Mod(dialStart-angle+360, 360)
			if progress > dialSweep {
				continue
			}
			if fraction > 0 && progress <= fraction*dialSweep {
				grid[y][x] = dialCell{ch: dialFilled, kind: 1}
			} else {
				grid[y][x] = dialCell{ch: dialEmpty, kind: 2}
			}
		}
	}

	place := func(y int, s string, kind int) {
		if s == "" || y < 0 || y >= rows {
			return
		}
		runes := []rune(s)
		start := cx - len(runes)/2
		for i, r := range runes {
			if x := start + i; x >= 0 && x < cols {
				grid[y][x] = dialCell{ch: r, kind: kind}
			}
		}
	}
	place(cy-1, top, 3)
	place(cy, amount, 4)
	place(cy+1, bottom, 3)

	styles := map[int]lipgloss.Style{
		0: lipgloss.NewStyle().Background(t.Surface),
		1: lipgloss.NewStyle().Foreground(color).Background(t.Surface),
		2: lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface),
		3: lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface),
		4: lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true),
	}

	var b strings.Builder
	for y, row := range grid {
		// group runs of the same kind to keep escape sequences short
		var run strings.Builder
		kind := row[0].kind
		for _, c := range row {
			if c.kind != kind {
				b.WriteString(styles[kind].Render(run.String()))
				run.Reset()
				kind = c.kind
			}
			run.WriteRune(c.ch)
		}
		b.WriteString(styles[kind].Render(run.String()))
		if y < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
