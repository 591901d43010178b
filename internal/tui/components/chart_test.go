package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(t *testing.T) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.TrueColor) })
}

func TestVelocityChartSplitsAtZero(t *testing.T) {
	plain(t)

	out := VelocityChart([]int{10, -10, 0}, []string{"1", "2", "3"}, 40, 6)
	lines := strings.Split(out, "\n")
	// 3 rows up, axis, 3 rows down, labels
	require.Len(t, lines, 8)

	axis := 3
	assert.Contains(t, lines[axis], "┼")

	col := strings.Index(lines[0], "│") + len("│")
	barAt := func(line string, i int) string {
		r := []rune(line)
		start := len([]rune(line[:col])) + i*7 // barW 6 + gap 1
		return string(r[start : start+1])
	}

	// positive bar fills every upper row, none below
	for row := 0; row < axis; row++ {
		assert.Equal(t, "█", barAt(lines[row], 0), "row %d", row)
		assert.Equal(t, " ", barAt(lines[row], 1), "row %d", row)
	}
	for row := axis + 1; row < axis+4; row++ {
		assert.Equal(t, " ", barAt(lines[row], 0), "row %d", row)
		assert.Equal(t, "█", barAt(lines[row], 1), "row %d", row)
	}
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "+10"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[6]), "-10"))
}

func TestVelocityChartSmallValueStillShows(t *testing.T) {
	plain(t)
	out := VelocityChart([]int{20, 1}, nil, 30, 4)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, 2, strings.Count(lines[1], "█")/6, "bottom upper row holds both bars")
}

func TestVelocityChartEmpty(t *testing.T) {
	assert.Empty(t, VelocityChart(nil, nil, 40, 6))
}

func TestBarChartFallsBackToSparkline(t *testing.T) {
	plain(t)
	assert.Equal(t, "▁█", BarChart([]float64{0, 10}, nil, "", 10, 2))
}

func TestBarChartAxis(t *testing.T) {
	plain(t)
	out := BarChart([]float64{40, 80, 60}, []string{"20", "21", "22"}, "", 40, 6)
	lines := strings.Split(out, "\n")
	last := lines[len(lines)-1]
	assert.Contains(t, last, "20")
	assert.Contains(t, lines[len(lines)-2], "└")
	assert.Contains(t, out, "$80")
}

func TestChartTickStep(t *testing.T) {
	assert.Equal(t, 10.0, chartTickStep(50))
	assert.Equal(t, 20.0, chartTickStep(89))
	assert.Equal(t, 1.0, chartTickStep(0))
}
