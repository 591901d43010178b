package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/safespend/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for total := 10; total < 200; total += 7 {
		for n := 1; n <= 5; n++ {
			sum := 0
			for _, w := range LayoutRow(total, n) {
				sum += w
			}
			assert.Equal(t, total, sum, "total=%d n=%d", total, n)
		}
	}
	assert.Nil(t, LayoutRow(10, 0))
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	require.Less(t, shortLines, tallLines)

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	require.Len(t, lines, tallLines)

	for i, line := range lines {
		assert.Equal(t, 44, lipgloss.Width(line), "line %d", i)
		if i >= shortLines {
			assert.Contains(t, line, "\x1b[", "padding line %d is unstyled", i)
		}
	}
}

func TestCardRowSkipsEmpty(t *testing.T) {
	card := ContentCard("Only", "x", 20)
	assert.Equal(t, card, CardRow([]string{"", card, ""}))
	assert.Empty(t, CardRow(nil))
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Daily Budget", Value: "$120.00"},
		{Label: "Spent Today", Value: "$42.00", Delta: "35% used"},
		{Label: "Unlocked", Value: "+$0.00"},
	}, 90)
	for _, line := range strings.Split(row, "\n") {
		assert.Equal(t, 90, lipgloss.Width(line))
	}
	assert.Contains(t, row, "Spent Today")
}
