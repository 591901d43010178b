package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/safespend/internal/tui/theme"
)

func TestDialShape(t *testing.T) {
	out := Dial(0.65, "SAFE TO SPEND", "$78", "OF $120 TODAY", 11, theme.Active.Safe)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 11)
	for _, l := range lines {
		assert.Equal(t, 23, lipgloss.Width(l))
	}
	assert.Contains(t, out, "SAFE TO SPEND")
	assert.Contains(t, out, "$78")
	assert.Contains(t, out, "OF $120 TODAY")
}

func TestDialFill(t *testing.T) {
	empty := Dial(0, "", "$0", "", 11, theme.Active.Safe)
	assert.NotContains(t, empty, string(dialFilled))
	assert.Contains(t, empty, string(dialEmpty))

	full := Dial(1, "", "$120", "", 11, theme.Active.Safe)
	assert.Contains(t, full, string(dialFilled))
	assert.NotContains(t, full, string(dialEmpty))

	assert.Equal(t,
		Dial(1, "", "", "", 11, theme.Active.Safe),
		Dial(3, "", "", "", 11, theme.Active.Safe),
		"fractions above 1 clamp")
}

func TestDialFillGrowsWithFraction(t *testing.T) {
	count := func(f float64) int {
		return strings.Count(Dial(f, "", "", "", 15, theme.Active.Safe), string(dialFilled))
	}
	assert.Less(t, count(0.25), count(0.5))
	assert.Less(t, count(0.5), count(0.9))
}

func TestDialMinimumSize(t *testing.T) {
	out := Dial(0.5, "", "", "", 3, theme.Active.Safe)
	assert.Len(t, strings.Split(out, "\n"), dialMinRows)
}
