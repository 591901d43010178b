package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/safespend/internal/model"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":       "$0.00",
		"78":      "$78.00",
		"14.2857": "$14.29",
		"4.5":     "$4.50",
		"1234.5":  "$1,234.50",
		"-3":      "-$3.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatMoney(d(in)), in)
	}
}

func TestFormatWhole(t *testing.T) {
	assert.Equal(t, "$78", FormatWhole(d("78")))
	assert.Equal(t, "$96", FormatWhole(d("95.5")))
	assert.Equal(t, "$1,200", FormatWhole(d("1200")))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "-12,345", FormatNumber(-12345))
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+$18.00", FormatDelta(d("18")))
	assert.Equal(t, "-$2.50", FormatDelta(d("-2.5")))
	assert.Equal(t, "+7", FormatVelocity(7))
	assert.Equal(t, "0", FormatVelocity(0))
	assert.Equal(t, "-3", FormatVelocity(-3))
}

func TestFormatDay(t *testing.T) {
	day := time.Date(2024, time.May, 23, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Thu 05-23", FormatDay(day))
	assert.Equal(t, "???", FormatDayOfWeek(9))
}

func TestCategoryGlyph(t *testing.T) {
	assert.NotEqual(t, CategoryGlyph(model.CategoryFood), CategoryGlyph(model.CategorySub))
	assert.Equal(t, "○", CategoryGlyph(model.CategoryOther))
}

func TestFormatETA(t *testing.T) {
	assert.Equal(t, "Goal reached", FormatETA(0))
	assert.Equal(t, "On track to reach in 1 day", FormatETA(1))
	assert.Equal(t, "On track to reach in 12 days", FormatETA(12))
	assert.Equal(t, "Not on track at the current velocity", FormatETA(-1))
}

func TestFormatSavingsPercent(t *testing.T) {
	assert.Equal(t, "+10.0%", FormatSavingsPercent(10))
	assert.Equal(t, "-2.5%", FormatSavingsPercent(-2.5))
	assert.Equal(t, "+0.0%", FormatSavingsPercent(0))
}
