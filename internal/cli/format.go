// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/safespend/internal/model"
)

var hundred = decimal.NewFromInt(100)

// FormatMoney formats a USD amount with cents and thousands separators.
// e.g., 1234.5 -> "$1,234.50", -3 -> "-$3.00"
func FormatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + FormatMoney(d.Neg())
	}
	cents := d.Mul(hundred).Round(0).IntPart()
	return fmt.Sprintf("$%s.%02d", FormatNumber(cents/100), cents%100)
}

// FormatWhole formats a USD amount rounded to whole dollars, as the dial shows it.
// e.g., 78.4 -> "$78"
func FormatWhole(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + FormatWhole(d.Neg())
	}
	return "$" + FormatNumber(d.Round(0).IntPart())
}

// FormatSavingsPercent formats net velocity as a share of the window's
// spend, e.g. "+10.0%".
func FormatSavingsPercent(pct float64) string {
	return fmt.Sprintf("%+.1f%%", pct)
}

// FormatDailyCost renders a leak's cost as a per-day rate, e.g. "$4.50/day".
func FormatDailyCost(d decimal.Decimal) string {
	return FormatMoney(d) + "/day"
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDelta formats a money change with an explicit sign.
func FormatDelta(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + FormatMoney(d.Neg())
	}
	return "+" + FormatMoney(d)
}

// FormatVelocity formats a signed savings velocity, e.g. 7 -> "+7", -3 -> "-3".
func FormatVelocity(v int) string {
	if v > 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// FormatDay renders a history date as "Mon 05-20".
func FormatDay(t time.Time) string {
	return FormatDayOfWeek(int(t.Weekday())) + " " + t.Format("01-02")
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// CategoryGlyph is the short marker shown beside a leak or activity.
func CategoryGlyph(c model.Category) string {
	switch c {
	case model.CategorySub:
		return "◆"
	case model.CategoryFood:
		return "●"
	case model.CategoryTransport:
		return "▲"
	default:
		return "○"
	}
}

// OnOff renders a leak's switch state.
func OnOff(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}

// FormatETA describes a days-to-goal estimate. Negative means the goal is
// out of reach.
func FormatETA(days int) string {
	switch {
	case days == 0:
		return "Goal reached"
	case days < 0:
		return "Not on track at the current velocity"
	case days == 1:
		return "On track to reach in 1 day"
	default:
		return fmt.Sprintf("On track to reach in %d days", days)
	}
}
