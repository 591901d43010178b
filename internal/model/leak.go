// Package model defines domain types for safespend budgets and history.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category tags a recurring cost for grouping and glyph selection.
type Category string

// Known categories. Anything else parses to CategoryOther.
const (
	CategorySub       Category = "Sub"
	CategoryFood      Category = "Food"
	CategoryTransport Category = "Transport"
	CategoryOther     Category = "Other"
)

// ParseCategory maps a tag to a known category, case-insensitively.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sub", "subscription", "subscriptions":
		return CategorySub
	case "food":
		return CategoryFood
	case "transport":
		return CategoryTransport
	default:
		return CategoryOther
	}
}

// RecurringCost is a toggleable discretionary daily expense (a "leak").
// Disabling it frees DailyCost into the day's allowance.
type RecurringCost struct {
	ID        string
	Name      string
	DailyCost decimal.Decimal
	Enabled   bool
	Category  Category
}

// Activity is a single line of today's spending feed.
type Activity struct {
	Title    string
	Amount   decimal.Decimal
	At       string // time of day, display only
	Category Category
}

// Milestone is a savings goal shown on the trends view.
type Milestone struct {
	Name   string
	Target decimal.Decimal
	Saved  decimal.Decimal
}

// Progress returns Saved/Target clamped to [0, 1].
func (m Milestone) Progress() float64 {
	if !m.Target.IsPositive() {
		return 0
	}
	f, _ := m.Saved.Div(m.Target).Float64()
	return clamp01(f)
}

// Remaining returns how much is left to save, never negative.
func (m Milestone) Remaining() decimal.Decimal {
	r := m.Target.Sub(m.Saved)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
