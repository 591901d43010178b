package model

import "github.com/shopspring/decimal"

// BudgetState is the derived view of today's allowance. It is recomputed
// from the leak registry and the spend accumulator and never stored.
type BudgetState struct {
	Base          decimal.Decimal // fixed allowance before leak adjustments
	Current       decimal.Decimal // Base + daily cost of every disabled leak
	Spent         decimal.Decimal
	Remaining     decimal.Decimal // max(0, Current - Spent)
	Unlocked      decimal.Decimal // Current - Base
	DisabledCount int
}

// RemainingFraction is Remaining/Current clamped to [0, 1], 0 when Current is zero.
func (b BudgetState) RemainingFraction() float64 {
	if !b.Current.IsPositive() {
		return 0
	}
	f, _ := b.Remaining.Div(b.Current).Float64()
	return clamp01(f)
}

// UsedFraction is Spent/Current clamped to [0, 1].
func (b BudgetState) UsedFraction() float64 {
	if !b.Current.IsPositive() {
		return 1
	}
	f, _ := b.Spent.Div(b.Current).Float64()
	return clamp01(f)
}

// Overspent reports whether today's spend has reached the allowance.
func (b BudgetState) Overspent() bool {
	return b.Spent.GreaterThanOrEqual(b.Current)
}
