// Package budget derives today's allowance from the leak registry and the
// running spend total. Everything here is pure.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/safespend/internal/model"
)

// Derive computes the budget state for the given leaks, base allowance and
// amount already spent today. No rounding is applied.
func Derive(costs []model.RecurringCost, base, spent decimal.Decimal) model.BudgetState {
	unlocked := decimal.Zero
	disabled := 0
	for _, c := range costs {
		if c.Enabled {
			continue
		}
		unlocked = unlocked.Add(c.DailyCost)
		disabled++
	}

	current := base.Add(unlocked)
	remaining := current.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return model.BudgetState{
		Base:          base,
		Current:       current,
		Spent:         spent,
		Remaining:     remaining,
		Unlocked:      unlocked,
		DisabledCount: disabled,
	}
}

// Unlocked returns the daily cost freed by every disabled leak.
func Unlocked(costs []model.RecurringCost) decimal.Decimal {
	total := decimal.Zero
	for _, c := range costs {
		if !c.Enabled {
			total = total.Add(c.DailyCost)
		}
	}
	return total
}

// PurchaseImpact is the per-day allowance reduction of a one-off purchase
// spread over days, rounded to cents. It is display-only and never feeds
// back into Derive.
func PurchaseImpact(amount decimal.Decimal, days int) decimal.Decimal {
	if days <= 0 {
		return amount
	}
	return amount.DivRound(decimal.NewFromInt(int64(days)), 2)
}
