// Package seed holds the built-in catalog and mock data the dashboard starts from.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/safespend/internal/model"
)

const (
	// HistoryDays is the number of daily records generated at startup.
	HistoryDays = 14

	// Spent and velocity bounds for synthetic history, inclusive.
	HistorySpentMin    = 40
	HistorySpentMax    = 89
	HistoryVelocityMin = -20
	HistoryVelocityMax = 19

	// PurchaseSpreadDays is how many days a one-off purchase is spread over
	// when estimating its impact on the daily allowance.
	PurchaseSpreadDays = 7

	// AlertDuration is how long the big-purchase warning stays up.
	AlertDuration = 3 * time.Second
)

var (
	// BaseDailyBudget is the allowance before any leak adjustment.
	BaseDailyBudget = decimal.NewFromInt(120)

	// StartingSpent is the amount already spent when the session starts.
	StartingSpent = decimal.NewFromInt(42)

	// PurchaseAmount is the simulated one-off purchase.
	PurchaseAmount = decimal.NewFromInt(100)

	// HistoryEnd is the last calendar day of the synthetic history.
	HistoryEnd = time.Date(2024, time.May, 23, 0, 0, 0, 0, time.UTC)
)

// Leaks returns a fresh copy of the default recurring-cost catalog.
func Leaks() []model.RecurringCost {
	return []model.RecurringCost{
		{ID: "1", Name: "Premium Subscriptions", DailyCost: decimal.RequireFromString("4.5"), Enabled: true, Category: model.CategorySub},
		{ID: "2", Name: "Daily Coffee Run", DailyCost: decimal.RequireFromString("6.0"), Enabled: true, Category: model.CategoryFood},
		{ID: "3", Name: "Commute/Ride Share", DailyCost: decimal.RequireFromString("12.0"), Enabled: true, Category: model.CategoryTransport},
		{ID: "4", Name: "Lunch Deliveries", DailyCost: decimal.RequireFromString("18.0"), Enabled: true, Category: model.CategoryFood},
		{ID: "5", Name: "Gym Membership", DailyCost: decimal.RequireFromString("2.5"), Enabled: true, Category: model.CategorySub},
	}
}

// Activity returns today's mock spending feed.
func Activity() []model.Activity {
	return []model.Activity{
		{Title: "Starbucks", Amount: decimal.RequireFromString("6.50"), At: "09:15 AM", Category: model.CategoryFood},
		{Title: "Joe's Pizza", Amount: decimal.RequireFromString("12.40"), At: "12:45 PM", Category: model.CategoryFood},
		{Title: "Uber to Office", Amount: decimal.RequireFromString("23.10"), At: "08:30 AM", Category: model.CategoryTransport},
	}
}

// Milestone returns the default savings goal.
func Milestone() model.Milestone {
	return model.Milestone{
		Name:   "Emergency Fund",
		Target: decimal.NewFromInt(1000),
		Saved:  decimal.NewFromInt(780),
	}
}
