package session

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/theirongolddev/safespend/internal/config"
	"github.com/theirongolddev/safespend/internal/history"
	"github.com/theirongolddev/safespend/internal/seed"
	"github.com/theirongolddev/safespend/internal/simulate"
)

// OptionsFromConfig maps a loaded config onto session options. Amounts are
// taken as given; zero sizes and ranges fall back to the built-in seed.
func OptionsFromConfig(cfg config.Config, logger *zap.Logger) (Options, error) {
	opts := DefaultOptions()
	opts.Logger = logger
	opts.Source = simulate.NewSource(cfg.General.Seed)

	// DefaultConfig carries the seed amounts, so zero here is a real setting.
	opts.Base = decimal.NewFromFloat(cfg.General.BaseDailyBudget)
	opts.StartSpent = decimal.NewFromFloat(cfg.General.StartingSpent)
	opts.Catalog = cfg.Catalog()

	end, err := cfg.HistoryEnd()
	if err != nil {
		return Options{}, err
	}
	opts.HistoryEnd = end
	if cfg.History.Days != 0 {
		opts.HistoryDays = cfg.History.Days
	}
	h := cfg.History
	if h.SpentMin != 0 || h.SpentMax != 0 {
		opts.SpentRange = history.Range{Min: h.SpentMin, Max: h.SpentMax}
	}
	if h.VelocityMin != 0 || h.VelocityMax != 0 {
		opts.VelocityRange = history.Range{Min: h.VelocityMin, Max: h.VelocityMax}
	}

	if cfg.Simulation.PurchaseAmount != 0 {
		opts.PurchaseAmount = decimal.NewFromFloat(cfg.Simulation.PurchaseAmount)
	}
	if cfg.Simulation.PurchaseSpreadDays > 0 {
		opts.PurchaseSpreadDays = cfg.Simulation.PurchaseSpreadDays
	} else {
		opts.PurchaseSpreadDays = seed.PurchaseSpreadDays
	}
	opts.AlertDuration = cfg.AlertDuration()

	if cfg.Milestone.Name != "" {
		opts.Milestone = cfg.MilestoneGoal()
	}
	return opts, nil
}
