// Package session owns the dashboard's application state: the leak
// registry, today's spend, the trend history and the big-purchase alert.
// Only Toggle, SimulateDay, SimulateBigPurchase and ExpireBigPurchase
// mutate it. A State is not safe for concurrent use.
package session

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/theirongolddev/safespend/internal/budget"
	"github.com/theirongolddev/safespend/internal/history"
	"github.com/theirongolddev/safespend/internal/leaks"
	"github.com/theirongolddev/safespend/internal/model"
	"github.com/theirongolddev/safespend/internal/seed"
	"github.com/theirongolddev/safespend/internal/simulate"
)

// Options configures a new session.
type Options struct {
	Base       decimal.Decimal
	StartSpent decimal.Decimal
	Catalog    []model.RecurringCost
	Disabled   []string // leak ids switched off at startup

	HistoryEnd    time.Time
	HistoryDays   int
	SpentRange    history.Range
	VelocityRange history.Range

	PurchaseAmount     decimal.Decimal
	PurchaseSpreadDays int
	AlertDuration      time.Duration

	Milestone model.Milestone
	Activity  []model.Activity

	Source simulate.Source
	Logger *zap.Logger
}

// DefaultOptions returns the built-in seed session with a time-seeded source.
func DefaultOptions() Options {
	return Options{
		Base:               seed.BaseDailyBudget,
		StartSpent:         seed.StartingSpent,
		Catalog:            seed.Leaks(),
		HistoryEnd:         seed.HistoryEnd,
		HistoryDays:        seed.HistoryDays,
		SpentRange:         history.Range{Min: seed.HistorySpentMin, Max: seed.HistorySpentMax},
		VelocityRange:      history.Range{Min: seed.HistoryVelocityMin, Max: seed.HistoryVelocityMax},
		PurchaseAmount:     seed.PurchaseAmount,
		PurchaseSpreadDays: seed.PurchaseSpreadDays,
		AlertDuration:      seed.AlertDuration,
		Milestone:          seed.Milestone(),
		Activity:           seed.Activity(),
	}
}

// State is the single owner of all mutable session data.
type State struct {
	base     decimal.Decimal
	registry *leaks.Registry
	spend    *simulate.Accumulator
	history  *history.Store
	alert    simulate.Alert

	purchaseAmount decimal.Decimal
	purchaseDays   int
	alertDuration  time.Duration
	milestone      model.Milestone
	activity       []model.Activity

	log *zap.Logger
}

// New builds a session from opts.
func New(opts Options) (*State, error) {
	if opts.Base.IsNegative() {
		return nil, fmt.Errorf("base daily budget %s must not be negative", opts.Base)
	}
	if opts.StartSpent.IsNegative() {
		return nil, fmt.Errorf("starting spend %s must not be negative", opts.StartSpent)
	}
	if opts.Source == nil {
		opts.Source = simulate.NewSource(0)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.AlertDuration <= 0 {
		opts.AlertDuration = seed.AlertDuration
	}

	reg, err := leaks.New(opts.Catalog)
	if err != nil {
		return nil, fmt.Errorf("building leak registry: %w", err)
	}
	for _, id := range opts.Disabled {
		if !reg.SetEnabled(id, false) {
			opts.Logger.Warn("unknown leak in startup overrides",
				zap.String("op", "session.New"),
				zap.String("id", id))
		}
	}

	hist, err := history.Generate(opts.Source, opts.HistoryEnd, opts.HistoryDays, opts.SpentRange, opts.VelocityRange)
	if err != nil {
		return nil, fmt.Errorf("generating history: %w", err)
	}

	s := &State{
		base:           opts.Base,
		registry:       reg,
		spend:          simulate.NewAccumulator(opts.StartSpent, opts.Source),
		history:        hist,
		purchaseAmount: opts.PurchaseAmount,
		purchaseDays:   opts.PurchaseSpreadDays,
		alertDuration:  opts.AlertDuration,
		milestone:      opts.Milestone,
		activity:       append([]model.Activity(nil), opts.Activity...),
		log:            opts.Logger,
	}

	b := s.Budget()
	s.log.Info("session started",
		zap.String("op", "session.New"),
		zap.Int("leaks", reg.Len()),
		zap.Int("history_days", hist.Len()),
		zap.String("current", b.Current.String()),
		zap.String("remaining", b.Remaining.String()))

	return s, nil
}

// Toggle flips a leak on or off. Unknown ids are ignored and report false.
func (s *State) Toggle(id string) bool {
	if !s.registry.Toggle(id) {
		s.log.Debug("toggle of unknown leak ignored",
			zap.String("op", "session.Toggle"),
			zap.String("id", id))
		return false
	}
	l, _ := s.registry.Get(id)
	b := s.Budget()
	s.log.Info("leak toggled",
		zap.String("op", "session.Toggle"),
		zap.String("id", id),
		zap.Bool("enabled", l.Enabled),
		zap.String("current", b.Current.String()),
		zap.String("remaining", b.Remaining.String()))
	return true
}

// SimulateDay adds a random day's spend and returns the drawn amount.
func (s *State) SimulateDay() decimal.Decimal {
	amt := s.spend.SimulateDay()
	b := s.Budget()
	s.log.Info("simulated spending day",
		zap.String("op", "session.SimulateDay"),
		zap.String("amount", amt.String()),
		zap.String("spent", b.Spent.String()),
		zap.String("remaining", b.Remaining.String()))
	return amt
}

// SimulateBigPurchase raises the purchase alert and returns the token that
// clears it. A new call supersedes the previous token. Spend is untouched.
func (s *State) SimulateBigPurchase() simulate.Token {
	tok := s.alert.Start()
	s.log.Info("big purchase simulated",
		zap.String("op", "session.SimulateBigPurchase"),
		zap.Uint64("token", uint64(tok)),
		zap.String("amount", s.purchaseAmount.String()))
	return tok
}

// ExpireBigPurchase clears the alert if tok is still current.
func (s *State) ExpireBigPurchase(tok simulate.Token) bool {
	cleared := s.alert.Expire(tok)
	s.log.Debug("big purchase expiry",
		zap.String("op", "session.ExpireBigPurchase"),
		zap.Uint64("token", uint64(tok)),
		zap.Bool("cleared", cleared))
	return cleared
}

// Budget derives today's allowance from the current state.
func (s *State) Budget() model.BudgetState {
	return budget.Derive(s.registry.List(), s.base, s.spend.Spent())
}

// Leaks returns the recurring costs in catalog order.
func (s *State) Leaks() []model.RecurringCost {
	return s.registry.List()
}

// History returns the trend records, oldest first.
func (s *State) History() []model.DailyRecord {
	return s.history.Records()
}

// Trend summarizes the history.
func (s *State) Trend() history.Stats {
	return history.Summarize(s.history.Records())
}

// Spent returns today's running total.
func (s *State) Spent() decimal.Decimal {
	return s.spend.Spent()
}

// BigPurchaseActive reports whether the purchase alert is showing.
func (s *State) BigPurchaseActive() bool {
	return s.alert.Active()
}

// PurchaseAmount is the simulated one-off purchase.
func (s *State) PurchaseAmount() decimal.Decimal {
	return s.purchaseAmount
}

// PurchaseImpact is the per-day reduction the warning quotes.
func (s *State) PurchaseImpact() decimal.Decimal {
	return budget.PurchaseImpact(s.purchaseAmount, s.purchaseDays)
}

// PurchaseWarning is the alert text shown while a purchase is simulated.
func (s *State) PurchaseWarning() string {
	return fmt.Sprintf("Warning: This spend would reduce your daily budget by $%s for the next %d days.",
		s.PurchaseImpact().StringFixed(2), s.purchaseDays)
}

// AlertDuration is how long the purchase alert stays up.
func (s *State) AlertDuration() time.Duration {
	return s.alertDuration
}

// Milestone returns the savings goal.
func (s *State) Milestone() model.Milestone {
	return s.milestone
}

// Activity returns today's mock spending feed.
func (s *State) Activity() []model.Activity {
	return append([]model.Activity(nil), s.activity...)
}
