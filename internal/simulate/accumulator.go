package simulate

import "github.com/shopspring/decimal"

// Bounds of a single simulated day's spend, inclusive.
const (
	DayMin = 10
	DayMax = 49
)

// Accumulator holds the amount spent so far today.
// SimulateDay is its only mutator.
type Accumulator struct {
	spent decimal.Decimal
	src   Source
}

// NewAccumulator starts the counter at start and draws from src.
func NewAccumulator(start decimal.Decimal, src Source) *Accumulator {
	return &Accumulator{spent: start, src: src}
}

// Spent returns the running total.
func (a *Accumulator) Spent() decimal.Decimal {
	return a.spent
}

// SimulateDay adds a random amount in [DayMin, DayMax] and returns it.
// There is no ceiling on the running total.
func (a *Accumulator) SimulateDay() decimal.Decimal {
	amount := decimal.NewFromInt(int64(Between(a.src, DayMin, DayMax)))
	a.spent = a.spent.Add(amount)
	return amount
}
