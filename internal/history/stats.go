package history

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/safespend/internal/model"
)

// Stats summarizes a run of daily records for the trends view.
type Stats struct {
	Days           int
	TotalSpent     decimal.Decimal
	AvgSpent       decimal.Decimal // burn rate per day
	NetVelocity    int
	AvgVelocity    float64
	SavingDays     int // velocity >= 0
	OverspendDays  int
	Best           model.DailyRecord // highest velocity
	Worst          model.DailyRecord // lowest velocity
	SavingsPercent float64           // net velocity as a share of total spend
}

// Summarize aggregates records. An empty slice yields zero Stats.
func Summarize(records []model.DailyRecord) Stats {
	var st Stats
	st.TotalSpent = decimal.Zero
	st.AvgSpent = decimal.Zero
	if len(records) == 0 {
		return st
	}

	st.Best = records[0]
	st.Worst = records[0]

	for _, r := range records {
		st.Days++
		st.TotalSpent = st.TotalSpent.Add(r.Spent)
		st.NetVelocity += r.Velocity

		if r.Saving() {
			st.SavingDays++
		} else {
			st.OverspendDays++
		}
		if r.Velocity > st.Best.Velocity {
			st.Best = r
		}
		if r.Velocity < st.Worst.Velocity {
			st.Worst = r
		}
	}

	days := decimal.NewFromInt(int64(st.Days))
	st.AvgSpent = st.TotalSpent.Div(days)
	st.AvgVelocity = float64(st.NetVelocity) / float64(st.Days)

	if st.TotalSpent.IsPositive() {
		total, _ := st.TotalSpent.Float64()
		st.SavingsPercent = float64(st.NetVelocity) / total * 100
	}

	return st
}

// DaysToTarget estimates how many days of average velocity it takes to reach
// the milestone. It returns 0 when the goal is already met and -1 when the
// average velocity is not positive.
func (st Stats) DaysToTarget(m model.Milestone) int {
	left := m.Remaining()
	if left.IsZero() {
		return 0
	}
	if st.AvgVelocity <= 0 {
		return -1
	}
	l, _ := left.Float64()
	return int(math.Ceil(l / st.AvgVelocity))
}

// Velocities returns the velocity series, oldest first.
func Velocities(records []model.DailyRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Velocity
	}
	return out
}
