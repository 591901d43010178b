package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for history records.
const DateLayout = "2006-01-02"

// DailyRecord is one historical day. Velocity >= 0 means saving,
// negative means overspending.
type DailyRecord struct {
	Date     time.Time
	Spent    decimal.Decimal
	Velocity int
}

// DateString formats the record date as YYYY-MM-DD.
func (r DailyRecord) DateString() string {
	return r.Date.Format(DateLayout)
}

// Saving reports whether the day is on the saving side of zero.
func (r DailyRecord) Saving() bool {
	return r.Velocity >= 0
}
