// Package history generates and summarizes the synthetic trend history.
package history

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/safespend/internal/model"
	"github.com/theirongolddev/safespend/internal/simulate"
)

var (
	// ErrInvalidRange is returned when a draw range has Min > Max.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidLength is returned for a non-positive history length.
	ErrInvalidLength = errors.New("history length must be positive")
)

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

func (r Range) validate(name string) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s [%d, %d]: %w", name, r.Min, r.Max, ErrInvalidRange)
	}
	return nil
}

// Store is a fixed, read-only series of daily records, oldest first.
type Store struct {
	records []model.DailyRecord
}

// Generate draws length records with contiguous dates ending on end.
// Spent is drawn from spent and velocity from velocity, both inclusive.
func Generate(src simulate.Source, end time.Time, length int, spent, velocity Range) (*Store, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	if err := spent.validate("spent"); err != nil {
		return nil, err
	}
	if spent.Min < 0 {
		return nil, fmt.Errorf("spent [%d, %d]: %w", spent.Min, spent.Max, ErrInvalidRange)
	}
	if err := velocity.validate("velocity"); err != nil {
		return nil, err
	}

	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	start := end.AddDate(0, 0, -(length - 1))

	records := make([]model.DailyRecord, length)
	for i := range records {
		records[i] = model.DailyRecord{
			Date:     start.AddDate(0, 0, i),
			Spent:    decimal.NewFromInt(int64(simulate.Between(src, spent.Min, spent.Max))),
			Velocity: simulate.Between(src, velocity.Min, velocity.Max),
		}
	}

	return &Store{records: records}, nil
}

// Records returns a copy of the series.
func (s *Store) Records() []model.DailyRecord {
	out := make([]model.DailyRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}
