// Package store writes dashboard snapshots to a SQLite file. The file is an
// export for outside tools; sessions never read it back.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/safespend/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Snapshot is one point-in-time copy of a session.
type Snapshot struct {
	TakenAt time.Time
	Budget  model.BudgetState
	Leaks   []model.RecurringCost
	History []model.DailyRecord
}

// SnapshotSummary is a row of the snapshots table.
type SnapshotSummary struct {
	ID        int64
	TakenAt   time.Time
	Current   decimal.Decimal
	Remaining decimal.Decimal
	Leaks     int
	Days      int
}

// Export is an open export database.
type Export struct {
	db *sql.DB
}

// Open opens or creates the export database at the given path.
func Open(dbPath string) (*Export, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening export db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Export{db: db}, nil
}

// Close closes the export database.
func (e *Export) Close() error {
	return e.db.Close()
}

// Save writes s in a single transaction and returns its row id.
func (e *Export) Save(s Snapshot) (int64, error) {
	tx, err := e.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	taken := s.TakenAt
	if taken.IsZero() {
		taken = time.Now()
	}
	b := s.Budget

	res, err := tx.Exec(`INSERT INTO snapshots
		(taken_at, base_budget, current_budget, spent, remaining, unlocked, disabled_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		taken.UTC().Format(time.RFC3339), b.Base.String(), b.Current.String(),
		b.Spent.String(), b.Remaining.String(), b.Unlocked.String(), b.DisabledCount,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, l := range s.Leaks {
		enabled := 0
		if l.Enabled {
			enabled = 1
		}
		_, err = tx.Exec(`INSERT INTO snapshot_leaks
			(snapshot_id, position, leak_id, name, category, daily_cost, enabled)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, i, l.ID, l.Name, string(l.Category), l.DailyCost.String(), enabled,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting leak %s: %w", l.ID, err)
		}
	}

	for _, r := range s.History {
		_, err = tx.Exec(`INSERT INTO snapshot_history (snapshot_id, day, spent, velocity)
			VALUES (?, ?, ?, ?)`, id, r.DateString(), r.Spent.String(), r.Velocity)
		if err != nil {
			return 0, fmt.Errorf("inserting history %s: %w", r.DateString(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// List returns every snapshot in the file, oldest first.
func (e *Export) List() ([]SnapshotSummary, error) {
	rows, err := e.db.Query(`SELECT s.snapshot_id, s.taken_at, s.current_budget, s.remaining,
		(SELECT COUNT(*) FROM snapshot_leaks l WHERE l.snapshot_id = s.snapshot_id),
		(SELECT COUNT(*) FROM snapshot_history h WHERE h.snapshot_id = s.snapshot_id)
		FROM snapshots s ORDER BY s.snapshot_id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []SnapshotSummary
	for rows.Next() {
		var s SnapshotSummary
		var taken, current, remaining string
		if err := rows.Scan(&s.ID, &taken, &current, &remaining, &s.Leaks, &s.Days); err != nil {
			return nil, err
		}
		if s.TakenAt, err = time.Parse(time.RFC3339, taken); err != nil {
			return nil, fmt.Errorf("snapshot %d taken_at: %w", s.ID, err)
		}
		if s.Current, err = decimal.NewFromString(current); err != nil {
			return nil, fmt.Errorf("snapshot %d current: %w", s.ID, err)
		}
		if s.Remaining, err = decimal.NewFromString(remaining); err != nil {
			return nil, fmt.Errorf("snapshot %d remaining: %w", s.ID, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
