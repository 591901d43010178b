// Package leaks holds the registry of toggleable recurring costs.
package leaks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/theirongolddev/safespend/internal/model"
)

var (
	// ErrDuplicateID is returned when two catalog entries share an id.
	ErrDuplicateID = errors.New("duplicate leak id")
	// ErrInvalidCost is returned for a negative daily cost.
	ErrInvalidCost = errors.New("daily cost must not be negative")
	// ErrEmptyName is returned for an entry without a display name.
	ErrEmptyName = errors.New("leak name is empty")
)

// Registry is the ordered, fixed catalog of recurring costs. Entries are
// never added or removed after construction; only their Enabled flag moves.
// A Registry is not safe for concurrent use.
type Registry struct {
	entries []model.RecurringCost
	index   map[string]int
}

// New validates catalog and returns a registry holding a copy of it.
// Entries without an id get a random one.
func New(catalog []model.RecurringCost) (*Registry, error) {
	r := &Registry{
		entries: make([]model.RecurringCost, 0, len(catalog)),
		index:   make(map[string]int, len(catalog)),
	}

	for i, c := range catalog {
		c.ID = strings.TrimSpace(c.ID)
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyName)
		}
		if c.DailyCost.IsNegative() {
			return nil, fmt.Errorf("leak %q: %w", c.ID, ErrInvalidCost)
		}
		if _, dup := r.index[c.ID]; dup {
			return nil, fmt.Errorf("leak %q: %w", c.ID, ErrDuplicateID)
		}
		if c.Category == "" {
			c.Category = model.CategoryOther
		}
		r.index[c.ID] = len(r.entries)
		r.entries = append(r.entries, c)
	}

	return r, nil
}

// List returns a copy of all entries in catalog order.
func (r *Registry) List() []model.RecurringCost {
	out := make([]model.RecurringCost, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Get returns the entry with the given id.
func (r *Registry) Get(id string) (model.RecurringCost, bool) {
	i, ok := r.index[id]
	if !ok {
		return model.RecurringCost{}, false
	}
	return r.entries[i], true
}

// Toggle flips the Enabled flag of the entry with the given id.
// An unknown id is a no-op and reports false.
func (r *Registry) Toggle(id string) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	r.entries[i].Enabled = !r.entries[i].Enabled
	return true
}

// SetEnabled forces the Enabled flag of an entry. Used when applying
// startup overrides; unknown ids report false.
func (r *Registry) SetEnabled(id string, enabled bool) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	r.entries[i].Enabled = enabled
	return true
}

// Disabled returns the entries that are currently switched off, in order.
func (r *Registry) Disabled() []model.RecurringCost {
	var out []model.RecurringCost
	for _, e := range r.entries {
		if !e.Enabled {
			out = append(out, e)
		}
	}
	return out
}
