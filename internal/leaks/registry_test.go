package leaks

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/safespend/internal/model"
	"github.com/theirongolddev/safespend/internal/seed"
)

func newSeeded(t *testing.T) *Registry {
	t.Helper()
	r, err := New(seed.Leaks())
	require.NoError(t, err)
	return r
}

func ids(costs []model.RecurringCost) []string {
	out := make([]string, len(costs))
	for i, c := range costs {
		out[i] = c.ID
	}
	return out
}

func TestToggleFlipsOnlyTarget(t *testing.T) {
	r := newSeeded(t)

	require.True(t, r.Toggle("4"))

	for _, e := range r.List() {
		if e.ID == "4" {
			assert.False(t, e.Enabled)
		} else {
			assert.True(t, e.Enabled, "entry %s changed", e.ID)
		}
	}
}

func TestTogglePreservesOrder(t *testing.T) {
	r := newSeeded(t)
	before := ids(r.List())

	r.Toggle("1")
	r.Toggle("5")
	r.Toggle("3")

	assert.Equal(t, before, ids(r.List()))
	assert.Equal(t, 5, r.Len())
}

func TestToggleRoundTrip(t *testing.T) {
	r := newSeeded(t)
	before := r.List()

	r.Toggle("2")
	r.Toggle("2")

	assert.Equal(t, before, r.List())
}

func TestToggleUnknownIsNoop(t *testing.T) {
	r := newSeeded(t)
	before := r.List()

	assert.False(t, r.Toggle("nope"))
	assert.False(t, r.Toggle(""))
	assert.Equal(t, before, r.List())
}

func TestListIsACopy(t *testing.T) {
	r := newSeeded(t)
	l := r.List()
	l[0].Enabled = false
	l[0].Name = "changed"

	got, ok := r.Get("1")
	require.True(t, ok)
	assert.True(t, got.Enabled)
	assert.Equal(t, "Premium Subscriptions", got.Name)
}

func TestDisabled(t *testing.T) {
	r := newSeeded(t)
	assert.Empty(t, r.Disabled())

	r.Toggle("5")
	r.Toggle("2")
	assert.Equal(t, []string{"2", "5"}, ids(r.Disabled()))
}

func TestSetEnabledIdempotent(t *testing.T) {
	r := newSeeded(t)
	assert.True(t, r.SetEnabled("3", false))
	assert.True(t, r.SetEnabled("3", false))
	assert.Len(t, r.Disabled(), 1)
	assert.False(t, r.SetEnabled("missing", false))
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		catalog []model.RecurringCost
		wantErr error
	}{
		{
			name: "duplicate id",
			catalog: []model.RecurringCost{
				{ID: "a", Name: "A", DailyCost: decimal.NewFromInt(1)},
				{ID: "a", Name: "B", DailyCost: decimal.NewFromInt(2)},
			},
			wantErr: ErrDuplicateID,
		},
		{
			name:    "negative cost",
			catalog: []model.RecurringCost{{ID: "a", Name: "A", DailyCost: decimal.NewFromInt(-1)}},
			wantErr: ErrInvalidCost,
		},
		{
			name:    "empty name",
			catalog: []model.RecurringCost{{ID: "a", Name: "  ", DailyCost: decimal.NewFromInt(1)}},
			wantErr: ErrEmptyName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.catalog)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewAssignsMissingIDs(t *testing.T) {
	r, err := New([]model.RecurringCost{
		{Name: "Streaming", DailyCost: decimal.NewFromInt(1)},
		{Name: "Snacks", DailyCost: decimal.NewFromInt(2)},
	})
	require.NoError(t, err)

	l := r.List()
	assert.NotEmpty(t, l[0].ID)
	assert.NotEqual(t, l[0].ID, l[1].ID)
	assert.Equal(t, model.CategoryOther, l[0].Category)
	assert.True(t, r.Toggle(l[1].ID))
}
