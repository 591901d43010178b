package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/theirongolddev/safespend/internal/config"
)

func TestOptionsFromDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.Seed = 3

	opts, err := OptionsFromConfig(cfg, zap.NewNop())
	require.NoError(t, err)

	s, err := New(opts)
	require.NoError(t, err)
	b := s.Budget()
	assert.True(t, b.Current.Equal(dec("120")))
	assert.True(t, b.Remaining.Equal(dec("78")))
	assert.Equal(t, 3*time.Second, s.AlertDuration())
	assert.Equal(t, "Emergency Fund", s.Milestone().Name)
}

func TestOptionsFromCustomConfig(t *testing.T) {
	off := false
	cfg := config.DefaultConfig()
	cfg.General.BaseDailyBudget = 80
	cfg.General.StartingSpent = 10
	cfg.History.Days = 7
	cfg.History.EndDate = "2025-01-31"
	cfg.Simulation.AlertSeconds = 5
	cfg.Leaks = []config.LeakConfig{
		{ID: "tea", Name: "Tea", DailyCost: 3, Category: "food", Enabled: &off},
		{Name: "Cloud Storage", DailyCost: 0.5, Category: "sub"},
	}

	opts, err := OptionsFromConfig(cfg, nil)
	require.NoError(t, err)
	s, err := New(opts)
	require.NoError(t, err)

	b := s.Budget()
	assert.True(t, b.Current.Equal(dec("83")), "current %s", b.Current)
	assert.True(t, b.Remaining.Equal(dec("73")))
	assert.Len(t, s.Leaks(), 2)
	assert.NotEmpty(t, s.Leaks()[1].ID)

	hist := s.History()
	require.Len(t, hist, 7)
	assert.Equal(t, "2025-01-31", hist[6].DateString())
	assert.Equal(t, 5*time.Second, s.AlertDuration())
}

func TestOptionsFromConfigBadDate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.History.EndDate = "yesterday"
	_, err := OptionsFromConfig(cfg, nil)
	assert.Error(t, err)
}

func TestOptionsFromConfigKeepsZeroAmounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.DefaultConfig()
	cfg.General.BaseDailyBudget = 0
	cfg.General.StartingSpent = 0
	require.NoError(t, config.SaveTo(path, cfg))

	loaded, err := config.LoadFrom(path)
	require.NoError(t, err)
	opts, err := OptionsFromConfig(loaded, zap.NewNop())
	require.NoError(t, err)
	s, err := New(opts)
	require.NoError(t, err)

	b := s.Budget()
	assert.True(t, b.Base.IsZero(), "base %s", b.Base)
	assert.True(t, b.Spent.IsZero(), "spent %s", b.Spent)
	assert.True(t, b.Current.IsZero(), "current %s", b.Current)
	assert.True(t, b.Remaining.IsZero(), "remaining %s", b.Remaining)
}
