package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/theirongolddev/safespend/internal/config"
)

// parsed returns a command carrying the root persistent flags, parsed from args.
func parsed(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	c.Flags().AddFlagSet(rootCmd.PersistentFlags())
	require.NoError(t, c.ParseFlags(args))

	t.Cleanup(func() {
		flagBaseBudget, flagSpent, flagSeed = 0, 0, 0
		flagDisable = nil
		flagLogLevel, flagLogFile = "", ""
		flagQuiet = false
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	})
	return c
}

func TestBuildSessionDefaults(t *testing.T) {
	c := parsed(t)
	state, err := buildSession(c, config.DefaultConfig(), zap.NewNop())
	require.NoError(t, err)

	b := state.Budget()
	assert.True(t, b.Current.Equal(decimal.NewFromInt(120)))
	assert.True(t, b.Remaining.Equal(decimal.NewFromInt(78)))
}

func TestBuildSessionFlagOverrides(t *testing.T) {
	c := parsed(t, "--base-budget", "0", "--spent", "5", "--disable", "4,nope")
	state, err := buildSession(c, config.DefaultConfig(), zap.NewNop())
	require.NoError(t, err)

	b := state.Budget()
	assert.True(t, b.Base.IsZero(), "explicit zero base is honored")
	assert.True(t, b.Current.Equal(decimal.NewFromInt(18)), "current = %s", b.Current)
	assert.True(t, b.Remaining.Equal(decimal.NewFromInt(13)), "remaining = %s", b.Remaining)
	assert.Equal(t, 1, b.DisabledCount)
}

func TestBuildSessionRejectsNegativeSpend(t *testing.T) {
	c := parsed(t, "--spent=-1")
	_, err := buildSession(c, config.DefaultConfig(), zap.NewNop())
	assert.Error(t, err)
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := config.DefaultConfig()
	cfg.General.Seed = 1
	cfg.Logging.Level = "warn"
	require.NoError(t, config.SaveTo(filepath.Join(dir, "safespend", "config.toml"), cfg))

	t.Setenv(config.EnvSeed, "2")

	got, err := loadConfig(parsed(t))
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.General.Seed, "env beats file")
	assert.Equal(t, "warn", got.Logging.Level)

	got, err = loadConfig(parsed(t, "--seed", "3", "--log-level", "debug"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.General.Seed, "flag beats env")
	assert.Equal(t, "debug", got.Logging.Level)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "safespend", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[general\nbase_daily_budget = "), 0o600))

	_, err := loadConfig(parsed(t))
	assert.Error(t, err)
}

func TestLoadConfigOrDefaultKeepsFlags(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "safespend", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[general\nbase_daily_budget = "), 0o600))

	logFile := filepath.Join(dir, "safespend.log")
	cfg, err := loadConfigOrDefault(parsed(t, "--seed", "3", "--log-level", "debug", "--log-file", logFile))
	assert.Error(t, err)
	assert.Equal(t, int64(3), cfg.General.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, logFile, cfg.Logging.File)
	assert.Equal(t, config.DefaultConfig().General.BaseDailyBudget, cfg.General.BaseDailyBudget)
}

func TestRunTUIWithoutTerminal(t *testing.T) {
	if isTerminal(os.Stdout) {
		t.Skip("stdout is a terminal")
	}
	err := runTUI(parsed(t), nil)
	assert.ErrorIs(t, err, ErrNoDisplay)
}
