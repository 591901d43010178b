// Package config loads and saves safespend's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/safespend/internal/model"
	"github.com/theirongolddev/safespend/internal/seed"
)

// Config holds all safespend configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	History    HistoryConfig    `toml:"history"`
	Simulation SimulationConfig `toml:"simulation"`
	Milestone  MilestoneConfig  `toml:"milestone"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
	Leaks      []LeakConfig     `toml:"leaks,omitempty"`
}

// GeneralConfig holds the budget baseline.
type GeneralConfig struct {
	BaseDailyBudget float64 `toml:"base_daily_budget"`
	StartingSpent   float64 `toml:"starting_spent"`
	Seed            int64   `toml:"seed"` // 0 = random each run
}

// HistoryConfig controls the synthetic trend history.
type HistoryConfig struct {
	Days        int    `toml:"days"`
	EndDate     string `toml:"end_date"` // YYYY-MM-DD
	SpentMin    int    `toml:"spent_min"`
	SpentMax    int    `toml:"spent_max"`
	VelocityMin int    `toml:"velocity_min"`
	VelocityMax int    `toml:"velocity_max"`
}

// SimulationConfig holds the big-purchase simulation settings.
type SimulationConfig struct {
	PurchaseAmount     float64 `toml:"purchase_amount"`
	PurchaseSpreadDays int     `toml:"purchase_spread_days"`
	AlertSeconds       int     `toml:"alert_seconds"`
}

// MilestoneConfig holds the savings goal on the trends view.
type MilestoneConfig struct {
	Name   string  `toml:"name"`
	Target float64 `toml:"target"`
	Saved  float64 `toml:"saved"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file,omitempty"`
}

// LeakConfig is a user-defined recurring cost. When any are present they
// replace the built-in catalog.
type LeakConfig struct {
	ID        string  `toml:"id,omitempty"`
	Name      string  `toml:"name"`
	DailyCost float64 `toml:"daily_cost"`
	Category  string  `toml:"category"`
	Enabled   *bool   `toml:"enabled,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	base, _ := seed.BaseDailyBudget.Float64()
	spent, _ := seed.StartingSpent.Float64()
	purchase, _ := seed.PurchaseAmount.Float64()
	ms := seed.Milestone()
	target, _ := ms.Target.Float64()
	saved, _ := ms.Saved.Float64()

	return Config{
		General: GeneralConfig{
			BaseDailyBudget: base,
			StartingSpent:   spent,
		},
		History: HistoryConfig{
			Days:        seed.HistoryDays,
			EndDate:     seed.HistoryEnd.Format(model.DateLayout),
			SpentMin:    seed.HistorySpentMin,
			SpentMax:    seed.HistorySpentMax,
			VelocityMin: seed.HistoryVelocityMin,
			VelocityMax: seed.HistoryVelocityMax,
		},
		Simulation: SimulationConfig{
			PurchaseAmount:     purchase,
			PurchaseSpreadDays: seed.PurchaseSpreadDays,
			AlertSeconds:       int(seed.AlertDuration / time.Second),
		},
		Milestone: MilestoneConfig{
			Name:   ms.Name,
			Target: target,
			Saved:  saved,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "safespend")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "safespend")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config at path. A missing file yields defaults.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Environment variables that override file values.
const (
	EnvBaseBudget = "SAFESPEND_BASE_BUDGET"
	EnvTheme      = "SAFESPEND_THEME"
	EnvSeed       = "SAFESPEND_SEED"
	EnvLogLevel   = "SAFESPEND_LOG_LEVEL"
)

// LoadDotEnv loads a .env file from the working directory if one exists.
// Variables already set in the environment win.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// ApplyEnv overlays SAFESPEND_* variables onto cfg.
func ApplyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvBaseBudget)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBaseBudget, err)
		}
		cfg.General.BaseDailyBudget = f
	}
	if v := strings.TrimSpace(os.Getenv(EnvSeed)); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.General.Seed = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

// Catalog returns the configured leaks, or the built-in catalog when none
// are configured.
func (c Config) Catalog() []model.RecurringCost {
	if len(c.Leaks) == 0 {
		return seed.Leaks()
	}
	out := make([]model.RecurringCost, 0, len(c.Leaks))
	for _, l := range c.Leaks {
		enabled := true
		if l.Enabled != nil {
			enabled = *l.Enabled
		}
		out = append(out, model.RecurringCost{
			ID:        l.ID,
			Name:      l.Name,
			DailyCost: decimal.NewFromFloat(l.DailyCost),
			Enabled:   enabled,
			Category:  model.ParseCategory(l.Category),
		})
	}
	return out
}

// HistoryEnd parses the configured end date, falling back to the seed date.
func (c Config) HistoryEnd() (time.Time, error) {
	if c.History.EndDate == "" {
		return seed.HistoryEnd, nil
	}
	t, err := time.Parse(model.DateLayout, c.History.EndDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("history end_date: %w", err)
	}
	return t, nil
}

// AlertDuration returns the big-purchase alert lifetime.
func (c Config) AlertDuration() time.Duration {
	if c.Simulation.AlertSeconds <= 0 {
		return seed.AlertDuration
	}
	return time.Duration(c.Simulation.AlertSeconds) * time.Second
}

// MilestoneGoal converts the milestone section to the model type.
func (c Config) MilestoneGoal() model.Milestone {
	return model.Milestone{
		Name:   c.Milestone.Name,
		Target: decimal.NewFromFloat(c.Milestone.Target),
		Saved:  decimal.NewFromFloat(c.Milestone.Saved),
	}
}
