package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/safespend/internal/config"
	"github.com/theirongolddev/safespend/internal/logging"
	"github.com/theirongolddev/safespend/internal/session"
)

var (
	flagBaseBudget float64
	flagSpent      float64
	flagSeed       int64
	flagDisable    []string
	flagLogLevel   string
	flagLogFile    string
	flagQuiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "safespend",
	Short: "Safe-to-spend daily budget dashboard",
	Long: "See how much you can safely spend today, and how much more you could\n" +
		"spend if you cut the recurring costs that leak out of your budget.",
	SilenceUsage: true,
	RunE:         runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagBaseBudget, "base-budget", 0, "Base daily budget in USD (overrides config)")
	pf.Float64Var(&flagSpent, "spent", 0, "Amount already spent today in USD (overrides config)")
	pf.Int64Var(&flagSeed, "seed", 0, "Random seed for history and simulated days (0 = random)")
	pf.StringSliceVar(&flagDisable, "disable", nil, "Recurring cost ids to switch off at startup (comma separated)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write structured logs to this file")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig is the shared config path used by all commands: .env, the
// config file, SAFESPEND_* variables, then flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("loading %s: %w", config.Path(), err)
	}
	applyConfigFlags(cmd, &cfg)
	return cfg, nil
}

// loadConfigOrDefault is loadConfig for callers that can run on defaults.
// The load error is returned alongside a usable config with flags applied.
func loadConfigOrDefault(cmd *cobra.Command) (config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err == nil {
		return cfg, nil
	}
	cfg = config.DefaultConfig()
	applyConfigFlags(cmd, &cfg)
	return cfg, err
}

func applyConfigFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.General.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = flagLogFile
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
}

// buildSession creates the session for a command. Budget flags are applied
// after the config so an explicit zero is honored.
func buildSession(cmd *cobra.Command, cfg config.Config, logger *zap.Logger) (*session.State, error) {
	opts, err := session.OptionsFromConfig(cfg, logger)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("base-budget") {
		opts.Base = decimal.NewFromFloat(flagBaseBudget)
	}
	if flags.Changed("spent") {
		opts.StartSpent = decimal.NewFromFloat(flagSpent)
	}
	opts.Disabled = append(opts.Disabled, flagDisable...)

	state, err := session.New(opts)
	if err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}
	return state, nil
}

// prepare loads config, logger and session in one step.
func prepare(cmd *cobra.Command) (config.Config, *zap.Logger, *session.State, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, nil, nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return cfg, nil, nil, err
	}
	state, err := buildSession(cmd, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return cfg, nil, nil, err
	}
	return cfg, logger, state, nil
}

func progressf(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
