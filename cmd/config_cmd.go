// Package cmd implements the safespend CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/safespend/internal/config"
)

var flagConfigTOML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigTOML, "toml", false, "Print the effective config as TOML")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if flagConfigTOML {
		return toml.NewEncoder(os.Stdout).Encode(cfg)
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Base daily budget: $%.2f\n", cfg.General.BaseDailyBudget)
	fmt.Printf("    Starting spend:    $%.2f\n", cfg.General.StartingSpent)
	if cfg.General.Seed != 0 {
		fmt.Printf("    Seed:              %d\n", cfg.General.Seed)
	} else {
		fmt.Println("    Seed:              random each run")
	}
	fmt.Println()

	fmt.Println("  [History]")
	fmt.Printf("    Days:     %d ending %s\n", cfg.History.Days, cfg.History.EndDate)
	fmt.Printf("    Spent:    $%d to $%d\n", cfg.History.SpentMin, cfg.History.SpentMax)
	fmt.Printf("    Velocity: %d to %d\n", cfg.History.VelocityMin, cfg.History.VelocityMax)
	fmt.Println()

	fmt.Println("  [Simulation]")
	fmt.Printf("    Big purchase:  $%.0f over %d days\n", cfg.Simulation.PurchaseAmount, cfg.Simulation.PurchaseSpreadDays)
	fmt.Printf("    Alert:         %s\n", cfg.AlertDuration())
	fmt.Println()

	fmt.Println("  [Milestone]")
	fmt.Printf("    %s: $%.0f of $%.0f\n", cfg.Milestone.Name, cfg.Milestone.Saved, cfg.Milestone.Target)
	fmt.Println()

	fmt.Println("  [Leaks]")
	if len(cfg.Leaks) == 0 {
		fmt.Println("    Built-in catalog")
	}
	for _, l := range cfg.Catalog() {
		state := "on"
		if !l.Enabled {
			state = "off"
		}
		fmt.Printf("    %-3s %-24s %s/day  %s\n", l.ID, l.Name, l.DailyCost.StringFixed(2), state)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level:  %s (%s)\n", cfg.Logging.Level, cfg.Logging.Format)
	if cfg.Logging.File != "" {
		fmt.Printf("    File:   %s\n", cfg.Logging.File)
	} else {
		fmt.Println("    File:   off")
	}
	fmt.Println()

	fmt.Println("  Run `safespend setup` to reconfigure.")
	return nil
}
