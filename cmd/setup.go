package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/safespend/internal/config"
	"github.com/theirongolddev/safespend/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdin) {
		return fmt.Errorf("running setup: %w", ErrNoDisplay)
	}

	// Load existing config or defaults
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  %v\n  Starting from defaults.\n", err)
		cfg = config.DefaultConfig()
	}

	vals := tui.NewSetupValues(cfg)
	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}
	if !vals.Confirm {
		fmt.Println("  Nothing saved.")
		return nil
	}

	if err := vals.Apply(&cfg); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `safespend setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
