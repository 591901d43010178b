package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/safespend/internal/config"
	"github.com/theirongolddev/safespend/internal/tui"
	"github.com/theirongolddev/safespend/internal/tui/theme"
)

// ErrNoDisplay is returned when stdout is not a terminal.
var ErrNoDisplay = errors.New("no terminal to mount the dashboard on")

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("starting dashboard: %w", ErrNoDisplay)
	}

	cfg, err := loadConfigOrDefault(cmd)
	if err != nil {
		progressf("  %v\n  Using default settings.\n", err)
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor so background styling always produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	state, err := buildSession(cmd, cfg, logger)
	if err != nil {
		return err
	}

	app := tui.NewApp(state, tui.Options{
		Config:    cfg,
		NeedSetup: !config.Exists(),
		Logger:    logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	logger.Info("dashboard started", zap.String("op", "cmd.tui"))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
