package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/safespend/internal/cli"
	"github.com/theirongolddev/safespend/internal/model"
	"github.com/theirongolddev/safespend/internal/session"
)

var flagSimulateDays int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's safe-to-spend budget",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().IntVar(&flagSimulateDays, "simulate-days", 0, "Simulate this many spending days before reporting")
	rootCmd.Flags().IntVar(&flagSimulateDays, "simulate-days", 0, "Simulate this many spending days before reporting")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if flagSimulateDays < 0 {
		return errors.New("--simulate-days must not be negative")
	}

	_, logger, state, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	for i := 1; i <= flagSimulateDays; i++ {
		added := state.SimulateDay()
		progressf("  Day %d: spent %s\n", i, cli.FormatMoney(added))
	}
	logger.Info("status rendered",
		zap.String("op", "cmd.status"),
		zap.Int("simulated_days", flagSimulateDays))

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAFE TO SPEND TODAY"))
	fmt.Println()
	fmt.Print(renderBudget(state.Budget()))
	fmt.Println()
	fmt.Println("  " + cli.RenderProgressBar(state.Budget().UsedFraction(), 30,
		cli.FormatPercent(state.Budget().UsedFraction())+" of today's budget used"))

	if cut := disabledNames(state); len(cut) > 0 {
		fmt.Println()
		fmt.Println(cli.RenderLabel("Cut", strings.Join(cut, ", ")))
	}
	if b := state.Budget(); b.Overspent() {
		fmt.Println()
		fmt.Println(cli.RenderWarning("Today's budget is used up. Cut a recurring cost to unlock more."))
	}
	fmt.Println()
	return nil
}

func renderBudget(b model.BudgetState) string {
	return cli.RenderTable(cli.Table{
		Headers: []string{"Budget", "Amount"},
		Rows: [][]string{
			{"Base daily budget", cli.FormatMoney(b.Base)},
			{fmt.Sprintf("Unlocked (%d cut)", b.DisabledCount), cli.FormatDelta(b.Unlocked)},
			{"Daily budget", cli.FormatMoney(b.Current)},
			{"Spent today", cli.FormatMoney(b.Spent)},
			{cli.Separator},
			{"Safe to spend", cli.FormatMoney(b.Remaining)},
		},
	})
}

func disabledNames(state *session.State) []string {
	var names []string
	for _, l := range state.Leaks() {
		if !l.Enabled {
			names = append(names, l.Name)
		}
	}
	return names
}
