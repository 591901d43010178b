package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/safespend/internal/cli"
)

var leaksCmd = &cobra.Command{
	Use:   "leaks",
	Short: "List recurring costs and what cutting them unlocks",
	RunE:  runLeaks,
}

func init() {
	rootCmd.AddCommand(leaksCmd)
}

func runLeaks(cmd *cobra.Command, _ []string) error {
	_, logger, state, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	leaks := state.Leaks()
	if len(leaks) == 0 {
		fmt.Println("\n  No recurring costs configured.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("RECURRING COSTS"))
	fmt.Println()

	rows := make([][]string, 0, len(leaks)+2)
	for _, l := range leaks {
		rows = append(rows, []string{
			l.ID,
			cli.CategoryGlyph(l.Category) + " " + string(l.Category),
			l.Name,
			cli.FormatDailyCost(l.DailyCost),
			cli.OnOff(l.Enabled),
		})
	}

	b := state.Budget()
	rows = append(rows,
		[]string{cli.Separator},
		[]string{"", "", fmt.Sprintf("%d of %d cut", b.DisabledCount, len(leaks)), cli.FormatDelta(b.Unlocked) + "/day", ""},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Category", "Name", "Cost", "State"},
		Rows:    rows,
		Aligns:  []cli.Align{cli.AlignLeft, cli.AlignLeft, cli.AlignLeft, cli.AlignRight, cli.AlignLeft},
	}))

	fmt.Println()
	fmt.Println(cli.RenderLabel("Daily budget", cli.FormatMoney(b.Current)))
	fmt.Println(cli.RenderLabel("Switch off with", "--disable "+leaks[0].ID+",..."))
	fmt.Println()
	return nil
}
