package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/safespend/internal/cli"
	"github.com/theirongolddev/safespend/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Daily spend and savings velocity for the trend window",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	_, logger, state, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	records := state.History()
	if len(records) == 0 {
		fmt.Println("\n  No history.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TRENDS  Last %dd", len(records))))
	fmt.Println()

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.DateString(),
			cli.FormatDayOfWeek(int(r.Date.Weekday())),
			cli.FormatMoney(r.Spent),
			cli.FormatVelocity(r.Velocity),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Spent", "Velocity"},
		Rows:    rows,
	}))

	st := state.Trend()
	fmt.Println()
	fmt.Println(cli.RenderLabel("Velocity", cli.RenderVelocityStrip(history.Velocities(records))))
	fmt.Println(cli.RenderLabel("Savings velocity", cli.FormatSavingsPercent(st.SavingsPercent)))
	fmt.Println(cli.RenderLabel("Net velocity", fmt.Sprintf("%+d (avg %+.1f/day)", st.NetVelocity, st.AvgVelocity)))
	fmt.Println(cli.RenderLabel("Burn rate", cli.FormatMoney(st.AvgSpent)+"/day"))
	fmt.Println(cli.RenderLabel("Total spent", cli.FormatMoney(st.TotalSpent)))
	fmt.Println(cli.RenderLabel("Green days", fmt.Sprintf("%d of %d", st.SavingDays, st.Days)))
	fmt.Println(cli.RenderLabel("Best day", cli.FormatDay(st.Best.Date)+"  "+cli.FormatVelocity(st.Best.Velocity)))
	fmt.Println(cli.RenderLabel("Worst day", cli.FormatDay(st.Worst.Date)+"  "+cli.FormatVelocity(st.Worst.Velocity)))

	m := state.Milestone()
	fmt.Println()
	fmt.Println(cli.RenderLabel(m.Name, cli.RenderProgressBar(m.Progress(), 20,
		cli.FormatMoney(m.Saved)+" of "+cli.FormatMoney(m.Target))))
	fmt.Println(cli.RenderLabel("", cli.FormatETA(st.DaysToTarget(m))))
	fmt.Println()
	return nil
}
