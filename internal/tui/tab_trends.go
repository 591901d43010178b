package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/safespend/internal/cli"
	"github.com/theirongolddev/safespend/internal/history"
	"github.com/theirongolddev/safespend/internal/model"
	"github.com/theirongolddev/safespend/internal/tui/components"
	"github.com/theirongolddev/safespend/internal/tui/theme"
)

func (a App) renderTrendsTab(cw int) string {
	t := theme.Active
	records := a.state.History()
	st := a.state.Trend()

	velColor := t.Safe
	if st.SavingsPercent < 0 {
		velColor = t.Danger
	}

	metrics := []components.Metric{
		{
			Label: "Savings Velocity",
			Value: cli.FormatSavingsPercent(st.SavingsPercent),
			Delta: fmt.Sprintf("%d of %d days in the green", st.SavingDays, st.Days),
			Color: velColor,
		},
		{
			Label: "Burn Rate",
			Value: cli.FormatMoney(st.AvgSpent) + "/day",
			Delta: "total " + cli.FormatMoney(st.TotalSpent),
		},
		{
			Label: "Best Day",
			Value: cli.FormatVelocity(st.Best.Velocity),
			Delta: cli.FormatDay(st.Best.Date),
		},
	}

	var out strings.Builder
	out.WriteString(components.MetricCardRow(metrics, cw))
	out.WriteString("\n")

	labels := dayLabels(records)
	velocities := history.Velocities(records)
	spent := make([]float64, len(records))
	for i, r := range records {
		spent[i], _ = r.Spent.Float64()
	}

	chartH := 8
	if a.isCompactLayout() {
		chartH = 6
	}

	velCard := components.ContentCard(
		fmt.Sprintf("Savings Velocity (%dd)", len(records)),
		components.VelocityChart(velocities, labels, components.CardInnerWidth(cw), chartH)+"\n"+
			components.VelocityLegend(),
		cw,
	)
	out.WriteString(velCard)
	out.WriteString("\n")

	halves := components.LayoutRow(cw, 2)
	spendCard := components.ContentCard(
		"Daily Spend",
		components.BarChart(spent, labels, t.Accent, components.CardInnerWidth(halves[0]), chartH-2),
		halves[0],
	)
	if a.isCompactLayout() {
		out.WriteString(components.ContentCard("Daily Spend",
			components.BarChart(spent, labels, t.Accent, components.CardInnerWidth(cw), chartH-2), cw))
		out.WriteString("\n")
		out.WriteString(a.renderMilestoneCard(st, cw))
		return out.String()
	}
	out.WriteString(components.CardRow([]string{spendCard, a.renderMilestoneCard(st, halves[1])}))

	return out.String()
}

func (a App) renderMilestoneCard(st history.Stats, w int) string {
	t := theme.Active
	m := a.state.Milestone()
	inner := components.CardInnerWidth(w)

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	caption := cli.FormatPercent(m.Progress())
	bar := components.LabeledBar("", m.Progress(), t.Accent, caption, 0, inner-lipgloss.Width(caption)-3)

	eta := cli.FormatETA(st.DaysToTarget(m))

	body := value.Render(cli.FormatMoney(m.Saved)) +
		muted.Render(" of "+cli.FormatMoney(m.Target)) + "\n" +
		bar + "\n" +
		muted.Render(eta)

	return components.ContentCard(m.Name, body, w)
}

// dayLabels returns day-of-month labels for a chart, oldest first.
func dayLabels(records []model.DailyRecord) []string {
	labels := make([]string, len(records))
	for i, r := range records {
		labels[i] = strconv.Itoa(r.Date.Day())
	}
	return labels
}
