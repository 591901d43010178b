package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/safespend/internal/cli"
	"github.com/theirongolddev/safespend/internal/tui/components"
	"github.com/theirongolddev/safespend/internal/tui/theme"
)

const dialRows = 13

func (a App) renderHomeTab(cw int) string {
	t := theme.Active
	b := a.state.Budget()

	// Dial
	frac := b.RemainingFraction()
	dial := components.Dial(frac,
		"SAFE TO SPEND",
		cli.FormatWhole(b.Remaining),
		"OF "+cli.FormatWhole(b.Current)+" TODAY",
		dialRows, t.Budget(frac))
	dialW := lipgloss.Width(dial) + 4

	spentDelta := fmt.Sprintf("%s of today's budget", cli.FormatPercent(b.UsedFraction()))
	if a.simulated > 0 {
		spentDelta = fmt.Sprintf("+%s last simulated day", cli.FormatMoney(a.lastDay))
	}
	if b.Overspent() {
		spentDelta = "over by " + cli.FormatMoney(b.Spent.Sub(b.Current))
	}

	unlockedColor := t.TextPrimary
	if b.Unlocked.IsPositive() {
		unlockedColor = t.Unlocked
	}

	metrics := []components.Metric{
		{Label: "Daily Budget", Value: cli.FormatMoney(b.Current), Delta: "base " + cli.FormatMoney(b.Base)},
		{Label: "Spent Today", Value: cli.FormatMoney(b.Spent), Delta: spentDelta},
		{Label: "Unlocked", Value: cli.FormatDelta(b.Unlocked) + "/day", Delta: fmt.Sprintf("%d leaks cut", b.DisabledCount), Color: unlockedColor},
	}

	var out strings.Builder

	if a.isCompactLayout() {
		out.WriteString(components.ContentCard("", dial, cw))
		out.WriteString("\n")
		out.WriteString(components.MetricCardRow(metrics, cw))
		out.WriteString("\n")
		out.WriteString(a.renderBudgetBar(cw))
		out.WriteString("\n")
		out.WriteString(a.renderBoostCard(cw))
		out.WriteString("\n")
		out.WriteString(a.renderPurchaseCard(cw))
		out.WriteString("\n")
		out.WriteString(a.renderActivityCard(cw))
		return out.String()
	}

	rightW := cw - dialW
	right := lipgloss.JoinVertical(lipgloss.Left,
		components.MetricCardRow(metrics, rightW),
		a.renderBudgetBar(rightW),
		a.renderBoostCard(rightW),
	)
	out.WriteString(components.CardRow([]string{
		components.ContentCard("", dial, dialW),
		right,
	}))
	out.WriteString("\n")

	halves := components.LayoutRow(cw, 2)
	out.WriteString(components.CardRow([]string{
		a.renderPurchaseCard(halves[0]),
		a.renderActivityCard(halves[1]),
	}))

	return out.String()
}

func (a App) renderBudgetBar(w int) string {
	t := theme.Active
	b := a.state.Budget()
	inner := components.CardInnerWidth(w)

	caption := cli.FormatMoney(b.Spent) + " / " + cli.FormatMoney(b.Current)
	barW := inner - 7 - lipgloss.Width(caption) - 2
	bar := components.LabeledBar("Spent", b.UsedFraction(), t.Budget(b.RemainingFraction()), caption, 6, barW)
	return components.ContentCard("", bar, w)
}

// renderBoostCard shows how much switching off leaks has freed up.
func (a App) renderBoostCard(w int) string {
	t := theme.Active
	b := a.state.Budget()

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	accent := lipgloss.NewStyle().Foreground(t.Unlocked).Background(t.Surface).Bold(true)

	var body string
	if b.DisabledCount == 0 {
		body = muted.Render("Cut a recurring cost on the Leaks tab to boost today's budget.")
	} else {
		noun := "leak"
		if b.DisabledCount > 1 {
			noun = "leaks"
		}
		body = muted.Render(fmt.Sprintf("You've cut %d %s. ", b.DisabledCount, noun)) +
			accent.Render(cli.FormatDelta(b.Unlocked)+"/day") +
			muted.Render(" unlocked.")
	}
	return components.ContentCard("⚡ Velocity Boost", body, w)
}

func (a App) renderPurchaseCard(w int) string {
	t := theme.Active
	inner := components.CardInnerWidth(w)

	button := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Width(inner)

	if !a.state.BigPurchaseActive() {
		body := button.Render("[p] Simulate "+cli.FormatWhole(a.state.PurchaseAmount())+" Purchase") + "\n" +
			muted.Render("See how a one-off spend changes the days ahead.")
		return components.ContentCard("Big Purchase", body, w)
	}

	alert := lipgloss.NewStyle().Foreground(t.Alert).Background(t.Surface).Bold(true).Width(inner)
	body := a.spinner.View() +
		button.Render(" Calculating Impact...") + "\n" +
		alert.Render(a.state.PurchaseWarning())
	return components.AccentCard("Big Purchase", body, t.Alert, w)
}

func (a App) renderActivityCard(w int) string {
	t := theme.Active
	inner := components.CardInnerWidth(w)

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	timeStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	amtStyle := lipgloss.NewStyle().Foreground(t.Danger).Background(t.Surface)
	glyphStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	acts := a.state.Activity()
	var body strings.Builder
	for i, act := range acts {
		amount := "-" + cli.FormatMoney(act.Amount)
		left := glyphStyle.Render(cli.CategoryGlyph(act.Category)) + space.Render(" ") +
			nameStyle.Render(act.Title) + space.Render("  ") + timeStyle.Render(act.At)
		gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(amount))
		body.WriteString(left + space.Render(strings.Repeat(" ", gap)) + amtStyle.Render(amount))
		if i < len(acts)-1 {
			body.WriteString("\n")
		}
	}
	return components.ContentCard("Today's Activity", body.String(), w)
}
