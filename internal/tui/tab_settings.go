package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/theirongolddev/safespend/internal/cli"
	"github.com/theirongolddev/safespend/internal/config"
	"github.com/theirongolddev/safespend/internal/logging"
	"github.com/theirongolddev/safespend/internal/tui/components"
	"github.com/theirongolddev/safespend/internal/tui/theme"
)

const (
	settingsFieldTheme = iota
	settingsFieldBase
	settingsFieldSpent
	settingsFieldSeed
	settingsFieldAlert
	settingsFieldLogLevel
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

func (a App) updateSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
	case key.Matches(msg, a.keys.Toggle):
		if a.settings.cursor == settingsFieldTheme {
			a.cycleTheme()
			return a, nil
		}
		return a.settingsStartEdit()
	}
	return a, nil
}

// cycleTheme advances to the next theme and saves it.
func (a *App) cycleTheme() {
	names := theme.Names()
	next := names[0]
	for i, n := range names {
		if n == theme.Active.Name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	theme.SetActive(next)
	a.cfg.Appearance.Theme = next
	a.persistSettings()
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()
	g := a.cfg.General
	switch a.settings.cursor {
	case settingsFieldBase:
		ti.Placeholder = "120"
		ti.SetValue(strconv.FormatFloat(g.BaseDailyBudget, 'f', -1, 64))
	case settingsFieldSpent:
		ti.Placeholder = "42"
		ti.SetValue(strconv.FormatFloat(g.StartingSpent, 'f', -1, 64))
	case settingsFieldSeed:
		ti.Placeholder = "0 (random each run)"
		ti.SetValue(strconv.FormatInt(g.Seed, 10))
	case settingsFieldAlert:
		ti.Placeholder = "3"
		ti.SetValue(strconv.Itoa(a.cfg.Simulation.AlertSeconds))
	case settingsFieldLogLevel:
		ti.Placeholder = "debug, info, warn, error"
		ti.SetValue(a.cfg.Logging.Level)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

var errNotNonNegative = errors.New("must be a non-negative number")

func parseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, errNotNonNegative)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%s: %w", s, errNotNonNegative)
	}
	f, _ := d.Float64()
	return f, nil
}

func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settings.input.Value())
	cfg := a.cfg

	var err error
	switch a.settings.cursor {
	case settingsFieldBase:
		cfg.General.BaseDailyBudget, err = parseAmount(val)
	case settingsFieldSpent:
		cfg.General.StartingSpent, err = parseAmount(val)
	case settingsFieldSeed:
		cfg.General.Seed, err = strconv.ParseInt(val, 10, 64)
	case settingsFieldAlert:
		var n int
		n, err = strconv.Atoi(val)
		if err == nil && n <= 0 {
			err = fmt.Errorf("alert seconds must be positive, got %d", n)
		}
		cfg.Simulation.AlertSeconds = n
	case settingsFieldLogLevel:
		_, err = logging.ParseLevel(val)
		cfg.Logging.Level = val
	}

	if err != nil {
		a.settings.saved = false
		a.settings.saveErr = err
		return
	}
	a.cfg = cfg
	a.persistSettings()
}

func (a *App) persistSettings() {
	a.settings.saveErr = config.SaveTo(a.path, a.cfg)
	a.settings.saved = a.settings.saveErr == nil
	if a.settings.saveErr != nil {
		a.log.Warn("saving settings", zap.String("op", "tui.settings"), zap.Error(a.settings.saveErr))
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := a.cfg

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	savedStyle := lipgloss.NewStyle().Foreground(t.Safe).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	seed := strconv.FormatInt(cfg.General.Seed, 10)
	if cfg.General.Seed == 0 {
		seed = "random"
	}

	fields := []struct{ label, value string }{
		{"Theme", theme.Active.Name + "  (enter to cycle)"},
		{"Base Daily Budget", "$" + strconv.FormatFloat(cfg.General.BaseDailyBudget, 'f', 2, 64)},
		{"Starting Spend", "$" + strconv.FormatFloat(cfg.General.StartingSpent, 'f', 2, 64)},
		{"Seed", seed},
		{"Alert Seconds", strconv.Itoa(cfg.Simulation.AlertSeconds)},
		{"Log Level", cfg.Logging.Level},
	}

	innerW := components.CardInnerWidth(cw)

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker + label + value)
			used := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if pad := innerW - used; pad > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Alert).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Not saved: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(savedStyle.Render("Saved. Budget changes apply on next launch."))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	b := a.state.Budget()
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:     ") + valueStyle.Render(a.path) + "\n")
	infoBody.WriteString(labelStyle.Render("Recurring costs: ") + valueStyle.Render(strconv.Itoa(len(a.state.Leaks()))) + "\n")
	infoBody.WriteString(labelStyle.Render("History days:    ") + valueStyle.Render(strconv.Itoa(len(a.state.History()))) + "\n")
	infoBody.WriteString(labelStyle.Render("Session budget:  ") + valueStyle.Render(cli.FormatMoney(b.Base)+" base"))

	var out strings.Builder
	out.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	out.WriteString("\n")
	out.WriteString(components.ContentCard("Session", infoBody.String(), cw))

	return out.String()
}
