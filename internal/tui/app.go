// Package tui provides the interactive Bubble Tea dashboard for safespend.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/theirongolddev/safespend/internal/cli"
	"github.com/theirongolddev/safespend/internal/config"
	"github.com/theirongolddev/safespend/internal/session"
	"github.com/theirongolddev/safespend/internal/simulate"
	"github.com/theirongolddev/safespend/internal/tui/components"
	"github.com/theirongolddev/safespend/internal/tui/theme"
)

const (
	tabHome = iota
	tabLeaks
	tabTrends
	tabSettings
)

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 160
	minContentHeight = 5
)

// purchaseExpiredMsg is delivered when a big-purchase alert runs out.
type purchaseExpiredMsg struct {
	token simulate.Token
}

// Options configures the dashboard.
type Options struct {
	Config     config.Config
	ConfigPath string // where settings are saved; empty means config.Path()
	NeedSetup  bool   // show the first-run form before the dashboard
	Logger     *zap.Logger
}

// App is the root Bubble Tea model.
type App struct {
	state *session.State
	cfg   config.Config
	path  string
	log   *zap.Logger

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	// UI state
	width      int
	height     int
	activeTab  int
	showHelp   bool
	leakCursor int

	// Last simulated day, shown under today's spend.
	lastDay   decimal.Decimal
	simulated int

	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals SetupValues
	needSetup bool
}

// NewApp creates the dashboard around an existing session.
func NewApp(state *session.State, opts Options) App {
	t := theme.Active

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(t.Alert).Background(t.Surface)

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	path := opts.ConfigPath
	if path == "" {
		path = config.Path()
	}

	a := App{
		state:     state,
		cfg:       opts.Config,
		path:      path,
		log:       logger,
		keys:      newKeyMap(),
		help:      h,
		spinner:   sp,
		needSetup: opts.NeedSetup,
	}
	if a.needSetup {
		a.setupVals = NewSetupValues(opts.Config)
		a.setupForm = NewSetupForm(&a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup intercepts all keys
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key.Matches(msg, a.keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.updateKeys(msg)

	case purchaseExpiredMsg:
		a.state.ExpireBigPurchase(msg.token)
		return a, nil

	case spinner.TickMsg:
		if !a.state.BigPurchaseActive() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.SimDay):
		a.lastDay = a.state.SimulateDay()
		a.simulated++
		return a, nil
	case key.Matches(msg, a.keys.Purchase):
		return a.startPurchase()
	case key.Matches(msg, a.keys.Prev):
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case key.Matches(msg, a.keys.Next):
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	switch a.activeTab {
	case tabLeaks:
		return a.updateLeaksKeys(msg)
	case tabSettings:
		return a.updateSettingsKeys(msg)
	}
	return a, nil
}

func (a App) updateLeaksKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	leaks := a.state.Leaks()
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.leakCursor > 0 {
			a.leakCursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.leakCursor < len(leaks)-1 {
			a.leakCursor++
		}
	case key.Matches(msg, a.keys.Toggle):
		if a.leakCursor >= 0 && a.leakCursor < len(leaks) {
			a.state.Toggle(leaks[a.leakCursor].ID)
		}
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabLeaks && a.leakCursor > 0 {
			a.leakCursor--
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == tabLeaks && a.leakCursor < len(a.state.Leaks())-1 {
			a.leakCursor++
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

// startPurchase raises the alert and schedules its expiry. The expiry carries
// the token, so an earlier schedule cannot clear a later alert.
func (a App) startPurchase() (tea.Model, tea.Cmd) {
	tok := a.state.SimulateBigPurchase()
	expire := tea.Tick(a.state.AlertDuration(), func(time.Time) tea.Msg {
		return purchaseExpiredMsg{token: tok}
	})
	return a, tea.Batch(expire, a.spinner.Tick)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if err := a.setupVals.Apply(&a.cfg); err != nil {
			a.log.Warn("setup values rejected", zap.String("op", "tui.setup"), zap.Error(err))
		} else if !a.setupVals.Confirm {
			a.log.Debug("setup not saved", zap.String("op", "tui.setup"))
		} else if err := config.SaveTo(a.path, a.cfg); err != nil {
			a.log.Warn("saving setup config", zap.String("op", "tui.setup"), zap.Error(err))
		}
		theme.SetActive(a.cfg.Appearance.Theme)
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model. A panic while rendering is logged and replaced
// by a fallback card; the program keeps running.
func (a App) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("render failed", zap.String("op", "tui.View"), zap.Any("panic", r))
			out = a.viewFallback(fmt.Sprint(r))
		}
	}()

	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  safespend needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewFallback(reason string) string {
	t := theme.Active
	body := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).
		Render("The dashboard could not be drawn.") + "\n" +
		lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render(truncStr(reason, 60)) + "\n\n" +
		lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
			Render("Press q to quit.")
	card := components.AccentCard("Something went wrong", body, t.Danger, 66)
	if a.width <= 0 || a.height <= 0 {
		return card
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	full := a.help
	full.ShowAll = true

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(full.View(a.keys))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, "◈ safespend", w)

	b := a.state.Budget()
	info := fmt.Sprintf("Safe %s of %s", cli.FormatMoney(b.Remaining), cli.FormatMoney(b.Current))
	statusBar := components.RenderStatusBar(w, a.help.View(a.keys), info)

	contentH := max(minContentHeight, h-lipgloss.Height(header)-lipgloss.Height(statusBar))

	var content string
	switch a.activeTab {
	case tabHome:
		content = a.renderHomeTab(cw)
	case tabLeaks:
		content = a.renderLeaksTab(cw)
	case tabTrends:
		content = a.renderTrendsTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
