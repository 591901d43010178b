package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/safespend/internal/cli"
	"github.com/theirongolddev/safespend/internal/config"
	"github.com/theirongolddev/safespend/internal/session"
	"github.com/theirongolddev/safespend/internal/simulate"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	opts := session.DefaultOptions()
	opts.Source = simulate.NewSource(1)
	state, err := session.New(opts)
	require.NoError(t, err)

	return NewApp(state, Options{
		Config:     config.DefaultConfig(),
		ConfigPath: filepath.Join(t.TempDir(), "config.toml"),
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m tea.Model, msgs ...tea.Msg) App {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m.(App)
}

func TestTabKeysSwitchTabs(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, tabLeaks, press(t, a, runes("l")).activeTab)
	assert.Equal(t, tabTrends, press(t, a, runes("t")).activeTab)
	assert.Equal(t, tabSettings, press(t, a, runes("x")).activeTab)
	assert.Equal(t, tabHome, press(t, a, runes("t"), runes("h")).activeTab)
}

func TestArrowKeysWrapAround(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, tabSettings, a.activeTab)
	a = press(t, a, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, tabHome, a.activeTab)
}

func TestToggleLeakFromLeaksTab(t *testing.T) {
	a := newTestApp(t)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	// Cursor down to "Lunch Deliveries" (index 3) and cut it.
	a = press(t, a, runes("l"), runes("j"), runes("j"), runes("j"), space)
	b := a.state.Budget()
	assert.True(t, b.Current.Equal(decimal.NewFromInt(138)), "current = %s", b.Current)
	assert.True(t, b.Remaining.Equal(decimal.NewFromInt(96)), "remaining = %s", b.Remaining)

	a = press(t, a, space)
	assert.True(t, a.state.Budget().Current.Equal(decimal.NewFromInt(120)))
}

func TestSpaceOutsideLeaksTabDoesNothing(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, 0, a.state.Budget().DisabledCount)
}

func TestSimulateDayKeyAddsSpend(t *testing.T) {
	a := newTestApp(t)
	before := a.state.Spent()

	a = press(t, a, runes("d"))
	added := a.state.Spent().Sub(before)
	assert.True(t, added.Equal(a.lastDay))
	assert.True(t, added.GreaterThanOrEqual(decimal.NewFromInt(10)))
	assert.True(t, added.LessThanOrEqual(decimal.NewFromInt(49)))
	assert.Equal(t, 1, a.simulated)
}

func TestPurchaseKeyRaisesAlertWithoutSpending(t *testing.T) {
	a := newTestApp(t)
	before := a.state.Spent()

	m, cmd := a.Update(runes("p"))
	a = m.(App)
	assert.NotNil(t, cmd, "expiry must be scheduled")
	assert.True(t, a.state.BigPurchaseActive())
	assert.True(t, a.state.Spent().Equal(before))
}

func TestPurchaseExpiryIgnoresStaleToken(t *testing.T) {
	a := newTestApp(t)
	first := a.state.SimulateBigPurchase()
	second := a.state.SimulateBigPurchase()

	a = press(t, a, purchaseExpiredMsg{token: first})
	assert.True(t, a.state.BigPurchaseActive(), "stale expiry must not clear a restarted alert")

	a = press(t, a, purchaseExpiredMsg{token: second})
	assert.False(t, a.state.BigPurchaseActive())
}

func TestHelpToggle(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, runes("?"))
	assert.True(t, a.showHelp)
	a = press(t, a, runes("d"))
	assert.False(t, a.showHelp)
	assert.Equal(t, 0, a.simulated, "key that closes help is swallowed")
}

func TestQuitKeys(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewRendersEachTab(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.TrueColor) })

	a := press(t, newTestApp(t), tea.WindowSizeMsg{Width: 140, Height: 50})

	cases := []struct {
		key  string
		want string
	}{
		{"h", "SAFE TO SPEND"},
		{"l", "Lunch Deliveries"},
		{"t", "Savings Velocity"},
		{"x", "Base Daily Budget"},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			view := press(t, a, runes(tc.key)).View()
			assert.Contains(t, view, "safespend")
			assert.Contains(t, view, tc.want)
		})
	}
}

func TestTrendsTabShowsSavingsPercent(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.TrueColor) })

	a := press(t, newTestApp(t), tea.WindowSizeMsg{Width: 140, Height: 50}, runes("t"))
	want := cli.FormatSavingsPercent(a.state.Trend().SavingsPercent)
	assert.Contains(t, a.View(), want)
}

func TestViewShowsPurchaseWarning(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.TrueColor) })

	a := press(t, newTestApp(t), tea.WindowSizeMsg{Width: 140, Height: 50})
	assert.Contains(t, a.View(), "Simulate $100 Purchase")

	a = press(t, a, runes("p"))
	assert.Contains(t, a.View(), "Calculating Impact...")
}

func TestViewTooNarrow(t *testing.T) {
	a := press(t, newTestApp(t), tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Contains(t, a.View(), "Terminal too narrow")
}

func TestViewEmptyBeforeFirstResize(t *testing.T) {
	assert.Empty(t, newTestApp(t).View())
}

func TestViewRecoversFromRenderPanic(t *testing.T) {
	a := NewApp(nil, Options{ConfigPath: filepath.Join(t.TempDir(), "config.toml")})
	a = press(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	var view string
	assert.NotPanics(t, func() { view = a.View() })
	assert.Contains(t, view, "could not be drawn")
}

func TestSettingsEditPersistsToConfig(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, runes("x"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, a.settings.editing)

	a.settings.input.SetValue("150")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, a.settings.editing)
	require.NoError(t, a.settings.saveErr)
	assert.True(t, a.settings.saved)

	cfg, err := config.LoadFrom(a.path)
	require.NoError(t, err)
	assert.Equal(t, 150.0, cfg.General.BaseDailyBudget)
	assert.True(t, a.state.Budget().Base.Equal(decimal.NewFromInt(120)), "running session keeps its base")
}

func TestSettingsRejectsNegativeAmount(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, runes("x"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	a.settings.input.SetValue("-5")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	assert.ErrorIs(t, a.settings.saveErr, errNotNonNegative)
	assert.False(t, a.settings.saved)
	assert.Equal(t, 120.0, a.cfg.General.BaseDailyBudget)
}

func TestSettingsEscCancelsEdit(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, runes("x"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	a.settings.input.SetValue("999")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, a.settings.editing)
	assert.Equal(t, 120.0, a.cfg.General.BaseDailyBudget)
}
