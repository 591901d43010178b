package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < 4; active++ {
		a := App{activeTab: active}
		pos := 0

		for i := 0; i < 4; i++ {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < 3 {
				pos++ // separator
			}
		}
	}
}

func TestTabAtXPastLastTab(t *testing.T) {
	a := App{}
	if got := a.tabAtX(500); got != -1 {
		t.Fatalf("tabAtX(500) = %d, want -1", got)
	}
}

func TestMouseClickSwitchesTab(t *testing.T) {
	a := newTestApp(t)
	x := tabWidthForTest(0, 0) + 1 + 1 // inside "Leaks"

	m, _ := a.Update(tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := m.(App).activeTab; got != tabLeaks {
		t.Fatalf("activeTab = %d, want %d", got, tabLeaks)
	}
}

func TestMouseWheelMovesLeakCursor(t *testing.T) {
	a := newTestApp(t)
	a.activeTab = tabLeaks

	m, _ := a.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if got := m.(App).leakCursor; got != 1 {
		t.Fatalf("leakCursor = %d, want 1", got)
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	nameWidths := []int{
		len("Home"),
		len("Leaks"),
		len("Trends"),
		len("Settings"),
	}

	w := nameWidths[tabIdx] + 2 // horizontal padding in tab renderer
	if tabIdx != activeIdx && tabIdx == 3 {
		w += 3 // inactive Settings adds "[x]"
	}
	return w
}
