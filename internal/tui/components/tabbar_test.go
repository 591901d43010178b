package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTabVisualWidth(t *testing.T) {
	assert.Equal(t, len("Home")+2, TabVisualWidth(Tabs[0], true))
	assert.Equal(t, len("Home")+2, TabVisualWidth(Tabs[0], false))
	assert.Equal(t, len("Settings")+2, TabVisualWidth(Tabs[3], true))
	assert.Equal(t, len("Settings")+5, TabVisualWidth(Tabs[3], false), "inactive Settings shows [x]")
}

func TestRenderTabBarFillsWidth(t *testing.T) {
	bar := RenderTabBar(1, "safespend", 100)
	assert.Equal(t, 100, lipgloss.Width(bar))
	assert.Contains(t, bar, "safespend")
}

func TestTabIdxByKey(t *testing.T) {
	assert.Equal(t, 0, TabIdxByKey('h'))
	assert.Equal(t, 2, TabIdxByKey('t'))
	assert.Equal(t, 3, TabIdxByKey('x'))
	assert.Equal(t, -1, TabIdxByKey('z'))
}

func TestRenderStatusBarWidth(t *testing.T) {
	bar := RenderStatusBar(80, "? help • q quit", "Spent $42.00")
	assert.Equal(t, 80, lipgloss.Width(bar))
}
