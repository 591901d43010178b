package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Home     key.Binding
	Leaks    key.Binding
	Trends   key.Binding
	Settings key.Binding
	Prev     key.Binding
	Next     key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	SimDay   key.Binding
	Purchase key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Home:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Leaks:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "leaks")),
		Trends:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trends")),
		Settings: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "settings")),
		Prev:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev tab")),
		Next:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next tab")),
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle leak")),
		SimDay:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "simulate day")),
		Purchase: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "big purchase")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SimDay, k.Purchase, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Leaks, k.Trends, k.Settings, k.Prev, k.Next},
		{k.Up, k.Down, k.Toggle},
		{k.SimDay, k.Purchase, k.Help, k.Quit},
	}
}
