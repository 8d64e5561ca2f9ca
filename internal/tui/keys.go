package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Favorite      key.Binding
	FavoritesOnly key.Binding
	AllDay        key.Binding
	Now           key.Binding
	Tonight       key.Binding
	Filter        key.Binding
	Reset         key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Favorite, k.Filter, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Favorite},
		{k.FavoritesOnly, k.AllDay, k.Now, k.Tonight},
		{k.Filter, k.Reset, k.Help, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Favorite: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "toggle favorite"),
		),
		FavoritesOnly: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorites only"),
		),
		AllDay: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all-day only"),
		),
		Now: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "now"),
		),
		Tonight: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tonight"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset filters"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
