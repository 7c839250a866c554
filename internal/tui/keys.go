package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab      key.Binding
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Help     key.Binding
	Morning  key.Binding
	Evening  key.Binding
	Week     key.Binding
	Month    key.Binding
	Year     key.Binding
	PrevSpan key.Binding
	NextSpan key.Binding
	Refresh  key.Binding
	New      key.Binding
	Delete   key.Binding
	Logout   key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Morning, k.Evening, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Morning, k.Evening, k.Refresh, k.Logout, k.Quit},
		{k.Up, k.Down, k.Left, k.Right, k.Enter},
		{k.Week, k.Month, k.Year, k.PrevSpan, k.NextSpan},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Morning: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle morning"),
		),
		Evening: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "toggle evening"),
		),
		Week: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "week view"),
		),
		Month: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "month view"),
		),
		Year: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "year view"),
		),
		PrevSpan: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous period"),
		),
		NextSpan: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next period"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh quote"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new user"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete user"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "logout"),
		),
	}
}
