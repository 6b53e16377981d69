package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Raise     key.Binding
	Lower     key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	FirstTab  key.Binding
	SecondTab key.Binding
	Settings  key.Binding
	Log       key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Raise: key.NewBinding(
			key.WithKeys("]", "K", "shift+up"),
			key.WithHelp("]", "raise"),
		),
		Lower: key.NewBinding(
			key.WithKeys("[", "J", "shift+down"),
			key.WithHelp("[", "lower"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		FirstTab: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "first tab"),
		),
		SecondTab: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "second tab"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Log: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "log"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑/k", "scroll"),
		),
		ScrollDn: key.NewBinding(
			key.WithKeys("down", "j", "pgdown"),
			key.WithHelp("↓/j", "scroll"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Raise, k.Lower, k.NextTab, k.Settings, k.Log, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Raise, k.Lower, k.ScrollUp, k.ScrollDn},
		{k.NextTab, k.PrevTab, k.FirstTab, k.SecondTab},
		{k.Settings, k.Log, k.Back, k.Quit},
	}
}
