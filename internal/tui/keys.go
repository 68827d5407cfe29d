package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings shown in the help bar
type keyMap struct {
	Hold     key.Binding
	Deal     key.Binding
	Paytable key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Hold: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "hold/release"),
		),
		Deal: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "bet/draw"),
		),
		Paytable: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "payout table"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hold, k.Deal, k.Paytable, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Hold, k.Deal},
		{k.Paytable, k.Help, k.Quit},
	}
}
