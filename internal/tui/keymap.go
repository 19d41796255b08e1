package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the picker keybindings on top of the list's own navigation keys.
type KeyMap struct {
	Choose key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run test"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}
