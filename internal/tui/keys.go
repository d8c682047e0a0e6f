package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit          key.Binding
	ToggleMarkers key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	ToggleMarkers: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "toggle markers"),
	),
}
