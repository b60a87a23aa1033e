package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	togglePlay key.Binding
	reset      key.Binding
	complete   key.Binding
	toggleMap  key.Binding
	quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		togglePlay: key.NewBinding(
			key.WithKeys(" ", "space", "p"),
			key.WithHelp("space", "play/pause"),
		),
		reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "complete"),
		),
		toggleMap: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "map"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
