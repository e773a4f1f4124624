package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains all key bindings for the TUI
type KeyMap struct {
	// Session actions
	Toggle key.Binding
	Rating key.Binding

	// Results actions
	Export key.Binding

	// Global
	Select key.Binding
	Back   key.Binding
	Theme  key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// ratingKeys are the ten fixed rating keys: 1-9 plus 0 for ten.
var ratingKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "s"),
			key.WithHelp("space", "start/stop"),
		),
		Rating: key.NewBinding(
			key.WithKeys(ratingKeys...),
			key.WithHelp("1-9, 0", "record rating (0 = 10)"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export csv"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// RatingFromKey maps a pressed rating key to its 1-10 value.
// Returns 0 and false for keys outside the fixed set.
func RatingFromKey(k string) (int, bool) {
	switch k {
	case "0":
		return 10, true
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return int(k[0] - '0'), true
	}
	return 0, false
}
