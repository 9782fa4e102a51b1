package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the gallery-wide bindings. Everything else goes to the
// focused pane.
type KeyMap struct {
	SwitchFocus key.Binding
	ToggleHelp  key.Binding
	Quit        key.Binding
	// QuitNav quits only while the navbar has focus, so it can be typed
	// into inputs.
	QuitNav key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch pane"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		QuitNav: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchFocus, k.ToggleHelp, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.SwitchFocus, k.ToggleHelp, k.Quit, k.QuitNav}}
}

// paneKeys puts the focused pane's bindings before the gallery ones.
type paneKeys struct {
	pane   help.KeyMap
	global KeyMap
}

func (p paneKeys) ShortHelp() []key.Binding {
	if p.pane == nil {
		return p.global.ShortHelp()
	}
	return append(p.pane.ShortHelp(), p.global.ShortHelp()...)
}

func (p paneKeys) FullHelp() [][]key.Binding {
	if p.pane == nil {
		return p.global.FullHelp()
	}
	return append(p.pane.FullHelp(), p.global.FullHelp()...)
}
