// Package ui holds the contracts shared by every renderable widget.
package ui

// Renderable is anything that renders itself to a terminal string.
type Renderable interface {
	View() string
}

// Static adapts a pre-rendered string to Renderable.
type Static string

// View returns the string unchanged.
func (s Static) View() string {
	return string(s)
}
