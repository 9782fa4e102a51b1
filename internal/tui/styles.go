package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tessera/internal/ui/components"
)

// chromeHeight is the number of rows used outside the navbar: header,
// event line and help.
const chromeHeight = 4

func titleHeader(title string) *components.Header {
	return components.NewHeader(title).WithStyle(lipgloss.NewStyle().MarginBottom(1))
}
