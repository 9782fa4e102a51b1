package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tessera/internal/ui"
	"github.com/alexisbeaulieu97/tessera/internal/ui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleHeader(m.cfg.Title).ViewWithContext(m.ctx)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.nav.ViewWithContext(m.ctx),
		m.contentPanel().ViewWithContext(m.ctx),
	)

	events := components.FaintText(m.eventLine()).ViewWithContext(m.ctx)
	footer := m.help.View(paneKeys{pane: m.paneHelp(), global: m.keys})

	return lipgloss.JoinVertical(lipgloss.Left, header, body, events, footer)
}

// StaticView renders every widget at once, for output that is not a
// terminal.
func (m Model) StaticView() string {
	sections := []ui.Renderable{components.NewHeader(m.cfg.Title)}
	for _, target := range []string{TargetPager, TargetAutocomplete, TargetDatepicker} {
		sections = append(sections, components.NewPanel(ui.Static(m.widgetView(target))).
			WithHeader(components.NewHeader(m.labelFor(target)).WithLevel(2)))
	}
	return components.VStack(sections...).WithGap(1).ViewWithContext(m.ctx)
}

func (m Model) contentPanel() *components.Panel {
	target := m.Selected()
	view := m.widgetView(target)
	var content ui.Renderable = ui.Static(view)
	if view == "" {
		content = components.FaintText("Select a widget in the navbar.")
	}
	return components.NewPanel(content).
		WithTitle(m.labelFor(target)).
		WithFocused(m.focus == PaneContent)
}

func (m Model) widgetView(target string) string {
	switch target {
	case TargetPager:
		status := fmt.Sprintf("Page %d of %d", m.pager.Page(), m.pager.Pager().Total())
		return lipgloss.JoinVertical(lipgloss.Left,
			m.pager.ViewWithContext(m.ctx),
			components.FaintText(status).ViewWithContext(m.ctx),
		)
	case TargetAutocomplete:
		return m.auto.ViewWithContext(m.ctx)
	case TargetDatepicker:
		return m.picker.ViewWithContext(m.ctx)
	default:
		return ""
	}
}

// labelFor returns the navbar label of target, or the target itself.
func (m Model) labelFor(target string) string {
	for _, l := range m.nav.Links() {
		if l.Target == target {
			return l.Label
		}
	}
	if target == "" {
		return "Gallery"
	}
	return target
}

func (m Model) eventLine() string {
	if len(m.events) == 0 {
		return "No changes yet."
	}
	return strings.Join(m.events, " · ")
}
