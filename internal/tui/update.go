package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tessera/internal/widgets/autocomplete"
	"github.com/alexisbeaulieu97/tessera/internal/widgets/datepicker"
	"github.com/alexisbeaulieu97/tessera/internal/widgets/navbar"
	"github.com/alexisbeaulieu97/tessera/internal/widgets/pager"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.nav.SetHeight(max(msg.Height-chromeHeight, 0))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pager.PageChangedMsg:
		m.record(TargetPager, fmt.Sprintf("page %d", msg.Page))
		return m, nil

	case autocomplete.ItemSubmittedMsg:
		m.record(TargetAutocomplete, fmt.Sprintf("picked %q", msg.Item.Value))
		return m, nil

	case datepicker.DateChangedMsg:
		if msg.Date.IsZero() {
			m.record(TargetDatepicker, "cleared")
		} else {
			m.record(TargetDatepicker, m.picker.Format().Display(msg.Date))
		}
		return m, nil

	case navbar.LinkActivatedMsg:
		m.log.With("target", msg.Link.Target).Debug("showing widget")
		return m, m.setFocus(PaneContent)

	case tea.QuitMsg:
		m.quitting = true
		return m, nil
	}

	// Cursor blinks and other internal messages go to both text inputs;
	// each ignores messages addressed to the other.
	var autoCmd, pickerCmd tea.Cmd
	m.auto, autoCmd = m.auto.UpdateAutocomplete(msg)
	m.picker, pickerCmd = m.picker.UpdatePicker(msg)
	return m, tea.Batch(autoCmd, pickerCmd)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit),
		m.focus == PaneNav && key.Matches(msg, m.keys.QuitNav):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.SwitchFocus):
		next := PaneContent
		if m.focus == PaneContent {
			next = PaneNav
		}
		return m, m.setFocus(next)
	}

	var cmd tea.Cmd
	if m.focus == PaneNav {
		m.nav, cmd = m.nav.UpdateNavbar(msg)
		return m, cmd
	}

	switch m.Selected() {
	case TargetPager:
		m.pager, cmd = m.pager.UpdatePager(msg)
	case TargetAutocomplete:
		m.auto, cmd = m.auto.UpdateAutocomplete(msg)
	case TargetDatepicker:
		m.picker, cmd = m.picker.UpdatePicker(msg)
	}
	return m, cmd
}
