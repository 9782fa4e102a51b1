// Package autocomplete is a text input with a filtered suggestion dropdown
// and keyboard navigation over the suggestions.
package autocomplete

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tessera/internal/ui"
	"github.com/alexisbeaulieu97/tessera/internal/ui/components"
	"github.com/alexisbeaulieu97/tessera/internal/uncontrolled"
)

const defaultLimit = 5

// noHover is the hovered index when no suggestion is highlighted.
const noHover = -1

// ItemSubmittedMsg is emitted when a suggestion is picked.
type ItemSubmittedMsg struct {
	Item Item
}

// Options configures a Model.
type Options struct {
	Data []Item
	// Limit caps the number of suggestions shown. Zero means 5.
	Limit int

	// Value is the owner-controlled input value; nil leaves it uncontrolled.
	Value        *string
	DefaultValue *string
	OnChange     func(string)

	// Matcher selects the suggestions; it defaults to DefaultFilter.
	Matcher Matcher

	Placeholder     string
	NothingFound    string
	InitiallyOpened bool

	OnItemSubmit    func(Item)
	OnDropdownOpen  func()
	OnDropdownClose func()

	KeyMap *KeyMap
}

// Model is the bubbletea model of an autocomplete input.
type Model struct {
	input textinput.Model
	value *uncontrolled.Cell[string]
	keys  KeyMap

	data         []Item
	limit        int
	match        Matcher
	nothingFound string

	opened  bool
	hovered int

	onItemSubmit    func(Item)
	onDropdownOpen  func()
	onDropdownClose func()
}

// New creates a focused autocomplete model.
func New(opts Options) Model {
	keys := DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	match := opts.Matcher
	if match == nil {
		match = FilterMatcher(DefaultFilter)
	}

	m := Model{
		value: uncontrolled.New(uncontrolled.Options[string]{
			Value:    opts.Value,
			Default:  opts.DefaultValue,
			Final:    "",
			OnChange: opts.OnChange,
			Validate: utf8.ValidString,
		}),
		keys:            keys,
		data:            opts.Data,
		limit:           limit,
		match:           match,
		nothingFound:    opts.NothingFound,
		opened:          opts.InitiallyOpened,
		hovered:         noHover,
		onItemSubmit:    opts.OnItemSubmit,
		onDropdownOpen:  opts.OnDropdownOpen,
		onDropdownClose: opts.OnDropdownClose,
	}

	m.input = textinput.New()
	m.input.Placeholder = opts.Placeholder
	m.input.Prompt = "› "
	m.input.Focus()
	m.syncInput()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Value returns the current input value.
func (m Model) Value() string {
	return m.value.Value()
}

// SetValue offers a new value as if it had been typed.
func (m *Model) SetValue(v string) uncontrolled.Outcome {
	outcome := m.value.Set(v)
	if outcome.Accepted() {
		m.hovered = 0
	}
	m.syncInput()
	return outcome
}

// Control supplies the owner's value.
func (m *Model) Control(v string) {
	m.value.Control(v)
	m.syncInput()
}

// Release returns the input to uncontrolled mode.
func (m *Model) Release() {
	m.value.Release()
	m.syncInput()
}

// KeyMap returns the bindings in use.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

// Opened reports whether the dropdown is open.
func (m Model) Opened() bool {
	return m.opened
}

// Hovered returns the index of the highlighted suggestion, or -1.
func (m Model) Hovered() int {
	return m.hovered
}

// Focused reports whether the input has focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Focus gives the input focus.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes focus and closes the dropdown.
func (m *Model) Blur() {
	m.input.Blur()
	m.setOpened(false)
}

// Suggestions returns the items matching the current value.
func (m Model) Suggestions() []Item {
	return m.match(m.Value(), m.data, m.limit)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next, cmd
}

// UpdateAutocomplete is Update with a concrete return type.
func (m Model) UpdateAutocomplete(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.input.Focused() {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := m.handleKey(keyMsg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if typed := m.input.Value(); typed != before {
		if m.SetValue(typed).Accepted() {
			m.setOpened(true)
		}
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	suggestions := m.Suggestions()

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.hovered < len(suggestions)-1 {
			m.hovered++
		}
		return true, nil

	case key.Matches(msg, m.keys.Up):
		if m.hovered > 0 {
			m.hovered--
		}
		return true, nil

	case key.Matches(msg, m.keys.Submit):
		if !m.opened || m.hovered < 0 || m.hovered >= len(suggestions) {
			return false, nil
		}
		item := suggestions[m.hovered]
		m.SetValue(item.Value)
		if m.onItemSubmit != nil {
			m.onItemSubmit(item)
		}
		m.setOpened(false)
		return true, func() tea.Msg { return ItemSubmittedMsg{Item: item} }

	case key.Matches(msg, m.keys.Close):
		if !m.opened {
			return false, nil
		}
		m.setOpened(false)
		return true, nil

	case key.Matches(msg, m.keys.Toggle):
		m.setOpened(!m.opened)
		return true, nil
	}

	return false, nil
}

func (m *Model) setOpened(opened bool) {
	if m.opened == opened {
		return
	}
	m.opened = opened

	handler := m.onDropdownClose
	if opened {
		handler = m.onDropdownOpen
	}
	if handler != nil {
		handler()
	}
}

// syncInput mirrors the cell into the text input. A controlled input keeps
// showing the owner's value until the owner supplies a new one.
func (m *Model) syncInput() {
	if v := m.value.Value(); m.input.Value() != v {
		m.input.SetValue(v)
	}
}

// dropdownVisible reports whether the dropdown is open with suggestions or
// a nothing-found message to show.
func (m Model) dropdownVisible(suggestions []Item) bool {
	return m.opened && (len(suggestions) > 0 || m.nothingFound != "")
}

// View renders the input with the default theme.
func (m Model) View() string {
	return m.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the input and, when open, the dropdown below it.
func (m Model) ViewWithContext(ctx components.RenderContext) string {
	input := m.input.View()
	suggestions := m.Suggestions()
	if !m.dropdownVisible(suggestions) {
		return input
	}

	rows := make([]ui.Renderable, 0, len(suggestions)+1)
	if len(suggestions) == 0 {
		rows = append(rows, components.FaintText(m.nothingFound))
	}
	for i, item := range suggestions {
		state := components.ControlDefault
		if i == m.hovered {
			state = components.ControlHovered
		}
		label := components.ControlStyle(ctx.Theme, state).Render(item.Value)
		if item.Description != "" {
			label = lipgloss.JoinHorizontal(lipgloss.Top, label, components.FaintText(item.Description).ViewWithContext(ctx))
		}
		rows = append(rows, ui.Static(label))
	}

	dropdown := components.VStack(rows...).WithAppliers(components.Border(components.BorderVariantRounded))
	return lipgloss.JoinVertical(lipgloss.Left, input, dropdown.ViewWithContext(ctx))
}
