// Package pager is a terminal pagination control: previous and next
// controls around the labels computed by the pagination package.
package pager

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tessera/internal/pagination"
	"github.com/alexisbeaulieu97/tessera/internal/ui"
	"github.com/alexisbeaulieu97/tessera/internal/ui/components"
)

// TargetKind identifies what a rendered control points at.
type TargetKind int

const (
	TargetPage TargetKind = iota
	TargetDots
	TargetPrev
	TargetNext
)

// Target is a rendered control. Page is only set for TargetPage.
type Target struct {
	Kind TargetKind
	Page int
}

// LabelFunc returns the text for a control.
type LabelFunc func(Target) string

// DefaultLabel renders page numbers, an ellipsis and arrow glyphs.
func DefaultLabel(t Target) string {
	switch t.Kind {
	case TargetPrev:
		return "‹"
	case TargetNext:
		return "›"
	case TargetDots:
		return "…"
	default:
		return strconv.Itoa(t.Page)
	}
}

// PageChangedMsg is emitted after a navigation key was accepted.
type PageChangedMsg struct {
	Page int
}

// Options configures a Model.
type Options struct {
	pagination.Options
	Label  LabelFunc
	KeyMap *KeyMap
}

// Model is the bubbletea model of a pager.
type Model struct {
	pager   *pagination.Pager
	keys    KeyMap
	label   LabelFunc
	focused bool
}

// New creates a focused pager model.
func New(opts Options) Model {
	keys := DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}
	label := opts.Label
	if label == nil {
		label = DefaultLabel
	}

	return Model{
		pager:   pagination.NewPager(opts.Options),
		keys:    keys,
		label:   label,
		focused: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Pager exposes the pagination state, for owners controlling the page.
func (m Model) Pager() *pagination.Pager {
	return m.pager
}

// Page returns the active page.
func (m Model) Page() int {
	return m.pager.Active()
}

// KeyMap returns the bindings in use.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

// Focused reports whether the pager reacts to keys.
func (m Model) Focused() bool {
	return m.focused
}

// Focus makes the pager react to keys.
func (m *Model) Focus() {
	m.focused = true
}

// Blur stops the pager from reacting to keys.
func (m *Model) Blur() {
	m.focused = false
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next, cmd
}

// UpdatePager is Update with a concrete return type for embedding models.
func (m Model) UpdatePager(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	target := m.pager.Active()
	switch {
	case key.Matches(keyMsg, m.keys.Prev):
		target--
	case key.Matches(keyMsg, m.keys.Next):
		target++
	case key.Matches(keyMsg, m.keys.First):
		target = 1
	case key.Matches(keyMsg, m.keys.Last):
		target = m.pager.Total()
	default:
		return m, nil
	}

	page := pagination.Clamp(target, m.pager.Total())
	if !m.pager.GoTo(page).Accepted() {
		return m, nil
	}
	// Controlled pagers report the requested page; the owner applies it.
	return m, func() tea.Msg { return PageChangedMsg{Page: page} }
}

// View renders the pager with the default theme.
func (m Model) View() string {
	return m.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders prev, the page range and next.
func (m Model) ViewWithContext(ctx components.RenderContext) string {
	items := m.pager.Range()
	active := m.pager.Active()

	controls := make([]ui.Renderable, 0, len(items)+2)
	controls = append(controls, m.control(Target{Kind: TargetPrev}, stateFor(m.pager.HasPrev())))
	for _, item := range items {
		switch {
		case item.IsDots():
			controls = append(controls, m.control(Target{Kind: TargetDots}, components.ControlMuted))
		case item.Page == active:
			controls = append(controls, m.control(Target{Kind: TargetPage, Page: item.Page}, components.ControlActive))
		default:
			controls = append(controls, m.control(Target{Kind: TargetPage, Page: item.Page}, components.ControlDefault))
		}
	}
	controls = append(controls, m.control(Target{Kind: TargetNext}, stateFor(m.pager.HasNext())))

	return components.HStack(controls...).ViewWithContext(ctx)
}

func (m Model) control(t Target, state components.ControlState) ui.Renderable {
	return components.ControlText(m.label(t), state)
}

func stateFor(enabled bool) components.ControlState {
	if enabled {
		return components.ControlDefault
	}
	return components.ControlDisabled
}
