// Package navbar is a fixed-width navigation column split into sections.
package navbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/tessera/internal/ui/components"
	"github.com/alexisbeaulieu97/tessera/internal/uncontrolled"
)

// DefaultWidth is the column width in cells, border included.
const DefaultWidth = 30

const ellipsis = "…"

// Link is a navigable entry. Target identifies it and must be unique
// across the navbar.
type Link struct {
	Label  string
	Target string
}

// Section groups links under an optional title. A Grow section takes the
// height left over by the other sections.
type Section struct {
	Title string
	Links []Link
	Grow  bool
}

// LinkActivatedMsg is emitted when a link is opened.
type LinkActivatedMsg struct {
	Link Link
}

// Options configures a Model.
type Options struct {
	Sections []Section
	// Width is the total width including the border; zero means
	// DefaultWidth.
	Width int
	// Height is the total height; zero sizes the column to its content.
	Height int
	// Padding selects the spacing on the left and right. Top and bottom
	// padding is half of it.
	Padding components.SpacingSize

	// Active is the owner-controlled active target; nil leaves it
	// uncontrolled.
	Active        *string
	DefaultActive *string
	OnChange      func(target string)

	KeyMap *KeyMap
}

// DefaultOptions returns options with the default width and medium padding.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth, Padding: components.SpacingSizeMedium}
}

// Model is the bubbletea model of a navbar.
type Model struct {
	sections []Section
	links    []Link
	width    int
	height   int
	padding  components.SpacingSize
	active   *uncontrolled.Cell[string]
	cursor   int
	keys     KeyMap
	focused  bool
}

// New creates a focused navbar with the cursor on the active link, or on
// the first link when none is active.
func New(opts Options) Model {
	keys := DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	m := Model{
		sections: opts.Sections,
		width:    width,
		height:   max(opts.Height, 0),
		padding:  opts.Padding,
		keys:     keys,
		focused:  true,
	}
	for _, s := range opts.Sections {
		m.links = append(m.links, s.Links...)
	}

	m.active = uncontrolled.New(uncontrolled.Options[string]{
		Value:    opts.Active,
		Default:  opts.DefaultActive,
		OnChange: opts.OnChange,
		Validate: m.known,
	})
	m.cursor = max(m.indexOf(m.active.Value()), 0)
	return m
}

// known accepts the empty target and any target of a link.
func (m Model) known(target string) bool {
	return target == "" || m.indexOf(target) >= 0
}

func (m Model) indexOf(target string) int {
	for i, l := range m.links {
		if l.Target == target {
			return i
		}
	}
	return -1
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Active returns the active target, or "" when no link is active.
func (m Model) Active() string {
	return m.active.Value()
}

// Cursor returns the index of the highlighted link across all sections,
// or -1 when there are no links.
func (m Model) Cursor() int {
	if len(m.links) == 0 {
		return -1
	}
	return m.cursor
}

// Links returns every link in display order.
func (m Model) Links() []Link {
	return m.links
}

// Width returns the total width in cells.
func (m Model) Width() int {
	return m.width
}

// KeyMap returns the bindings in use.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

// Focused reports whether the navbar reacts to keys.
func (m Model) Focused() bool {
	return m.focused
}

// Focus makes the navbar react to keys.
func (m *Model) Focus() {
	m.focused = true
}

// Blur stops the navbar from reacting to keys.
func (m *Model) Blur() {
	m.focused = false
}

// SetActive activates target.
func (m *Model) SetActive(target string) uncontrolled.Outcome {
	return m.active.Set(target)
}

// Control supplies the owner's active target.
func (m *Model) Control(target string) {
	m.active.Control(target)
}

// Release returns the navbar to uncontrolled mode with no active link.
func (m *Model) Release() {
	m.active.Release()
}

// SetHeight changes the total height; zero sizes to content.
func (m *Model) SetHeight(height int) {
	m.height = max(height, 0)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next, cmd
}

// UpdateNavbar is Update with a concrete return type.
func (m Model) UpdateNavbar(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.links) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = min(m.cursor+1, len(m.links)-1)
	case key.Matches(keyMsg, m.keys.Activate):
		link := m.links[m.cursor]
		if !m.active.Set(link.Target).Accepted() {
			return m, nil
		}
		return m, func() tea.Msg { return LinkActivatedMsg{Link: link} }
	}
	return m, nil
}

// View renders the navbar with the default theme.
func (m Model) View() string {
	return m.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the column at its fixed width. With a height set,
// grow sections absorb the free rows and overflowing content is cut.
func (m Model) ViewWithContext(ctx components.RenderContext) string {
	padX := components.SpacingValue(ctx.Theme, m.padding)
	padY := padX / 2
	inner := max(m.width-1-2*padX, 1)

	blocks := make([]string, len(m.sections))
	used := 0
	growing := 0
	index := 0
	for i, s := range m.sections {
		blocks[i] = m.sectionView(ctx, s, inner, index)
		index += len(s.Links)
		used += lipgloss.Height(blocks[i])
		if s.Grow {
			growing++
		}
	}

	if m.height > 0 && growing > 0 {
		free := m.height - 2*padY - used
		if free > 0 {
			share, extra := free/growing, free%growing
			for i, s := range m.sections {
				if !s.Grow {
					continue
				}
				add := share
				if extra > 0 {
					add++
					extra--
				}
				blocks[i] = lipgloss.NewStyle().
					Height(lipgloss.Height(blocks[i]) + add).
					Render(blocks[i])
			}
		}
	}

	style := lipgloss.NewStyle().
		Border(components.BorderForVariant(ctx.Theme, components.BorderVariantNormal), false, true, false, false).
		BorderForeground(ctx.Theme.Palette.Neutral.Muted).
		Padding(padY, padX).
		Width(m.width - 1)
	if m.height > 0 {
		style = style.Height(m.height).MaxHeight(m.height)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

// sectionView renders one section; first is the index of its first link.
func (m Model) sectionView(ctx components.RenderContext, s Section, inner, first int) string {
	lines := make([]string, 0, len(s.Links)+1)
	if s.Title != "" {
		title := runewidth.Truncate(s.Title, inner, ellipsis)
		lines = append(lines, components.TitleText(title).ViewWithContext(ctx))
	}

	active := m.Active()
	for i, l := range s.Links {
		state := components.ControlDefault
		switch {
		case m.focused && first+i == m.cursor:
			state = components.ControlHovered
		case l.Target == active:
			state = components.ControlActive
		}
		label := runewidth.Truncate(l.Label, max(inner-2, 1), ellipsis)
		lines = append(lines, components.ControlText(label, state).ViewWithContext(ctx))
	}
	return strings.Join(lines, "\n")
}
