// Package tui is the interactive widget gallery: a navbar on the left and
// the selected widget on the right.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tessera/internal/config"
	"github.com/alexisbeaulieu97/tessera/internal/logger"
	"github.com/alexisbeaulieu97/tessera/internal/ui/components"
	"github.com/alexisbeaulieu97/tessera/internal/widgets/autocomplete"
	"github.com/alexisbeaulieu97/tessera/internal/widgets/datepicker"
	"github.com/alexisbeaulieu97/tessera/internal/widgets/navbar"
	"github.com/alexisbeaulieu97/tessera/internal/widgets/pager"
)

// Navbar targets that select a widget.
const (
	TargetPager        = "pager"
	TargetAutocomplete = "autocomplete"
	TargetDatepicker   = "datepicker"
)

const maxEvents = 3

// Pane identifies which half of the gallery receives keys.
type Pane int

const (
	PaneNav Pane = iota
	PaneContent
)

func (p Pane) String() string {
	if p == PaneContent {
		return "content"
	}
	return "nav"
}

// Model is the gallery's bubbletea model.
type Model struct {
	cfg  *config.Gallery
	log  *logger.Logger
	ctx  components.RenderContext
	keys KeyMap
	help help.Model

	nav    navbar.Model
	pager  pager.Model
	auto   autocomplete.Model
	picker datepicker.Model

	focus    Pane
	events   []string
	width    int
	height   int
	quitting bool
}

// NewModel builds the gallery from cfg. Widget change notifications are
// logged at debug level.
func NewModel(cfg *config.Gallery, log *logger.Logger) (Model, error) {
	if cfg == nil {
		def, err := config.LoadDefault()
		if err != nil {
			return Model{}, fmt.Errorf("built-in gallery: %w", err)
		}
		cfg = def
	}
	if log == nil {
		log = logger.Nop()
	}

	pickerOpts, err := cfg.Datepicker.Options()
	if err != nil {
		return Model{}, fmt.Errorf("datepicker options: %w", err)
	}
	pickerOpts.OnChange = func(d time.Time) {
		log.With("widget", TargetDatepicker).With("date", pickerOpts.Format.Display(d)).Debug("date changed")
	}

	pagerOpts := pager.Options{Options: cfg.Pager.Options()}
	pagerOpts.OnChange = func(page int) {
		log.With("widget", TargetPager).With("page", page).Debug("page changed")
	}

	autoOpts := cfg.Autocomplete.Options()
	autoOpts.OnChange = func(v string) {
		log.With("widget", TargetAutocomplete).With("value", v).Debug("value changed")
	}

	navOpts := cfg.Navbar.Options()
	navOpts.OnChange = func(target string) {
		log.With("widget", "navbar").With("target", target).Debug("link activated")
	}

	m := Model{
		cfg:    cfg,
		log:    log,
		ctx:    components.DefaultContext().WithTheme(cfg.ThemeValue()),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		nav:    navbar.New(navOpts),
		pager:  pager.New(pagerOpts),
		auto:   autocomplete.New(autoOpts),
		picker: datepicker.New(pickerOpts),
	}
	m.setFocus(PaneNav)
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.auto.Init(), m.picker.Init())
}

// Focus returns the pane receiving keys.
func (m Model) Focus() Pane {
	return m.focus
}

// Selected returns the navbar target whose widget is shown.
func (m Model) Selected() string {
	return m.nav.Active()
}

// Events returns the most recent widget notifications, oldest first.
func (m Model) Events() []string {
	return m.events
}

// Quitting reports whether a quit key was pressed.
func (m Model) Quitting() bool {
	return m.quitting
}

// Page returns the pager's active page.
func (m Model) Page() int {
	return m.pager.Page()
}

// Value returns the autocomplete value.
func (m Model) Value() string {
	return m.auto.Value()
}

// Date returns the picked date, zero when there is none.
func (m Model) Date() time.Time {
	return m.picker.Value()
}

// setFocus moves keyboard focus and returns the commands the widgets emit
// when they gain or lose it.
func (m *Model) setFocus(p Pane) tea.Cmd {
	m.focus = p

	var cmds []tea.Cmd
	m.pager.Blur()
	m.auto.Blur()
	if m.picker.Focused() {
		cmds = append(cmds, m.picker.Blur())
	}

	if p == PaneNav {
		m.nav.Focus()
		return tea.Batch(cmds...)
	}

	m.nav.Blur()
	switch m.Selected() {
	case TargetPager:
		m.pager.Focus()
	case TargetAutocomplete:
		cmds = append(cmds, m.auto.Focus())
	case TargetDatepicker:
		cmds = append(cmds, m.picker.Focus())
	}
	return tea.Batch(cmds...)
}

func (m *Model) record(widget, event string) {
	m.events = append(m.events, fmt.Sprintf("%s: %s", widget, event))
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
}

func (m Model) paneHelp() help.KeyMap {
	if m.focus == PaneNav {
		return m.nav.KeyMap()
	}
	switch m.Selected() {
	case TargetPager:
		return m.pager.KeyMap()
	case TargetAutocomplete:
		return m.auto.KeyMap()
	case TargetDatepicker:
		return m.picker.KeyMap()
	}
	return nil
}
