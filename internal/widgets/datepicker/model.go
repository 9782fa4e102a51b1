// Package datepicker is a date field with a keyboard-driven calendar and
// optional manual typing validated on blur.
package datepicker

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tessera/internal/ui/components"
	"github.com/alexisbeaulieu97/tessera/internal/uncontrolled"
)

// DateChangedMsg is emitted after a day is picked, a typed date is accepted
// or the field is cleared. Date is zero when cleared.
type DateChangedMsg struct {
	Date time.Time
}

// Options configures a Model. Use DefaultOptions for the usual defaults.
type Options struct {
	// Value is the owner-controlled date; nil leaves the picker uncontrolled.
	// The zero time means no date.
	Value        *time.Time
	DefaultValue *time.Time
	OnChange     func(time.Time)

	Format Format

	MinDate     time.Time
	MaxDate     time.Time
	ExcludeDate func(time.Time) bool

	// InitialMonth is shown when there is no value. Zero means the current
	// month.
	InitialMonth    time.Time
	InitiallyOpened bool

	CloseOnChange     bool
	AllowManualTyping bool
	FixOnBlur         bool
	Clearable         bool

	Placeholder string

	// Now returns the current time; it defaults to time.Now.
	Now    func() time.Time
	KeyMap *KeyMap
}

// DefaultOptions returns options with the calendar closing on change,
// invalid typed input reverting on blur and clearing enabled.
func DefaultOptions() Options {
	return Options{
		Format:        DefaultFormat(),
		CloseOnChange: true,
		FixOnBlur:     true,
		Clearable:     true,
	}
}

// Model is the bubbletea model of a date picker.
type Model struct {
	value     *uncontrolled.Cell[time.Time]
	lastValid time.Time

	input  textinput.Model
	format Format
	keys   KeyMap
	now    func() time.Time

	minDate     time.Time
	maxDate     time.Time
	excludeDate func(time.Time) bool

	opened bool
	month  time.Time
	cursor time.Time

	closeOnChange bool
	manualTyping  bool
	fixOnBlur     bool
	clearable     bool
}

// New creates a focused date picker.
func New(opts Options) Model {
	format := opts.Format.withDefaults()
	keys := DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		format:        format,
		keys:          keys,
		now:           now,
		excludeDate:   opts.ExcludeDate,
		opened:        opts.InitiallyOpened,
		closeOnChange: opts.CloseOnChange,
		manualTyping:  opts.AllowManualTyping,
		fixOnBlur:     opts.FixOnBlur,
		clearable:     opts.Clearable,
	}
	if !opts.MinDate.IsZero() {
		m.minDate = startOfDay(opts.MinDate, format.Location)
	}
	if !opts.MaxDate.IsZero() {
		m.maxDate = startOfDay(opts.MaxDate, format.Location)
	}

	m.value = uncontrolled.New(uncontrolled.Options[time.Time]{
		Value:    normalized(opts.Value, format.Location),
		Default:  normalized(opts.DefaultValue, format.Location),
		OnChange: opts.OnChange,
		Validate: m.Selectable,
	})
	m.lastValid = m.value.Value()

	m.input = textinput.New()
	m.input.Prompt = "📅 "
	m.input.Placeholder = opts.Placeholder
	m.input.Focus()
	m.syncInput()

	anchor := m.value.Value()
	if anchor.IsZero() {
		anchor = opts.InitialMonth
	}
	if anchor.IsZero() {
		anchor = now()
	}
	m.cursor = startOfDay(anchor, format.Location)
	m.month = startOfMonth(anchor, format.Location)

	return m
}

func normalized(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	if t.IsZero() {
		return t
	}
	day := startOfDay(*t, loc)
	return &day
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Value returns the selected date, or the zero time when there is none.
func (m Model) Value() time.Time {
	return m.value.Value()
}

// LastValid returns the last date accepted from the calendar or typing.
func (m Model) LastValid() time.Time {
	return m.lastValid
}

// Text returns the current content of the text field.
func (m Model) Text() string {
	return m.input.Value()
}

// KeyMap returns the bindings in use.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

// Format returns the layouts in use.
func (m Model) Format() Format {
	return m.format
}

// Opened reports whether the calendar is open.
func (m Model) Opened() bool {
	return m.opened
}

// Month returns the first day of the displayed month.
func (m Model) Month() time.Time {
	return m.month
}

// Cursor returns the highlighted calendar day.
func (m Model) Cursor() time.Time {
	return m.cursor
}

// Focused reports whether the field has focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Focus gives the field focus.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Selectable reports whether t may become the value: the zero time, or a
// day inside [MinDate, MaxDate] that is not excluded.
func (m Model) Selectable(t time.Time) bool {
	if t.IsZero() {
		return true
	}
	day := startOfDay(t, m.format.Location)
	if !m.minDate.IsZero() && day.Before(m.minDate) {
		return false
	}
	if !m.maxDate.IsZero() && day.After(m.maxDate) {
		return false
	}
	return m.excludeDate == nil || !m.excludeDate(day)
}

// Control supplies the owner's date.
func (m *Model) Control(t time.Time) {
	m.value.Control(t)
	m.syncInput()
}

// Release returns the picker to uncontrolled mode with no date.
func (m *Model) Release() {
	m.value.Release()
	m.syncInput()
}

// Blur removes focus, closes the calendar and settles typed text. Text that
// round-trips through the input layout becomes the value; anything else
// reverts to the last valid date when FixOnBlur is set.
func (m *Model) Blur() tea.Cmd {
	m.input.Blur()
	m.opened = false

	if !m.manualTyping || m.input.Value() == m.format.Display(m.Value()) {
		return nil
	}

	if date, ok := m.format.Parse(m.input.Value()); ok {
		return m.accept(date)
	}
	if m.clearable && m.input.Value() == "" {
		return m.clear()
	}
	if m.fixOnBlur {
		return m.revert()
	}
	return nil
}

// revert offers the last valid date again. A controlled picker whose owner
// did not apply that date forwards it once more.
func (m *Model) revert() tea.Cmd {
	if m.lastValid.Equal(m.Value()) {
		m.syncInput()
		return nil
	}
	return m.accept(m.lastValid)
}

// Invalid reports whether the text field holds text that is not a valid date.
func (m Model) Invalid() bool {
	text := m.input.Value()
	if text == "" || text == m.format.Display(m.Value()) {
		return false
	}
	date, ok := m.format.Parse(text)
	return !ok || !m.Selectable(date)
}

// accept offers date to the cell and records it as the last valid date.
func (m *Model) accept(date time.Time) tea.Cmd {
	if !m.value.Set(date).Accepted() {
		m.syncInput()
		return nil
	}
	m.lastValid = date
	m.syncInput()
	if !date.IsZero() {
		m.cursor = date
		m.month = startOfMonth(date, m.format.Location)
	}
	return func() tea.Msg { return DateChangedMsg{Date: date} }
}

func (m *Model) clear() tea.Cmd {
	return m.accept(time.Time{})
}

// syncInput shows the current value in the field.
func (m *Model) syncInput() {
	m.input.SetValue(m.format.Display(m.Value()))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next, cmd
}

// UpdatePicker is Update with a concrete return type.
func (m Model) UpdatePicker(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.input.Focused() {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && key.Matches(keyMsg, m.keys.Clear) {
		if !m.clearable {
			return m, nil
		}
		return m, m.clear()
	}

	if m.opened {
		if ok {
			return m, m.handleCalendarKey(keyMsg)
		}
		return m, nil
	}

	if ok && key.Matches(keyMsg, m.keys.Open) {
		m.opened = true
		return m, nil
	}

	if !m.manualTyping {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleCalendarKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.opened = false
	case key.Matches(msg, m.keys.Select):
		if !m.Selectable(m.cursor) {
			return nil
		}
		cmd := m.accept(m.cursor)
		if m.closeOnChange {
			m.opened = false
		}
		return cmd
	case key.Matches(msg, m.keys.PrevDay):
		m.moveCursor(m.cursor.AddDate(0, 0, -1))
	case key.Matches(msg, m.keys.NextDay):
		m.moveCursor(m.cursor.AddDate(0, 0, 1))
	case key.Matches(msg, m.keys.PrevWeek):
		m.moveCursor(m.cursor.AddDate(0, 0, -7))
	case key.Matches(msg, m.keys.NextWeek):
		m.moveCursor(m.cursor.AddDate(0, 0, 7))
	case key.Matches(msg, m.keys.PrevMonth):
		m.moveCursor(addMonths(m.cursor, -1))
	case key.Matches(msg, m.keys.NextMonth):
		m.moveCursor(addMonths(m.cursor, 1))
	}
	return nil
}

func (m *Model) moveCursor(day time.Time) {
	m.cursor = startOfDay(day, m.format.Location)
	m.month = startOfMonth(m.cursor, m.format.Location)
}

// addMonths moves by whole months, clamping the day to the target month's
// length so Jan 31 + 1 month is the last day of February.
func addMonths(t time.Time, months int) time.Time {
	y, mo, d := t.Date()
	first := time.Date(y, mo+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	return time.Date(first.Year(), first.Month(), min(d, last), 0, 0, 0, 0, t.Location())
}

// View renders the picker with the default theme.
func (m Model) View() string {
	return m.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the field and, when open, the calendar.
func (m Model) ViewWithContext(ctx components.RenderContext) string {
	field := m.input.View()
	if m.Invalid() {
		field = components.ControlStyle(ctx.Theme, components.ControlInvalid).Render(field)
	}
	if !m.opened {
		return field
	}
	return lipgloss.JoinVertical(lipgloss.Left, field, m.calendarView(ctx))
}
