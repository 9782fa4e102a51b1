package datepicker

import (
	"strings"
	"time"
)

// Format holds the layouts and calendar conventions of a picker. It is
// passed explicitly at construction; nothing reads global locale state.
type Format struct {
	// Input is the Go layout used to display and parse the field.
	Input string
	// Label is the Go layout of the calendar header.
	Label string
	// FirstWeekday is the first column of the calendar grid.
	FirstWeekday time.Weekday
	// Location is used for parsing and for day boundaries.
	Location *time.Location
}

const (
	DefaultInputLayout = "January 2, 2006"
	DefaultLabelLayout = "January 2006"
)

// DefaultFormat returns the default layouts with weeks starting on Monday.
func DefaultFormat() Format {
	return Format{
		Input:        DefaultInputLayout,
		Label:        DefaultLabelLayout,
		FirstWeekday: time.Monday,
		Location:     time.Local,
	}
}

func (f Format) withDefaults() Format {
	def := DefaultFormat()
	if f.Input == "" {
		f.Input = def.Input
	}
	if f.Label == "" {
		f.Label = def.Label
	}
	if f.Location == nil {
		f.Location = def.Location
	}
	return f
}

// Display formats t with the input layout; the zero time renders empty.
func (f Format) Display(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.Location).Format(f.Input)
}

// Parse reads text with the input layout. The text is accepted only when
// formatting the parsed date gives the same text back, so partial or
// ambiguous input is refused.
func (f Format) Parse(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	parsed, err := time.ParseInLocation(f.Input, text, f.Location)
	if err != nil || parsed.Format(f.Input) != text {
		return time.Time{}, false
	}
	return startOfDay(parsed, f.Location), true
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func startOfMonth(t time.Time, loc *time.Location) time.Time {
	y, m, _ := t.In(loc).Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, loc)
}

func sameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
