package datepicker

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/tessera/internal/ui"
	"github.com/alexisbeaulieu97/tessera/internal/ui/components"
)

const (
	weeksShown = 6
	daysInWeek = 7
)

// Grid returns the days displayed for month as six rows of seven days. The
// first column is firstWeekday and days of adjacent months fill the rows.
func Grid(month time.Time, firstWeekday time.Weekday) [][]time.Time {
	first := startOfMonth(month, month.Location())
	offset := (int(first.Weekday()) - int(firstWeekday) + daysInWeek) % daysInWeek
	day := first.AddDate(0, 0, -offset)

	rows := make([][]time.Time, weeksShown)
	for w := range rows {
		rows[w] = make([]time.Time, daysInWeek)
		for d := range rows[w] {
			rows[w][d] = day
			day = day.AddDate(0, 0, 1)
		}
	}
	return rows
}

// Weekdays returns the weekday column order starting at first.
func Weekdays(first time.Weekday) []time.Weekday {
	out := make([]time.Weekday, daysInWeek)
	for i := range out {
		out[i] = time.Weekday((int(first) + i) % daysInWeek)
	}
	return out
}

func (m Model) dayState(day time.Time, today time.Time) components.ControlState {
	switch {
	case sameDay(day, m.cursor):
		return components.ControlHovered
	case sameDay(day, m.Value()):
		return components.ControlActive
	case !m.Selectable(day):
		return components.ControlDisabled
	case day.Month() != m.month.Month():
		return components.ControlMuted
	case sameDay(day, today):
		return components.ControlFocus
	default:
		return components.ControlDefault
	}
}

func (m Model) calendarView(ctx components.RenderContext) string {
	today := startOfDay(m.now(), m.format.Location)

	header := components.HStack()
	for _, wd := range Weekdays(m.format.FirstWeekday) {
		header.Add(components.ControlText(wd.String()[:2], components.ControlMuted))
	}

	rows := []ui.Renderable{
		components.TitleText(m.month.Format(m.format.Label)),
		header,
	}
	for _, week := range Grid(m.month, m.format.FirstWeekday) {
		row := components.HStack()
		for _, day := range week {
			row.Add(components.ControlText(fmt.Sprintf("%2d", day.Day()), m.dayState(day, today)))
		}
		rows = append(rows, row)
	}

	return components.VStack(rows...).ViewWithContext(ctx)
}
