package config

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/tessera/internal/pagination"
	"github.com/alexisbeaulieu97/tessera/internal/ui/components"
	"github.com/alexisbeaulieu97/tessera/internal/widgets/autocomplete"
	"github.com/alexisbeaulieu97/tessera/internal/widgets/datepicker"
	"github.com/alexisbeaulieu97/tessera/internal/widgets/navbar"
)

var paddingSizes = map[string]components.SpacingSize{
	"none": components.SpacingSizeNone,
	"xs":   components.SpacingSizeExtraSmall,
	"sm":   components.SpacingSizeSmall,
	"md":   components.SpacingSizeMedium,
	"lg":   components.SpacingSizeLarge,
	"xl":   components.SpacingSizeExtraLarge,
}

// ThemeValue returns the theme named by the document.
func (g *Gallery) ThemeValue() components.Theme {
	if g.Theme == "dark" {
		return components.DarkTheme()
	}
	return components.DefaultTheme()
}

// Options returns uncontrolled pager options.
func (p PagerConfig) Options() pagination.Options {
	opts := pagination.Options{
		Total:       p.Total,
		InitialPage: p.InitialPage,
	}
	if p.Siblings != nil {
		opts.Siblings = *p.Siblings
	}
	if p.Boundary != nil {
		opts.Boundary = *p.Boundary
	}
	return opts
}

// Items returns the suggestions as widget items.
func (a AutocompleteConfig) Items() []autocomplete.Item {
	items := make([]autocomplete.Item, len(a.Data))
	for i, s := range a.Data {
		items[i] = autocomplete.Item{Value: s.Value, Description: s.Description}
	}
	return items
}

// Options returns uncontrolled autocomplete options.
func (a AutocompleteConfig) Options() autocomplete.Options {
	opts := autocomplete.Options{
		Data:         a.Items(),
		Limit:        a.Limit,
		Placeholder:  a.Placeholder,
		NothingFound: a.NothingFound,
	}
	if a.Fuzzy {
		opts.Matcher = autocomplete.FuzzyMatcher()
	}
	return opts
}

// FormatValue returns the widget format. An empty location is time.Local.
func (f DateFormat) FormatValue() (datepicker.Format, error) {
	format := datepicker.Format{
		Input:        f.Input,
		Label:        f.Label,
		FirstWeekday: time.Monday,
		Location:     time.Local,
	}
	if wd, ok := ParseWeekday(f.FirstWeekday); ok {
		format.FirstWeekday = wd
	}
	if f.Location != "" {
		loc, err := time.LoadLocation(f.Location)
		if err != nil {
			return datepicker.Format{}, fmt.Errorf("load location %q: %w", f.Location, err)
		}
		format.Location = loc
	}
	return format, nil
}

// Options returns uncontrolled date picker options.
func (d DatepickerConfig) Options() (datepicker.Options, error) {
	format, err := d.Format.FormatValue()
	if err != nil {
		return datepicker.Options{}, err
	}

	opts := datepicker.DefaultOptions()
	opts.Format = format
	opts.Placeholder = d.Placeholder
	opts.AllowManualTyping = deref(d.AllowManualTyping, true)
	opts.FixOnBlur = deref(d.FixOnBlur, true)
	opts.Clearable = deref(d.Clearable, true)
	opts.CloseOnChange = deref(d.CloseOnChange, true)

	if d.MinDate != "" {
		if opts.MinDate, err = time.ParseInLocation(ISODate, d.MinDate, format.Location); err != nil {
			return datepicker.Options{}, fmt.Errorf("parse min_date: %w", err)
		}
	}
	if d.MaxDate != "" {
		if opts.MaxDate, err = time.ParseInLocation(ISODate, d.MaxDate, format.Location); err != nil {
			return datepicker.Options{}, fmt.Errorf("parse max_date: %w", err)
		}
	}
	if d.ExcludeWeekends {
		opts.ExcludeDate = func(t time.Time) bool {
			return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
		}
	}
	return opts, nil
}

// Options returns uncontrolled navbar options.
func (n NavbarConfig) Options() navbar.Options {
	opts := navbar.DefaultOptions()
	if n.Width > 0 {
		opts.Width = n.Width
	}
	if size, ok := paddingSizes[n.Padding]; ok {
		opts.Padding = size
	}
	if n.Active != "" {
		active := n.Active
		opts.DefaultActive = &active
	}

	opts.Sections = make([]navbar.Section, len(n.Sections))
	for i, s := range n.Sections {
		links := make([]navbar.Link, len(s.Links))
		for j, l := range s.Links {
			links[j] = navbar.Link{Label: l.Label, Target: l.Target}
		}
		opts.Sections[i] = navbar.Section{Title: s.Title, Grow: s.Grow, Links: links}
	}
	return opts
}

func deref(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
