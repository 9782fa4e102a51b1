package config

const (
	DefaultTitle        = "Tessera"
	DefaultTheme        = "light"
	DefaultSiblings     = 1
	DefaultBoundary     = 1
	DefaultInitialPage  = 1
	DefaultLimit        = 5
	DefaultInputLayout  = "January 2, 2006"
	DefaultLabelLayout  = "January 2006"
	DefaultFirstWeekday = "monday"
	DefaultNavbarWidth  = 30
	DefaultPadding      = "md"
)

func (g *Gallery) applyDefaults() {
	if g.Title == "" {
		g.Title = DefaultTitle
	}
	if g.Theme == "" {
		g.Theme = DefaultTheme
	}

	p := &g.Pager
	if p.Siblings == nil {
		p.Siblings = intPtr(DefaultSiblings)
	}
	if p.Boundary == nil {
		p.Boundary = intPtr(DefaultBoundary)
	}
	if p.InitialPage == 0 {
		p.InitialPage = DefaultInitialPage
	}

	if g.Autocomplete.Limit == 0 {
		g.Autocomplete.Limit = DefaultLimit
	}

	d := &g.Datepicker
	if d.Format.Input == "" {
		d.Format.Input = DefaultInputLayout
	}
	if d.Format.Label == "" {
		d.Format.Label = DefaultLabelLayout
	}
	if d.Format.FirstWeekday == "" {
		d.Format.FirstWeekday = DefaultFirstWeekday
	}
	for _, b := range []**bool{&d.AllowManualTyping, &d.FixOnBlur, &d.Clearable, &d.CloseOnChange} {
		if *b == nil {
			*b = boolPtr(true)
		}
	}

	if g.Navbar.Width == 0 {
		g.Navbar.Width = DefaultNavbarWidth
	}
	if g.Navbar.Padding == "" {
		g.Navbar.Padding = DefaultPadding
	}
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
