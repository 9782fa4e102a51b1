package pagination

import "github.com/alexisbeaulieu97/tessera/internal/uncontrolled"

// Options configures a Pager.
type Options struct {
	// Total is the number of pages. Negative totals are treated as zero.
	Total int
	// Siblings is the number of pages shown on each side of the active page.
	Siblings int
	// Boundary is the number of pages always shown at each end.
	Boundary int
	// Page is the owner-controlled active page. Nil leaves the pager
	// uncontrolled.
	Page *int
	// InitialPage seeds an uncontrolled pager. Zero means the first page.
	InitialPage int
	// OnChange is called with the clamped page after every navigation.
	OnChange func(page int)
}

// Pager is the pagination state of one widget: the totals and display
// widths plus the active page held in an uncontrolled.Cell.
type Pager struct {
	total    int
	siblings int
	boundary int
	cell     *uncontrolled.Cell[int]
}

// NewPager creates a pager from opts.
func NewPager(opts Options) *Pager {
	p := &Pager{
		total:    max(opts.Total, 0),
		siblings: max(opts.Siblings, 0),
		boundary: max(opts.Boundary, 0),
	}

	initial := Clamp(opts.InitialPage, p.total)
	p.cell = uncontrolled.New(uncontrolled.Options[int]{
		Value:    opts.Page,
		Default:  &initial,
		Final:    1,
		OnChange: opts.OnChange,
		Validate: p.inRange,
	})

	return p
}

func (p *Pager) inRange(page int) bool {
	return page == Clamp(page, p.total)
}

// Total returns the number of pages.
func (p *Pager) Total() int {
	return p.total
}

// Siblings returns the sibling count used for Range.
func (p *Pager) Siblings() int {
	return p.siblings
}

// Boundary returns the boundary count used for Range.
func (p *Pager) Boundary() int {
	return p.boundary
}

// SetTotal changes the number of pages. An uncontrolled page that falls out
// of range is clamped without notification; an owner's page is left alone
// and clamped on read.
func (p *Pager) SetTotal(total int) {
	p.total = max(total, 0)
	if !p.cell.Controlled() {
		p.cell.Store(Clamp(p.cell.Value(), p.total))
	}
}

// Active returns the active page clamped into [1, total].
func (p *Pager) Active() int {
	return Clamp(p.cell.Value(), p.total)
}

// Controlled reports whether the owner supplies the active page.
func (p *Pager) Controlled() bool {
	return p.cell.Controlled()
}

// Control supplies the owner's active page.
func (p *Pager) Control(page int) {
	p.cell.Control(page)
}

// Release returns the pager to uncontrolled mode on the first page.
func (p *Pager) Release() {
	p.cell.Release()
}

// Range returns the labels for the current state. It is recomputed on every
// call.
func (p *Pager) Range() []Item {
	return Range(p.total, p.Active(), p.siblings, p.boundary)
}

// Params returns the current inputs of Range.
func (p *Pager) Params() Params {
	return Params{Total: p.total, Active: p.Active(), Siblings: p.siblings, Boundary: p.boundary}
}

// GoTo moves to page after clamping it into [1, total]. Without pages
// there is nowhere to go and GoTo reports Rejected.
func (p *Pager) GoTo(page int) uncontrolled.Outcome {
	if p.total == 0 {
		return uncontrolled.Rejected
	}
	return p.cell.Set(Clamp(page, p.total))
}

// Next moves one page forward, staying on the last page.
func (p *Pager) Next() uncontrolled.Outcome {
	return p.GoTo(p.Active() + 1)
}

// Prev moves one page back, staying on the first page.
func (p *Pager) Prev() uncontrolled.Outcome {
	return p.GoTo(p.Active() - 1)
}

// First moves to the first page.
func (p *Pager) First() uncontrolled.Outcome {
	return p.GoTo(1)
}

// Last moves to the last page.
func (p *Pager) Last() uncontrolled.Outcome {
	return p.GoTo(p.total)
}

// HasPrev reports whether a previous page exists.
func (p *Pager) HasPrev() bool {
	return p.Active() > 1
}

// HasNext reports whether a next page exists.
func (p *Pager) HasNext() bool {
	return p.Active() < p.total
}
