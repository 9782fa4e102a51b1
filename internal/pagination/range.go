// Package pagination computes the labels a pager displays and tracks the
// active page through an uncontrolled.Cell.
package pagination

import (
	"slices"
	"strconv"
)

// ItemKind distinguishes page numbers from ellipsis markers.
type ItemKind int

const (
	KindPage ItemKind = iota
	KindDots
)

// Item is a single label in a pagination range.
type Item struct {
	Kind ItemKind
	Page int
}

// PageItem returns an item for page.
func PageItem(page int) Item {
	return Item{Kind: KindPage, Page: page}
}

// Dots returns an ellipsis marker.
func Dots() Item {
	return Item{Kind: KindDots}
}

// IsDots reports whether the item is an ellipsis marker.
func (i Item) IsDots() bool {
	return i.Kind == KindDots
}

// String renders the item as a plain label.
func (i Item) String() string {
	if i.IsDots() {
		return "…"
	}
	return strconv.Itoa(i.Page)
}

// Params bundles the inputs of Range.
type Params struct {
	Total    int
	Active   int
	Siblings int
	Boundary int
}

// Range is a convenience wrapper around the package-level Range function.
func (p Params) Range() []Item {
	return Range(p.Total, p.Active, p.Siblings, p.Boundary)
}

type span struct {
	lo, hi int
}

// Range returns the ordered labels for a pager with total pages and the
// given active page. siblings pages are shown on each side of the active
// page and boundary pages at each end. Pages 1 and total are always shown.
// A gap of exactly one page is filled with that page; larger gaps collapse
// to a single ellipsis.
//
// Negative inputs are treated as zero and active is clamped into
// [1, total]. Range is pure: equal inputs give equal outputs.
func Range(total, active, siblings, boundary int) []Item {
	total = max(total, 0)
	if total == 0 {
		return []Item{}
	}
	if total == 1 {
		return []Item{PageItem(1)}
	}

	siblings = max(siblings, 0)
	edge := max(boundary, 1)
	active = Clamp(active, total)

	spans := []span{
		{lo: 1, hi: min(edge, total)},
		{lo: max(active-siblings, 1), hi: min(active+siblings, total)},
		{lo: max(total-edge+1, 1), hi: total},
	}
	slices.SortFunc(spans, func(a, b span) int { return a.lo - b.lo })

	items := make([]Item, 0, 2*edge+2*siblings+3)
	last := 0
	for _, s := range spans {
		if s.hi <= last {
			continue
		}
		start := max(s.lo, last+1)
		switch gap := start - last - 1; {
		case last == 0 || gap == 0:
		case gap == 1:
			items = append(items, PageItem(last+1))
		default:
			items = append(items, Dots())
		}
		for page := start; page <= s.hi; page++ {
			items = append(items, PageItem(page))
		}
		last = s.hi
	}

	return items
}

// Clamp constrains page into [1, total]. When there are no pages the first
// page is returned.
func Clamp(page, total int) int {
	if total <= 0 || page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Pages extracts the page numbers from items, skipping ellipsis markers.
func Pages(items []Item) []int {
	pages := make([]int, 0, len(items))
	for _, item := range items {
		if !item.IsDots() {
			pages = append(pages, item.Page)
		}
	}
	return pages
}
