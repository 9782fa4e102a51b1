package autocomplete

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Item is a suggestion.
type Item struct {
	Value       string
	Description string
}

// Items converts plain strings into suggestions.
func Items(values ...string) []Item {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Item{Value: v}
	}
	return items
}

// FilterFunc decides whether item matches the typed value.
type FilterFunc func(value string, item Item) bool

// DefaultFilter matches items containing value, ignoring case and
// surrounding whitespace.
func DefaultFilter(value string, item Item) bool {
	needle := strings.ToLower(strings.TrimSpace(value))
	return strings.Contains(strings.ToLower(strings.TrimSpace(item.Value)), needle)
}

// Matcher selects at most limit items for a typed value, in display order.
type Matcher func(value string, items []Item, limit int) []Item

// FilterMatcher keeps the first limit items accepted by filter, preserving
// data order.
func FilterMatcher(filter FilterFunc) Matcher {
	return func(value string, items []Item, limit int) []Item {
		out := make([]Item, 0, min(limit, len(items)))
		for _, item := range items {
			if len(out) >= limit {
				break
			}
			if filter(value, item) {
				out = append(out, item)
			}
		}
		return out
	}
}

type itemSource []Item

func (s itemSource) String(i int) string { return s[i].Value }
func (s itemSource) Len() int            { return len(s) }

// FuzzyMatcher ranks items by fuzzy score, best first. An empty value keeps
// data order.
func FuzzyMatcher() Matcher {
	return func(value string, items []Item, limit int) []Item {
		if strings.TrimSpace(value) == "" {
			return items[:min(limit, len(items))]
		}

		matches := fuzzy.FindFrom(strings.TrimSpace(value), itemSource(items))
		out := make([]Item, 0, min(limit, len(matches)))
		for _, match := range matches {
			if len(out) >= limit {
				break
			}
			out = append(out, items[match.Index])
		}
		return out
	}
}
