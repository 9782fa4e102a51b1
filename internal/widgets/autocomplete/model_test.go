package autocomplete

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fruit = Items("apple", "apricot", "banana", "grape", "pineapple", "maple syrup", "application")

func values(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Value
	}
	return out
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func typeText(m Model, text string) Model {
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestDefaultFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		item     string
		expected bool
	}{
		{"substring", "pp", "apple", true},
		{"case insensitive", "APP", "apple", true},
		{"trims value", "  app ", "apple", true},
		{"empty matches all", "", "banana", true},
		{"no match", "kiwi", "apple", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, DefaultFilter(tt.value, Item{Value: tt.item}))
		})
	}
}

func TestFilterMatcherRespectsLimitAndOrder(t *testing.T) {
	t.Parallel()

	got := FilterMatcher(DefaultFilter)("ap", fruit, 3)
	require.Equal(t, []string{"apple", "apricot", "grape"}, values(got))
}

func TestFuzzyMatcher(t *testing.T) {
	t.Parallel()

	match := FuzzyMatcher()
	require.Equal(t, []string{"banana"}, values(match("ban", fruit, 5)))
	require.Equal(t, []string{"apple", "apricot"}, values(match("", fruit, 2)))
	require.Empty(t, match("zzz", fruit, 5))
}

func TestTypingOpensDropdownAndFilters(t *testing.T) {
	var changes []string
	opened := 0
	m := New(Options{
		Data:           fruit,
		OnChange:       func(v string) { changes = append(changes, v) },
		OnDropdownOpen: func() { opened++ },
	})
	require.False(t, m.Opened())
	require.Equal(t, noHover, m.Hovered())

	m = typeText(m, "ap")

	require.Equal(t, "ap", m.Value())
	require.True(t, m.Opened())
	require.Equal(t, 0, m.Hovered())
	require.Equal(t, 1, opened)
	require.Equal(t, []string{"ap"}, changes)
	require.Equal(t, []string{"apple", "apricot", "grape", "pineapple", "maple syrup"}, values(m.Suggestions()))
}

func TestKeyboardNavigationClampsAtEnds(t *testing.T) {
	m := New(Options{Data: fruit, Limit: 3})
	m = typeText(m, "ap")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.Hovered())

	for i := 0; i < 5; i++ {
		m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, 2, m.Hovered())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 1, m.Hovered())
}

func TestEnterSubmitsHoveredItem(t *testing.T) {
	var submitted []Item
	closed := 0
	m := New(Options{
		Data:            fruit,
		OnItemSubmit:    func(item Item) { submitted = append(submitted, item) },
		OnDropdownClose: func() { closed++ },
	})
	m = typeText(m, "ap")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown})

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, "apricot", m.Value())
	require.False(t, m.Opened())
	require.Equal(t, 1, closed)
	require.Equal(t, []Item{{Value: "apricot"}}, submitted)
	require.NotNil(t, cmd)
	assert.Equal(t, ItemSubmittedMsg{Item: Item{Value: "apricot"}}, cmd())
}

func TestEnterWithClosedDropdownDoesNotSubmit(t *testing.T) {
	submitted := 0
	m := New(Options{Data: fruit, OnItemSubmit: func(Item) { submitted++ }})
	m = typeText(m, "ap")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.Opened())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Zero(t, submitted)
	require.Equal(t, "ap", m.Value())
}

func TestToggleOpensAndCloses(t *testing.T) {
	m := New(Options{Data: fruit})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlAt})
	require.True(t, m.Opened())
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlAt})
	require.False(t, m.Opened())
}

func TestBlurClosesDropdownAndIgnoresKeys(t *testing.T) {
	m := New(Options{Data: fruit, InitiallyOpened: true})
	m.Blur()
	require.False(t, m.Opened())
	require.False(t, m.Focused())

	m = typeText(m, "x")
	require.Equal(t, "", m.Value())
}

func TestControlledValueWaitsForOwner(t *testing.T) {
	owner := "gr"
	var requested string
	m := New(Options{Data: fruit, Value: &owner, OnChange: func(v string) { requested = v }})
	require.Equal(t, "gr", m.Value())

	m = typeText(m, "a")
	require.Equal(t, "gra", requested)
	require.Equal(t, "gr", m.Value(), "owner has not applied the change")

	m.Control(requested)
	require.Equal(t, "gra", m.Value())
}

func TestInvalidValueIsRejected(t *testing.T) {
	changes := 0
	m := New(Options{DefaultValue: ptr("ok"), OnChange: func(string) { changes++ }})

	outcome := m.SetValue(string([]byte{0xff, 0xfe}))

	require.False(t, outcome.Accepted())
	require.Equal(t, "ok", m.Value())
	require.Zero(t, changes)
}

func TestReleaseClearsValue(t *testing.T) {
	owner := "grape"
	m := New(Options{Value: &owner})
	m.Release()
	require.Equal(t, "", m.Value())
}

func TestViewShowsSuggestionsAndNothingFound(t *testing.T) {
	m := New(Options{Data: fruit, NothingFound: "no fruit"})
	m = typeText(m, "ban")

	view := m.View()
	assert.Contains(t, view, "banana")
	assert.NotContains(t, view, "apple")

	m = typeText(m, "q")
	assert.Contains(t, m.View(), "no fruit")
}

func TestViewHidesEmptyDropdownWithoutMessage(t *testing.T) {
	m := New(Options{Data: fruit})
	m = typeText(m, "zzz")
	require.True(t, m.Opened())
	assert.Equal(t, 1, len(strings.Split(m.View(), "\n")))
}

func ptr(s string) *string { return &s }
