package pager

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tessera/internal/pagination"
)

func newModel(total, initial int, onChange func(int)) Model {
	return New(Options{Options: pagination.Options{
		Total:       total,
		Siblings:    1,
		Boundary:    1,
		InitialPage: initial,
		OnChange:    onChange,
	}})
}

func press(m Model, k string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch k {
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "home":
		msg = tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		msg = tea.KeyMsg{Type: tea.KeyEnd}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestUpdateNavigatesPages(t *testing.T) {
	var changes []int
	m := newModel(10, 5, func(page int) { changes = append(changes, page) })

	m, cmd := press(m, "right")
	require.Equal(t, 6, m.Page())
	require.NotNil(t, cmd)
	assert.Equal(t, PageChangedMsg{Page: 6}, cmd())

	m, _ = press(m, "h")
	require.Equal(t, 5, m.Page())

	m, _ = press(m, "end")
	require.Equal(t, 10, m.Page())

	m, _ = press(m, "g")
	require.Equal(t, 1, m.Page())

	require.Equal(t, []int{6, 5, 10, 1}, changes)
}

func TestUpdateClampsAtEdges(t *testing.T) {
	m := newModel(3, 3, nil)

	m, cmd := press(m, "l")
	require.Equal(t, 3, m.Page())
	require.NotNil(t, cmd, "navigation at the edge still notifies with the clamped page")
	assert.Equal(t, PageChangedMsg{Page: 3}, cmd())
}

func TestUpdateIgnoresKeysWhenBlurred(t *testing.T) {
	m := newModel(10, 2, nil)
	m.Blur()
	require.False(t, m.Focused())

	m, cmd := press(m, "right")
	require.Nil(t, cmd)
	require.Equal(t, 2, m.Page())

	m.Focus()
	m, _ = press(m, "right")
	require.Equal(t, 3, m.Page())
}

func TestUpdateIgnoresUnboundKeys(t *testing.T) {
	m := newModel(10, 2, nil)
	m, cmd := press(m, "x")
	require.Nil(t, cmd)
	require.Equal(t, 2, m.Page())

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	require.Nil(t, cmd)
	require.Equal(t, 2, updated.(Model).Page())
}

func TestControlledPagerWaitsForOwner(t *testing.T) {
	page := 4
	var requested int
	m := New(Options{Options: pagination.Options{
		Total:    10,
		Page:     &page,
		OnChange: func(p int) { requested = p },
	}})

	m, cmd := press(m, "right")
	require.Equal(t, 5, requested)
	require.Equal(t, PageChangedMsg{Page: 5}, cmd())
	require.Equal(t, 4, m.Page())

	m.Pager().Control(requested)
	require.Equal(t, 5, m.Page())
}

func TestViewRendersRange(t *testing.T) {
	m := newModel(10, 5, nil)
	view := m.View()

	for _, want := range []string{"‹", "1", "…", "4", "5", "6", "10", "›"} {
		assert.Contains(t, view, want)
	}
	assert.Equal(t, 2, strings.Count(view, "…"))
}

func TestViewUsesCustomLabels(t *testing.T) {
	m := New(Options{
		Options: pagination.Options{Total: 3},
		Label: func(t Target) string {
			switch t.Kind {
			case TargetPrev:
				return "prev"
			case TargetNext:
				return "next"
			default:
				return DefaultLabel(t)
			}
		},
	})

	view := m.View()
	assert.Contains(t, view, "prev")
	assert.Contains(t, view, "next")
	assert.Contains(t, view, "2")
}

func TestDefaultLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   Target
		expected string
	}{
		{"page", Target{Kind: TargetPage, Page: 12}, "12"},
		{"dots", Target{Kind: TargetDots}, "…"},
		{"prev", Target{Kind: TargetPrev}, "‹"},
		{"next", Target{Kind: TargetNext}, "›"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, DefaultLabel(tt.target))
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	require.Len(t, keys.ShortHelp(), 2)
	require.Len(t, keys.FullHelp(), 2)
}

func TestUpdateWithoutPagesEmitsNothing(t *testing.T) {
	var changes []int
	m := newModel(0, 0, func(page int) { changes = append(changes, page) })

	for _, k := range []string{"right", "left", "end", "home"} {
		var cmd tea.Cmd
		m, cmd = press(m, k)
		assert.Nil(t, cmd, k)
	}
	require.Empty(t, changes)
}
