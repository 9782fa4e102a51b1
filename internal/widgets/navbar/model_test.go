package navbar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tessera/internal/ui/components"
)

var sections = []Section{
	{Title: "Widgets", Links: []Link{
		{Label: "Pagination", Target: "pager"},
		{Label: "Autocomplete", Target: "autocomplete"},
		{Label: "Date picker", Target: "datepicker"},
	}, Grow: true},
	{Links: []Link{{Label: "About", Target: "about"}}},
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func options() Options {
	opts := DefaultOptions()
	opts.Sections = sections
	return opts
}

func TestNewFlattensLinksAndPlacesCursor(t *testing.T) {
	m := New(options())
	require.Len(t, m.Links(), 4)
	require.Equal(t, 0, m.Cursor())
	require.Equal(t, "", m.Active())

	opts := options()
	opts.DefaultActive = ptr("datepicker")
	m = New(opts)
	require.Equal(t, "datepicker", m.Active())
	require.Equal(t, 2, m.Cursor())
}

func TestUnknownDefaultIsIgnored(t *testing.T) {
	opts := options()
	opts.DefaultActive = ptr("missing")
	m := New(opts)
	require.Equal(t, "", m.Active())
	require.Equal(t, 0, m.Cursor())
}

func TestNavigationCrossesSectionsAndClamps(t *testing.T) {
	m := New(options())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.Cursor())

	for i := 0; i < 6; i++ {
		m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	}
	require.Equal(t, 3, m.Cursor())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	require.Equal(t, 2, m.Cursor())
}

func TestActivateSetsActiveAndEmits(t *testing.T) {
	var changes []string
	opts := options()
	opts.OnChange = func(target string) { changes = append(changes, target) }
	m := New(opts)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, "autocomplete", m.Active())
	require.Equal(t, []string{"autocomplete"}, changes)
	require.NotNil(t, cmd)
	assert.Equal(t, LinkActivatedMsg{Link: Link{Label: "Autocomplete", Target: "autocomplete"}}, cmd())
}

func TestControlledActiveWaitsForOwner(t *testing.T) {
	var requested string
	opts := options()
	opts.Active = ptr("pager")
	opts.OnChange = func(target string) { requested = target }
	m := New(opts)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, "autocomplete", requested)
	require.Equal(t, "pager", m.Active())

	m.Control(requested)
	require.Equal(t, "autocomplete", m.Active())

	m.Release()
	require.Equal(t, "", m.Active())
}

func TestSetActiveRejectsUnknownTarget(t *testing.T) {
	m := New(options())
	require.False(t, m.SetActive("nowhere").Accepted())
	require.True(t, m.SetActive("about").Accepted())
	require.Equal(t, "about", m.Active())
}

func TestBlurredNavbarIgnoresKeys(t *testing.T) {
	m := New(options())
	m.Blur()
	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyDown})
	require.Nil(t, cmd)
	require.Equal(t, 0, m.Cursor())

	m.Focus()
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, m.Cursor())
}

func TestEmptyNavbar(t *testing.T) {
	m := New(Options{})
	require.Equal(t, -1, m.Cursor())
	require.Equal(t, DefaultWidth, m.Width())

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	assert.NotPanics(t, func() { _ = m.View() })
}

func TestViewHasFixedWidth(t *testing.T) {
	opts := options()
	opts.Width = 20
	opts.Sections = append([]Section{{Title: "A title that is far too long for the column"}}, sections...)
	m := New(opts)

	view := m.View()
	for _, line := range strings.Split(view, "\n") {
		assert.Equal(t, 20, lipgloss.Width(line), "line %q", line)
	}
	assert.Contains(t, view, "Pagination")
	assert.Contains(t, view, "…")
}

func TestViewFillsHeightWithGrowSection(t *testing.T) {
	opts := options()
	opts.Height = 15
	m := New(opts)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 15)

	aboutRow := -1
	for i, line := range lines {
		if strings.Contains(line, "About") {
			aboutRow = i
		}
	}
	// Bottom padding is one row, so the trailing section sits just above it.
	require.Equal(t, 13, aboutRow)
}

func TestViewCutsOverflowingContent(t *testing.T) {
	opts := options()
	opts.Height = 3
	opts.Padding = components.SpacingSizeNone
	m := New(opts)

	view := m.View()
	require.Len(t, strings.Split(view, "\n"), 3)
	assert.NotContains(t, view, "About")
}

func TestViewWithoutHeightSizesToContent(t *testing.T) {
	opts := options()
	opts.Padding = components.SpacingSizeNone
	m := New(opts)

	// Title, three links and the second section's link.
	require.Len(t, strings.Split(m.View(), "\n"), 5)
}

func ptr(s string) *string { return &s }
