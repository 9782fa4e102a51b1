package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tessera/internal/config"
	"github.com/alexisbeaulieu97/tessera/internal/logger"
	"github.com/alexisbeaulieu97/tessera/internal/widgets/datepicker"
	"github.com/alexisbeaulieu97/tessera/internal/widgets/pager"
)

func newGallery(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.Default(), nil)
	require.NoError(t, err)
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

// deliver runs cmd and feeds its message back, as the program loop would.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelStartsOnNavbar(t *testing.T) {
	m := newGallery(t)

	require.Equal(t, PaneNav, m.Focus())
	require.Equal(t, TargetPager, m.Selected())
	require.Equal(t, 7, m.Page())
	require.Empty(t, m.Events())
	require.NotNil(t, m.Init())
}

func TestNilConfigUsesDefaultGallery(t *testing.T) {
	m, err := NewModel(nil, nil)
	require.NoError(t, err)
	require.Equal(t, config.Default().Title, m.cfg.Title)
}

func TestSwitchFocusRoutesKeysToWidget(t *testing.T) {
	m := newGallery(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, PaneContent, m.Focus())

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 8, m.Page())
	m = deliver(t, m, cmd)
	require.Equal(t, []string{"pager: page 8"}, m.Events())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, PaneNav, m.Focus())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 8, m.Page(), "pager is blurred while the navbar has focus")
}

func TestNavbarActivationShowsWidget(t *testing.T) {
	m := newGallery(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = deliver(t, m, cmd)

	require.Equal(t, TargetAutocomplete, m.Selected())
	require.Equal(t, PaneContent, m.Focus())

	m, _ = send(t, m, runes("ban"))
	require.Equal(t, "ban", m.Value())

	m, _ = send(t, m, runes("q"))
	require.False(t, m.Quitting(), "q is typed into the input")
	require.Equal(t, "banq", m.Value())
}

func TestAutocompleteSubmissionIsRecorded(t *testing.T) {
	m := newGallery(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = deliver(t, m, cmd)

	m, _ = send(t, m, runes("blue"))
	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = deliver(t, m, cmd)

	require.Equal(t, "blueberry", m.Value())
	require.Equal(t, []string{`autocomplete: picked "blueberry"`}, m.Events())
}

func TestQuitKeys(t *testing.T) {
	m := newGallery(t)

	quit, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.True(t, quit.Quitting())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", quit.View())

	quit, cmd = send(t, m, runes("q"))
	require.True(t, quit.Quitting())
	require.NotNil(t, cmd)
}

func TestHelpToggle(t *testing.T) {
	m := newGallery(t)
	require.False(t, m.help.ShowAll)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyF1})
	require.True(t, m.help.ShowAll)
}

func TestWindowSizeResizesNavbar(t *testing.T) {
	m := newGallery(t)
	m, cmd := send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	require.Nil(t, cmd)
	require.Equal(t, 100, m.width)
	require.Equal(t, 30, m.height)
	require.Equal(t, 100, m.help.Width)
}

func TestEventsKeepTheMostRecent(t *testing.T) {
	m := newGallery(t)
	for page := 1; page <= 5; page++ {
		m, _ = send(t, m, pager.PageChangedMsg{Page: page})
	}
	require.Equal(t, []string{"pager: page 3", "pager: page 4", "pager: page 5"}, m.Events())
}

func TestDateEventsUseDisplayLayout(t *testing.T) {
	m := newGallery(t)

	m, _ = send(t, m, datepicker.DateChangedMsg{Date: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)})
	m, _ = send(t, m, datepicker.DateChangedMsg{})

	require.Equal(t, []string{"datepicker: March 5, 2024", "datepicker: cleared"}, m.Events())
}

func TestWidgetChangesAreLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Format: logger.FormatJSON, Writer: buf})
	require.NoError(t, err)

	m, err := NewModel(config.Default(), log)
	require.NoError(t, err)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	send(t, m, tea.KeyMsg{Type: tea.KeyEnd})

	assert.Contains(t, buf.String(), `"message":"page changed"`)
	assert.Contains(t, buf.String(), `"page":20`)
}

func TestPaneString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nav", PaneNav.String())
	assert.Equal(t, "content", PaneContent.String())
}
