package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdftty/pdftty"
	"github.com/pdftty/pdftty/logger"
)

func loadedModel(t *testing.T) Model {
	t.Helper()
	s := pdftty.Open(pdftty.SamplePath)
	m := New(s, logger.Discard())

	msg := m.loadCmd()()
	loaded, ok := msg.(loadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)

	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	if s == "left" || s == "right" {
		if s == "left" {
			return tea.KeyMsg{Type: tea.KeyLeft}
		}
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestPageNavigation(t *testing.T) {
	m := loadedModel(t)
	require.Equal(t, 1, m.Page())

	m = update(t, m, key("l"))
	assert.Equal(t, 2, m.Page())

	// Already on the last page; navigation clamps.
	m = update(t, m, key("right"))
	assert.Equal(t, 2, m.Page())

	m = update(t, m, key("h"))
	assert.Equal(t, 1, m.Page())
	m = update(t, m, key("left"))
	assert.Equal(t, 1, m.Page())

	m = update(t, m, key("G"))
	assert.Equal(t, 2, m.Page())
	m = update(t, m, key("g"))
	assert.Equal(t, 1, m.Page())
}

func TestQuitKey(t *testing.T) {
	m := loadedModel(t)

	next, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, next.(Model).View())
}

func TestResizeRemapsGrid(t *testing.T) {
	m := loadedModel(t)

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	wide := m.View()

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	narrow := m.View()

	assert.NotEqual(t, wide, narrow)
	assert.Contains(t, wide, "Spatial Layout Engine")
}

func TestViewShowsStatusBar(t *testing.T) {
	m := loadedModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	assert.Contains(t, view, "sample document")
	assert.Contains(t, view, "page 1/2")
}

func TestViewShowsClippedIndicator(t *testing.T) {
	m := loadedModel(t)

	// Wide terminal: everything fits, no indicator.
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.NotContains(t, m.View(), "words clipped")

	// A 20-column terminal cannot hold the sample's lines; the truncation
	// must surface in the status bar.
	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.Contains(t, m.View(), "words clipped")
}

func TestWarningNote(t *testing.T) {
	assert.Equal(t, "", warningNote(0, 0))
	assert.Equal(t, "! 2 layout warnings", warningNote(2, 0))
	assert.Equal(t, "! 3 words clipped", warningNote(0, 3))
	assert.Equal(t, "! 1 layout warnings, 2 words clipped", warningNote(1, 2))
}

func TestLoadFailureKeepsViewerAlive(t *testing.T) {
	s := pdftty.Open("/nonexistent/doc.pdf")
	m := New(s, logger.Discard())
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	msg := m.loadCmd()()
	loaded := msg.(loadedMsg)
	require.Error(t, loaded.err)

	m = update(t, m, msg)
	view := m.View()
	assert.Contains(t, view, "failed to open")
	assert.Contains(t, view, "press r to retry")

	// Reload is still available.
	_, cmd := m.Update(key("r"))
	assert.NotNil(t, cmd)
}

func TestReloadTriggersLoad(t *testing.T) {
	m := loadedModel(t)

	next, cmd := m.Update(key("r"))
	require.NotNil(t, cmd)
	assert.True(t, strings.Contains(next.(Model).View(), "loading"))
}
