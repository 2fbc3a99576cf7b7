// Package tui implements the interactive viewer: a bubbletea program that
// maps the current page onto a grid sized to the terminal and re-maps on
// every resize. Load failures render as a diagnostic grid; the viewer
// stays alive so the user can retry or quit.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/pdftty/pdftty"
	"github.com/pdftty/pdftty/grid"
	"github.com/pdftty/pdftty/logger"
)

// loadedMsg reports a finished session load.
type loadedMsg struct {
	err error
}

// Model is the viewer's bubbletea model.
type Model struct {
	session *pdftty.Session
	log     logger.Logger

	width  int
	height int

	page     int
	loading  bool
	loadErr  error
	quitting bool
}

// New creates a viewer model for the session. The terminal is probed for
// an initial size so the first frame is usable before the first
// WindowSizeMsg arrives; non-TTY output falls back to 80x24.
func New(session *pdftty.Session, log logger.Logger) Model {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		width, height = w, h
	}
	return Model{
		session: session,
		log:     log,
		width:   width,
		height:  height,
		page:    1,
		loading: true,
	}
}

// Init starts the initial load.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		return loadedMsg{err: session.Load(context.Background())}
	}
}

// Update handles resize, navigation, reload, and quit.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case loadedMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err != nil {
			m.log.Error("load failed", "path", m.session.Path(), "error", msg.err)
			break
		}
		m.page = clampPage(m.page, m.session.PageCount())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			m.page = clampPage(m.page-1, m.session.PageCount())
		case "right", "l":
			m.page = clampPage(m.page+1, m.session.PageCount())
		case "g":
			m.page = 1
		case "G":
			m.page = clampPage(m.session.PageCount(), m.session.PageCount())
		case "r":
			m.loading = true
			m.loadErr = nil
			return m, m.loadCmd()
		}
	}
	return m, nil
}

// View renders the current page grid plus a one-row status bar. The grid
// is recomputed on every frame from the current dimensions.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	gridRows := m.height - 1
	if gridRows < 1 {
		gridRows = 1
	}

	var content string
	clipped := 0
	switch {
	case m.loading:
		content = grid.MessageGrid(gridRows, m.width, "loading "+m.displayName()).Render()
	case m.loadErr != nil:
		content = grid.MessageGrid(gridRows, m.width,
			fmt.Sprintf("failed to open %s\n%v\npress r to retry, q to quit",
				m.displayName(), m.loadErr)).Render()
	default:
		g := m.session.Grid(m.page, gridRows, m.width)
		content = g.Render()
		clipped = g.ClippedWords
	}

	return content + "\n" + m.statusBar(clipped)
}

// displayName returns the viewed file's name for the status bar.
func (m Model) displayName() string {
	if m.session.Path() == pdftty.SamplePath {
		return "sample document"
	}
	return filepath.Base(m.session.Path())
}

// Page returns the current 1-indexed page.
func (m Model) Page() int {
	return m.page
}

func clampPage(page, count int) int {
	if count < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > count {
		return count
	}
	return page
}

// Run starts the viewer program on the session and blocks until exit.
func Run(session *pdftty.Session, log logger.Logger) error {
	p := tea.NewProgram(New(session, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
