package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	barStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	warnStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)
)

// statusBar renders the bottom row: file name on the left, an unobtrusive
// warning indicator in the middle when layout anomalies were recorded or
// the current render clipped words at the right edge, and the page
// position on the right.
func (m Model) statusBar(clipped int) string {
	left := barStyle.Render(m.displayName())

	var middle string
	if note := warningNote(len(m.session.Warnings()), clipped); note != "" {
		middle = warnStyle.Render(note)
	}

	right := barStyle.Render(fmt.Sprintf("page %d/%d", m.page, m.session.PageCount()))

	used := lipgloss.Width(left) + lipgloss.Width(middle) + lipgloss.Width(right)
	pad := m.width - used
	if pad < 0 {
		pad = 0
	}
	filler := barStyle.Render(strings.Repeat(" ", pad))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, middle, filler, right)
}

// warningNote composes the indicator text from resolver warnings and the
// current render's clipped-word count.
func warningNote(warnings, clipped int) string {
	switch {
	case warnings > 0 && clipped > 0:
		return fmt.Sprintf("! %d layout warnings, %d words clipped", warnings, clipped)
	case warnings > 0:
		return fmt.Sprintf("! %d layout warnings", warnings)
	case clipped > 0:
		return fmt.Sprintf("! %d words clipped", clipped)
	}
	return ""
}
