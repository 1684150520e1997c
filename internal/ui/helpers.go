package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// truncate shortens s to at most max display cells, appending an ellipsis
// when anything was cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return runewidth.Truncate(s, max-1, "") + "…"
}

// padRight pads s with spaces to exactly width display cells, truncating
// when too long.
func padRight(s string, width int) string {
	s = truncate(s, width)
	gap := width - runewidth.StringWidth(s)
	for i := 0; i < gap; i++ {
		s += " "
	}
	return s
}

// lineWidth measures the display width of rendered content, ignoring
// escape sequences.
func lineWidth(s string) int {
	return lipgloss.Width(s)
}

// centerIn places content in a box of the given size over the background
// color.
func centerIn(content string, width, height int, bg string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(bg)))
}
