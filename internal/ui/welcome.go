package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderWelcome is the first-run overlay. Dismissing it is remembered
// across sessions.
func (m Model) renderWelcome() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)

	lines := []string{
		styles.Logo.Render("joshify"),
		"",
		styles.Text.Render("A portfolio that plays like a record collection."),
		"",
		styles.MutedText.Render("Projects are tracks. Employers are artists."),
		styles.MutedText.Render("Playlists group the work; the player keeps time."),
		"",
		styles.AccentText.Render("enter") + styles.MutedText.Render(" play a track    ") +
			styles.AccentText.Render("/") + styles.MutedText.Render(" search    ") +
			styles.AccentText.Render("?") + styles.MutedText.Render(" all keys"),
		"",
		styles.FaintText.Render("press any key to start listening"),
	}

	box := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(1, 4).
		Render(strings.Join(lines, "\n"))

	return centerIn(box, m.width, m.height, m.theme.Background)
}
