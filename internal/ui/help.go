package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHelp shows the key reference as a full-screen overlay. Any key
// returns to the client.
func (m Model) renderHelp() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)

	sections := []struct {
		title string
		keys  []key.Binding
	}{
		{"Navigate", []key.Binding{m.keys.Home, m.keys.Profile, m.keys.Search, m.keys.Back, m.keys.Forward, m.keys.Escape}},
		{"Browse", []key.Binding{m.keys.Up, m.keys.Down, m.keys.Top, m.keys.Bottom, m.keys.Confirm, m.keys.Open, m.keys.Tab, m.keys.StripLeft, m.keys.StripRight}},
		{"Playback", []key.Binding{m.keys.PlayPause, m.keys.Next, m.keys.Previous, m.keys.SeekBack, m.keys.SeekFwd, m.keys.VolumeUp, m.keys.VolumeDown, m.keys.Lyrics, m.keys.Expand}},
		{"Interface", []key.Binding{m.keys.Sidebar, m.keys.CycleTheme, m.keys.Help, m.keys.Quit}},
	}

	var lines []string
	lines = append(lines, styles.Logo.Render(" joshify "), "")
	for _, sec := range sections {
		lines = append(lines, styles.Text.Bold(true).Render(sec.title))
		for _, b := range sec.keys {
			h := b.Help()
			lines = append(lines,
				"  "+styles.AccentText.Render(padRight(h.Key, 10))+styles.MutedText.Render(h.Desc))
		}
		lines = append(lines, "")
	}
	lines = append(lines, styles.FaintText.Render("press any key to close"))

	box := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))

	return centerIn(box, m.width, m.height, m.theme.Background)
}
