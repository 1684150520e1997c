package ui

import (
	"fmt"
	"strings"

	"github.com/joshify/joshify/internal/catalog"
	"github.com/joshify/joshify/internal/layout"
	"github.com/joshify/joshify/internal/player"
)

// renderSidebar paints the library panel. Below the icon width the panel
// collapses to glyphs only; the drag gesture on its right edge controls
// the width and the snap into icon mode.
func (m Model) renderSidebar(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	iconOnly := width <= layout.LeftIconWidth
	focused := m.focus == focusSidebar

	var lines []string
	if iconOnly {
		lines = append(lines, bg.FillLine(bg.Render("♪", styles.Logo), width))
	} else {
		title := bg.Render("Your Library", styles.MutedText)
		lines = append(lines, bg.FillLine(bg.Space()+title, width))
	}
	lines = append(lines, bg.FillLine("", width))

	playlists := catalog.Playlists()
	for i := range playlists {
		pl := &playlists[i]
		selected := focused && i == m.sideCursor
		active := m.nav.View == player.ViewPlaylist &&
			m.nav.Selection.Kind == player.KindPlaylist &&
			m.nav.Selection.Playlist != nil &&
			m.nav.Selection.Playlist.Name == pl.Name

		var line string
		if iconOnly {
			line = bg.Space() + bg.Render(pl.Icon, styles.Text)
		} else {
			label := fmt.Sprintf("%s %s", pl.Icon, pl.Name)
			meta := fmt.Sprintf("%d", len(pl.Projects))
			body := padRight(truncate(label, width-len(meta)-4), width-len(meta)-3)
			style := styles.Text
			if active {
				style = styles.GreenText
			}
			line = bg.Space() + bg.Render(body, style) + bg.Render(meta, styles.FaintText)
		}

		if selected {
			line = m.theme.Styles().Selected.Width(width).Render(stripToPlain(pl, iconOnly, width))
		}
		lines = append(lines, bg.FillLine(line, width))
	}

	for len(lines) < height {
		lines = append(lines, bg.FillLine("", width))
	}
	return strings.Join(lines[:height], "\n")
}

// stripToPlain renders the unstyled label for a selected playlist row so
// the selection background covers the whole line.
func stripToPlain(pl *catalog.Playlist, iconOnly bool, width int) string {
	if iconOnly {
		return " " + pl.Icon
	}
	return truncate(fmt.Sprintf(" %s %s (%d)", pl.Icon, pl.Name, len(pl.Projects)), width)
}
