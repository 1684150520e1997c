package ui

import (
	"fmt"
	"strings"

	"github.com/joshify/joshify/internal/catalog"
)

// renderTrackList paints a playlist-style table: header block, column row,
// then one line per track.
func (m Model) renderTrackList(width int, title, subtitle string, projects []catalog.Project) string {
	bg := NewBgStyle(m.theme.Background)
	styles := m.theme.Styles().WithBackground(m.theme.Background)

	lines := []string{
		bg.FillLine(bg.Render(truncate(title, width-1), styles.Text.Bold(true)), width),
	}
	if subtitle != "" {
		lines = append(lines, bg.FillLine(bg.Render(truncate(subtitle, width-1), styles.MutedText), width))
	}
	lines = append(lines,
		bg.FillLine("", width),
		bg.FillLine(m.trackColumns(width, bg, styles), width),
	)

	for i := range projects {
		lines = append(lines, m.renderTrackRow(width, i, &projects[i]))
	}

	if len(projects) == 0 {
		lines = append(lines, bg.FillLine(bg.Render("Nothing here yet.", styles.FaintText), width))
	}

	return strings.Join(lines, "\n")
}

// Column layout: "  # Title  Artist  Album  Year  m:ss". Narrow panes drop
// album and year.
func (m Model) trackColumns(width int, bg BgStyle, styles Styles) string {
	if width < 60 {
		return bg.Render(padRight("  #  Title", width-6), styles.FaintText) + bg.Render("  m:ss", styles.FaintText)
	}
	cols := padRight("  #", 5) + padRight("Title", titleCol(width)) + padRight("Artist", 16) + padRight("Album", 22) + "Time"
	return bg.Render(truncate(cols, width), styles.FaintText)
}

func titleCol(width int) int {
	w := width - 5 - 16 - 22 - 6
	if w < 10 {
		w = 10
	}
	return w
}

func (m Model) renderTrackRow(width, index int, p *catalog.Project) string {
	selected := m.focus == focusMain && m.cursor == index
	playing := m.pb.Current != nil && m.pb.Current.ID == p.ID

	surface := m.theme.Background
	if selected {
		surface = m.theme.SelectionBg
	}
	bg := NewBgStyle(surface)
	styles := m.theme.Styles().WithBackground(surface)

	num := fmt.Sprintf("%3d", index+1)
	if playing {
		glyph := "♪"
		if m.pb.IsPlaying {
			glyph = "▶"
		}
		num = "  " + glyph
	}

	numStyle := styles.FaintText
	titleStyle := styles.Text
	if playing {
		numStyle = styles.GreenText
		titleStyle = styles.GreenText
	}

	var line string
	if width < 60 {
		line = bg.Render(padRight(num, 5), numStyle) +
			bg.Render(padRight(p.Title, width-11), titleStyle) +
			bg.Render(p.Duration, styles.MutedText)
	} else {
		line = bg.Render(padRight(num, 5), numStyle) +
			bg.Render(padRight(p.Title, titleCol(width)), titleStyle) +
			bg.Render(padRight(p.Artist, 16), styles.MutedText) +
			bg.Render(padRight(string(p.Album), 22), styles.MutedText) +
			bg.Render(p.Duration, styles.MutedText)
	}

	return bg.FillLine(line, width)
}
