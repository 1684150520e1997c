package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshify/joshify/internal/catalog"
	"github.com/joshify/joshify/internal/player"
)

// renderProject paints the track detail view: header band tinted with the
// cover-art gradient, metadata, skills, links, then the active lyric
// variant.
func (m Model) renderProject(width int, p *catalog.Project) string {
	bg := NewBgStyle(m.theme.Background)
	styles := m.theme.Styles().WithBackground(m.theme.Background)

	lines := m.renderProjectBanner(width, p)

	lines = append(lines,
		bg.FillLine("", width),
		bg.FillLine(bg.Render(truncate(p.Impact, width-1), styles.AccentText), width),
		bg.FillLine("", width),
	)
	for _, l := range wrap(p.Description, width-2) {
		lines = append(lines, bg.FillLine(bg.Space()+bg.Render(l, styles.MutedText), width))
	}

	if len(p.Skills) > 0 {
		badges := make([]string, len(p.Skills))
		for i, s := range p.Skills {
			badges[i] = styles.AlbumBadge(p.Album).Render(string(s))
		}
		lines = append(lines,
			bg.FillLine("", width),
			bg.FillLine(bg.Space()+strings.Join(badges, bg.Space()), width),
		)
	}

	var links []string
	if p.DemoURL != "" {
		links = append(links, "demo "+p.DemoURL)
	}
	if p.GithubURL != "" {
		links = append(links, "code "+p.GithubURL)
	}
	if len(links) > 0 {
		lines = append(lines,
			bg.FillLine("", width),
			bg.FillLine(bg.Space()+bg.Render(truncate(strings.Join(links, "   "), width-2), styles.FaintText), width),
		)
	}

	lines = append(lines, m.renderLyrics(width, p)...)
	lines = append(lines,
		bg.FillLine("", width),
		bg.FillLine(bg.Render("c artist view   v album view   l lyric mode", styles.FaintText), width),
	)

	return strings.Join(lines, "\n")
}

// renderProjectBanner tints the title block with the cover gradient.
func (m Model) renderProjectBanner(width int, p *catalog.Project) []string {
	grad := m.gradients.Get(m.cfg.AssetPath(p.Image))

	top := NewBgStyle(grad.Blend(0))
	mid := NewBgStyle(grad.Blend(0.5))

	title := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text)).Bold(true)
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))

	meta := fmt.Sprintf("%s · %s · %d · %s", p.Artist, p.Album, p.Year, p.Duration)
	return []string{
		top.FillLine(top.Space()+top.Render(truncate(p.Title, width-2), title), width),
		mid.FillLine(mid.Space()+mid.Render(truncate(meta, width-2), sub), width),
	}
}

// renderLyrics shows the active variant with its toggle label.
func (m Model) renderLyrics(width int, p *catalog.Project) []string {
	bg := NewBgStyle(m.theme.Background)
	styles := m.theme.Styles().WithBackground(m.theme.Background)

	label, text := "Lyrics", p.Lyrics.Genius
	if m.pb.Lyrics == player.LyricsLiteral {
		label, text = "Lyrics (plain English)", p.Lyrics.Literal
	}
	if text == "" {
		return nil
	}

	lines := []string{
		bg.FillLine("", width),
		bg.FillLine(bg.Render(label, styles.Text.Bold(true)), width),
	}
	for _, raw := range strings.Split(text, "\n") {
		for _, l := range wrap(raw, width-2) {
			lines = append(lines, bg.FillLine(bg.Space()+bg.Render(l, styles.MutedText), width))
		}
	}
	return lines
}

// wrap splits text into lines of at most width cells, breaking on spaces.
func wrap(text string, width int) []string {
	if width <= 0 || text == "" {
		return nil
	}
	words := strings.Fields(text)
	var lines []string
	var cur string
	for _, w := range words {
		switch {
		case cur == "":
			cur = w
		case lineWidth(cur)+1+lineWidth(w) <= width:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
