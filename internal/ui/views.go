package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshify/joshify/internal/catalog"
	"github.com/joshify/joshify/internal/layout"
	"github.com/joshify/joshify/internal/player"
)

// Card geometry, in cells.
const (
	cardWidth   = 22
	cardGap     = 2
	cardRows    = 4
	gridMaxRows = 2
)

// renderMain dispatches the center pane. A selection whose kind does not
// match the view, or whose entity is gone, renders an empty body rather
// than failing.
func (m Model) renderMain(width, height int) string {
	var body string
	switch m.nav.View {
	case player.ViewHome:
		body = m.renderHome(width, height)
	case player.ViewPlaylist:
		if pl := m.nav.Selection.Playlist; m.nav.Selection.Kind == player.KindPlaylist && pl != nil {
			body = m.renderTrackList(width, pl.Name, pl.Description, pl.Projects)
		}
	case player.ViewCompany:
		if m.nav.Selection.Kind == player.KindCompany {
			name := m.nav.Selection.Company
			body = m.renderTrackList(width, name, "Artist", catalog.ProjectsByCompany(name))
		}
	case player.ViewDomain:
		if m.nav.Selection.Kind == player.KindDomain {
			name := m.nav.Selection.Domain
			body = m.renderTrackList(width, name, "Album", catalog.ProjectsByDomain(name))
		}
	case player.ViewSearch:
		body = m.renderSearch(width)
	case player.ViewProject:
		if p := m.nav.Selection.Project; m.nav.Selection.Kind == player.KindProject && p != nil {
			body = m.renderProject(width, p)
		}
	case player.ViewProfile:
		body = m.renderProfile(width)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Width(width).
		Height(height).
		MaxHeight(height).
		Render(body)
}

// renderHome shows the playlist shelf and the full track collection. The
// shelf becomes a horizontally scrolling strip when the pane is too narrow
// for every card.
func (m Model) renderHome(width, height int) string {
	bg := NewBgStyle(m.theme.Background)
	styles := m.theme.Styles().WithBackground(m.theme.Background)

	playlists := catalog.Playlists()
	projects := catalog.Projects()

	var sections []string

	shelf := m.renderCardShelf(width, playlistCards(playlists), 0)
	sections = append(sections,
		bg.FillLine(bg.Render("Playlists", styles.Text.Bold(true)), width),
		shelf,
	)

	grid := m.renderCardShelf(width, projectCards(projects), len(playlists))
	sections = append(sections,
		bg.FillLine(bg.Render("All Tracks", styles.Text.Bold(true)), width),
		grid,
	)

	return strings.Join(sections, "\n"+bg.FillLine("", width)+"\n")
}

// card is the renderable summary of a playlist or project.
type card struct {
	title string
	sub   string
	meta  string
	album catalog.Album
}

func playlistCards(playlists []catalog.Playlist) []card {
	out := make([]card, len(playlists))
	for i, pl := range playlists {
		out[i] = card{
			title: pl.Icon + " " + pl.Name,
			sub:   pl.Description,
			meta:  fmt.Sprintf("%d tracks", len(pl.Projects)),
		}
	}
	return out
}

func projectCards(projects []catalog.Project) []card {
	out := make([]card, len(projects))
	for i, p := range projects {
		out[i] = card{
			title: p.Title,
			sub:   p.Artist,
			meta:  fmt.Sprintf("%d · %s", p.Year, p.Duration),
			album: p.Album,
		}
	}
	return out
}

// renderCardShelf lays cards out per the grid plan: wrapped rows when they
// fit, a scrolling strip with edge affordances when they don't.
// cursorBase maps the shelf's card indices into the view's flat row list.
func (m Model) renderCardShelf(width int, cards []card, cursorBase int) string {
	bg := NewBgStyle(m.theme.Background)

	plan := layout.PlanGrid(layout.GridSpec{
		ContainerWidth: width,
		CardWidth:      cardWidth,
		Gap:            cardGap,
		MaxRows:        gridMaxRows,
	}, len(cards))

	if plan.CardsPerRow == 0 {
		return bg.FillLine("", width)
	}

	if plan.Mode == layout.GridFixed {
		var rows []string
		for start := 0; start < len(cards); start += plan.CardsPerRow {
			end := start + plan.CardsPerRow
			if end > len(cards) {
				end = len(cards)
			}
			rows = append(rows, m.renderCardRow(width, cards[start:end], cursorBase+start))
		}
		return strings.Join(rows, "\n")
	}

	// Scroll strip: translate the cell offset into a first visible card.
	scroll := m.stripState(len(cards), width)
	per := cardWidth + cardGap
	first := scroll.Offset / per
	last := first + plan.CardsPerRow
	if last > len(cards) {
		last = len(cards)
	}

	rowStr := m.renderCardRow(width, cards[first:last], cursorBase+first)

	styles := m.theme.Styles().WithBackground(m.theme.Background)
	leftGlyph, rightGlyph := " ", " "
	if scroll.CanScrollLeft() {
		leftGlyph = "‹"
	}
	if scroll.CanScrollRight() {
		rightGlyph = "›"
	}
	affordances := bg.Render(leftGlyph, styles.AccentText) +
		bg.Spaces(width-4) +
		bg.Render(rightGlyph, styles.AccentText)

	return rowStr + "\n" + bg.FillLine(affordances, width)
}

// sizedStrip binds the shared strip state to the pane geometry before a
// step, so the clamp sees real content and viewport widths.
func (m Model) sizedStrip() layout.ScrollState {
	n := len(catalog.Projects())
	if pl := len(catalog.Playlists()); pl > n {
		n = pl
	}
	return m.stripState(n, m.mainWidth())
}

// stripState sizes the shared scroll state against this shelf's content.
func (m Model) stripState(cardCount, viewportWidth int) layout.ScrollState {
	s := m.strip
	s.ContentWidth = cardCount*(cardWidth+cardGap) - cardGap
	if s.ContentWidth < 0 {
		s.ContentWidth = 0
	}
	s.ViewportWidth = viewportWidth
	if max := s.ContentWidth - s.ViewportWidth; max > 0 && s.Offset > max {
		s.Offset = max
	}
	return s
}

// renderCardRow renders one row of cards joined with gaps.
func (m Model) renderCardRow(width int, cards []card, cursorBase int) string {
	blocks := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		selected := m.focus == focusMain && m.cursor == cursorBase+i
		blocks = append(blocks, m.renderCard(c, selected))
		if i < len(cards)-1 {
			blocks = append(blocks, strings.Repeat(" ", cardGap))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Width(width).
		Render(row)
}

// renderCard paints a single fixed-size card.
func (m Model) renderCard(c card, selected bool) string {
	surface := m.theme.SurfaceAlt
	if selected {
		surface = m.theme.SelectionBg
	}
	styles := m.theme.Styles().WithBackground(surface)
	bg := NewBgStyle(surface)

	inner := cardWidth - 2
	lines := []string{
		bg.FillLine(bg.Space()+bg.Render(truncate(c.title, inner), styles.Text.Bold(true)), cardWidth),
		bg.FillLine(bg.Space()+bg.Render(truncate(c.sub, inner), styles.MutedText), cardWidth),
		bg.FillLine(bg.Space()+bg.Render(truncate(c.meta, inner), styles.FaintText), cardWidth),
	}
	if c.album != "" {
		lines = append(lines, bg.FillLine(bg.Space()+styles.AlbumBadge(c.album).Render(truncate(string(c.album), inner-2)), cardWidth))
	} else {
		lines = append(lines, bg.FillLine("", cardWidth))
	}
	return strings.Join(lines[:cardRows], "\n")
}

// renderSearch shows results for the committed query, or a prompt.
func (m Model) renderSearch(width int) string {
	bg := NewBgStyle(m.theme.Background)
	styles := m.theme.Styles().WithBackground(m.theme.Background)

	if m.nav.SearchQuery == "" {
		return bg.FillLine(bg.Render("Press / and type to search tracks, skills and artists.", styles.MutedText), width)
	}

	results := catalog.Search(m.nav.SearchQuery)
	if len(results) == 0 {
		return bg.FillLine(bg.Render(fmt.Sprintf("No results for %q.", m.nav.SearchQuery), styles.MutedText), width)
	}
	title := fmt.Sprintf("Results for %q", m.nav.SearchQuery)
	return m.renderTrackList(width, title, fmt.Sprintf("%d tracks", len(results)), results)
}

// renderProfile is the about page.
func (m Model) renderProfile(width int) string {
	bg := NewBgStyle(m.theme.Background)
	styles := m.theme.Styles().WithBackground(m.theme.Background)

	companies := catalog.Companies()
	domains := catalog.Domains()

	lines := []string{
		bg.FillLine(bg.Render("Josh", styles.Text.Bold(true)), width),
		bg.FillLine(bg.Render("Full-stack engineer. Ships web platforms, developer tools and data infrastructure.", styles.MutedText), width),
		bg.FillLine("", width),
		bg.FillLine(bg.Render(fmt.Sprintf("%d tracks · %d playlists", len(catalog.Projects()), len(catalog.Playlists())), styles.FaintText), width),
		bg.FillLine("", width),
		bg.FillLine(bg.Render("Artists", styles.Text.Bold(true)), width),
	}
	for _, c := range companies {
		lines = append(lines, bg.FillLine(bg.Spaces(2)+bg.Render(c, styles.AccentText), width))
	}
	lines = append(lines,
		bg.FillLine("", width),
		bg.FillLine(bg.Render("Albums", styles.Text.Bold(true)), width),
	)
	for _, d := range domains {
		lines = append(lines, bg.FillLine(bg.Spaces(2)+bg.Render(d, styles.AccentText), width))
	}
	return strings.Join(lines, "\n")
}
