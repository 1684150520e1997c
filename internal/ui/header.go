package ui

import (
	"fmt"

	"github.com/joshify/joshify/internal/player"
)

// renderHeader paints the two-line top bar: logo, history controls and the
// search box on the first line, the current location on the second.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("joshify", styles.Logo),
		bg.Render("‹", styles.MutedText) + bg.Space() + bg.Render("›", styles.MutedText),
	}

	if m.searching {
		parts = append(parts, m.searchInput.View())
	} else {
		hint := "/ search"
		if m.nav.SearchQuery != "" {
			hint = fmt.Sprintf("search: %q", m.nav.SearchQuery)
		}
		parts = append(parts, bg.Render(hint, styles.FaintText))
	}

	left := bg.Join(parts, "  ")
	right := bg.Render(m.theme.Name, styles.FaintText) + sep + bg.Render("? help", styles.FaintText)

	gap := m.width - lineWidth(left) - lineWidth(right)
	bar := left + bg.Spaces(gap) + right

	location := bg.Render(m.locationLabel(), styles.MutedText)
	return bg.FillLine(bar, m.width) + "\n" + bg.FillLine(bg.Space()+location, m.width)
}

// locationLabel names the active view the way a breadcrumb would.
func (m Model) locationLabel() string {
	sel := m.nav.Selection
	switch m.nav.View {
	case player.ViewHome:
		return "Home"
	case player.ViewProfile:
		return "Profile"
	case player.ViewSearch:
		if m.nav.SearchQuery == "" {
			return "Search"
		}
		return "Search › " + m.nav.SearchQuery
	case player.ViewPlaylist:
		if sel.Kind == player.KindPlaylist && sel.Playlist != nil {
			return "Playlist › " + sel.Playlist.Name
		}
	case player.ViewProject:
		if sel.Kind == player.KindProject && sel.Project != nil {
			return "Track › " + sel.Project.Title
		}
	case player.ViewCompany:
		if sel.Kind == player.KindCompany {
			return "Artist › " + sel.Company
		}
	case player.ViewDomain:
		if sel.Kind == player.KindDomain {
			return "Album › " + sel.Domain
		}
	}
	return ""
}
