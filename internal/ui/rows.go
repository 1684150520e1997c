package ui

import (
	"github.com/joshify/joshify/internal/catalog"
	"github.com/joshify/joshify/internal/player"
)

// rowKind tags what a selectable row points at.
type rowKind int

const (
	rowPlaylist rowKind = iota
	rowProject
)

// row is one selectable entry in the active view.
type row struct {
	kind     rowKind
	project  *catalog.Project
	playlist *catalog.Playlist
}

// rows returns the selectable entries for the current view, in render
// order. Views without lists return nil and ignore cursor keys.
func (m Model) rows() []row {
	switch m.nav.View {
	case player.ViewHome:
		return homeRows()
	case player.ViewPlaylist:
		if pl := m.nav.Selection.Playlist; pl != nil && m.nav.Selection.Kind == player.KindPlaylist {
			return projectRows(pl.Projects)
		}
	case player.ViewCompany:
		if m.nav.Selection.Kind == player.KindCompany {
			return projectRows(catalog.ProjectsByCompany(m.nav.Selection.Company))
		}
	case player.ViewDomain:
		if m.nav.Selection.Kind == player.KindDomain {
			return projectRows(catalog.ProjectsByDomain(m.nav.Selection.Domain))
		}
	case player.ViewSearch:
		if m.nav.SearchQuery != "" {
			return projectRows(catalog.Search(m.nav.SearchQuery))
		}
	}
	return nil
}

// homeRows lists every playlist card followed by every track card.
func homeRows() []row {
	playlists := catalog.Playlists()
	projects := catalog.Projects()
	out := make([]row, 0, len(playlists)+len(projects))
	for i := range playlists {
		out = append(out, row{kind: rowPlaylist, playlist: &playlists[i]})
	}
	for i := range projects {
		out = append(out, row{kind: rowProject, project: &projects[i]})
	}
	return out
}

func projectRows(projects []catalog.Project) []row {
	out := make([]row, len(projects))
	for i := range projects {
		out[i] = row{kind: rowProject, project: &projects[i]}
	}
	return out
}

// clampCursor keeps both pane cursors inside their lists after any state
// change.
func (m *Model) clampCursor() {
	if n := len(m.rows()); n == 0 {
		m.cursor = 0
	} else if m.cursor >= n {
		m.cursor = n - 1
	}
	if n := len(catalog.Playlists()); n == 0 {
		m.sideCursor = 0
	} else if m.sideCursor >= n {
		m.sideCursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.sideCursor < 0 {
		m.sideCursor = 0
	}
}
