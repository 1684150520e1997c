package ui

import (
	"testing"

	"github.com/joshify/joshify/internal/catalog"
	"github.com/joshify/joshify/internal/player"
)

func TestRows_HomeListsPlaylistsThenTracks(t *testing.T) {
	m := Model{nav: player.NavigationState{View: player.ViewHome}}
	rows := m.rows()

	wantLen := len(catalog.Playlists()) + len(catalog.Projects())
	if len(rows) != wantLen {
		t.Fatalf("home rows = %d, want %d", len(rows), wantLen)
	}
	if rows[0].kind != rowPlaylist {
		t.Fatal("home rows should start with playlists")
	}
	if rows[len(rows)-1].kind != rowProject {
		t.Fatal("home rows should end with tracks")
	}
}

func TestRows_PlaylistView(t *testing.T) {
	pl := catalog.PlaylistByName("Top Hits")
	if pl == nil {
		t.Fatal("Top Hits playlist missing")
	}
	m := Model{nav: player.NavigationState{
		View:      player.ViewPlaylist,
		Selection: player.SelectPlaylist(pl),
	}}
	rows := m.rows()
	if len(rows) != len(pl.Projects) {
		t.Fatalf("playlist rows = %d, want %d", len(rows), len(pl.Projects))
	}
	for i, r := range rows {
		if r.kind != rowProject || r.project.ID != pl.Projects[i].ID {
			t.Fatalf("row %d = %+v, want project %s", i, r, pl.Projects[i].ID)
		}
	}
}

func TestRows_MismatchedSelectionRendersNothing(t *testing.T) {
	// A playlist view holding a company selection is a restorable but
	// unrenderable state; it must yield no rows rather than panic.
	m := Model{nav: player.NavigationState{
		View:      player.ViewPlaylist,
		Selection: player.SelectCompany("Hark"),
	}}
	if rows := m.rows(); rows != nil {
		t.Fatalf("mismatched selection rows = %v, want nil", rows)
	}
}

func TestRows_NilEntityRendersNothing(t *testing.T) {
	m := Model{nav: player.NavigationState{
		View:      player.ViewPlaylist,
		Selection: player.SelectPlaylist(nil),
	}}
	if rows := m.rows(); rows != nil {
		t.Fatalf("nil playlist rows = %v, want nil", rows)
	}
}

func TestRows_EmptySearchQuery(t *testing.T) {
	m := Model{nav: player.NavigationState{View: player.ViewSearch}}
	if rows := m.rows(); rows != nil {
		t.Fatalf("empty query rows = %v, want nil", rows)
	}
}

func TestClampCursor(t *testing.T) {
	m := Model{nav: player.NavigationState{View: player.ViewHome}}
	m.cursor = 9999
	m.sideCursor = -3
	m.clampCursor()

	if want := len(m.rows()) - 1; m.cursor != want {
		t.Fatalf("cursor = %d, want %d", m.cursor, want)
	}
	if m.sideCursor != 0 {
		t.Fatalf("sideCursor = %d, want 0", m.sideCursor)
	}
}
