package ui

import (
	"strings"
	"testing"

	"github.com/joshify/joshify/internal/artwork"
	"github.com/joshify/joshify/internal/catalog"
	"github.com/joshify/joshify/internal/config"
	"github.com/joshify/joshify/internal/player"
)

func newProjectViewModel(t *testing.T, p *catalog.Project) Model {
	t.Helper()
	return Model{
		cfg:       &config.Config{},
		gradients: artwork.NewCache(),
		theme:     GetTheme("Midnight"),
		keys:      DefaultKeyMap(),
		nav: player.NavigationState{
			View:      player.ViewProject,
			Selection: player.SelectProject(p),
		},
	}
}

func TestRenderProjectBanner_TwoLines(t *testing.T) {
	p := catalog.ProjectByID("joshify")
	if p == nil {
		t.Fatal("joshify project missing")
	}
	m := newProjectViewModel(t, p)

	banner := m.renderProjectBanner(60, p)
	if len(banner) != 2 {
		t.Fatalf("banner has %d lines, want 2", len(banner))
	}
	if !strings.Contains(banner[0], p.Title) {
		t.Fatalf("banner missing title %q:\n%s", p.Title, banner[0])
	}
	if !strings.Contains(banner[1], p.Artist) {
		t.Fatalf("banner missing artist %q:\n%s", p.Artist, banner[1])
	}
}

func TestRenderProject_IncludesMetadataAndLyrics(t *testing.T) {
	p := catalog.ProjectByID("joshify")
	if p == nil {
		t.Fatal("joshify project missing")
	}
	m := newProjectViewModel(t, p)

	out := m.renderProject(80, p)
	if out == "" {
		t.Fatal("project view rendered empty")
	}
	for _, want := range []string{p.Title, p.Impact, string(p.Skills[0])} {
		if !strings.Contains(out, want) {
			t.Fatalf("project view missing %q", want)
		}
	}

	m.pb = player.PlaybackState{Lyrics: player.LyricsLiteral}
	plain := m.renderProject(80, p)
	if p.Lyrics.Literal != "" && !strings.Contains(plain, strings.Fields(p.Lyrics.Literal)[0]) {
		t.Fatal("literal lyric variant not rendered")
	}
}
