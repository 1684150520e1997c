package player

import (
	"testing"

	"github.com/joshify/joshify/internal/catalog"
)

func TestSlug(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Top Hits", "top-hits"},
		{"Meridian Labs", "meridian-labs"},
		{"  spaced   out  ", "spaced-out"},
		{"single", "single"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPath_Scheme(t *testing.T) {
	project := &catalog.Project{ID: "joshify"}
	playlist := &catalog.Playlist{Name: "Top Hits"}

	tests := []struct {
		name  string
		view  View
		sel   Selection
		query string
		want  string
	}{
		{"home", ViewHome, NoSelection(), "", "/"},
		{"project", ViewProject, SelectProject(project), "", "/project/joshify"},
		{"playlist", ViewPlaylist, SelectPlaylist(playlist), "", "/playlist/top-hits"},
		{"company", ViewCompany, SelectCompany("Meridian Labs"), "", "/company/meridian-labs"},
		{"domain", ViewDomain, SelectDomain("Developer Tools"), "", "/domain/developer-tools"},
		{"search with query", ViewSearch, NoSelection(), "react", "/search?q=react"},
		{"search empty query", ViewSearch, NoSelection(), "", "/search"},
		{"profile", ViewProfile, NoSelection(), "", "/profile"},
		{"unknown view", View("bogus"), NoSelection(), "", "/"},
		{"project without entity", ViewProject, SelectProject(nil), "", "/"},
		{"playlist without entity", ViewPlaylist, SelectPlaylist(nil), "", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Path(tt.view, tt.sel, tt.query); got != tt.want {
				t.Fatalf("Path = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPath_SearchQueryEscaped(t *testing.T) {
	got := Path(ViewSearch, NoSelection(), "design systems")
	if got != "/search?q=design+systems" {
		t.Fatalf("Path = %q", got)
	}
}
