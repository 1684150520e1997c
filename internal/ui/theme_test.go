package ui

import (
	"testing"

	"github.com/joshify/joshify/internal/catalog"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Midnight" {
		t.Fatalf("ThemeNames()[0] = %q, want Midnight", names[0])
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	seen := map[string]struct{}{}
	name := ThemeNames()[0]
	for range ThemeNames() {
		seen[name] = struct{}{}
		name = NextTheme(name)
	}
	if name != ThemeNames()[0] {
		t.Fatalf("cycle did not return to start, got %q", name)
	}
	if len(seen) != len(ThemeNames()) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(ThemeNames()))
	}
}

func TestNextTheme_UnknownResets(t *testing.T) {
	if got := NextTheme("NoSuchTheme"); got != ThemeNames()[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, ThemeNames()[0])
	}
}

func TestGetTheme_UnknownDefaultsToMidnight(t *testing.T) {
	th := GetTheme("NoSuchTheme")
	if th.Name != "Midnight" {
		t.Fatalf("GetTheme(unknown).Name = %q, want Midnight", th.Name)
	}
}

func TestThemes_CoverEveryAlbum(t *testing.T) {
	albums := []catalog.Album{
		catalog.AlbumWebPlatform,
		catalog.AlbumDevTools,
		catalog.AlbumDataInfra,
		catalog.AlbumOpenSource,
	}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, album := range albums {
			if th.AlbumColors[album] == "" {
				t.Errorf("theme %s has no color for album %q", name, album)
			}
		}
	}
}
