package catalog

import "strings"

// Skill identifies a technology or discipline exercised by a project.
type Skill string

// Album categorizes a project by the domain it belongs to.
type Album string

// Lyrics holds the two synthetic lyric variants for a project.
type Lyrics struct {
	Genius  string
	Literal string
}

// Project is a single portfolio entry rendered as a track.
//
// Identity is ID. Asset fields (Image, Canvas, MusicFile) are relative paths
// resolved against the configured asset base at render time; empty means the
// project has no such asset.
type Project struct {
	ID              string
	Title           string
	Artist          string // employer or "Josh" for personal work
	Album           Album
	Duration        string // display string, m:ss
	Image           string
	Year            int
	Impact          string
	Description     string
	Skills          []Skill
	DemoURL         string
	GithubURL       string
	Canvas          string
	AlbumArtBasedOn string
	MusicFile       string
	Lyrics          Lyrics
}

// Playlist is an ordered grouping of projects. Order is significant: it
// defines next/previous targets during playback.
type Playlist struct {
	Name        string
	Icon        string // glyph shown in the sidebar; never serialized
	Projects    []Project
	Description string
	Image       string
	Employer    bool
}

// FindIndex returns the position of the project with the given id, or -1.
func (p Playlist) FindIndex(projectID string) int {
	for i, proj := range p.Projects {
		if proj.ID == projectID {
			return i
		}
	}
	return -1
}

// ProjectByID returns the project with the given id, or nil.
func ProjectByID(id string) *Project {
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i]
		}
	}
	return nil
}

// PlaylistByName returns the playlist with the given display name, or nil.
func PlaylistByName(name string) *Playlist {
	for i := range playlists {
		if playlists[i].Name == name {
			return &playlists[i]
		}
	}
	return nil
}

// Projects returns all projects in catalog order.
func Projects() []Project {
	return projects
}

// Playlists returns all playlists in sidebar order.
func Playlists() []Playlist {
	return playlists
}

// Companies returns the distinct employers appearing as project artists,
// in first-seen order.
func Companies() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, p := range projects {
		if _, ok := seen[p.Artist]; ok {
			continue
		}
		seen[p.Artist] = struct{}{}
		out = append(out, p.Artist)
	}
	return out
}

// Domains returns the distinct album categories, in first-seen order.
func Domains() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, p := range projects {
		name := string(p.Album)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// ProjectsByCompany returns every project whose artist matches name.
func ProjectsByCompany(name string) []Project {
	var out []Project
	for _, p := range projects {
		if strings.EqualFold(p.Artist, name) {
			out = append(out, p)
		}
	}
	return out
}

// ProjectsByDomain returns every project whose album matches name.
func ProjectsByDomain(name string) []Project {
	var out []Project
	for _, p := range projects {
		if strings.EqualFold(string(p.Album), name) {
			out = append(out, p)
		}
	}
	return out
}

// Search returns projects whose title, artist, album, description or skills
// contain the query, case-insensitively. An empty query matches nothing.
func Search(query string) []Project {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Project
	for _, p := range projects {
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matchesQuery(p Project, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Artist), q) ||
		strings.Contains(strings.ToLower(string(p.Album)), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, s := range p.Skills {
		if strings.Contains(strings.ToLower(string(s)), q) {
			return true
		}
	}
	return false
}
