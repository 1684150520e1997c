package player

import (
	"time"

	"github.com/joshify/joshify/internal/catalog"
)

// View names the active screen. The values double as history entry tags.
type View string

const (
	ViewHome     View = "home"
	ViewPlaylist View = "playlist"
	ViewProject  View = "project"
	ViewProfile  View = "profile"
	ViewSearch   View = "search"
	ViewCompany  View = "company"
	ViewDomain   View = "domain"
)

// SelectionKind tags the navigation selection union.
type SelectionKind int

const (
	KindNone SelectionKind = iota
	KindProject
	KindPlaylist
	KindCompany
	KindDomain
)

// Selection is the current navigation target as an explicit tagged union.
// Exactly the field matching Kind is meaningful; a kind that does not match
// the active view renders nothing, it never crashes.
type Selection struct {
	Kind     SelectionKind
	Project  *catalog.Project
	Playlist *catalog.Playlist
	Company  string
	Domain   string
}

// NoSelection is the empty selection.
func NoSelection() Selection {
	return Selection{Kind: KindNone}
}

// SelectProject wraps a project selection.
func SelectProject(p *catalog.Project) Selection {
	return Selection{Kind: KindProject, Project: p}
}

// SelectPlaylist wraps a playlist selection.
func SelectPlaylist(pl *catalog.Playlist) Selection {
	return Selection{Kind: KindPlaylist, Playlist: pl}
}

// SelectCompany wraps a company selection.
func SelectCompany(name string) Selection {
	return Selection{Kind: KindCompany, Company: name}
}

// SelectDomain wraps a domain selection.
func SelectDomain(name string) Selection {
	return Selection{Kind: KindDomain, Domain: name}
}

// NavigationState is what the view layer renders from.
type NavigationState struct {
	View        View
	Selection   Selection
	SearchQuery string
}

// LyricsVariant selects which synthetic lyric set is displayed.
type LyricsVariant int

const (
	LyricsGenius LyricsVariant = iota
	LyricsLiteral
)

// PlaybackState is the now-playing half of the session.
//
// When Context is non-nil, TrackIndex is a valid index into its projects
// and Current matches that track whenever both were set by the same
// playback action. Playing a project outside any playlist leaves Context
// nil and TrackIndex 0.
type PlaybackState struct {
	Current    *catalog.Project
	IsPlaying  bool
	Context    *catalog.Playlist
	TrackIndex int
	Position   time.Duration
	Volume     float64
	Lyrics     LyricsVariant
}
