package player

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/joshify/joshify/internal/prefs"
)

// Session is the single authority over navigation and playback state.
// All mutation goes through its action methods; readers get value
// snapshots. The lock discipline follows the single-writer store pattern:
// actions take the write lock, Snapshot takes the read lock.
type Session struct {
	mu sync.RWMutex

	nav NavigationState
	pb  PlaybackState

	// UI chrome owned by the session because navigation mutates it.
	sidebarOpen    bool
	playerExpanded bool

	hist      History
	storage   Storage
	analytics Analytics
	logger    *log.Logger
}

// Options wires a Session's collaborators. History is required; Storage
// and Analytics may be nil, in which case volume starts at the default and
// page views are skipped with a warning.
type Options struct {
	History   History
	Storage   Storage
	Analytics Analytics
	Logger    *log.Logger
}

// NewSession builds the session at the home view. When the history stack
// is empty an initial entry is synthesized via replace, so the first
// back-navigation always has somewhere to land.
func NewSession(opts Options) *Session {
	s := &Session{
		nav:       NavigationState{View: ViewHome, Selection: NoSelection()},
		hist:      opts.History,
		storage:   opts.Storage,
		analytics: opts.Analytics,
		logger:    opts.Logger,
	}

	s.pb.Volume = prefs.DefaultVolume
	if s.storage != nil {
		s.pb.Volume = s.storage.Volume()
	}

	if s.hist != nil && s.hist.Len() == 0 {
		s.navigate(s.nav.View, s.nav.Selection, "", true)
	}
	return s
}

// Snapshot returns the current navigation and playback state by value.
// The catalog pointers inside are immutable and safe to share.
func (s *Session) Snapshot() (NavigationState, PlaybackState) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nav, s.pb
}

// SidebarOpen reports whether the compact-layout sidebar overlay is open.
func (s *Session) SidebarOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebarOpen
}

// ToggleSidebar flips the compact-layout sidebar overlay.
func (s *Session) ToggleSidebar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = !s.sidebarOpen
}

// PlayerExpanded reports whether the full-screen now-playing overlay is up.
func (s *Session) PlayerExpanded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playerExpanded
}

// SetPlayerExpanded opens or closes the full-screen now-playing overlay.
func (s *Session) SetPlayerExpanded(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerExpanded = open
}

// WelcomeSeen reports whether the one-time welcome overlay was dismissed.
func (s *Session) WelcomeSeen() bool {
	if s.storage == nil {
		return true
	}
	return s.storage.WelcomeSeen()
}

// DismissWelcome marks the welcome overlay as seen, durably.
func (s *Session) DismissWelcome() {
	if s.storage != nil {
		s.storage.SetWelcomeSeen()
	}
}

// pageview notifies the analytics collaborator, skipping with a warning
// when it is absent. Never fails the caller.
func (s *Session) pageview(path string) {
	if s.analytics == nil {
		if s.logger != nil {
			s.logger.Warn("analytics unavailable, pageview skipped", "path", path)
		}
		return
	}
	s.analytics.Pageview(path)
}
