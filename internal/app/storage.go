package app

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/joshify/joshify/internal/prefs"
)

// prefsStore adapts the prefs file to the player's Storage port. Writes
// are mirrored to disk immediately; a failed write costs durability, not
// the session, so it is logged and swallowed.
type prefsStore struct {
	mu     sync.Mutex
	path   string
	cached prefs.Prefs
	logger *log.Logger
}

func newPrefsStore(path string, logger *log.Logger) *prefsStore {
	return &prefsStore{
		path:   path,
		cached: prefs.Load(path),
		logger: logger,
	}
}

func (s *prefsStore) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cached.Volume
}

func (s *prefsStore) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached.Volume = v
	s.persist()
}

func (s *prefsStore) WelcomeSeen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cached.WelcomeSeen
}

func (s *prefsStore) SetWelcomeSeen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached.WelcomeSeen = true
	s.persist()
}

// Theme returns the persisted UI theme name.
func (s *prefsStore) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cached.Theme
}

// SetTheme persists the UI theme name.
func (s *prefsStore) SetTheme(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached.Theme = name
	s.persist()
}

// persist writes the cached prefs; lock held by caller.
func (s *prefsStore) persist() {
	if err := prefs.Save(s.path, s.cached); err != nil && s.logger != nil {
		s.logger.Warn("prefs not saved", "err", err)
	}
}
