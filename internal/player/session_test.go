package player

import (
	"sync"

	"github.com/joshify/joshify/internal/history"
	"github.com/joshify/joshify/internal/prefs"
)

// fakeStorage is an in-memory Storage for tests.
type fakeStorage struct {
	mu          sync.Mutex
	volume      float64
	volumeSets  int
	welcomeSeen bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{volume: prefs.DefaultVolume}
}

func (f *fakeStorage) Volume() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.volume
}

func (f *fakeStorage) SetVolume(v float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volume = v
	f.volumeSets++
}

func (f *fakeStorage) WelcomeSeen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.welcomeSeen
}

func (f *fakeStorage) SetWelcomeSeen() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.welcomeSeen = true
}

// fakeAnalytics records every pageview path in order.
type fakeAnalytics struct {
	mu    sync.Mutex
	paths []string
}

func (f *fakeAnalytics) Pageview(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, path)
}

func (f *fakeAnalytics) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.paths))
	copy(out, f.paths)
	return out
}

func (f *fakeAnalytics) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.paths) == 0 {
		return ""
	}
	return f.paths[len(f.paths)-1]
}

// newTestSession wires a session with a fresh stack and fakes.
func newTestSession() (*Session, *history.Stack, *fakeStorage, *fakeAnalytics) {
	stack := history.New()
	storage := newFakeStorage()
	rec := &fakeAnalytics{}
	s := NewSession(Options{History: stack, Storage: storage, Analytics: rec})
	return s, stack, storage, rec
}
