package player

import (
	"time"

	"github.com/joshify/joshify/internal/catalog"
)

// PlayProject starts playing p. Playing the track that is already current
// toggles pause instead. A non-nil playlist is adopted as the playback
// context, resolving p's index within it (0 when not found). With no
// playlist argument, p is resolved against the existing context; when it
// is not found there the context is cleared so next/previous cannot jump
// to stale targets.
func (s *Session) PlayProject(p *catalog.Project, pl *catalog.Playlist) {
	if p == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pb.Current != nil && s.pb.Current.ID == p.ID {
		s.pb.IsPlaying = !s.pb.IsPlaying
		return
	}

	s.startTrack(p)
	s.resolveContextFor(p, pl)
}

// PlayNext advances within the playlist context. No context, or already at
// the last track: no-op, no wraparound.
func (s *Session) PlayNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance(1)
}

// PlayPrevious retreats within the playlist context, mirroring PlayNext.
func (s *Session) PlayPrevious() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance(-1)
}

// TogglePlay flips play/pause for the current track, if any.
func (s *Session) TogglePlay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pb.Current == nil {
		return
	}
	s.pb.IsPlaying = !s.pb.IsPlaying
}

// Seek moves the playhead, clamped to the track bounds.
func (s *Session) Seek(pos time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pb.Current == nil {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if d := TrackDuration(s.pb.Current); d > 0 && pos > d {
		pos = d
	}
	s.pb.Position = pos
}

// SetVolume sets the playback volume in [0,1] and mirrors it to durable
// storage on every change.
func (s *Session) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.pb.Volume = v
	if s.storage != nil {
		s.storage.SetVolume(v)
	}
}

// ToggleLyrics switches between the two lyric variants.
func (s *Session) ToggleLyrics() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pb.Lyrics == LyricsGenius {
		s.pb.Lyrics = LyricsLiteral
	} else {
		s.pb.Lyrics = LyricsGenius
	}
}

// Advance moves the playhead by delta while playing. When the playhead
// reaches the end of the track the session auto-advances: same behavior
// as PlayNext when a context exists and the index is not last, otherwise
// playback simply stops. Returns true when a track boundary was handled.
func (s *Session) Advance(delta time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pb.IsPlaying || s.pb.Current == nil {
		return false
	}

	s.pb.Position += delta
	d := TrackDuration(s.pb.Current)
	if d <= 0 || s.pb.Position < d {
		return false
	}

	// End of track.
	if s.pb.Context != nil && s.pb.TrackIndex < len(s.pb.Context.Projects)-1 {
		s.advance(1)
	} else {
		s.pb.IsPlaying = false
		s.pb.Position = d
	}
	return true
}

// startTrack makes p current and playing. Lock held by caller.
func (s *Session) startTrack(p *catalog.Project) {
	s.pb.Current = p
	s.pb.IsPlaying = true
	s.pb.Position = 0
}

// resolveContextFor updates the playlist context after p became current.
// Lock held by caller.
func (s *Session) resolveContextFor(p *catalog.Project, pl *catalog.Playlist) {
	if pl != nil {
		s.pb.Context = pl
		idx := pl.FindIndex(p.ID)
		if idx < 0 {
			idx = 0
		}
		s.pb.TrackIndex = idx
		return
	}

	if s.pb.Context != nil {
		if idx := s.pb.Context.FindIndex(p.ID); idx >= 0 {
			s.pb.TrackIndex = idx
			return
		}
		// Not part of the active playlist: drop the context entirely.
		s.pb.Context = nil
	}
	s.pb.TrackIndex = 0
}

// advance moves TrackIndex by dir within the context. Lock held by caller.
func (s *Session) advance(dir int) {
	if s.pb.Context == nil {
		return
	}
	next := s.pb.TrackIndex + dir
	if next < 0 || next >= len(s.pb.Context.Projects) {
		return
	}
	s.pb.TrackIndex = next
	s.startTrack(&s.pb.Context.Projects[next])
}
