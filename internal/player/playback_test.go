package player

import (
	"testing"
	"time"

	"github.com/joshify/joshify/internal/catalog"
)

func TestPlayProject_WithPlaylistResolvesIndex(t *testing.T) {
	s, _, _, _ := newTestSession()
	pl := catalog.PlaylistByName("Top Hits")
	p := &pl.Projects[2]

	s.PlayProject(p, pl)

	_, pb := s.Snapshot()
	if pb.Context != pl {
		t.Fatal("playlist context not adopted")
	}
	if pb.TrackIndex != 2 {
		t.Fatalf("TrackIndex = %d, want 2", pb.TrackIndex)
	}
	if pb.Current.ID != p.ID || !pb.IsPlaying {
		t.Fatalf("playback = %+v", pb)
	}
}

func TestPlayProject_NotInPlaylistDefaultsToZero(t *testing.T) {
	s, _, _, _ := newTestSession()
	pl := catalog.PlaylistByName("Meridian Labs")
	outsider := catalog.ProjectByID("joshify") // not in that playlist

	s.PlayProject(outsider, pl)

	_, pb := s.Snapshot()
	if pb.TrackIndex != 0 {
		t.Fatalf("TrackIndex = %d, want fallback 0", pb.TrackIndex)
	}
	if pb.Context != pl {
		t.Fatal("explicitly passed playlist must stay adopted")
	}
}

func TestPlayProject_ExistingContextResolution(t *testing.T) {
	s, _, _, _ := newTestSession()
	pl := catalog.PlaylistByName("Top Hits")
	s.PlayProject(&pl.Projects[0], pl)

	// Another track of the same playlist, no playlist argument: index is
	// resolved within the existing context.
	s.PlayProject(&pl.Projects[1], nil)
	_, pb := s.Snapshot()
	if pb.Context != pl || pb.TrackIndex != 1 {
		t.Fatalf("pb = %+v, want index 1 in same context", pb)
	}

	// A track outside the context clears it.
	outsider := catalog.ProjectByID("query-planner")
	if pl.FindIndex(outsider.ID) != -1 {
		t.Fatal("test setup: outsider must not be in Top Hits")
	}
	s.PlayProject(outsider, nil)
	_, pb = s.Snapshot()
	if pb.Context != nil {
		t.Fatal("stale playlist context must be cleared")
	}
	if pb.TrackIndex != 0 {
		t.Fatalf("TrackIndex = %d, want 0", pb.TrackIndex)
	}
}

func TestPlayProject_ToggleOnSecondCall(t *testing.T) {
	s, _, _, _ := newTestSession()
	p := catalog.ProjectByID("joshify")

	s.PlayProject(p, nil)
	_, pb := s.Snapshot()
	if !pb.IsPlaying {
		t.Fatal("first call should play")
	}

	s.PlayProject(p, nil)
	_, pb = s.Snapshot()
	if pb.IsPlaying {
		t.Fatal("second call should pause")
	}
	if pb.Current != p {
		t.Fatal("toggle must leave the current track unchanged")
	}

	s.PlayProject(p, nil)
	_, pb = s.Snapshot()
	if !pb.IsPlaying {
		t.Fatal("third call should resume")
	}
}

func TestPlayNextPrevious_NoWraparound(t *testing.T) {
	s, _, _, _ := newTestSession()
	pl := catalog.PlaylistByName("Side Quests")
	last := len(pl.Projects) - 1

	s.PlayProject(&pl.Projects[last], pl)
	s.PlayNext()
	_, pb := s.Snapshot()
	if pb.TrackIndex != last || pb.Current.ID != pl.Projects[last].ID {
		t.Fatalf("PlayNext at end moved state: %+v", pb)
	}

	s.PlayProject(&pl.Projects[0], pl)
	s.PlayPrevious()
	_, pb = s.Snapshot()
	if pb.TrackIndex != 0 || pb.Current.ID != pl.Projects[0].ID {
		t.Fatalf("PlayPrevious at start moved state: %+v", pb)
	}
}

func TestPlayNext_AdvancesAndForcesPlaying(t *testing.T) {
	s, _, _, _ := newTestSession()
	pl := catalog.PlaylistByName("Top Hits")

	s.PlayProject(&pl.Projects[0], pl)
	s.TogglePlay() // pause
	s.PlayNext()

	_, pb := s.Snapshot()
	if pb.TrackIndex != 1 {
		t.Fatalf("TrackIndex = %d, want 1", pb.TrackIndex)
	}
	if !pb.IsPlaying {
		t.Fatal("PlayNext must force playing")
	}
	if pb.Current.ID != pl.Projects[1].ID {
		t.Fatalf("Current = %q", pb.Current.ID)
	}
}

func TestPlayNextPrevious_NoContextIsNoop(t *testing.T) {
	s, _, _, _ := newTestSession()
	p := catalog.ProjectByID("joshify")
	s.PlayProject(p, nil)

	s.PlayNext()
	s.PlayPrevious()

	_, pb := s.Snapshot()
	if pb.Current != p {
		t.Fatal("next/previous without context must not change the track")
	}
}

func TestAdvance_AutoAdvancesAtTrackEnd(t *testing.T) {
	s, _, _, _ := newTestSession()
	pl := catalog.PlaylistByName("Top Hits")
	s.PlayProject(&pl.Projects[0], pl)

	d := TrackDuration(&pl.Projects[0])
	if d <= 0 {
		t.Fatal("test setup: first track needs a parseable duration")
	}

	ended := s.Advance(d + time.Second)
	if !ended {
		t.Fatal("Advance past duration should report a boundary")
	}

	_, pb := s.Snapshot()
	if pb.TrackIndex != 1 || !pb.IsPlaying {
		t.Fatalf("auto-advance pb = %+v", pb)
	}
	if pb.Position != 0 {
		t.Fatalf("Position = %v, want reset", pb.Position)
	}
}

func TestAdvance_StopsAtPlaylistEnd(t *testing.T) {
	s, _, _, _ := newTestSession()
	pl := catalog.PlaylistByName("Side Quests")
	last := len(pl.Projects) - 1
	s.PlayProject(&pl.Projects[last], pl)

	d := TrackDuration(&pl.Projects[last])
	s.Advance(d + time.Second)

	_, pb := s.Snapshot()
	if pb.IsPlaying {
		t.Fatal("end of last track must stop playback, not loop")
	}
	if pb.TrackIndex != last {
		t.Fatalf("TrackIndex = %d, want unchanged %d", pb.TrackIndex, last)
	}
}

func TestAdvance_WhilePausedDoesNothing(t *testing.T) {
	s, _, _, _ := newTestSession()
	p := catalog.ProjectByID("joshify")
	s.PlayProject(p, nil)
	s.TogglePlay()

	s.Advance(10 * time.Second)
	_, pb := s.Snapshot()
	if pb.Position != 0 {
		t.Fatalf("Position = %v, want 0 while paused", pb.Position)
	}
}

func TestSetVolume_MirrorsToStorage(t *testing.T) {
	s, _, storage, _ := newTestSession()

	s.SetVolume(0.3)
	if storage.Volume() != 0.3 {
		t.Fatalf("stored volume = %v, want 0.3", storage.Volume())
	}

	s.SetVolume(1.7)
	_, pb := s.Snapshot()
	if pb.Volume != 1 || storage.Volume() != 1 {
		t.Fatalf("volume = %v / stored %v, want clamp to 1", pb.Volume, storage.Volume())
	}
	if storage.volumeSets != 2 {
		t.Fatalf("volumeSets = %d, want a mirror per change", storage.volumeSets)
	}
}

func TestNewSession_ReadsInitialVolume(t *testing.T) {
	storage := newFakeStorage()
	storage.SetVolume(0.25)
	storage.volumeSets = 0

	s := NewSession(Options{Storage: storage})
	_, pb := s.Snapshot()
	if pb.Volume != 0.25 {
		t.Fatalf("initial volume = %v, want 0.25", pb.Volume)
	}
}

func TestSeek_ClampsToTrackBounds(t *testing.T) {
	s, _, _, _ := newTestSession()
	p := catalog.ProjectByID("joshify") // 3:42
	s.PlayProject(p, nil)

	s.Seek(-5 * time.Second)
	_, pb := s.Snapshot()
	if pb.Position != 0 {
		t.Fatalf("Position = %v, want 0", pb.Position)
	}

	s.Seek(time.Hour)
	_, pb = s.Snapshot()
	if pb.Position != TrackDuration(p) {
		t.Fatalf("Position = %v, want track end", pb.Position)
	}
}

func TestToggleLyrics(t *testing.T) {
	s, _, _, _ := newTestSession()
	_, pb := s.Snapshot()
	if pb.Lyrics != LyricsGenius {
		t.Fatalf("default lyrics = %v", pb.Lyrics)
	}
	s.ToggleLyrics()
	_, pb = s.Snapshot()
	if pb.Lyrics != LyricsLiteral {
		t.Fatal("toggle should switch to the literal variant")
	}
}

func TestTrackDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"3:42", 3*time.Minute + 42*time.Second},
		{"0:07", 7 * time.Second},
		{"10:00", 10 * time.Minute},
		{"bogus", 0},
		{"3:61", 0},
		{"", 0},
	}
	for _, tt := range tests {
		p := &catalog.Project{Duration: tt.in}
		if got := TrackDuration(p); got != tt.want {
			t.Errorf("TrackDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if TrackDuration(nil) != 0 {
		t.Error("TrackDuration(nil) should be 0")
	}
}

func TestFormatPosition(t *testing.T) {
	if got := FormatPosition(222 * time.Second); got != "3:42" {
		t.Fatalf("FormatPosition = %q", got)
	}
	if got := FormatPosition(7 * time.Second); got != "0:07" {
		t.Fatalf("FormatPosition = %q", got)
	}
	if got := FormatPosition(-time.Second); got != "0:00" {
		t.Fatalf("FormatPosition = %q", got)
	}
}
