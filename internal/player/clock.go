package player

import (
	"strconv"
	"strings"
	"time"

	"github.com/joshify/joshify/internal/catalog"
)

// TrackDuration parses a project's display duration ("3:42") into a real
// duration. Malformed values yield 0, which disables end-of-track handling
// for that project instead of breaking playback.
func TrackDuration(p *catalog.Project) time.Duration {
	if p == nil {
		return 0
	}
	parts := strings.SplitN(p.Duration, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	mins, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	secs, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || mins < 0 || secs < 0 || secs > 59 {
		return 0
	}
	return time.Duration(mins)*time.Minute + time.Duration(secs)*time.Second
}

// FormatPosition renders a playhead position as m:ss for the player bar.
func FormatPosition(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return strconv.Itoa(total/60) + ":" + pad(total%60)
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
