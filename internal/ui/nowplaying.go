package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderNowPlaying paints the right panel. Each row is tinted by the
// cover-art gradient, fading into the surface color towards the bottom the
// way the web clients do.
func (m Model) renderNowPlaying(width, height int) string {
	p := m.pb.Current
	if p == nil || height < 1 {
		return ""
	}

	grad := m.gradients.Get(m.cfg.AssetPath(p.Image))

	text := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text)).Bold(true)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))

	content := make([]string, 0, height)
	content = append(content, "", " Now Playing", "")
	content = append(content, " "+truncate(p.Title, width-2))
	content = append(content, " "+truncate(p.Artist, width-2))
	content = append(content, " "+truncate(string(p.Album), width-2))
	content = append(content, "")
	if m.pb.Context != nil {
		content = append(content, " "+truncate(fmt.Sprintf("Playlist: %s", m.pb.Context.Name), width-2))
		content = append(content, " "+truncate(fmt.Sprintf("Track %d of %d", m.pb.TrackIndex+1, len(m.pb.Context.Projects)), width-2))
		content = append(content, "")
	}
	for _, l := range wrap(p.Impact, width-2) {
		content = append(content, " "+l)
	}

	lines := make([]string, height)
	for i := 0; i < height; i++ {
		t := 0.0
		if height > 1 {
			t = float64(i) / float64(height-1)
		}
		rowBg := lipgloss.Color(grad.Blend(t))

		var body string
		if i < len(content) {
			style := muted
			if i == 1 || i == 3 {
				style = text
			}
			body = style.Background(rowBg).Render(content[i])
		}
		lines[i] = lipgloss.NewStyle().Background(rowBg).Width(width).Render(body)
	}

	return strings.Join(lines, "\n")
}
