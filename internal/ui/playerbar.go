package ui

import (
	"fmt"
	"strings"

	"github.com/joshify/joshify/internal/player"
)

// renderPlayerBar paints the persistent three-line bottom bar: track
// identity, transport controls with the progress gauge, and the volume
// readout.
func (m Model) renderPlayerBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.pb.Current == nil {
		idle := bg.Render("Nothing playing. Pick a track and press enter.", styles.FaintText)
		return bg.FillLine("", m.width) + "\n" +
			bg.FillLine(bg.Space()+idle, m.width) + "\n" +
			bg.FillLine("", m.width)
	}

	p := m.pb.Current
	compact := m.width < compactPlayerBar

	// Line 1: identity and context.
	identity := bg.Render(truncate(p.Title, 30), styles.Text.Bold(true)) +
		bg.Spaces(2) +
		bg.Render(truncate(p.Artist, 20), styles.MutedText)
	if !compact && m.pb.Context != nil {
		ctx := fmt.Sprintf("from %s (%d/%d)", m.pb.Context.Name, m.pb.TrackIndex+1, len(m.pb.Context.Projects))
		identity += bg.Spaces(2) + bg.Render(ctx, styles.FaintText)
	}

	// Line 2: transport and progress.
	glyph := "▶"
	if m.pb.IsPlaying {
		glyph = "⏸"
	}
	controls := bg.Render("⏮", styles.MutedText) + bg.Space() +
		bg.Render(glyph, styles.GreenText) + bg.Space() +
		bg.Render("⏭", styles.MutedText)

	total := player.TrackDuration(p)
	elapsed := player.FormatPosition(m.pb.Position)
	length := player.FormatPosition(total)

	gaugeWidth := m.width - lineWidth(controls) - len(elapsed) - len(length) - 8
	gauge := renderGauge(gaugeWidth, float64(m.pb.Position), float64(total), m.theme)
	progress := controls + bg.Spaces(2) +
		bg.Render(elapsed, styles.FaintText) + bg.Space() +
		gauge + bg.Space() +
		bg.Render(length, styles.FaintText)

	// Line 3: volume.
	vol := fmt.Sprintf("vol %3.0f%%", m.pb.Volume*100)
	volLine := bg.Render(vol, styles.MutedText) + bg.Spaces(2) + bg.Render(renderVolume(m.pb.Volume), styles.AccentText)
	if m.session.PlayerExpanded() && !compact {
		volLine += bg.Spaces(4) + bg.Render(truncate(p.Impact, m.width-40), styles.FaintText)
	}

	return bg.FillLine(bg.Space()+identity, m.width) + "\n" +
		bg.FillLine(bg.Space()+progress, m.width) + "\n" +
		bg.FillLine(bg.Space()+volLine, m.width)
}

// renderGauge draws the elapsed/total progress bar.
func renderGauge(width int, pos, total float64, theme Theme) string {
	if width < 4 {
		width = 4
	}
	filled := 0
	if total > 0 {
		filled = int(pos / total * float64(width))
		if filled > width {
			filled = width
		}
	}
	bg := NewBgStyle(theme.Surface)
	styles := theme.Styles().WithBackground(theme.Surface)
	return bg.Render(strings.Repeat("━", filled), styles.GreenText) +
		bg.Render(strings.Repeat("─", width-filled), styles.FaintText)
}

// renderVolume draws a ten-step volume meter.
func renderVolume(v float64) string {
	steps := int(v*10 + 0.5)
	if steps > 10 {
		steps = 10
	}
	if steps < 0 {
		steps = 0
	}
	return strings.Repeat("▮", steps) + strings.Repeat("▯", 10-steps)
}
