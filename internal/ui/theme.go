package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/joshify/joshify/internal/catalog"
)

// Theme defines colors for the terminal client.
type Theme struct {
	Name string

	// Base surfaces
	Background string // outermost background
	Surface    string // panels (sidebar, now playing, player bar)
	SurfaceAlt string // cards and hovered rows

	// Selection
	SelectionBg   string
	SelectionText string

	// Text
	Text   string
	Muted  string
	Faint  string
	Accent string // playing indicator, active controls
	Green  string // play glyphs
	Warn   string
	Danger string

	// Album badge colors, keyed by catalog album name.
	AlbumColors map[catalog.Album]string
}

// Styles returns pre-built lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().Background(lipgloss.Color(t.Background)),
		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),
		Card: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)),

		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		GreenText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Green)).Bold(true),
		WarnText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warn)),
		DangerText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)),

		Logo: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Green)).Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		albumColors: t.AlbumColors,
		background:  t.Background,
		muted:       t.Muted,
	}
}

// Styles contains the pre-built lipgloss styles for a theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style
	Card       lipgloss.Style

	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	GreenText  lipgloss.Style
	WarnText   lipgloss.Style
	DangerText lipgloss.Style

	Logo     lipgloss.Style
	Selected lipgloss.Style

	albumColors map[catalog.Album]string
	background  string
	muted       string
}

// AlbumBadge returns the badge style for an album category.
func (s Styles) AlbumBadge(album catalog.Album) lipgloss.Style {
	color := s.albumColors[album]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// WithBackground returns a copy with every text style carrying the given
// background, so styled segments never fall back to the terminal default.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	out.Background = s.Background.Background(bg)
	out.Surface = s.Surface.Background(bg)
	out.Card = s.Card.Background(bg)
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.GreenText = s.GreenText.Background(bg)
	out.WarnText = s.WarnText.Background(bg)
	out.DangerText = s.DangerText.Background(bg)
	out.Logo = s.Logo.Background(bg)
	out.Selected = s.Selected.Background(bg)
	return out
}

// Theme definitions

var themes = map[string]Theme{
	"Midnight": midnightTheme(),
	"Vinyl":    vinylTheme(),
	"Aurora":   auroraTheme(),
}

var themeOrder = []string{"Midnight", "Vinyl", "Aurora"}

// GetTheme returns a theme by name, defaulting to Midnight.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return midnightTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func midnightTheme() Theme {
	// The classic streaming-client dark palette.
	return Theme{
		Name: "Midnight",

		Background: "#121212",
		Surface:    "#181818",
		SurfaceAlt: "#282828",

		SelectionBg:   "#333333",
		SelectionText: "#ffffff",

		Text:   "#ffffff",
		Muted:  "#b3b3b3",
		Faint:  "#6a6a6a",
		Accent: "#1db954",
		Green:  "#1ed760",
		Warn:   "#ffa42b",
		Danger: "#f15e6c",

		AlbumColors: map[catalog.Album]string{
			catalog.AlbumWebPlatform: "#509bf5",
			catalog.AlbumDevTools:    "#af2896",
			catalog.AlbumDataInfra:   "#ff6437",
			catalog.AlbumOpenSource:  "#1db954",
		},
	}
}

func vinylTheme() Theme {
	// Warm sepia, browns and amber.
	return Theme{
		Name: "Vinyl",

		Background: "#1c1410",
		Surface:    "#261b15",
		SurfaceAlt: "#3a2a20",

		SelectionBg:   "#4a3628",
		SelectionText: "#f3e9dc",

		Text:   "#f3e9dc",
		Muted:  "#b59f8a",
		Faint:  "#7a6a5a",
		Accent: "#e8a849",
		Green:  "#c9a227",
		Warn:   "#e8a849",
		Danger: "#d06c5b",

		AlbumColors: map[catalog.Album]string{
			catalog.AlbumWebPlatform: "#8fb0c9",
			catalog.AlbumDevTools:    "#c98fb0",
			catalog.AlbumDataInfra:   "#d08f5a",
			catalog.AlbumOpenSource:  "#9cb06a",
		},
	}
}

func auroraTheme() Theme {
	// Cold blues with a cyan accent.
	return Theme{
		Name: "Aurora",

		Background: "#0b1221",
		Surface:    "#111a2e",
		SurfaceAlt: "#1b2942",

		SelectionBg:   "#24365a",
		SelectionText: "#dce6f5",

		Text:   "#dce6f5",
		Muted:  "#8fa3c4",
		Faint:  "#58688a",
		Accent: "#56c8d8",
		Green:  "#67d89a",
		Warn:   "#e0c060",
		Danger: "#e06c8a",

		AlbumColors: map[catalog.Album]string{
			catalog.AlbumWebPlatform: "#56a8e8",
			catalog.AlbumDevTools:    "#b084e0",
			catalog.AlbumDataInfra:   "#e09060",
			catalog.AlbumOpenSource:  "#67d89a",
		},
	}
}
