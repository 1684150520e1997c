package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the client.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding
	Tab        key.Binding

	// Views
	Home    key.Binding
	Profile key.Binding
	Search  key.Binding

	// History
	Back    key.Binding
	Forward key.Binding

	// List navigation
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Confirm key.Binding
	Open    key.Binding

	// Strip scrolling
	StripLeft  key.Binding
	StripRight key.Binding

	// Playback
	PlayPause  key.Binding
	Next       key.Binding
	Previous   key.Binding
	SeekFwd    key.Binding
	SeekBack   key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Lyrics     key.Binding
	Expand     key.Binding

	// Panels
	Sidebar key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close / home"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Switch pane"),
		),

		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "Home"),
		),
		Profile: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "Profile"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),

		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Forward"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "Bottom"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Play / open"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Track details"),
		),

		StripLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Scroll cards left"),
		),
		StripRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Scroll cards right"),
		),

		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Play/pause"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Next track"),
		),
		Previous: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Previous track"),
		),
		SeekFwd: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Seek +5s"),
		),
		SeekBack: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Seek -5s"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Volume up"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Volume down"),
		),
		Lyrics: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Toggle lyric mode"),
		),
		Expand: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Expand player"),
		),

		Sidebar: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Toggle sidebar"),
		),
	}
}
