package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshify/joshify/internal/catalog"
	"github.com/joshify/joshify/internal/player"
)

// handleKey routes keyboard input. Overlays and search capture keys before
// the global bindings so typing a query never triggers playback.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showWelcome {
		m.showWelcome = false
		m.session.DismissWelcome()
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		next := NextTheme(m.theme.Name)
		m.theme = GetTheme(next)
		if m.saveTheme != nil {
			m.saveTheme(next)
		}

	case key.Matches(msg, m.keys.Escape):
		if m.nav.View != player.ViewHome {
			m.session.NavigateTo(player.ViewHome, player.NoSelection())
			m.cursor = 0
			m.sync()
		}

	case key.Matches(msg, m.keys.Tab):
		if m.sidebarVisible() {
			if m.focus == focusMain {
				m.focus = focusSidebar
			} else {
				m.focus = focusMain
			}
		}

	case key.Matches(msg, m.keys.Home):
		m.session.NavigateTo(player.ViewHome, player.NoSelection())
		m.cursor = 0
		m.sync()

	case key.Matches(msg, m.keys.Profile):
		m.session.NavigateTo(player.ViewProfile, player.NoSelection())
		m.sync()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue(m.nav.SearchQuery)
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.session.Back()
		m.cursor = 0
		m.sync()

	case key.Matches(msg, m.keys.Forward):
		m.session.Forward()
		m.cursor = 0
		m.sync()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Top):
		m.setCursor(0)

	case key.Matches(msg, m.keys.Bottom):
		m.setCursor(1 << 30)

	case key.Matches(msg, m.keys.Confirm):
		m.activate()

	case key.Matches(msg, m.keys.Open):
		if r, ok := m.currentRow(); ok && r.kind == rowProject {
			m.session.NavigateToProject(r.project)
			m.cursor = 0
			m.sync()
		}

	case key.Matches(msg, m.keys.StripLeft):
		m.strip = m.sizedStrip().Step(-1, cardWidth, cardGap)

	case key.Matches(msg, m.keys.StripRight):
		m.strip = m.sizedStrip().Step(1, cardWidth, cardGap)

	case key.Matches(msg, m.keys.PlayPause):
		m.session.TogglePlay()
		m.sync()

	case key.Matches(msg, m.keys.Next):
		m.session.PlayNext()
		m.sync()

	case key.Matches(msg, m.keys.Previous):
		m.session.PlayPrevious()
		m.sync()

	case key.Matches(msg, m.keys.SeekFwd):
		m.session.Seek(m.pb.Position + seekStep)
		m.sync()

	case key.Matches(msg, m.keys.SeekBack):
		m.session.Seek(m.pb.Position - seekStep)
		m.sync()

	case key.Matches(msg, m.keys.VolumeUp):
		m.session.SetVolume(m.pb.Volume + volumeStep)
		m.sync()

	case key.Matches(msg, m.keys.VolumeDown):
		m.session.SetVolume(m.pb.Volume - volumeStep)
		m.sync()

	case key.Matches(msg, m.keys.Lyrics):
		m.session.ToggleLyrics()
		m.sync()

	case key.Matches(msg, m.keys.Expand):
		m.session.SetPlayerExpanded(!m.session.PlayerExpanded())

	case key.Matches(msg, m.keys.Sidebar):
		m.session.ToggleSidebar()

	default:
		// Track detail shortcuts to the artist and album views.
		if m.nav.View == player.ViewProject && m.nav.Selection.Kind == player.KindProject && m.nav.Selection.Project != nil {
			p := m.nav.Selection.Project
			switch msg.String() {
			case "c":
				m.session.NavigateTo(player.ViewCompany, player.SelectCompany(p.Artist))
				m.cursor = 0
				m.sync()
				return m, nil
			case "v":
				m.session.NavigateTo(player.ViewDomain, player.SelectDomain(string(p.Album)))
				m.cursor = 0
				m.sync()
				return m, nil
			}
		}

		// Number keys jump straight to a playlist.
		if s := msg.String(); len(s) == 1 && s >= "1" && s <= "9" {
			playlists := catalog.Playlists()
			if i := int(s[0] - '1'); i < len(playlists) {
				m.session.NavigateTo(player.ViewPlaylist, player.SelectPlaylist(&playlists[i]))
				m.cursor = 0
				m.sync()
			}
		}
	}

	return m, nil
}

// handleSearchKey runs the query input. Enter commits the search through
// the session; Esc abandons the input without navigating.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.searchInput.Blur()
		m.session.Search(strings.TrimSpace(m.searchInput.Value()))
		m.cursor = 0
		m.sync()
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	if m.focus == focusSidebar {
		m.sideCursor += delta
	} else {
		m.cursor += delta
	}
	m.clampCursor()
}

func (m *Model) setCursor(v int) {
	if m.focus == focusSidebar {
		m.sideCursor = v
	} else {
		m.cursor = v
	}
	m.clampCursor()
}

func (m Model) currentRow() (row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

// activate runs the primary action for the focused entry: sidebar entries
// and playlist cards open the playlist, track rows start playback in the
// view's context, and home track cards open the project.
func (m *Model) activate() {
	if m.focus == focusSidebar {
		playlists := catalog.Playlists()
		if m.sideCursor < len(playlists) {
			m.session.NavigateTo(player.ViewPlaylist, player.SelectPlaylist(&playlists[m.sideCursor]))
			m.focus = focusMain
			m.cursor = 0
			m.sync()
		}
		return
	}

	r, ok := m.currentRow()
	if !ok {
		return
	}

	switch r.kind {
	case rowPlaylist:
		m.session.NavigateTo(player.ViewPlaylist, player.SelectPlaylist(r.playlist))
		m.cursor = 0
	case rowProject:
		switch m.nav.View {
		case player.ViewPlaylist:
			m.session.PlayProject(r.project, m.nav.Selection.Playlist)
		case player.ViewHome:
			m.session.NavigateToProject(r.project)
			m.cursor = 0
		default:
			m.session.PlayProject(r.project, nil)
		}
	}
	m.sync()
}
