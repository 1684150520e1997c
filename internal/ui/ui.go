package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/joshify/joshify/internal/artwork"
	"github.com/joshify/joshify/internal/config"
	"github.com/joshify/joshify/internal/layout"
	"github.com/joshify/joshify/internal/player"
)

// Options configure the UI runtime.
type Options struct {
	Context   context.Context
	Session   *player.Session
	Config    *config.Config
	Gradients *artwork.Cache
	ThemeName string
	SaveTheme func(string)
	Logger    *log.Logger
}

const (
	tickInterval = time.Second
	seekStep     = 5 * time.Second
	volumeStep   = 0.05

	headerHeight = 2
	playerHeight = 3

	// Width thresholds for progressive disclosure.
	sidebarThreshold = 80
	rightPanelWidth  = 110
	compactPlayerBar = 90
)

// focusArea identifies which pane owns list navigation keys.
type focusArea int

const (
	focusMain focusArea = iota
	focusSidebar
)

// tickMsg drives the playback clock.
type tickMsg time.Time

// Model is the root Bubble Tea model.
type Model struct {
	ctx       context.Context
	session   *player.Session
	cfg       *config.Config
	gradients *artwork.Cache
	logger    *log.Logger

	keys      keyMap
	theme     Theme
	saveTheme func(string)

	width  int
	height int
	ready  bool

	// Snapshot of the session, refreshed after every action and tick.
	nav player.NavigationState
	pb  player.PlaybackState

	focus       focusArea
	cursor      int
	sideCursor  int
	searching   bool
	searchInput textinput.Model

	showHelp    bool
	showWelcome bool

	left      *layout.Resizer
	right     *layout.Resizer
	drag      *layout.Resizer
	liveLeft  int
	liveRight int

	strip layout.ScrollState
}

// New builds the root model from options.
func New(opts Options) Model {
	input := textinput.New()
	input.Placeholder = "What do you want to build?"
	input.CharLimit = 80
	input.Width = 32

	m := Model{
		ctx:         opts.Context,
		session:     opts.Session,
		cfg:         opts.Config,
		gradients:   opts.Gradients,
		logger:      opts.Logger,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.ThemeName),
		saveTheme:   opts.SaveTheme,
		searchInput: input,
		left:        layout.NewLeftResizer(),
		right:       layout.NewRightResizer(),
	}
	m.showWelcome = !opts.Session.WelcomeSeen()
	m.sync()
	return m
}

// sync refreshes the rendered snapshot from the session.
func (m *Model) sync() {
	m.nav, m.pb = m.session.Snapshot()
	m.clampCursor()
}

// Init schedules the first clock tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		if m.session.Advance(tickInterval) {
			m.logger.Debug("track boundary reached")
		}
		m.sync()
		return m, tick()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// View renders the full frame.
func (m Model) View() string {
	if !m.ready {
		return "Loading joshify..."
	}

	if m.showWelcome {
		return m.renderWelcome()
	}
	if m.showHelp {
		return m.renderHelp()
	}

	bodyHeight := m.height - headerHeight - playerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var columns []string
	mainWidth := m.width

	if m.sidebarVisible() {
		sw := m.sidebarWidth()
		columns = append(columns, m.renderSidebar(sw, bodyHeight))
		mainWidth -= sw + 1
	}

	var rightPane string
	if m.rightPanelVisible() {
		rw := m.rightWidth()
		rightPane = m.renderNowPlaying(rw, bodyHeight)
		mainWidth -= rw + 1
	}

	if mainWidth < 10 {
		mainWidth = 10
	}

	divider := m.renderDivider(bodyHeight)
	main := m.renderMain(mainWidth, bodyHeight)

	var body string
	switch {
	case len(columns) > 0 && rightPane != "":
		body = lipgloss.JoinHorizontal(lipgloss.Top, columns[0], divider, main, divider, rightPane)
	case len(columns) > 0:
		body = lipgloss.JoinHorizontal(lipgloss.Top, columns[0], divider, main)
	case rightPane != "":
		body = lipgloss.JoinHorizontal(lipgloss.Top, main, divider, rightPane)
	default:
		body = main
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderPlayerBar(),
	)
}

// renderDivider paints the one-column gutter between panes. It doubles as
// the drag handle for resizing.
func (m Model) renderDivider(height int) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Foreground(lipgloss.Color(m.theme.SurfaceAlt))
	col := ""
	for i := 0; i < height; i++ {
		if i > 0 {
			col += "\n"
		}
		col += style.Render("│")
	}
	return col
}

// Pane geometry. Live drag widths take over while a gesture is running so
// the panel follows the pointer without committing.

func (m Model) sidebarVisible() bool {
	return m.width >= sidebarThreshold || m.session.SidebarOpen()
}

func (m Model) sidebarWidth() int {
	if m.drag == m.left && m.left.Dragging() {
		return m.liveLeft
	}
	return m.left.Width()
}

func (m Model) rightPanelVisible() bool {
	return m.width >= rightPanelWidth && m.pb.Current != nil
}

func (m Model) rightWidth() int {
	if m.drag == m.right && m.right.Dragging() {
		return m.liveRight
	}
	return m.right.Width()
}

func (m Model) mainWidth() int {
	w := m.width
	if m.sidebarVisible() {
		w -= m.sidebarWidth() + 1
	}
	if m.rightPanelVisible() {
		w -= m.rightWidth() + 1
	}
	if w < 10 {
		w = 10
	}
	return w
}

// Run starts the Bubble Tea program and blocks until quit or cancellation.
func Run(opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("ui requires a player session")
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	p := tea.NewProgram(New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(opts.Context),
	)
	if _, err := p.Run(); err != nil && opts.Context.Err() == nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
