package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse implements the pane-resize gesture. A press on a divider
// column starts a drag; motion feeds the resizer and the live width is
// rendered immediately; release commits. The divider positions are read
// once at press time via the resizer anchors, so the gesture never chases
// its own layout changes.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.drag != nil {
			return m, nil
		}
		if m.sidebarVisible() && msg.X == m.sidebarWidth() {
			m.drag = m.left
			m.left.DragStart(0)
			m.liveLeft = m.left.Width()
		} else if m.rightPanelVisible() && msg.X == m.width-m.rightWidth()-1 {
			m.drag = m.right
			m.right.DragStart(m.width - 1)
			m.liveRight = m.right.Width()
		}

	case tea.MouseActionMotion:
		if m.drag == m.left {
			m.liveLeft = m.left.DragMove(msg.X)
		} else if m.drag == m.right {
			m.liveRight = m.right.DragMove(msg.X)
		}

	case tea.MouseActionRelease:
		// Release anywhere ends the gesture, even off the divider.
		if m.drag != nil {
			m.drag.DragEnd(msg.X)
			m.drag = nil
		}
	}

	return m, nil
}
