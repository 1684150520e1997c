// Package ui implements the joshify terminal interface with Bubble Tea.
//
// The layout mirrors the streaming-client look: a resizable playlist
// sidebar on the left, the active view in the middle, a now-playing panel
// on the right themed by the cover-art gradient, and a persistent player
// bar at the bottom. The UI renders from player.Session snapshots and
// feeds every interaction back through the session's actions; it never
// mutates navigation or playback state directly.
package ui
