// Package history provides an in-process navigation history stack with
// browser-style push/replace and back/forward cursor semantics. The player
// session is its only writer; the UI drives back/forward through the
// session's actions.
package history
