// Package player owns what is playing and what view is shown.
//
// A single Session is the only writer of navigation and playback state.
// Every view change runs the same protocol: serialize a history entry,
// compute the canonical route path, push (or replace) onto the history
// stack, record a page view, then update in-memory state. The history
// stack and the live state never diverge because no path skips a step.
// Playback changes never touch history; only navigation does.
//
// Collaborators are ports: History is the back/forward stack, Storage
// persists volume and the welcome flag, and Analytics receives page views
// best-effort. Implementations live elsewhere; the session only needs the
// interfaces, which keeps it testable with fakes.
package player
