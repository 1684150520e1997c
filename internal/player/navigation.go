package player

import (
	"github.com/joshify/joshify/internal/catalog"
	"github.com/joshify/joshify/internal/history"
)

// NavigateTo pushes a new navigation state for the given view and
// selection. Opening any view closes the compact sidebar overlay.
func (s *Session) NavigateTo(view View, sel Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navigate(view, sel, "", false)
}

// NavigateToProject opens a project view and starts playing that project.
// The auto-play-on-view behavior is specific to projects; no other
// navigation target touches playback.
func (s *Session) NavigateToProject(p *catalog.Project) {
	if p == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navigate(ViewProject, SelectProject(p), "", false)
	s.startTrack(p)
	s.resolveContextFor(p, nil)
}

// Search navigates to the search view with the given query.
func (s *Session) Search(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navigate(ViewSearch, NoSelection(), query, false)
}

// navigate runs the full navigation protocol under the write lock:
// serialize, compute path, push or replace, emit pageview, then update
// in-memory state so history and state move together.
func (s *Session) navigate(view View, sel Selection, query string, replace bool) {
	entry := serialize(view, sel, query)
	path := Path(view, sel, query)

	if s.hist != nil {
		if replace {
			s.hist.Replace(entry)
		} else {
			s.hist.Push(entry)
		}
	}

	s.pageview(path)

	s.nav = NavigationState{View: view, Selection: sel, SearchQuery: query}
	s.sidebarOpen = false
}

// Back applies the previous history entry. When no entry exists the
// session resets to home with an empty selection and query, and the reset
// still counts as a page view.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hist == nil {
		return
	}
	entry, ok := s.hist.Back()
	s.applyRestored(entry, ok)
}

// Forward applies the next history entry, mirroring Back.
func (s *Session) Forward() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hist == nil {
		return
	}
	entry, ok := s.hist.Forward()
	s.applyRestored(entry, ok)
}

func (s *Session) applyRestored(entry history.Entry, ok bool) {
	if !ok {
		s.nav = NavigationState{View: ViewHome, Selection: NoSelection()}
		s.pageview(Path(ViewHome, NoSelection(), ""))
		return
	}

	nav := deserialize(entry)
	s.nav = nav
	s.pageview(Path(nav.View, nav.Selection, nav.SearchQuery))
}

// serialize builds the durable history snapshot: entity references by id
// or name only. Icons and other display-only fields never reach the stack.
func serialize(view View, sel Selection, query string) history.Entry {
	e := history.Entry{View: string(view), SearchQuery: query}
	switch sel.Kind {
	case KindProject:
		if sel.Project != nil {
			e.ProjectID = sel.Project.ID
		}
	case KindPlaylist:
		if sel.Playlist != nil {
			e.PlaylistName = sel.Playlist.Name
		}
	case KindCompany:
		e.Company = sel.Company
	case KindDomain:
		e.Domain = sel.Domain
	}
	return e
}

// deserialize resolves a restored entry against the catalog. A reference
// that no longer resolves keeps its kind with a nil entity; the view layer
// renders nothing for it rather than erroring.
func deserialize(e history.Entry) NavigationState {
	nav := NavigationState{View: View(e.View), SearchQuery: e.SearchQuery, Selection: NoSelection()}
	switch View(e.View) {
	case ViewProject:
		nav.Selection = SelectProject(catalog.ProjectByID(e.ProjectID))
	case ViewPlaylist:
		nav.Selection = SelectPlaylist(catalog.PlaylistByName(e.PlaylistName))
	case ViewCompany:
		nav.Selection = SelectCompany(e.Company)
	case ViewDomain:
		nav.Selection = SelectDomain(e.Domain)
	}
	return nav
}
