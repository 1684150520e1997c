package player

import (
	"net/url"
	"strings"
)

// Slug lowercases a display name and collapses whitespace runs into single
// hyphens: "Meridian Labs" -> "meridian-labs".
func Slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// Path computes the canonical route for a navigation state.
//
// Scheme: home "/", playlist "/playlist/{slug}", project "/project/{id}",
// company "/company/{slug}", domain "/domain/{slug}", search "/search?q=…"
// with the query string omitted when empty, profile "/profile". Anything
// unrecognized, including a selection missing its entity, falls back to "/".
func Path(view View, sel Selection, query string) string {
	switch view {
	case ViewHome:
		return "/"
	case ViewPlaylist:
		if sel.Playlist == nil {
			return "/"
		}
		return "/playlist/" + Slug(sel.Playlist.Name)
	case ViewProject:
		if sel.Project == nil {
			return "/"
		}
		return "/project/" + sel.Project.ID
	case ViewCompany:
		if sel.Company == "" {
			return "/"
		}
		return "/company/" + Slug(sel.Company)
	case ViewDomain:
		if sel.Domain == "" {
			return "/"
		}
		return "/domain/" + Slug(sel.Domain)
	case ViewSearch:
		if strings.TrimSpace(query) == "" {
			return "/search"
		}
		return "/search?q=" + url.QueryEscape(query)
	case ViewProfile:
		return "/profile"
	default:
		return "/"
	}
}
