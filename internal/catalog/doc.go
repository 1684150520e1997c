// Package catalog holds the static portfolio content: projects rendered as
// playable tracks, and the playlists that group them. All data is built once
// at package init and treated as immutable afterwards.
package catalog
