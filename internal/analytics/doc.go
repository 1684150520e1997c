// Package analytics records page views for navigated routes.
//
// The primary recorder writes to a local SQLite database; when the database
// cannot be opened the caller falls back to a log-only recorder. Recording
// is always best-effort: a failed insert is logged at warn level and
// dropped, never surfaced to the navigation path.
package analytics
