package analytics

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Recorder accepts page-view notifications for canonical route paths.
type Recorder interface {
	Pageview(path string)
	Close() error
}

const schema = `
CREATE TABLE IF NOT EXISTS pageviews (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	session TEXT NOT NULL,
	path    TEXT NOT NULL,
	at      TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_pageviews_session ON pageviews(session);
`

// Store is a SQLite-backed Recorder. One session id is generated per
// process so a browsing session can be reconstructed later.
type Store struct {
	db      *sql.DB
	session string
	logger  *log.Logger
}

// Open creates or opens the pageview database at path. Use ":memory:" for
// an ephemeral store.
func Open(path string, logger *log.Logger) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create analytics dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping analytics db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate analytics db: %w", err)
	}

	return &Store{
		db:      db,
		session: uuid.New().String(),
		logger:  logger,
	}, nil
}

// Pageview records one view of path. Failures are logged and dropped.
func (s *Store) Pageview(path string) {
	_, err := s.db.Exec(
		"INSERT INTO pageviews (session, path, at) VALUES (?, ?, ?)",
		s.session, path, time.Now().UTC(),
	)
	if err != nil && s.logger != nil {
		s.logger.Warn("pageview dropped", "path", path, "err", err)
	}
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Session returns the session id attached to this store's pageviews.
func (s *Store) Session() string {
	return s.session
}

// Count returns the number of recorded pageviews, optionally filtered by
// path. It exists for the catalog/debug command surface and tests.
func (s *Store) Count(path string) (int, error) {
	var (
		n   int
		err error
	)
	if path == "" {
		err = s.db.QueryRow("SELECT COUNT(*) FROM pageviews").Scan(&n)
	} else {
		err = s.db.QueryRow("SELECT COUNT(*) FROM pageviews WHERE path = ?", path).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("count pageviews: %w", err)
	}
	return n, nil
}

// LogRecorder is the degraded Recorder used when the database is
// unavailable: pageviews go to the log and nowhere else.
type LogRecorder struct {
	logger *log.Logger
}

// NewLogRecorder returns a log-only Recorder.
func NewLogRecorder(logger *log.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

// Pageview logs the path at debug level.
func (r *LogRecorder) Pageview(path string) {
	if r.logger != nil {
		r.logger.Debug("pageview", "path", path)
	}
}

// Close implements Recorder.
func (r *LogRecorder) Close() error { return nil }

// Noop discards everything; wired by --no-analytics.
type Noop struct{}

// Pageview implements Recorder.
func (Noop) Pageview(string) {}

// Close implements Recorder.
func (Noop) Close() error { return nil }
