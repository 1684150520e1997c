package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/joshify/joshify/internal/analytics"
	"github.com/joshify/joshify/internal/artwork"
	"github.com/joshify/joshify/internal/catalog"
	"github.com/joshify/joshify/internal/config"
	"github.com/joshify/joshify/internal/history"
	"github.com/joshify/joshify/internal/player"
	"github.com/joshify/joshify/internal/ui"
)

// Options configure the joshify application.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/joshify/prefs.toml
	AnalyticsDB string // overrides config when non-empty
	NoAnalytics bool
	LogLevel    string // overrides config when non-empty
}

// Run boots the joshify TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.AnalyticsDB != "" {
		cfg.AnalyticsDB = opts.AnalyticsDB
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	logger, closeLog := newLogger(cfg)
	defer closeLog()

	store := newPrefsStore(opts.PrefsPath, logger)

	recorder := openRecorder(cfg, opts.NoAnalytics, logger)
	defer recorder.Close()

	session := player.NewSession(player.Options{
		History:   history.New(),
		Storage:   store,
		Analytics: recorder,
		Logger:    logger,
	})

	// Warm the gradient cache so view switches never block on decode.
	gradients := artwork.NewCache()
	go gradients.Preload(ctx, coverPaths(cfg))

	return ui.Run(ui.Options{
		Context:   ctx,
		Session:   session,
		Config:    &cfg,
		Gradients: gradients,
		ThemeName: store.Theme(),
		SaveTheme: store.SetTheme,
		Logger:    logger,
	})
}

// newLogger builds the application logger. The TUI owns the terminal, so
// logs go to the configured file; when that fails logging is discarded
// rather than corrupting the screen.
func newLogger(cfg config.Config) (*log.Logger, func()) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	var w io.Writer = io.Discard
	closer := func() {}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err == nil {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			w = f
			closer = func() { _ = f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: true})
	logger.SetLevel(level)
	return logger, closer
}

// openRecorder opens the pageview store, degrading to log-only when the
// database is unavailable.
func openRecorder(cfg config.Config, disabled bool, logger *log.Logger) analytics.Recorder {
	if disabled {
		return analytics.Noop{}
	}
	store, err := analytics.Open(cfg.AnalyticsDB, logger)
	if err != nil {
		logger.Warn("analytics store unavailable, falling back to log-only", "err", err)
		return analytics.NewLogRecorder(logger)
	}
	return store
}

// coverPaths resolves every catalog image to its on-disk location for
// gradient preloading. CDN flavors have no local files to decode, so the
// list is empty there and extraction falls back per image.
func coverPaths(cfg config.Config) []string {
	if cfg.UseCDN {
		return nil
	}
	var paths []string
	for _, p := range catalog.Projects() {
		if p.Image != "" {
			paths = append(paths, cfg.AssetPath(p.Image))
		}
	}
	for _, pl := range catalog.Playlists() {
		if pl.Image != "" {
			paths = append(paths, cfg.AssetPath(pl.Image))
		}
	}
	return paths
}
