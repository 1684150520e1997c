// Package prefs handles joshify user preferences persistence.
// Preferences are stored in ~/.config/joshify/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds durable user state: the player volume, whether the one-time
// welcome overlay has been dismissed, and the UI theme.
type Prefs struct {
	Volume      float64 `toml:"volume"`
	WelcomeSeen bool    `toml:"welcome_seen"`
	Theme       string  `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/joshify/prefs.toml"
	defaultTheme     = "Midnight"

	// DefaultVolume is used when no stored volume exists.
	DefaultVolume = 0.75
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if
// missing or unreadable. Load never fails: a broken prefs file costs the
// user their settings, not their session.
func Load(path string) Prefs {
	defaults := Prefs{Volume: DefaultVolume, Theme: defaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return defaults
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults
		}
		return defaults
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return defaults
	}

	prefs := defaults
	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return defaults
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	prefs.Volume = clampVolume(prefs.Volume)

	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	p.Volume = clampVolume(p.Volume)

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
