package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything joshify needs at startup.
type Config struct {
	AssetDir    string `toml:"asset_dir" env:"JOSHIFY_ASSET_DIR"`
	CDNBase     string `toml:"cdn_base" env:"JOSHIFY_CDN_BASE"`
	UseCDN      bool   `toml:"use_cdn" env:"JOSHIFY_USE_CDN"`
	AnalyticsDB string `toml:"analytics_db" env:"JOSHIFY_ANALYTICS_DB"`
	LogFile     string `toml:"log_file" env:"JOSHIFY_LOG_FILE"`
	LogLevel    string `toml:"log_level" env:"JOSHIFY_LOG_LEVEL"`
}

const (
	defaultConfigPath  = "~/.config/joshify/config.toml"
	defaultAssetDir    = "~/.local/share/joshify/assets"
	defaultAnalyticsDB = "~/.local/share/joshify/pageviews.db"
	defaultLogFile     = "~/.local/share/joshify/joshify.log"
	defaultLogLevel    = "info"
)

// Load locates and parses the config, falling back to defaults when missing,
// then applies environment overrides on top.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
	} else {
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env overrides: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func defaults() Config {
	return Config{
		AssetDir:    defaultAssetDir,
		AnalyticsDB: defaultAnalyticsDB,
		LogFile:     defaultLogFile,
		LogLevel:    defaultLogLevel,
	}
}

func (c *Config) normalize() {
	if strings.TrimSpace(c.AssetDir) == "" {
		c.AssetDir = defaultAssetDir
	}
	if strings.TrimSpace(c.AnalyticsDB) == "" {
		c.AnalyticsDB = defaultAnalyticsDB
	}
	if strings.TrimSpace(c.LogFile) == "" {
		c.LogFile = defaultLogFile
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = defaultLogLevel
	}
	c.AssetDir = mustExpand(c.AssetDir)
	c.AnalyticsDB = mustExpand(c.AnalyticsDB)
	c.LogFile = mustExpand(c.LogFile)
}

// AssetPath resolves a catalog-relative asset reference to a local path or
// CDN URL depending on the configured flavor. Empty refs stay empty.
func (c Config) AssetPath(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if c.UseCDN && c.CDNBase != "" {
		return strings.TrimRight(c.CDNBase, "/") + "/" + ref
	}
	return filepath.Join(c.AssetDir, filepath.FromSlash(ref))
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
