package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/gutter/internal/comic"
	"github.com/five82/gutter/internal/overlay"
)

// Config holds the viewer settings.
type Config struct {
	ImageBase     string
	PagePattern   string
	ThumbPattern  string
	FadeDelay     time.Duration
	CloseDelay    time.Duration
	BookmarksPath string
	LogFile       string
	LogLevel      string
	Theme         string
}

const (
	appName          = "gutter"
	defaultImageBase = "~/comics"
	defaultLogLevel  = "info"
)

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ImageBase:     mustExpand(defaultImageBase),
		PagePattern:   comic.DefaultPagePattern,
		ThumbPattern:  comic.DefaultThumbPattern,
		FadeDelay:     overlay.DefaultFadeDelay,
		CloseDelay:    overlay.DefaultCloseDelay,
		BookmarksPath: filepath.Join(xdg.StateHome, appName, "bookmarks.toml"),
		LogFile:       filepath.Join(xdg.StateHome, appName, appName+".log"),
		LogLevel:      defaultLogLevel,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ImageBase     string `toml:"image_base"`
		PagePattern   string `toml:"page_pattern"`
		ThumbPattern  string `toml:"thumb_pattern"`
		FadeDelay     string `toml:"fade_delay"`
		CloseDelay    string `toml:"close_delay"`
		BookmarksPath string `toml:"bookmarks_path"`
		LogFile       string `toml:"log_file"`
		LogLevel      string `toml:"log_level"`
		Theme         string `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.ImageBase); v != "" {
		cfg.ImageBase = expandBase(v)
	}
	if v := strings.TrimSpace(raw.PagePattern); v != "" {
		cfg.PagePattern = v
	}
	if v := strings.TrimSpace(raw.ThumbPattern); v != "" {
		cfg.ThumbPattern = v
	}
	if cfg.FadeDelay, err = parseDelay("fade_delay", raw.FadeDelay, cfg.FadeDelay); err != nil {
		return Config{}, err
	}
	if cfg.CloseDelay, err = parseDelay("close_delay", raw.CloseDelay, cfg.CloseDelay); err != nil {
		return Config{}, err
	}
	if v := strings.TrimSpace(raw.BookmarksPath); v != "" {
		cfg.BookmarksPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	cfg.Theme = strings.TrimSpace(raw.Theme)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the image name patterns.
func (c Config) Validate() error {
	if _, err := comic.ParsePattern(c.PagePattern); err != nil {
		return fmt.Errorf("page_pattern: %w", err)
	}
	if _, err := comic.ParsePattern(c.ThumbPattern); err != nil {
		return fmt.Errorf("thumb_pattern: %w", err)
	}
	return nil
}

// Layout builds the comic layout described by the config.
func (c Config) Layout() (comic.Layout, error) {
	page, err := comic.ParsePattern(c.PagePattern)
	if err != nil {
		return comic.Layout{}, fmt.Errorf("page_pattern: %w", err)
	}
	thumb, err := comic.ParsePattern(c.ThumbPattern)
	if err != nil {
		return comic.Layout{}, fmt.Errorf("thumb_pattern: %w", err)
	}
	return comic.Layout{Base: c.ImageBase, Page: page, Thumb: thumb}, nil
}

// OverlayOptions returns the overlay delays.
func (c Config) OverlayOptions(fullscreen bool) overlay.Options {
	return overlay.Options{
		FadeDelay:           c.FadeDelay,
		CloseDelay:          c.CloseDelay,
		FullscreenAvailable: fullscreen,
	}
}

func parseDelay(key, value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("parse %s: must be positive, got %s", key, trimmed)
	}
	return d, nil
}

// expandBase leaves URLs alone and expands directory paths.
func expandBase(base string) string {
	if strings.Contains(base, "://") {
		return base
	}
	return mustExpand(base)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPath(), nil
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
