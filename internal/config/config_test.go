package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/gutter/internal/comic"
	"github.com/five82/gutter/internal/overlay"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ImageBase != filepath.Join(home, "comics") {
		t.Fatalf("ImageBase = %q, want it under HOME %q", cfg.ImageBase, home)
	}
	if cfg.PagePattern != comic.DefaultPagePattern || cfg.ThumbPattern != comic.DefaultThumbPattern {
		t.Fatalf("patterns = %q/%q", cfg.PagePattern, cfg.ThumbPattern)
	}
	if cfg.FadeDelay != overlay.DefaultFadeDelay || cfg.CloseDelay != overlay.DefaultCloseDelay {
		t.Fatalf("delays = %v/%v", cfg.FadeDelay, cfg.CloseDelay)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if !strings.HasSuffix(cfg.BookmarksPath, filepath.Join("gutter", "bookmarks.toml")) {
		t.Fatalf("BookmarksPath = %q", cfg.BookmarksPath)
	}
	if !strings.HasSuffix(cfg.LogFile, filepath.Join("gutter", "gutter.log")) {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
image_base = "  https://comics.example.com/books  "
page_pattern = " p### "
thumb_pattern = "t###"
fade_delay = " 5s "
close_delay = "100ms"
bookmarks_path = "~/marks.toml"
log_file = "~/logs/gutter.log"
log_level = " DEBUG "
theme = " Slate "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ImageBase != "https://comics.example.com/books" {
		t.Fatalf("ImageBase = %q", cfg.ImageBase)
	}
	if cfg.PagePattern != "p###" || cfg.ThumbPattern != "t###" {
		t.Fatalf("patterns = %q/%q", cfg.PagePattern, cfg.ThumbPattern)
	}
	if cfg.FadeDelay != 5*time.Second || cfg.CloseDelay != 100*time.Millisecond {
		t.Fatalf("delays = %v/%v", cfg.FadeDelay, cfg.CloseDelay)
	}
	if cfg.BookmarksPath != filepath.Join(home, "marks.toml") {
		t.Fatalf("BookmarksPath = %q", cfg.BookmarksPath)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "gutter.log") {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
	if cfg.LogLevel != "debug" || cfg.Theme != "Slate" {
		t.Fatalf("LogLevel/Theme = %q/%q", cfg.LogLevel, cfg.Theme)
	}

	layout, err := cfg.Layout()
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if layout.Base != cfg.ImageBase {
		t.Fatalf("layout.Base = %q, want %q", layout.Base, cfg.ImageBase)
	}
	if got := layout.Page.Format(7); got != "p007" {
		t.Fatalf("Page.Format(7) = %q, want p007", got)
	}
}

func TestLoad_DirectoryBaseIsExpanded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(writeConfig(t, `image_base = "~/library"`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ImageBase != filepath.Join(home, "library") {
		t.Fatalf("ImageBase = %q", cfg.ImageBase)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"invalid toml", `image_base = [`, "parse config"},
		{"bad duration", `fade_delay = "soon"`, "parse fade_delay"},
		{"negative duration", `close_delay = "-1s"`, "parse close_delay"},
		{"pattern without digits", `page_pattern = "page"`, "page_pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestOverlayOptions(t *testing.T) {
	cfg := Default()
	opts := cfg.OverlayOptions(true)
	if opts.FadeDelay != cfg.FadeDelay || opts.CloseDelay != cfg.CloseDelay || !opts.FullscreenAvailable {
		t.Fatalf("OverlayOptions = %+v", opts)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
