package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/gutter/internal/bookmarks"
	"github.com/five82/gutter/internal/comic"
	"github.com/five82/gutter/internal/library"
	"github.com/five82/gutter/internal/location"
	"github.com/five82/gutter/internal/prefs"
)

type env struct {
	dir    string
	config string
	prefs  string
	marks  string
}

func newEnv(t *testing.T) env {
	t.Helper()
	dir := t.TempDir()
	e := env{
		dir:    dir,
		config: filepath.Join(dir, "config.toml"),
		prefs:  filepath.Join(dir, "prefs.toml"),
		marks:  filepath.Join(dir, "state", "bookmarks.toml"),
	}
	comics := filepath.Join(dir, "comics", "demo")
	if err := os.MkdirAll(comics, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	info := `{"title":"Demo","extension":"jpg","length":5,"sections":[0,2]}`
	if err := os.WriteFile(filepath.Join(comics, comic.InfoFile), []byte(info), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	body := "image_base = \"" + filepath.ToSlash(filepath.Join(dir, "comics")) + "\"\n" +
		"bookmarks_path = \"" + filepath.ToSlash(e.marks) + "\"\n" +
		"log_file = \"" + filepath.ToSlash(filepath.Join(dir, "gutter.log")) + "\"\n" +
		"theme = \"Kanagawa\"\n"
	if err := os.WriteFile(e.config, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return e
}

func TestSetup_WiresSession(t *testing.T) {
	e := newEnv(t)
	bookmarks.New(e.marks, nil).Save(map[string]int{"demo": 3})

	rt, err := setup(context.Background(), Options{ConfigPath: e.config, PrefsPath: e.prefs, Locator: "demo"}, false)
	if err != nil {
		t.Fatalf("setup returned error: %v", err)
	}
	t.Cleanup(func() { _ = rt.logger.Close() })

	if rt.ui.StartErr != nil {
		t.Fatalf("StartErr = %v", rt.ui.StartErr)
	}
	if rt.ui.Locator.ID != "demo" || rt.saved["demo"] != 3 {
		t.Fatalf("locator/saved = %+v / %v", rt.ui.Locator, rt.saved)
	}
	if rt.ui.ThemeName != "Kanagawa" {
		t.Fatalf("ThemeName = %q, want configured Kanagawa", rt.ui.ThemeName)
	}
	if rt.session.Overlays().FullscreenAvailable() {
		t.Fatal("fullscreen available without a terminal")
	}
	if _, ok := rt.ui.Source.(*library.Dir); !ok {
		t.Fatalf("Source = %T, want *library.Dir", rt.ui.Source)
	}
	if rt.ui.Layout.Base != rt.ui.Source.Base() {
		t.Fatalf("layout base %q differs from source base %q", rt.ui.Layout.Base, rt.ui.Source.Base())
	}
}

func TestSetup_MissingLocatorIsStartError(t *testing.T) {
	e := newEnv(t)
	rt, err := setup(context.Background(), Options{ConfigPath: e.config, PrefsPath: e.prefs}, true)
	if err != nil {
		t.Fatalf("setup returned error: %v", err)
	}
	t.Cleanup(func() { _ = rt.logger.Close() })

	if !errors.Is(rt.ui.StartErr, location.ErrNoComic) {
		t.Fatalf("StartErr = %v, want ErrNoComic", rt.ui.StartErr)
	}
}

func TestSetup_BadLogLevelFails(t *testing.T) {
	e := newEnv(t)
	if _, err := setup(context.Background(), Options{ConfigPath: e.config, LogLevel: "chatty"}, false); err == nil {
		t.Fatal("setup returned nil error for an unknown log level")
	}
}

func TestFinish_SavesOnlyLoadedComics(t *testing.T) {
	e := newEnv(t)
	rt, err := setup(context.Background(), Options{ConfigPath: e.config, PrefsPath: e.prefs, Locator: "demo#2"}, false)
	if err != nil {
		t.Fatalf("setup returned error: %v", err)
	}
	t.Cleanup(func() { _ = rt.logger.Close() })

	rt.finish()
	if _, ok := bookmarks.New(e.marks, nil).Load(); ok {
		t.Fatal("bookmark saved before the comic loaded")
	}

	c := comic.New(rt.ui.Layout)
	if err := c.Load(context.Background(), rt.ui.Source, rt.ui.Locator.ID); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	rt.session.Opened(c, location.InitialPage(rt.ui.Locator, rt.saved))
	rt.finish()

	marks, ok := bookmarks.New(e.marks, nil).Load()
	if !ok || marks["demo"] != 2 {
		t.Fatalf("bookmarks = %v, %v; want demo at page 2", marks, ok)
	}
}

func TestThemeName_PrefersSavedTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if got := themeName(path, "Kanagawa"); got != "Kanagawa" {
		t.Fatalf("themeName without prefs = %q", got)
	}
	if err := prefs.Save(path, prefs.Prefs{Theme: "Newsprint"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := themeName(path, "Kanagawa"); got != "Newsprint" {
		t.Fatalf("themeName = %q, want Newsprint", got)
	}
}
