package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/five82/gutter/internal/bookmarks"
	"github.com/five82/gutter/internal/comic"
	"github.com/five82/gutter/internal/config"
	"github.com/five82/gutter/internal/library"
	"github.com/five82/gutter/internal/location"
	"github.com/five82/gutter/internal/logging"
	"github.com/five82/gutter/internal/overlay"
	"github.com/five82/gutter/internal/prefs"
	"github.com/five82/gutter/internal/ui"
	"github.com/five82/gutter/internal/viewer"
)

// Options configure the gutter application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses $XDG_CONFIG_HOME/gutter/prefs.toml
	Locator    string // comic locator from the command line
	ImageBase  string // overrides image_base
	LogLevel   string // overrides log_level
}

// runtime is everything Run wires together before the UI starts.
type runtime struct {
	cfg     config.Config
	logger  *logging.Logger
	store   *bookmarks.Store
	saved   map[string]int
	session *viewer.Session
	ui      ui.Options
}

// Run opens the comic named by the locator and blocks until the viewer exits
// or the context is cancelled. The current page is bookmarked on the way out.
func Run(ctx context.Context, opts Options) error {
	rt, err := setup(ctx, opts, isTerminal(os.Stdout))
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Close() }()

	_, err = ui.Run(rt.ui)
	rt.finish()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

func setup(ctx context.Context, opts Options, fullscreen bool) (*runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.ImageBase != "" {
		cfg.ImageBase = opts.ImageBase
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	log := logging.WithComponent(logger.Logger, "app")

	src, err := library.Open(cfg.ImageBase)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("open image base: %w", err)
	}
	layout, err := cfg.Layout()
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("build layout: %w", err)
	}
	layout.Base = src.Base()

	store := bookmarks.New(cfg.BookmarksPath, logger.Logger)
	saved, _ := store.Load()

	loc, locErr := location.Parse(opts.Locator)

	session := viewer.New(comic.New(layout), overlay.New(cfg.OverlayOptions(fullscreen)))

	log.Info("starting",
		slog.String("base", layout.Base),
		slog.String("comic", loc.ID),
		slog.Bool("fullscreen_available", fullscreen),
		slog.Int("bookmarks", len(saved)),
	)

	return &runtime{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		saved:   saved,
		session: session,
		ui: ui.Options{
			Context:   ctx,
			Session:   session,
			Source:    src,
			Layout:    layout,
			Locator:   loc,
			StartErr:  locErr,
			Saved:     saved,
			ThemeName: themeName(opts.PrefsPath, cfg.Theme),
			PrefsPath: opts.PrefsPath,
			Logger:    logger.Logger,
		},
	}, nil
}

// finish persists the bookmark of the open comic.
func (rt *runtime) finish() {
	if rt.session.SaveBookmark(rt.store, rt.saved) {
		id, page, _ := rt.session.Bookmark()
		rt.logger.Info("bookmark saved", slog.String("comic", id), slog.Int("page", page))
	}
}

// themeName prefers the theme last picked in the viewer over the configured one.
func themeName(prefsPath, configured string) string {
	if saved := prefs.Load(prefsPath).Theme; saved != "" {
		return saved
	}
	return configured
}

// isTerminal reports whether f is a terminal; fullscreen needs one.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
