// Package bookmarks persists the last viewed page of every opened comic.
// Bookmarks are stored in $XDG_STATE_HOME/gutter/bookmarks.toml under a
// single [comic] table. Persistence is a convenience: every failure is logged
// and swallowed so it never blocks reading.
package bookmarks

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	appName      = "gutter"
	fileName     = "bookmarks.toml"
	lockSuffix   = ".lock"
	filePerm     = 0o644
	dirPerm      = 0o755
	tempFileGlob = ".bookmarks-*.toml"
)

// document is the on-disk shape; "comic" is the storage namespace.
type document struct {
	Comic map[string]int `toml:"comic"`
}

// Store reads and writes the bookmark file.
type Store struct {
	path string
	log  *slog.Logger
}

// DefaultPath returns the default bookmark file location.
func DefaultPath() string {
	return filepath.Join(xdg.StateHome, appName, fileName)
}

// New returns a Store backed by path (DefaultPath when empty).
func New(path string, logger *slog.Logger) *Store {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, log: logger.With(slog.String("component", "bookmarks"))}
}

// Path returns the bookmark file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored bookmarks. It reports false when nothing is stored
// or the file could not be read, in which case the file is reset.
func (s *Store) Load() (map[string]int, bool) {
	marks, err := s.read()
	if err != nil {
		s.log.Error("load bookmarks", slog.String("path", s.path), slog.Any("error", err))
		s.Reset()
		return nil, false
	}
	if marks == nil {
		return nil, false
	}
	return marks, true
}

// Save writes the full mapping. An empty mapping resets the store instead.
func (s *Store) Save(marks map[string]int) {
	if len(marks) == 0 {
		s.Reset()
		return
	}
	if err := s.write(marks); err != nil {
		s.log.Error("save bookmarks", slog.String("path", s.path), slog.Any("error", err))
	}
}

// Reset removes all stored bookmarks.
func (s *Store) Reset() {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return
	}
	lock := flock.New(s.path + lockSuffix)
	if err := lock.Lock(); err != nil {
		s.log.Warn("lock bookmarks", slog.String("path", s.path), slog.Any("error", err))
	} else {
		defer func() { _ = lock.Unlock() }()
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Error("reset bookmarks", slog.String("path", s.path), slog.Any("error", err))
	}
}

func (s *Store) read() (map[string]int, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open bookmarks: %w", err)
	}
	defer func() { _ = file.Close() }()

	lock := flock.New(s.path + lockSuffix)
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("lock bookmarks: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read bookmarks: %w", err)
	}

	var doc document
	if err := toml.Unmarshal(bytes, &doc); err != nil {
		return nil, fmt.Errorf("parse bookmarks: %w", err)
	}
	if len(doc.Comic) == 0 {
		return nil, nil
	}
	return doc.Comic, nil
}

func (s *Store) write(marks map[string]int) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create bookmarks dir: %w", err)
	}

	bytes, err := toml.Marshal(document{Comic: marks})
	if err != nil {
		return fmt.Errorf("marshal bookmarks: %w", err)
	}

	lock := flock.New(s.path + lockSuffix)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock bookmarks: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	tmp, err := os.CreateTemp(dir, tempFileGlob)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(bytes); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write bookmarks: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("chmod bookmarks: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace bookmarks: %w", err)
	}
	return nil
}
