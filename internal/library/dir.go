package library

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/gutter/internal/comic"
)

// Dir serves comics from a local directory laid out as <root>/<id>/info.json.
type Dir struct {
	root string
}

// NewDir resolves root (expanding a leading ~) to an absolute directory.
func NewDir(root string) (*Dir, error) {
	resolved, err := expandPath(root)
	if err != nil {
		return nil, err
	}
	return &Dir{root: filepath.ToSlash(resolved)}, nil
}

// Base returns the absolute root directory in slash form.
func (d *Dir) Base() string {
	return d.root
}

// FetchInfo reads and decodes <root>/<id>/info.json.
func (d *Dir) FetchInfo(_ context.Context, id string) (comic.Info, error) {
	if strings.Contains(id, "..") {
		return comic.Info{}, fmt.Errorf("invalid comic id %q", id)
	}
	path := filepath.FromSlash(comic.JoinPath(d.root, id, comic.InfoFile))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return comic.Info{}, fmt.Errorf("no %s for %q", comic.InfoFile, id)
		}
		return comic.Info{}, fmt.Errorf("read info: %w", err)
	}
	return DecodeInfo(data)
}

// Probe stats the image file.
func (d *Dir) Probe(_ context.Context, location string) (ImageInfo, error) {
	fi, err := os.Stat(filepath.FromSlash(location))
	if err != nil {
		return ImageInfo{}, fmt.Errorf("stat image: %w", err)
	}
	if fi.IsDir() {
		return ImageInfo{}, fmt.Errorf("image %s is a directory", location)
	}
	return ImageInfo{Location: location, Size: fi.Size()}, nil
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
