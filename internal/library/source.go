package library

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/gutter/internal/comic"
)

// ImageInfo describes a probed page image.
type ImageInfo struct {
	Location string
	Size     int64 // bytes; -1 when the source does not report it
}

// Source serves comic metadata and page images from one base location.
type Source interface {
	comic.InfoSource
	// Probe checks that the image at location exists.
	Probe(ctx context.Context, location string) (ImageInfo, error)
	// Base is the image base that comic paths are built from.
	Base() string
}

// Ensure both implementations satisfy Source at compile time.
var (
	_ Source = (*Client)(nil)
	_ Source = (*Dir)(nil)
)

// Open picks a Source for base: http(s) URLs are fetched over HTTP, anything
// else is treated as a local directory.
func Open(base string) (Source, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		return nil, fmt.Errorf("image base is empty")
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewClient(trimmed)
	}
	return NewDir(strings.TrimPrefix(trimmed, "file://"))
}
