package ui

import "time"

// Gallery grid geometry.
const (
	// ThumbCellWidth is the rendered width of one gallery cell, border included.
	ThumbCellWidth = 16

	// GalleryRows is the number of thumbnail rows per gallery page.
	GalleryRows = 3

	// MinGalleryColumns keeps at least this many cells on narrow terminals.
	MinGalleryColumns = 2
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which button labels are shortened.
	LayoutCompactWidth = 72
)

// ProbeTimeout bounds a single page image probe.
const ProbeTimeout = 5 * time.Second
