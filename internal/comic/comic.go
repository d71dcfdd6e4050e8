package comic

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// InfoFile is the metadata file name inside each comic directory.
const InfoFile = "info.json"

// Info mirrors the fields of info.json. Missing or null fields decode to zero values.
type Info struct {
	Title     string `json:"title"`
	Extension string `json:"extension"`
	Length    int    `json:"length"`
	Sections  []int  `json:"sections"`
}

// InfoSource fetches the metadata for a comic id.
// library.Client and library.Dir implement it.
type InfoSource interface {
	FetchInfo(ctx context.Context, id string) (Info, error)
}

// LoadError reports a comic whose metadata could not be fetched or parsed.
type LoadError struct {
	ComicID string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("Could not open the comic “%s.”", e.ComicID)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Layout describes where a comic's images live and how they are named.
type Layout struct {
	Base  string // image base location, URL or directory
	Page  Pattern
	Thumb Pattern
}

// DefaultLayout returns the stock page/thumb patterns rooted at base.
func DefaultLayout(base string) Layout {
	return Layout{
		Base:  base,
		Page:  MustPattern(DefaultPagePattern),
		Thumb: MustPattern(DefaultThumbPattern),
	}
}

// Comic holds the metadata of the open comic and the current page cursor.
// It is owned by a single session and is not safe for concurrent use.
type Comic struct {
	layout Layout

	id        string
	title     string
	extension string
	length    int
	sections  []int

	current int
}

// New returns an empty comic that resolves image paths with layout.
func New(layout Layout) *Comic {
	return &Comic{layout: layout}
}

// Load fetches and applies the metadata for id. On failure the comic is left
// untouched and a *LoadError is returned.
func (c *Comic) Load(ctx context.Context, src InfoSource, id string) error {
	if src == nil {
		return &LoadError{ComicID: id, Err: fmt.Errorf("no metadata source")}
	}
	info, err := src.FetchInfo(ctx, id)
	if err != nil {
		return &LoadError{ComicID: id, Err: err}
	}
	if info.Length < 0 {
		return &LoadError{ComicID: id, Err: fmt.Errorf("negative length %d", info.Length)}
	}

	c.id = id
	c.title = info.Title
	c.extension = info.Extension
	c.length = info.Length
	c.sections = append([]int(nil), info.Sections...)
	return nil
}

// ID returns the comic identifier, empty until loaded.
func (c *Comic) ID() string { return c.id }

// Title returns the display title.
func (c *Comic) Title() string { return c.title }

// Extension returns the image file extension.
func (c *Comic) Extension() string { return c.extension }

// Length returns the page count, excluding the cover.
func (c *Comic) Length() int { return c.length }

// Current returns the page cursor.
func (c *Comic) Current() int { return c.current }

// Sections returns a copy of the section start pages.
func (c *Comic) Sections() []int {
	if len(c.sections) == 0 {
		return nil
	}
	return append([]int(nil), c.sections...)
}

// HasSections reports whether the comic defines any sections.
func (c *Comic) HasSections() bool { return len(c.sections) > 0 }

// Loaded reports whether metadata describing at least one page was applied.
func (c *Comic) Loaded() bool { return c.length > 0 }

// AtFirst reports whether the cursor sits on the cover.
func (c *Comic) AtFirst() bool { return c.current == 0 }

// AtLast reports whether the cursor sits on the final page.
func (c *Comic) AtLast() bool { return c.current == c.length }

// JumpTo moves the cursor to n without clamping. Callers feeding external
// values (fragments, bookmarks) clamp first if they need to.
func (c *Comic) JumpTo(n int) {
	c.current = n
}

// JumpToSection moves to the start of section i; out of range indices are ignored.
func (c *Comic) JumpToSection(i int) {
	if i >= 0 && i < len(c.sections) {
		c.current = c.sections[i]
	}
}

// First moves to the cover.
func (c *Comic) First() {
	c.current = 0
}

// Last moves to the final page.
func (c *Comic) Last() {
	c.current = c.length
}

// Previous moves back one page, stopping at the cover.
func (c *Comic) Previous() {
	if c.current > 0 {
		c.current--
	}
}

// Next moves forward one page, stopping at the final page.
func (c *Comic) Next() {
	if c.current < c.length {
		c.current++
	}
}

// PagePath returns the full-resolution image location for page n.
func (c *Comic) PagePath(n int) string {
	return c.imagePath(c.layout.Page, n)
}

// ThumbPath returns the thumbnail image location for page n.
func (c *Comic) ThumbPath(n int) string {
	return c.imagePath(c.layout.Thumb, n)
}

func (c *Comic) imagePath(p Pattern, n int) string {
	name := p.Format(n) + "." + c.extension
	return JoinPath(c.layout.Base, IDSegment(c.layout.Base, c.id), name)
}

// IDSegment returns the path segment naming comic id under base. URL bases
// get the id percent-escaped; directory bases use it as is.
func IDSegment(base, id string) string {
	if strings.Contains(base, "://") {
		return url.PathEscape(id)
	}
	return id
}

// JoinPath joins location segments with '/', trimming duplicate separators at
// the seams. It works for both URLs and slash-separated directories.
func JoinPath(base string, parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	if trimmed := strings.TrimRight(base, "/"); trimmed != "" || strings.HasPrefix(base, "/") {
		segments = append(segments, trimmed)
	}
	for _, part := range parts {
		segments = append(segments, strings.Trim(part, "/"))
	}
	return strings.Join(segments, "/")
}
