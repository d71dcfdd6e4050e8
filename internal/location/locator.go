// Package location resolves which comic and page to open from the command
// line locator, and keeps the per-session page history that back/forward
// navigation replays.
package location

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrNoComic means no comic id could be derived from the locator.
var ErrNoComic = errors.New("no comic specified")

// Locator is a parsed command line locator such as
// "https://example.com/read/demo#7", "demo/?id=other" or just "demo".
type Locator struct {
	ID          string
	Fragment    int
	HasFragment bool
}

// Parse extracts the comic id and page fragment. The id comes from the "id"
// query parameter, then the last non-empty path segment. A fragment that is
// not an integer is ignored.
func Parse(raw string) (Locator, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Locator{}, ErrNoComic
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return Locator{}, fmt.Errorf("parse locator %q: %w", raw, err)
	}

	var loc Locator
	if frag := strings.TrimSpace(u.Fragment); frag != "" {
		if n, err := strconv.Atoi(frag); err == nil {
			loc.Fragment = n
			loc.HasFragment = true
		}
	}

	if id := strings.TrimSpace(u.Query().Get("id")); id != "" {
		loc.ID = id
		return loc, nil
	}

	path := u.Path
	if u.Opaque != "" {
		path = u.Scheme + ":" + u.Opaque
	}
	if id := lastSegment(path); id != "" {
		loc.ID = id
		return loc, nil
	}
	return loc, ErrNoComic
}

// InitialPage picks the starting page: the fragment, then the saved bookmark
// for the comic, then the cover.
func InitialPage(loc Locator, saved map[string]int) int {
	if loc.HasFragment {
		return loc.Fragment
	}
	if page, ok := saved[loc.ID]; ok {
		return page
	}
	return 0
}

func lastSegment(path string) string {
	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if seg := strings.TrimSpace(segments[i]); seg != "" {
			return seg
		}
	}
	return ""
}
