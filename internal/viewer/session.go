package viewer

import (
	"errors"

	"github.com/five82/gutter/internal/comic"
	"github.com/five82/gutter/internal/library"
	"github.com/five82/gutter/internal/location"
	"github.com/five82/gutter/internal/overlay"
)

// NoComicMessage is shown when the locator names no comic.
const NoComicMessage = "No comic specified."

// ImageState describes the page image of the most recent page change.
type ImageState struct {
	Seq      uint64
	Page     int
	Location string
	Loading  bool
	Size     int64
	Err      error
}

// ProbeRequest asks the render layer to check a page image.
type ProbeRequest struct {
	Seq      uint64
	Location string
}

// ProbeResult is the outcome of a ProbeRequest.
type ProbeResult struct {
	Seq  uint64
	Info library.ImageInfo
	Err  error
}

// FullscreenChange tells the render layer to enter or leave fullscreen.
type FullscreenChange int

const (
	FullscreenUnchanged FullscreenChange = iota
	FullscreenEnter
	FullscreenExit
)

// Effects are the side effects of a state change that the render layer
// carries out: timers to schedule, an image to probe, a fullscreen switch.
type Effects struct {
	Timers     []overlay.Timer
	Probe      *ProbeRequest
	Fullscreen FullscreenChange
}

func (e *Effects) addTimer(t overlay.Timer, ok bool) {
	if ok {
		e.Timers = append(e.Timers, t)
	}
}

// BookmarkStore persists the bookmark mapping.
type BookmarkStore interface {
	Save(marks map[string]int)
}

// Session ties the comic, its overlays and the page history together for one
// viewing session. All methods run on the UI goroutine.
type Session struct {
	comic    *comic.Comic
	overlays *overlay.Controller
	history  *location.History

	ready      bool
	fullscreen bool

	probeSeq uint64
	image    ImageState
}

// New returns a session showing an empty comic.
func New(c *comic.Comic, o *overlay.Controller) *Session {
	return &Session{
		comic:    c,
		overlays: o,
		history:  location.NewHistory(0),
	}
}

// Comic returns the current comic.
func (s *Session) Comic() *comic.Comic { return s.comic }

// Overlays returns the overlay controller.
func (s *Session) Overlays() *overlay.Controller { return s.overlays }

// Ready reports whether a comic has been opened.
func (s *Session) Ready() bool { return s.ready }

// Fullscreen reports whether fullscreen is active.
func (s *Session) Fullscreen() bool { return s.fullscreen }

// Image returns the state of the current page image.
func (s *Session) Image() ImageState { return s.image }

// Fail shows a fatal resolution or load error.
func (s *Session) Fail(err error) {
	s.overlays.DisplayError(ErrorMessage(err))
}

// ErrorMessage turns a startup error into the text shown to the reader.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, location.ErrNoComic) {
		return NoComicMessage
	}
	var loadErr *comic.LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Error()
	}
	return err.Error()
}

// Opened installs a freshly loaded comic and moves to the start page.
// The start page is applied unclamped, like any external page value.
func (s *Session) Opened(c *comic.Comic, start int) Effects {
	s.comic = c
	s.ready = true
	c.JumpTo(start)
	s.history = location.NewHistory(c.Current())
	var fx Effects
	s.changePage(&fx, false)
	return fx
}

// Fire applies an elapsed overlay timer.
func (s *Session) Fire(t overlay.Timer) bool {
	return s.overlays.Fire(t)
}

// ImageProbed records a probe result if it belongs to the latest page change.
func (s *Session) ImageProbed(r ProbeResult) bool {
	if r.Seq != s.image.Seq {
		return false
	}
	s.image.Loading = false
	s.image.Err = r.Err
	if r.Err == nil {
		s.image.Size = r.Info.Size
	}
	return true
}

// Spoiler reports whether page n lies after the current page; the gallery
// obscures those thumbnails.
func (s *Session) Spoiler(n int) bool {
	return s.comic.Current() < n
}

// Bookmark returns the page to remember for the open comic. Comics that
// failed to load are never bookmarked.
func (s *Session) Bookmark() (string, int, bool) {
	if !s.ready || !s.comic.Loaded() {
		return "", 0, false
	}
	return s.comic.ID(), s.comic.Current(), true
}

// SaveBookmark records the current page in saved and persists it.
func (s *Session) SaveBookmark(store BookmarkStore, saved map[string]int) bool {
	id, page, ok := s.Bookmark()
	if !ok || store == nil {
		return false
	}
	if saved == nil {
		saved = make(map[string]int)
	}
	saved[id] = page
	store.Save(saved)
	return true
}

func (s *Session) changePage(fx *Effects, push bool) {
	if !s.ready {
		return
	}
	n := s.comic.Current()
	if push {
		s.history.Push(n)
	}
	s.probeSeq++
	s.image = ImageState{
		Seq:      s.probeSeq,
		Page:     n,
		Location: s.comic.PagePath(n),
		Loading:  true,
		Size:     -1,
	}
	fx.Probe = &ProbeRequest{Seq: s.probeSeq, Location: s.image.Location}
}
