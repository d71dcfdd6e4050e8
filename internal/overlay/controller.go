// Package overlay tracks which transient panels of the viewer are visible.
//
// The controller never touches the screen and never starts timers itself.
// Operations that need a delayed transition return a Timer request; the
// caller schedules it and hands it back to Fire when it elapses. Each request
// carries a generation, so rescheduling simply makes older requests stale.
package overlay

import "time"

// Name identifies an overlay.
type Name int

const (
	Controls Name = iota
	FullscreenToggle
	Gallery
	Sections
	Error
	numOverlays
)

func (n Name) String() string {
	switch n {
	case Controls:
		return "controls"
	case FullscreenToggle:
		return "fullscreenToggle"
	case Gallery:
		return "gallery"
	case Sections:
		return "sections"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Default delays.
const (
	DefaultFadeDelay  = 3 * time.Second        // auto-hide of the transient group
	DefaultCloseDelay = 250 * time.Millisecond // reveal guard after closing the gallery
)

// TimerKind distinguishes the two delayed transitions.
type TimerKind int

const (
	AutoHide TimerKind = iota + 1
	GalleryGuard
)

// Timer is a request to call Fire after the given delay.
type Timer struct {
	Kind  TimerKind
	Gen   uint64
	After time.Duration
}

// Options configure a Controller.
type Options struct {
	FadeDelay           time.Duration
	CloseDelay          time.Duration
	FullscreenAvailable bool
}

// Controller holds overlay visibility for one session.
type Controller struct {
	open [numOverlays]bool

	fadeDelay           time.Duration
	closeDelay          time.Duration
	fullscreenAvailable bool

	hideGen  uint64
	guardGen uint64
	guarding bool

	errMessage string
}

// New returns a controller with every overlay closed.
func New(opts Options) *Controller {
	fade := opts.FadeDelay
	if fade <= 0 {
		fade = DefaultFadeDelay
	}
	closeDelay := opts.CloseDelay
	if closeDelay <= 0 {
		closeDelay = DefaultCloseDelay
	}
	return &Controller{
		fadeDelay:           fade,
		closeDelay:          closeDelay,
		fullscreenAvailable: opts.FullscreenAvailable,
	}
}

// IsOpen reports whether the overlay is visible.
func (c *Controller) IsOpen(n Name) bool {
	if n < 0 || n >= numOverlays {
		return false
	}
	return c.open[n]
}

// Open shows an overlay. The fullscreen toggle stays hidden when fullscreen
// is unavailable.
func (c *Controller) Open(n Name) {
	if n < 0 || n >= numOverlays {
		return
	}
	if n == FullscreenToggle && !c.fullscreenAvailable {
		return
	}
	c.open[n] = true
}

// Close hides an overlay.
func (c *Controller) Close(n Name) {
	if n < 0 || n >= numOverlays {
		return
	}
	c.open[n] = false
}

// Toggle flips an overlay.
func (c *Controller) Toggle(n Name) {
	if c.IsOpen(n) {
		c.Close(n)
		return
	}
	c.Open(n)
}

// FullscreenAvailable reports whether the fullscreen toggle can be shown.
func (c *Controller) FullscreenAvailable() bool {
	return c.fullscreenAvailable
}

// Dominant reports whether a modal-like overlay suppresses the transient group:
// the error banner, the gallery, or the short guard after the gallery closes.
func (c *Controller) Dominant() bool {
	return c.open[Error] || c.open[Gallery] || c.guarding
}

// RevealTransient opens the controls, the fullscreen toggle and, when
// withSections is set, the section list, then restarts the auto-hide timer.
// It does nothing while a dominant overlay is up.
func (c *Controller) RevealTransient(withSections bool) (Timer, bool) {
	if c.Dominant() {
		return Timer{}, false
	}
	c.Open(Controls)
	c.Open(FullscreenToggle)
	if withSections {
		c.Open(Sections)
	}
	c.hideGen++
	return Timer{Kind: AutoHide, Gen: c.hideGen, After: c.fadeDelay}, true
}

// OpenGallery shows the gallery and closes the transient group.
func (c *Controller) OpenGallery() {
	c.hideTransient()
	c.open[Gallery] = true
	c.guarding = false
	c.guardGen++
}

// CloseGallery hides the gallery. The controller stays dominant until the
// returned guard timer fires.
func (c *Controller) CloseGallery() Timer {
	c.open[Gallery] = false
	c.guarding = true
	c.guardGen++
	return Timer{Kind: GalleryGuard, Gen: c.guardGen, After: c.closeDelay}
}

// ToggleGallery opens or closes the gallery. The timer is only set when closing.
func (c *Controller) ToggleGallery() (Timer, bool) {
	if c.open[Gallery] {
		return c.CloseGallery(), true
	}
	c.OpenGallery()
	return Timer{}, false
}

// DisplayError shows the error banner for the rest of the session.
func (c *Controller) DisplayError(message string) {
	c.errMessage = message
	c.open[Error] = true
}

// ErrorMessage returns the message passed to DisplayError.
func (c *Controller) ErrorMessage() string {
	return c.errMessage
}

// Fire applies an elapsed timer. Stale generations are ignored; the return
// value reports whether any state changed.
func (c *Controller) Fire(t Timer) bool {
	switch t.Kind {
	case AutoHide:
		if t.Gen != c.hideGen {
			return false
		}
		return c.hideTransient()
	case GalleryGuard:
		if t.Gen != c.guardGen || !c.guarding {
			return false
		}
		c.guarding = false
		return true
	}
	return false
}

func (c *Controller) hideTransient() bool {
	changed := c.open[Controls] || c.open[FullscreenToggle] || c.open[Sections]
	c.open[Controls] = false
	c.open[FullscreenToggle] = false
	c.open[Sections] = false
	return changed
}
