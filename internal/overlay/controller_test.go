package overlay

import (
	"testing"
	"time"
)

func newController(fullscreen bool) *Controller {
	return New(Options{FullscreenAvailable: fullscreen})
}

func TestRevealTransient_OpensGroup(t *testing.T) {
	c := newController(true)

	timer, ok := c.RevealTransient(true)
	if !ok {
		t.Fatal("RevealTransient returned ok=false with nothing dominant")
	}
	if timer.Kind != AutoHide || timer.After != DefaultFadeDelay {
		t.Fatalf("timer = %+v, want AutoHide after %v", timer, DefaultFadeDelay)
	}
	for _, n := range []Name{Controls, FullscreenToggle, Sections} {
		if !c.IsOpen(n) {
			t.Fatalf("%s closed after reveal", n)
		}
	}
	if c.IsOpen(Gallery) || c.IsOpen(Error) {
		t.Fatal("reveal opened a dominant overlay")
	}
}

func TestRevealTransient_RespectsCapabilityAndSections(t *testing.T) {
	c := newController(false)
	if _, ok := c.RevealTransient(false); !ok {
		t.Fatal("RevealTransient returned ok=false")
	}
	if !c.IsOpen(Controls) {
		t.Fatal("controls closed after reveal")
	}
	if c.IsOpen(FullscreenToggle) {
		t.Fatal("fullscreen toggle opened without capability")
	}
	if c.IsOpen(Sections) {
		t.Fatal("sections opened without withSections")
	}
}

// Two reveals inside the fade delay: only the second timer closes the group.
func TestRevealTransient_DebouncesAutoHide(t *testing.T) {
	c := newController(true)

	first, _ := c.RevealTransient(true)
	second, _ := c.RevealTransient(true)
	if first.Gen == second.Gen {
		t.Fatalf("reveal reused generation %d", first.Gen)
	}

	if c.Fire(first) {
		t.Fatal("stale auto-hide timer changed state")
	}
	if !c.IsOpen(Controls) || !c.IsOpen(Sections) {
		t.Fatal("stale auto-hide timer closed overlays")
	}

	if !c.Fire(second) {
		t.Fatal("current auto-hide timer did not change state")
	}
	for _, n := range []Name{Controls, FullscreenToggle, Sections} {
		if c.IsOpen(n) {
			t.Fatalf("%s still open after auto-hide", n)
		}
	}
	if c.Fire(second) {
		t.Fatal("auto-hide fired twice")
	}
}

func TestOpenGallery_ClosesTransientAndBlocksReveal(t *testing.T) {
	c := newController(true)
	c.RevealTransient(true)

	c.OpenGallery()
	if !c.IsOpen(Gallery) {
		t.Fatal("gallery closed after OpenGallery")
	}
	for _, n := range []Name{Controls, FullscreenToggle, Sections} {
		if c.IsOpen(n) {
			t.Fatalf("%s open alongside gallery", n)
		}
	}
	if _, ok := c.RevealTransient(true); ok {
		t.Fatal("reveal succeeded while gallery open")
	}
	if c.IsOpen(Controls) {
		t.Fatal("controls opened under gallery")
	}
}

func TestCloseGallery_GuardDelaysReveal(t *testing.T) {
	c := New(Options{CloseDelay: 100 * time.Millisecond})
	c.OpenGallery()

	guard := c.CloseGallery()
	if guard.Kind != GalleryGuard || guard.After != 100*time.Millisecond {
		t.Fatalf("guard = %+v, want GalleryGuard after 100ms", guard)
	}
	if c.IsOpen(Gallery) {
		t.Fatal("gallery open after CloseGallery")
	}
	if _, ok := c.RevealTransient(false); ok {
		t.Fatal("reveal succeeded during close guard")
	}

	if !c.Fire(guard) {
		t.Fatal("guard timer did not change state")
	}
	if _, ok := c.RevealTransient(false); !ok {
		t.Fatal("reveal blocked after guard fired")
	}
}

func TestReopenGallery_InvalidatesGuard(t *testing.T) {
	c := newController(false)
	c.OpenGallery()
	guard := c.CloseGallery()
	c.OpenGallery()

	if c.Fire(guard) {
		t.Fatal("stale guard changed state")
	}
	if !c.Dominant() {
		t.Fatal("controller not dominant with gallery open")
	}
}

func TestToggleGallery(t *testing.T) {
	c := newController(false)

	if _, ok := c.ToggleGallery(); ok {
		t.Fatal("opening the gallery returned a timer")
	}
	if !c.IsOpen(Gallery) {
		t.Fatal("gallery closed after first toggle")
	}
	timer, ok := c.ToggleGallery()
	if !ok || timer.Kind != GalleryGuard {
		t.Fatalf("closing toggle = %+v, %v; want guard timer", timer, ok)
	}
	if c.IsOpen(Gallery) {
		t.Fatal("gallery open after second toggle")
	}
}

func TestDisplayError_IsTerminal(t *testing.T) {
	c := newController(true)
	c.OpenGallery()
	guard := c.CloseGallery()

	c.DisplayError("No comic specified.")
	c.Fire(guard)

	if !c.IsOpen(Error) || c.ErrorMessage() != "No comic specified." {
		t.Fatalf("error overlay = %v %q", c.IsOpen(Error), c.ErrorMessage())
	}
	if _, ok := c.RevealTransient(true); ok {
		t.Fatal("reveal succeeded after error")
	}
}

func TestOpenCloseToggle(t *testing.T) {
	c := newController(false)

	c.Toggle(Sections)
	if !c.IsOpen(Sections) {
		t.Fatal("Toggle did not open sections")
	}
	c.Toggle(Sections)
	if c.IsOpen(Sections) {
		t.Fatal("Toggle did not close sections")
	}

	c.Open(FullscreenToggle)
	if c.IsOpen(FullscreenToggle) {
		t.Fatal("fullscreen toggle opened without capability")
	}

	c.Open(Name(42))
	if c.IsOpen(Name(42)) {
		t.Fatal("unknown overlay reported open")
	}
}

func TestNameString(t *testing.T) {
	if Gallery.String() != "gallery" || Name(99).String() != "unknown" {
		t.Fatalf("String() = %q / %q", Gallery.String(), Name(99).String())
	}
}
