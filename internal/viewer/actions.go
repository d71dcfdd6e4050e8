package viewer

import "github.com/five82/gutter/internal/overlay"

// ActionKind names a user action.
type ActionKind int

const (
	First ActionKind = iota + 1
	Previous
	Next
	Last
	JumpToPage
	JumpToSection
	SelectThumbnail
	ToggleGallery
	OpenGallery
	CloseGallery
	Back
	ToggleFullscreen
	Reveal
	HistoryBack
	HistoryForward
)

var actionNames = map[ActionKind]string{
	First:            "first",
	Previous:         "previous",
	Next:             "next",
	Last:             "last",
	JumpToPage:       "jump-to-page",
	JumpToSection:    "jump-to-section",
	SelectThumbnail:  "select-thumbnail",
	ToggleGallery:    "toggle-gallery",
	OpenGallery:      "open-gallery",
	CloseGallery:     "close-gallery",
	Back:             "back",
	ToggleFullscreen: "toggle-fullscreen",
	Reveal:           "reveal",
	HistoryBack:      "history-back",
	HistoryForward:   "history-forward",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action is a user action; Arg carries the page or section index where needed.
type Action struct {
	Kind ActionKind
	Arg  int
}

// Do is shorthand for an action without an argument.
func Do(kind ActionKind) Action {
	return Action{Kind: kind}
}

// Dispatch applies one action. Page actions are ignored until a comic is open.
func (s *Session) Dispatch(a Action) Effects {
	var fx Effects
	c := s.comic
	o := s.overlays

	switch a.Kind {
	case First:
		if s.ready {
			c.First()
			s.changePage(&fx, true)
		}
	case Previous:
		if s.ready {
			c.Previous()
			s.changePage(&fx, true)
		}
	case Next:
		if s.ready {
			c.Next()
			s.changePage(&fx, true)
			o.Close(overlay.Sections)
		}
	case Last:
		if s.ready {
			c.Last()
			s.changePage(&fx, true)
			o.Close(overlay.Sections)
		}
	case JumpToPage:
		if s.ready {
			c.JumpTo(a.Arg)
			s.changePage(&fx, true)
		}
	case JumpToSection:
		if s.ready {
			c.JumpToSection(a.Arg)
			s.changePage(&fx, true)
			o.Close(overlay.Sections)
		}
	case SelectThumbnail:
		if s.ready {
			c.JumpTo(a.Arg)
			s.changePage(&fx, true)
			if o.IsOpen(overlay.Gallery) {
				fx.addTimer(o.CloseGallery(), true)
			}
		}
	case ToggleGallery:
		if s.ready {
			fx.addTimer(o.ToggleGallery())
		}
	case OpenGallery:
		if s.ready {
			o.OpenGallery()
		}
	case CloseGallery:
		if o.IsOpen(overlay.Gallery) {
			fx.addTimer(o.CloseGallery(), true)
		}
	case Back:
		if o.IsOpen(overlay.Gallery) {
			fx.addTimer(o.CloseGallery(), true)
		}
		if !o.IsOpen(overlay.Error) {
			o.Open(overlay.Controls)
		}
	case ToggleFullscreen:
		if o.FullscreenAvailable() {
			s.fullscreen = !s.fullscreen
			if s.fullscreen {
				fx.Fullscreen = FullscreenEnter
			} else {
				fx.Fullscreen = FullscreenExit
			}
		}
	case Reveal:
		withSections := s.ready && c.Current() == 0 && c.HasSections()
		fx.addTimer(o.RevealTransient(withSections))
	case HistoryBack:
		if page, ok := s.history.Back(); ok && s.ready {
			c.JumpTo(page)
			s.changePage(&fx, false)
		}
	case HistoryForward:
		if page, ok := s.history.Forward(); ok && s.ready {
			c.JumpTo(page)
			s.changePage(&fx, false)
		}
	}
	return fx
}
