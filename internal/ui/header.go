package ui

import (
	"fmt"
	"strings"

	"github.com/five82/gutter/internal/comic"
	"github.com/five82/gutter/internal/overlay"
)

// renderHeader renders the title bar: app name, comic title, page label and
// reading progress.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Space() + bg.Space()

	parts := []string{bg.Render("gutter", styles.Logo)}

	c := m.session.Comic()
	switch {
	case m.session.Ready():
		title := c.Title()
		if title == "" {
			title = c.ID()
		}
		parts = append(parts,
			bg.Render(title, styles.Text.Bold(true)),
			bg.Render(comic.PageLabel(c.Current()), styles.AccentText),
			bg.Render(fmt.Sprintf("%d/%d", c.Current(), c.Length()), styles.MutedText),
			m.progress.ViewAs(readingProgress(c.Current(), c.Length())),
		)
		if m.session.Fullscreen() {
			parts = append(parts, bg.Render("fullscreen", styles.FaintText))
		}
	case m.session.Overlays().IsOpen(overlay.Error):
		parts = append(parts, bg.Render("error", styles.DangerText))
	default:
		parts = append(parts, bg.Render(m.spinner.View()+" Opening "+m.locator.ID+"...", styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// readingProgress returns the fraction of the comic read, clamped to [0, 1].
func readingProgress(current, length int) float64 {
	if length <= 0 {
		return 0
	}
	p := float64(current) / float64(length)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
