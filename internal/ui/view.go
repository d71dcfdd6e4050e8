package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/gutter/internal/comic"
	"github.com/five82/gutter/internal/overlay"
)

// renderMain renders the viewer. The error banner and the gallery replace the
// page pane; the controls, section list and prompt stack below it.
func (m Model) renderMain() string {
	o := m.session.Overlays()

	blocks := []string{m.renderHeader()}
	switch {
	case o.IsOpen(overlay.Error):
		blocks = append(blocks, m.renderError())
	case o.IsOpen(overlay.Gallery):
		blocks = append(blocks, m.renderGallery())
	default:
		blocks = append(blocks, m.renderPage())
		if o.IsOpen(overlay.Sections) {
			blocks = append(blocks, m.renderSections())
		}
		if o.IsOpen(overlay.Controls) {
			blocks = append(blocks, m.renderControls())
		}
	}
	if m.prompting {
		blocks = append(blocks, m.prompt.View())
	}
	blocks = append(blocks, m.renderFooter())

	body := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	if m.session.Fullscreen() && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, body)
	}
	return body
}

// renderPage renders the framed page pane: label, image location and the
// state of the image probe.
func (m Model) renderPage() string {
	styles := m.theme.Styles()
	c := m.session.Comic()
	width := maxInt(m.width-2, 20)

	if !m.session.Ready() {
		return styles.Border.Width(width).Render(styles.MutedText.Render("Waiting for the comic..."))
	}

	img := m.session.Image()
	lines := []string{
		styles.Text.Bold(true).Render(comic.PageLabel(c.Current())),
		styles.InfoText.Render(truncateMiddle(img.Location, width-4)),
	}
	switch {
	case img.Loading:
		lines = append(lines, styles.WarningText.Render(m.spinner.View()+" loading"))
	case img.Err != nil:
		lines = append(lines, styles.DangerText.Render("image unavailable"))
	case img.Size >= 0:
		lines = append(lines, styles.SuccessText.Render(humanize.Bytes(uint64(img.Size))))
	default:
		lines = append(lines, styles.MutedText.Render("size unknown"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return styles.Border.
		Width(width).
		Align(lipgloss.Center).
		Render(content)
}

// controlButton is one entry of the controls bar.
type controlButton struct {
	label    string
	short    string
	disabled bool
}

// renderControls renders the navigation buttons. Buttons at a bound are
// drawn disabled, matching the actions that would do nothing there.
func (m Model) renderControls() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	c := m.session.Comic()
	ready := m.session.Ready()

	buttons := []controlButton{
		{label: "⏮ First", short: "⏮", disabled: !ready || c.AtFirst()},
		{label: "◀ Previous", short: "◀", disabled: !ready || c.AtFirst()},
		{label: "Next ▶", short: "▶", disabled: !ready || c.AtLast()},
		{label: "Last ⏭", short: "⏭", disabled: !ready || c.AtLast()},
		{label: "▦ Gallery", short: "▦", disabled: !ready},
	}
	if m.session.Overlays().IsOpen(overlay.FullscreenToggle) {
		label := ternary(m.session.Fullscreen(), "Exit fullscreen", "Enter fullscreen")
		buttons = append(buttons, controlButton{label: label, short: "⛶"})
	}

	compact := m.width > 0 && m.width < LayoutCompactWidth
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		text := ternary(compact, b.short, b.label)
		if b.disabled {
			parts = append(parts, bg.Render(text, styles.Disabled))
			continue
		}
		parts = append(parts, styles.Button.Render(text))
	}
	return bg.FillLine(bg.Join(parts, "  "), m.width)
}

// renderSections renders the section list shown on the cover.
func (m Model) renderSections() string {
	styles := m.theme.Styles()
	sections := m.session.Comic().Sections()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Contents"))
	for i, page := range sections {
		b.WriteString("\n")
		hint := " "
		if i < 9 {
			hint = fmt.Sprintf("%d", i+1)
		}
		b.WriteString(styles.WarningText.Render(hint))
		b.WriteString(" ")
		b.WriteString(styles.Text.Render(padRight(comic.SectionLabel(i), 14)))
		b.WriteString(styles.FaintText.Render(comic.PageLabel(page)))
	}
	return styles.Border.
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(0, 1).
		Render(b.String())
}

// renderError renders the error banner. It stays for the rest of the session.
func (m Model) renderError() string {
	styles := m.theme.Styles()
	width := maxInt(m.width-2, 20)
	banner := styles.Border.
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Width(width).
		Align(lipgloss.Center).
		Render(styles.DangerText.Render(m.session.Overlays().ErrorMessage()))
	return banner
}

func (m Model) renderFooter() string {
	bindings := m.keys.ShortHelp()
	if m.session.Overlays().IsOpen(overlay.Gallery) {
		bindings = m.keys.GalleryHelp()
	}
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).Render(m.help.ShortHelpView(bindings))
}
