package ui

import (
	"path"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// galleryColumns returns how many thumbnail cells fit across the terminal.
func (m Model) galleryColumns() int {
	return maxInt(MinGalleryColumns, (m.width-2)/ThumbCellWidth)
}

// syncPager sizes the paginator to the comic and moves it to the cursor's page.
func (m *Model) syncPager() {
	m.pager.PerPage = m.galleryColumns() * GalleryRows
	m.pager.SetTotalPages(m.session.Comic().Length() + 1)
	m.pager.Page = m.cursor / m.pager.PerPage
}

// renderGallery renders one page of thumbnails. Pages after the current one
// are spoilers and render as blank cards.
func (m Model) renderGallery() string {
	styles := m.theme.Styles()
	c := m.session.Comic()
	columns := m.galleryColumns()

	start, end := m.pager.GetSliceBounds(c.Length() + 1)
	rows := make([]string, 0, GalleryRows)
	row := make([]string, 0, columns)
	for n := start; n < end; n++ {
		row = append(row, m.renderThumb(n))
		if len(row) == columns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	title := styles.AccentText.Bold(true).Render("Gallery")
	footer := m.pager.View()
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		strings.Join(rows, "\n"),
		footer,
	)
}

func (m Model) renderThumb(n int) string {
	styles := m.theme.Styles()
	c := m.session.Comic()
	inner := ThumbCellWidth - 4

	label := strconv.Itoa(n)
	if n == 0 {
		label = "Cover"
	}
	name := path.Base(c.ThumbPath(n))
	if m.session.Spoiler(n) {
		name = strings.Repeat("░", inner)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		padRight(label, inner),
		truncateMiddle(name, inner),
	)

	return m.thumbStyle(styles, n).Render(content)
}

// thumbStyle returns the cell style for page n: the cursor cell is drawn
// selected, the current page on the focus background, spoilers muted.
func (m Model) thumbStyle(styles Styles, n int) lipgloss.Style {
	c := m.session.Comic()
	cell := styles.Border.Width(ThumbCellWidth-2).Padding(0, 1)
	switch {
	case n == m.cursor:
		cell = cell.BorderForeground(lipgloss.Color(m.theme.BorderFocus)).Inherit(styles.Selected)
	case n == c.Current():
		cell = cell.BorderForeground(lipgloss.Color(m.theme.Accent)).
			Background(lipgloss.Color(m.theme.FocusBg))
	case m.session.Spoiler(n):
		cell = cell.BorderForeground(lipgloss.Color(m.theme.BorderMuted)).
			Foreground(lipgloss.Color(m.theme.Faint))
	}
	return cell
}
