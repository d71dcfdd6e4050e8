package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/gutter/internal/overlay"
	"github.com/five82/gutter/internal/prefs"
	"github.com/five82/gutter/internal/viewer"
)

// handleKey processes keyboard input. Every key that reaches the viewer also
// counts as activity and reveals the transient overlays.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.prompting {
		return m.handlePromptKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.log.Warn("save theme", slog.String("path", m.prefsPath), slog.Any("error", err))
		}
		return m, nil
	}

	if m.session.Overlays().IsOpen(overlay.Gallery) {
		return m.handleGalleryKey(msg)
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Previous):
		cmd = m.dispatch(viewer.Do(viewer.Previous))
	case key.Matches(msg, m.keys.Next):
		cmd = m.dispatch(viewer.Do(viewer.Next))
	case key.Matches(msg, m.keys.First):
		cmd = m.dispatch(viewer.Do(viewer.First))
	case key.Matches(msg, m.keys.Last):
		cmd = m.dispatch(viewer.Do(viewer.Last))
	case key.Matches(msg, m.keys.Section):
		if !m.session.Overlays().IsOpen(overlay.Sections) {
			return m, nil
		}
		n, _ := strconv.Atoi(msg.String())
		cmd = m.dispatch(viewer.Action{Kind: viewer.JumpToSection, Arg: n - 1})
	case key.Matches(msg, m.keys.HistoryBack):
		cmd = m.dispatch(viewer.Do(viewer.HistoryBack))
	case key.Matches(msg, m.keys.HistoryForward):
		cmd = m.dispatch(viewer.Do(viewer.HistoryForward))
	case key.Matches(msg, m.keys.Gallery):
		m.cursor = clampInt(m.session.Comic().Current(), 0, m.session.Comic().Length())
		m.syncPager()
		cmd = m.dispatch(viewer.Do(viewer.ToggleGallery))
	case key.Matches(msg, m.keys.Fullscreen):
		cmd = m.dispatch(viewer.Do(viewer.ToggleFullscreen))
	case key.Matches(msg, m.keys.Back):
		cmd = m.dispatch(viewer.Do(viewer.Back))
	case key.Matches(msg, m.keys.JumpPage):
		if !m.session.Ready() {
			return m, nil
		}
		m.prompting = true
		m.prompt.Reset()
		return m, m.prompt.Focus()
	default:
		return m, nil
	}
	return m, tea.Batch(cmd, m.reveal())
}

// handleGalleryKey moves the gallery cursor and opens the selected page.
func (m Model) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := m.session.Comic().Length()
	columns := m.galleryColumns()

	switch {
	case key.Matches(msg, m.keys.Previous):
		m.cursor--
	case key.Matches(msg, m.keys.Next):
		m.cursor++
	case key.Matches(msg, m.keys.Up):
		m.cursor -= columns
	case key.Matches(msg, m.keys.Down):
		m.cursor += columns
	case key.Matches(msg, m.keys.First):
		m.cursor = 0
	case key.Matches(msg, m.keys.Last):
		m.cursor = last
	case key.Matches(msg, m.keys.Select):
		return m, m.dispatch(viewer.Action{Kind: viewer.SelectThumbnail, Arg: m.cursor})
	case key.Matches(msg, m.keys.Gallery):
		return m, m.dispatch(viewer.Do(viewer.ToggleGallery))
	case key.Matches(msg, m.keys.Back):
		return m, m.dispatch(viewer.Do(viewer.Back))
	case key.Matches(msg, m.keys.Fullscreen):
		return m, m.dispatch(viewer.Do(viewer.ToggleFullscreen))
	default:
		return m, nil
	}
	m.cursor = clampInt(m.cursor, 0, last)
	m.syncPager()
	return m, nil
}

// handlePromptKey feeds the jump-to-page prompt.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompting = false
		m.prompt.Blur()
		return m, nil
	case tea.KeyEnter:
		page, err := strconv.Atoi(strings.TrimSpace(m.prompt.Value()))
		if err != nil {
			return m, nil
		}
		m.prompting = false
		m.prompt.Blur()
		page = clampInt(page, 0, m.session.Comic().Length())
		return m, tea.Batch(
			m.dispatch(viewer.Action{Kind: viewer.JumpToPage, Arg: page}),
			m.reveal(),
		)
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handleMouse reveals the transient overlays on any pointer activity. A click
// while the gallery is open closes it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && m.session.Overlays().IsOpen(overlay.Gallery) {
		return m, m.dispatch(viewer.Do(viewer.CloseGallery))
	}
	return m, m.reveal()
}

func validatePageNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("not a page number: %q", s)
	}
	return nil
}
