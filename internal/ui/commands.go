package ui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/gutter/internal/comic"
	"github.com/five82/gutter/internal/library"
	"github.com/five82/gutter/internal/overlay"
	"github.com/five82/gutter/internal/viewer"
)

// Messages

// loadedMsg carries a comic loaded off the UI goroutine. The comic is a fresh
// instance, so a failed load never touches the session's comic.
type loadedMsg struct {
	comic *comic.Comic
	err   error
}

type probeMsg viewer.ProbeResult

type timerMsg struct {
	timer overlay.Timer
}

// Commands

func loadCmd(ctx context.Context, src library.Source, layout comic.Layout, id string) tea.Cmd {
	return func() tea.Msg {
		c := comic.New(layout)
		if err := c.Load(ctx, src, id); err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{comic: c}
	}
}

func probeCmd(ctx context.Context, src library.Source, req viewer.ProbeRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
		defer cancel()
		info, err := src.Probe(ctx, req.Location)
		return probeMsg{Seq: req.Seq, Info: info, Err: err}
	}
}

func timerCmd(t overlay.Timer) tea.Cmd {
	return tea.Tick(t.After, func(time.Time) tea.Msg {
		return timerMsg{timer: t}
	})
}

// effects turns the side effects of a session action into commands.
func (m Model) effects(fx viewer.Effects) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(fx.Timers)+2)
	for _, t := range fx.Timers {
		cmds = append(cmds, timerCmd(t))
	}
	if fx.Probe != nil && m.source != nil {
		cmds = append(cmds, probeCmd(m.ctx, m.source, *fx.Probe))
	}
	switch fx.Fullscreen {
	case viewer.FullscreenEnter:
		cmds = append(cmds, tea.EnterAltScreen)
	case viewer.FullscreenExit:
		cmds = append(cmds, tea.ExitAltScreen)
	}
	return tea.Batch(cmds...)
}

// dispatch runs one session action and returns its commands.
func (m *Model) dispatch(a viewer.Action) tea.Cmd {
	fx := m.session.Dispatch(a)
	m.log.Debug("action",
		slog.String("action", a.Kind.String()),
		slog.Int("arg", a.Arg),
		slog.Int("page", m.session.Comic().Current()),
	)
	return m.effects(fx)
}

// reveal treats input as activity: the transient overlays reappear and their
// auto-hide timer restarts.
func (m *Model) reveal() tea.Cmd {
	return m.dispatch(viewer.Do(viewer.Reveal))
}
