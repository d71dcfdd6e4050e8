package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/gutter/internal/comic"
	"github.com/five82/gutter/internal/library"
	"github.com/five82/gutter/internal/location"
	"github.com/five82/gutter/internal/prefs"
	"github.com/five82/gutter/internal/viewer"
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Session *viewer.Session
	Source  library.Source
	Layout  comic.Layout

	// Locator names the comic to open. StartErr, when set, is shown instead
	// and nothing is loaded.
	Locator  location.Locator
	StartErr error
	Saved    map[string]int

	ThemeName string
	PrefsPath string
	Logger    *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	session   *viewer.Session
	source    library.Source
	layout    comic.Layout
	locator   location.Locator
	startErr  error
	saved     map[string]int
	prefsPath string
	log       *slog.Logger

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	showHelp bool

	// Components
	help     help.Model
	spinner  spinner.Model
	progress progress.Model
	pager    paginator.Model

	// Gallery cursor, a page index
	cursor int

	// Jump-to-page prompt
	prompting bool
	prompt    textinput.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:       ctx,
		session:   opts.Session,
		source:    opts.Source,
		layout:    opts.Layout,
		locator:   opts.Locator,
		startErr:  opts.StartErr,
		saved:     opts.Saved,
		prefsPath: prefsPath,
		log:       logger.With(slog.String("component", "ui")),
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		pager:     newPager(),
		prompt:    newPrompt(),
	}
	if m.startErr != nil {
		m.log.Warn("cannot resolve comic", slog.Any("error", m.startErr))
		m.session.Fail(m.startErr)
	}
	return m
}

func newPager() paginator.Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = "●"
	p.InactiveDot = "○"
	return p
}

func newPrompt() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "Go to page: "
	ti.Placeholder = "0"
	ti.CharLimit = 6
	ti.Width = 8
	ti.Validate = validatePageNumber
	return ti
}

// Session returns the viewing session.
func (m Model) Session() *viewer.Session {
	return m.session
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.startErr != nil {
		return nil
	}
	return tea.Batch(
		m.spinner.Tick,
		loadCmd(m.ctx, m.source, m.layout, m.locator.ID),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = maxInt(10, msg.Width/4)
		m.syncPager()
		return m, nil

	case loadedMsg:
		return m.handleLoaded(msg)

	case probeMsg:
		if !m.session.ImageProbed(viewer.ProbeResult(msg)) {
			m.log.Debug("stale image probe ignored", slog.Uint64("seq", msg.Seq))
		}
		return m, nil

	case timerMsg:
		m.session.Fire(msg.timer)
		return m, nil

	case spinner.TickMsg:
		if m.session.Ready() || m.session.Overlays().ErrorMessage() != "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Error("open comic", slog.String("comic", m.locator.ID), slog.Any("error", msg.err))
		m.session.Fail(msg.err)
		return m, nil
	}

	start := location.InitialPage(m.locator, m.saved)
	fx := m.session.Opened(msg.comic, start)
	c := m.session.Comic()
	m.log.Info("comic opened",
		slog.String("comic", c.ID()),
		slog.Int("length", c.Length()),
		slog.Int("start", c.Current()),
	)
	m.cursor = clampInt(c.Current(), 0, c.Length())
	m.syncPager()
	return m, tea.Batch(m.effects(fx), m.reveal())
}

// Run starts the Bubble Tea program and returns the final model. The
// program starts inline; fullscreen switches to the alternate screen.
func Run(opts Options) (Model, error) {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithContext(m.ctx), tea.WithMouseAllMotion())
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		m = fm
	}
	return m, err
}
