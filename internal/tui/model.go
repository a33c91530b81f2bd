// Package tui provides the terminal user interface for mescal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/mescal/internal/calendar"
	"github.com/javiermolinar/mescal/internal/config"
	"github.com/javiermolinar/mescal/internal/host"
	"github.com/javiermolinar/mescal/internal/logging"
	"github.com/javiermolinar/mescal/internal/store"
	"github.com/javiermolinar/mescal/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
)

func (m Mode) String() string {
	switch m {
	case ModePrompt:
		return "prompt"
	default:
		return "normal"
	}
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	session *host.Session
	repo    store.Repository
	config  *config.Config
	logger  *slog.Logger

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Widget renderer; holds the last drawn view
	screen *screen

	// State
	mode   Mode
	prompt textinput.Model
	start  time.Time // zero resumes the saved state

	// Terminal dimensions and layout
	width  int
	height int

	// Cached render data
	layoutCache LayoutCache
	styleCache  StyleCache
	renderCache *RenderCache

	now       func() time.Time
	writeClip func(string) error

	// Messages
	statusMsg   string    // Temporary status/error message
	statusErr   bool      // statusMsg reports a failure
	statusTime  time.Time // When to clear message
	reportedErr error     // storage failure already shown
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClock sets the clock used for today's date and the initial month.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// WithStart opens the calendar on t instead of the saved state.
func WithStart(t time.Time) ModelOption {
	return func(m *Model) {
		m.start = t
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *slog.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(write func(string) error) ModelOption {
	return func(m *Model) {
		m.writeClip = write
	}
}

// New creates a new TUI model showing the calendar backed by repo.
func New(ctx context.Context, repo store.Repository, cfg *config.Config, opts ...ModelOption) (*Model, error) {
	ti := textinput.New()
	ti.Placeholder = "/select 17"
	ti.CharLimit = 128

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	m := &Model{
		repo:        repo,
		config:      cfg,
		logger:      logging.Discard().Logger,
		theme:       t,
		styles:      styles,
		screen:      newScreen(),
		mode:        ModeNormal,
		prompt:      ti,
		styleCache:  NewStyleCache(styles, defaultCellWidth),
		renderCache: &RenderCache{},
		now:         time.Now,
		writeClip:   clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(m)
	}

	session, err := host.Open(ctx, repo, m.screen, host.Options{
		Calendar: cfg.WidgetOptions(),
		Start:    m.start,
		Resume:   true,
		Clock:    m.now,
		Logger:   m.logger,
	})
	if err != nil {
		return nil, err
	}
	m.session = session
	m.layoutCache = m.buildLayoutCache(0, 0)

	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) widget() *calendar.Widget {
	return m.session.Widget()
}

// Run starts the TUI.
func Run(ctx context.Context, repo store.Repository, cfg *config.Config) error {
	return RunWithLogger(ctx, repo, cfg, nil)
}

// RunWithLogger starts the TUI, opening the configured database when repo
// is nil.
func RunWithLogger(ctx context.Context, repo store.Repository, cfg *config.Config, logger *slog.Logger) error {
	if repo == nil {
		r, err := openRepo(cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		defer func() { _ = r.Close() }()
		repo = r
	}

	model, err := New(ctx, repo, cfg, WithLogger(logger))
	if err != nil {
		return err
	}

	p := tea.NewProgram(*model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("running tui: %w", err)
	}
	if fm, ok := finalModel.(Model); ok {
		return fm.session.Err()
	}
	return nil
}
