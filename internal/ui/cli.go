// Package ui provides the command-line interface for mescal.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/mescal/internal/calendar"
	"github.com/javiermolinar/mescal/internal/config"
	"github.com/javiermolinar/mescal/internal/db"
	"github.com/javiermolinar/mescal/internal/host"
	"github.com/javiermolinar/mescal/internal/logging"
	"github.com/javiermolinar/mescal/internal/store"
	"github.com/javiermolinar/mescal/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo     store.Repository
	ownsRepo bool
	config   *config.Config
	root     *cobra.Command
	debug    bool // Enable debug logging
	logger   *logging.Logger

	out io.Writer
	in  io.Reader
	now func() time.Time
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repo is opened from the configured database path on first use.
func NewApp(repo store.Repository, cfg *config.Config) *App {
	a := &App{
		repo:   repo,
		config: cfg,
		logger: logging.Discard(),
		out:    os.Stdout,
		in:     os.Stdin,
		now:    time.Now,
	}

	a.root = &cobra.Command{
		Use:   "mescal",
		Short: "A month-view calendar for the terminal",
		Long: `Mescal shows a month-view calendar you can page through, pick a day
from, and mark days as unavailable.

Run without arguments to open the interactive calendar. The subcommands
work on the same saved state from scripts and prompts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := logging.Open(a.debug, "")
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.RunWithLogger(cmd.Context(), a.repo, a.config, a.logger.Logger)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+logging.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.nextCmd())
	a.root.AddCommand(a.prevCmd())
	a.root.AddCommand(a.selectCmd())
	a.root.AddCommand(a.disableCmd())
	a.root.AddCommand(a.enableCmd())
	a.root.AddCommand(a.logCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(a.out, "mescal %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI application with ctx, which is cancelled on
// interrupt by the caller.
func (a *App) ExecuteContext(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// Close releases the repository if the app opened it, and the debug log.
func (a *App) Close() error {
	var err error
	if a.ownsRepo && a.repo != nil {
		err = a.repo.Close()
		a.repo = nil
		a.ownsRepo = false
	}
	if lerr := a.logger.Close(); err == nil {
		err = lerr
	}
	return err
}

// ensureRepo opens the configured database if no repository was given.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}

	dbPath := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	a.repo = repo
	a.ownsRepo = true
	return nil
}

// openSession opens the saved calendar on a text renderer.
func (a *App) openSession(ctx context.Context) (*host.Session, *textRenderer, error) {
	if err := a.ensureRepo(); err != nil {
		return nil, nil, err
	}
	r := newTextRenderer()
	s, err := host.Open(ctx, a.repo, r, host.Options{
		Calendar: a.config.WidgetOptions(),
		Resume:   true,
		Clock:    a.now,
		Logger:   a.logger.Logger,
	})
	if err != nil {
		return nil, nil, err
	}
	return s, r, nil
}

// runSession opens the saved calendar, applies fn, prints the resulting
// month, and reports any storage failure the session's listeners hit.
func (a *App) runSession(ctx context.Context, fn func(s *host.Session) error) error {
	s, r, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	fnErr := fn(s)
	printMonth(a.out, s.Widget(), r.view, a.now())
	if fnErr != nil {
		return fnErr
	}
	return s.Err()
}

// newWidget builds a widget that is not bound to storage.
func (a *App) newWidget(r calendar.Renderer, opts calendar.Options, start time.Time) (*calendar.Widget, error) {
	return calendar.New(r, opts,
		calendar.WithStart(start),
		calendar.WithClock(a.now),
		calendar.WithLogger(a.logger.Logger),
	)
}
