// Package host connects a calendar widget to persistent storage.
//
// A Session plays the part of the page embedding the widget: it records
// every notification, remembers the last selected date, and re-applies the
// disabled days stored for a month each time that month is displayed, since
// the widget itself forgets them on navigation.
package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/javiermolinar/mescal/internal/calendar"
	"github.com/javiermolinar/mescal/internal/grid"
	"github.com/javiermolinar/mescal/internal/store"
)

// Options configures a Session.
type Options struct {
	Calendar calendar.Options
	Start    time.Time        // initial date; zero means resume or clock
	Resume   bool             // start from the saved state when Start is zero
	Clock    func() time.Time // defaults to time.Now
	Names    *grid.Names      // defaults to grid.DefaultNames
	Logger   *slog.Logger
}

// Session is a widget bound to a repository.
type Session struct {
	ctx    context.Context // scopes storage writes made from listeners
	widget *calendar.Widget
	repo   store.Repository
	logger *slog.Logger
	err    error
}

// Open builds the widget on r, applying stored state and disabled days.
// ctx stays attached to the session: the storage writes triggered by
// notifications run under it, so cancelling ctx stops them.
func Open(ctx context.Context, repo store.Repository, r calendar.Renderer, opts Options) (*Session, error) {
	s := &Session{ctx: ctx, repo: repo, logger: opts.Logger}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	start := opts.Start
	if start.IsZero() && opts.Resume {
		st, err := repo.LoadState(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading view state: %w", err)
		}
		if st != nil {
			start = st.Date(clock().Location())
		}
	}

	widgetOpts := []calendar.Option{
		calendar.WithClock(clock),
		calendar.WithLogger(s.logger),
		calendar.WithListener(calendar.DayChanged, s.record),
		calendar.WithListener(calendar.DayChanged, s.saveState),
		calendar.WithListener(calendar.MonthChanged, s.record),
		calendar.WithListener(calendar.MonthChanged, s.reapplyDisabled),
	}
	if !start.IsZero() {
		widgetOpts = append(widgetOpts, calendar.WithStart(start))
	}
	if opts.Names != nil {
		widgetOpts = append(widgetOpts, calendar.WithNames(*opts.Names))
	}

	w, err := calendar.New(r, opts.Calendar, widgetOpts...)
	if err != nil {
		return nil, err
	}
	s.widget = w

	if err := s.applyStoredDisabled(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Widget returns the underlying widget.
func (s *Session) Widget() *calendar.Widget {
	return s.widget
}

// Err returns the first storage error raised while handling notifications.
func (s *Session) Err() error {
	return s.err
}

// Next moves forward one month.
func (s *Session) Next() time.Time {
	return s.widget.NextMonth()
}

// Previous moves back one month.
func (s *Session) Previous() time.Time {
	return s.widget.PreviousMonth()
}

// Select selects a day of the displayed month.
func (s *Session) Select(day int) error {
	return s.widget.SelectDay(day)
}

// DisableDays disables days of the displayed month and stores the accepted
// ones so they come back whenever the month is shown again. Rejected days
// are reported through a *calendar.DisableError.
func (s *Session) DisableDays(ctx context.Context, days ...int) error {
	werr := s.widget.DisableDays(days...)

	var derr *calendar.DisableError
	if werr != nil && !errors.As(werr, &derr) {
		return werr
	}
	accepted := acceptedDays(days, derr)
	if err := s.repo.DisableDays(ctx, s.widget.Year(), s.widget.Month(), accepted); err != nil {
		return fmt.Errorf("storing disabled days: %w", err)
	}
	return werr
}

// EnableDays re-enables days of the displayed month, in the widget and in storage.
func (s *Session) EnableDays(ctx context.Context, days ...int) error {
	if err := s.widget.EnableDays(days...); err != nil {
		return err
	}
	if err := s.repo.EnableDays(ctx, s.widget.Year(), s.widget.Month(), days); err != nil {
		return fmt.Errorf("removing disabled days: %w", err)
	}
	return nil
}

func acceptedDays(days []int, derr *calendar.DisableError) []int {
	if derr == nil {
		return days
	}
	rejected := grid.NewDaySet(derr.Rejected...)
	out := make([]int, 0, len(days))
	for _, d := range days {
		if !rejected.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s *Session) applyStoredDisabled(ctx context.Context) error {
	days, err := s.repo.ListDisabledDays(ctx, s.widget.Year(), s.widget.Month())
	if err != nil {
		return fmt.Errorf("loading disabled days: %w", err)
	}
	if len(days) == 0 {
		return nil
	}
	if err := s.widget.DisableDays(days...); err != nil {
		// Stored rows are range-checked on write; a rejection here means
		// the table was edited by hand.
		s.logger.Warn("ignoring stored disabled days", "error", err)
	}
	return nil
}

func (s *Session) record(n calendar.Notification) {
	err := s.repo.RecordNotification(s.ctx, &store.Notification{
		Event: string(n.Event),
		Date:  n.Date,
	})
	s.fail("recording notification", err)
}

func (s *Session) saveState(n calendar.Notification) {
	err := s.repo.SaveState(s.ctx, store.State{
		Year:  n.Date.Year(),
		Month: int(n.Date.Month()) - 1,
		Day:   n.Date.Day(),
	})
	s.fail("saving view state", err)
}

func (s *Session) reapplyDisabled(calendar.Notification) {
	s.fail("re-applying disabled days", s.applyStoredDisabled(s.ctx))
}

func (s *Session) fail(action string, err error) {
	if err == nil {
		return
	}
	s.logger.Error(action, "error", err)
	if s.err == nil {
		s.err = fmt.Errorf("%s: %w", action, err)
	}
}
