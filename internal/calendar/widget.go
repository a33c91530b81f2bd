// Package calendar provides the month-view calendar widget.
//
// A Widget owns the navigation state (year, month, selected day, disabled
// days), recomputes the grid through package grid on every change, hands
// the result to a Renderer and notifies listeners. It is not safe for
// concurrent use; hosts drive it from a single event loop.
package calendar

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/javiermolinar/mescal/internal/grid"
)

// Options is the construction configuration of a widget.
type Options struct {
	Selector       string // mount target, passed to Renderer.Mount
	WeekStarts     int    // weekday index shown in the first column
	PreviousSymbol string
	NextSymbol     string
}

// DefaultOptions returns the default construction configuration.
func DefaultOptions() Options {
	return Options{
		Selector:       "#calendar",
		WeekStarts:     grid.Monday,
		PreviousSymbol: "<",
		NextSymbol:     ">",
	}
}

// Widget is a month-view calendar.
type Widget struct {
	renderer Renderer
	opts     Options
	names    grid.Names
	logger   *slog.Logger
	now      func() time.Time
	start    time.Time

	year       int
	month      int // 0-based
	day        int
	weekStarts int
	disabled   grid.DaySet
	loc        *time.Location

	listeners []registration
	nextID    int
}

// Option configures optional widget behavior.
type Option func(*Widget)

// WithClock sets the clock used for the initial date.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) {
		w.now = now
	}
}

// WithStart opens the widget on t instead of the clock's current date.
func WithStart(t time.Time) Option {
	return func(w *Widget) {
		w.start = t
	}
}

// WithNames replaces the day and month abbreviation tables.
func WithNames(n grid.Names) Option {
	return func(w *Widget) {
		w.names = n
	}
}

// WithLogger sets the logger for navigation and selection events.
func WithLogger(l *slog.Logger) Option {
	return func(w *Widget) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithListener subscribes fn before construction, so it also observes the
// initial day_changed notification.
func WithListener(event Event, fn Listener) Option {
	return func(w *Widget) {
		w.Subscribe(event, fn)
	}
}

// New mounts a widget on r and renders the starting month with the starting
// day selected.
func New(r Renderer, opts Options, options ...Option) (*Widget, error) {
	w := &Widget{
		renderer:   r,
		opts:       opts,
		names:      grid.DefaultNames(),
		logger:     slog.New(slog.DiscardHandler),
		now:        time.Now,
		weekStarts: grid.NormalizeWeekday(opts.WeekStarts),
	}
	for _, opt := range options {
		opt(w)
	}

	if err := r.Mount(opts.Selector); err != nil {
		return nil, fmt.Errorf("mounting calendar at %q: %w", opts.Selector, err)
	}

	start := w.start
	if start.IsZero() {
		start = w.now()
	}
	w.loc = start.Location()
	w.year = start.Year()
	w.month = int(start.Month()) - 1
	w.day = start.Day()

	if err := w.render(); err != nil {
		return nil, err
	}
	w.logger.Debug("calendar mounted",
		"selector", opts.Selector,
		"year", w.year,
		"month", w.month,
		"week_starts", w.weekStarts,
	)
	w.emit(DayChanged)

	return w, nil
}

// Year returns the displayed year.
func (w *Widget) Year() int { return w.year }

// Month returns the displayed month, 0-based.
func (w *Widget) Month() int { return w.month }

// SelectedDay returns the selected day of the month.
func (w *Widget) SelectedDay() int { return w.day }

// WeekStarts returns the weekday index of the first column.
func (w *Widget) WeekStarts() int { return w.weekStarts }

// Options returns the construction configuration.
func (w *Widget) Options() Options { return w.opts }

// Date returns the selected date.
func (w *Widget) Date() time.Time {
	return time.Date(w.year, time.Month(w.month+1), w.day, 0, 0, 0, 0, w.loc)
}

// Disabled returns the disabled days of the displayed month in ascending order.
func (w *Widget) Disabled() []int {
	return slices.Sorted(maps.Keys(w.disabled))
}

// Title returns the header title, e.g. "Jan - 2024".
func (w *Widget) Title() string {
	return grid.Title(w.names, w.month, w.year)
}

// Weeks returns the current grid.
func (w *Widget) Weeks() []grid.WeekRow {
	return grid.BuildWeeks(w.month, w.year, w.weekStarts, w.day, w.disabled)
}

// View returns the view for the current state.
func (w *Widget) View() View {
	return newView(w)
}

// NextMonth moves forward one month and returns the newly selected date.
func (w *Widget) NextMonth() time.Time {
	return w.navigate(1)
}

// PreviousMonth moves back one month and returns the newly selected date.
func (w *Widget) PreviousMonth() time.Time {
	return w.navigate(-1)
}

// navigate resets the selection to day 1 and drops disabled days: disabling
// is scoped to the month it was applied to.
func (w *Widget) navigate(delta int) time.Time {
	w.month, w.year = grid.AdvanceMonth(w.month, w.year, delta)
	w.day = 1
	w.disabled = nil

	if err := w.render(); err != nil {
		w.logger.Error("rendering month", "error", err)
	}
	w.logger.Debug("month changed", "year", w.year, "month", w.month, "delta", delta)

	date := w.Date()
	w.emit(MonthChanged)
	w.emit(DayChanged)
	return date
}

// SelectDay selects day in the displayed month.
func (w *Widget) SelectDay(day int) error {
	if n := grid.DaysInMonth(w.month, w.year); day < 1 || day > n {
		return fmt.Errorf("%w: %d (month has %d days)", ErrInvalidSelection, day, n)
	}
	if w.disabled.Has(day) {
		return fmt.Errorf("%w: %d", ErrDayDisabled, day)
	}

	w.day = day
	if err := w.render(); err != nil {
		return err
	}
	w.logger.Debug("day selected", "day", day)
	w.emit(DayChanged)
	return nil
}

// DisableDays marks days of the displayed month as non-interactive. Days
// outside the month are collected into a *DisableError; the remaining days
// are still disabled.
func (w *Widget) DisableDays(days ...int) error {
	n := grid.DaysInMonth(w.month, w.year)
	var rejected []int
	changed := false
	for _, day := range days {
		if day < 1 || day > n {
			rejected = append(rejected, day)
			continue
		}
		if w.disabled == nil {
			w.disabled = make(grid.DaySet)
		}
		if !w.disabled.Has(day) {
			w.disabled[day] = struct{}{}
			changed = true
		}
	}

	if changed {
		if err := w.render(); err != nil {
			return err
		}
		w.logger.Debug("days disabled", "days", w.Disabled())
	}
	if len(rejected) > 0 {
		return &DisableError{Rejected: rejected}
	}
	return nil
}

// EnableDays makes previously disabled days interactive again. Days that
// are not disabled are ignored.
func (w *Widget) EnableDays(days ...int) error {
	changed := false
	for _, day := range days {
		if w.disabled.Has(day) {
			delete(w.disabled, day)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	w.logger.Debug("days enabled", "days", days)
	return w.render()
}

func (w *Widget) render() error {
	if err := w.renderer.Draw(newView(w)); err != nil {
		return fmt.Errorf("drawing calendar: %w", err)
	}
	return nil
}
