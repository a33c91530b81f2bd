// Package store defines what the calendar hosts persist between runs.
package store

import (
	"context"
	"time"
)

// State is the last date a host displayed and selected.
type State struct {
	Year      int
	Month     int // 0-based
	Day       int
	UpdatedAt time.Time
}

// Date returns the state as a calendar date in loc.
func (s State) Date(loc *time.Location) time.Time {
	return time.Date(s.Year, time.Month(s.Month+1), s.Day, 0, 0, 0, 0, loc)
}

// Notification is one recorded widget notification.
type Notification struct {
	ID        int64
	Event     string // "day_changed" or "month_changed"
	Date      time.Time
	CreatedAt time.Time
}

// Repository defines the storage interface for calendar hosts.
type Repository interface {
	// LoadState returns the saved state, or nil if nothing was saved yet.
	LoadState(ctx context.Context) (*State, error)

	// SaveState replaces the saved state.
	SaveState(ctx context.Context, s State) error

	// DisableDays stores days as disabled for the given month.
	// Already disabled days are ignored.
	DisableDays(ctx context.Context, year, month int, days []int) error

	// EnableDays removes days from the disabled set of the given month.
	EnableDays(ctx context.Context, year, month int, days []int) error

	// ListDisabledDays returns the disabled days of a month in ascending order.
	ListDisabledDays(ctx context.Context, year, month int) ([]int, error)

	// RecordNotification appends a notification to the history.
	RecordNotification(ctx context.Context, n *Notification) error

	// ListNotifications returns the most recent notifications, newest first.
	// A limit <= 0 returns all of them.
	ListNotifications(ctx context.Context, limit int) ([]*Notification, error)

	// Close releases any resources held by the repository.
	Close() error
}
