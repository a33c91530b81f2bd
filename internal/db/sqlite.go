// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/mescal/internal/store"
)

// SQLite implements store.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ store.Repository = (*SQLite)(nil)

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// LoadState returns the saved view state, or nil if none was saved.
func (s *SQLite) LoadState(ctx context.Context) (*store.State, error) {
	query := `SELECT year, month, day, updated_at FROM view_state WHERE id = 1`

	var (
		st        store.State
		updatedAt string
	)
	err := s.db.QueryRowContext(ctx, query).Scan(&st.Year, &st.Month, &st.Day, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying view state: %w", err)
	}

	st.UpdatedAt, err = parseTimestamp(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated at: %w", err)
	}
	return &st, nil
}

// SaveState replaces the saved view state.
func (s *SQLite) SaveState(ctx context.Context, st store.State) error {
	if st.UpdatedAt.IsZero() {
		st.UpdatedAt = time.Now()
	}

	query := `
		INSERT INTO view_state (id, year, month, day, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			year = excluded.year,
			month = excluded.month,
			day = excluded.day,
			updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, st.Year, st.Month, st.Day, st.UpdatedAt.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("saving view state: %w", err)
	}
	return nil
}

// DisableDays stores days as disabled for a month in one transaction.
func (s *SQLite) DisableDays(ctx context.Context, year, month int, days []int) error {
	return s.execDays(ctx,
		`INSERT INTO disabled_days (year, month, day) VALUES (?, ?, ?)
		 ON CONFLICT(year, month, day) DO NOTHING`,
		year, month, days)
}

// EnableDays removes days from a month's disabled set.
func (s *SQLite) EnableDays(ctx context.Context, year, month int, days []int) error {
	return s.execDays(ctx,
		`DELETE FROM disabled_days WHERE year = ? AND month = ? AND day = ?`,
		year, month, days)
}

func (s *SQLite) execDays(ctx context.Context, query string, year, month int, days []int) error {
	if len(days) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, d := range days {
		if _, err := stmt.ExecContext(ctx, year, month, d); err != nil {
			return fmt.Errorf("updating disabled day %d: %w", d, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ListDisabledDays returns the disabled days of a month in ascending order.
func (s *SQLite) ListDisabledDays(ctx context.Context, year, month int) ([]int, error) {
	query := `SELECT day FROM disabled_days WHERE year = ? AND month = ? ORDER BY day`

	rows, err := s.db.QueryContext(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("querying disabled days: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var days []int
	for rows.Next() {
		var d int
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning disabled day: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating disabled days: %w", err)
	}
	return days, nil
}

// RecordNotification appends a notification and sets its ID.
func (s *SQLite) RecordNotification(ctx context.Context, n *store.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	query := `INSERT INTO notifications (event, date, created_at) VALUES (?, ?, ?)`
	result, err := s.db.ExecContext(ctx, query,
		n.Event,
		n.Date.Format("2006-01-02"),
		n.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	n.ID = id
	return nil
}

// ListNotifications returns recorded notifications, newest first.
func (s *SQLite) ListNotifications(ctx context.Context, limit int) ([]*store.Notification, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	query := `
		SELECT id, event, date, created_at
		FROM notifications
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*store.Notification
	for rows.Next() {
		var (
			n         store.Notification
			date      string
			createdAt string
		)
		if err := rows.Scan(&n.ID, &n.Event, &date, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		if n.Date, err = parseDate(date); err != nil {
			return nil, fmt.Errorf("parsing notification date: %w", err)
		}
		if n.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
		out = append(out, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}
	return out, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// parseDate parses a date string in various formats SQLite might return.
// Date-only values (midnight) are parsed in local timezone to match time.Now() behavior.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}

	// SQLite returns DATE columns as "2006-01-02T00:00:00Z" - extract date and parse as local
	if len(s) == 20 && s[10] == 'T' && s[19] == 'Z' {
		dateOnly := s[:10]
		if t, err := time.ParseInLocation("2006-01-02", dateOnly, time.Local); err == nil {
			return t, nil
		}
	}

	return parseTimestamp(s)
}

// parseTimestamp parses DATETIME values, which the driver may hand back
// either as stored or re-formatted as RFC 3339.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
