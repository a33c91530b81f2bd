package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS view_state (
			id          INTEGER PRIMARY KEY CHECK(id = 1),
			year        INTEGER NOT NULL,
			month       INTEGER NOT NULL CHECK(month BETWEEN 0 AND 11),
			day         INTEGER NOT NULL CHECK(day BETWEEN 1 AND 31),
			updated_at  DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS disabled_days (
			year   INTEGER NOT NULL,
			month  INTEGER NOT NULL CHECK(month BETWEEN 0 AND 11),
			day    INTEGER NOT NULL CHECK(day BETWEEN 1 AND 31),
			PRIMARY KEY (year, month, day)
		);

		CREATE TABLE IF NOT EXISTS notifications (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			event       TEXT NOT NULL CHECK(event IN ('day_changed', 'month_changed')),
			date        DATE NOT NULL,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_notifications_created ON notifications(created_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
