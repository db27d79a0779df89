/*
Package sqlite persists user-declared holidays.

PURPOSE:

	The only durable data in the system is the declared-holiday calendar
	(municipal dates, company days off) users maintain through the API.
	Analysis results are never stored: every analysis is recomputed from its
	request.

SCHEMA:

	declared_holidays: one row per (uf, date), name is the display text merged
	into resolver output. Declaring the same date again renames it.

WAL MODE:

	SQLite is opened with WAL (Write-Ahead Logging) so concurrent readers
	don't block. A sync.RWMutex guards the handle; with a client/server
	database the engine-level concurrency control would handle this instead.

USAGE:

	store, err := sqlite.New("./apontamento.db")   // ":memory:" for tests
	if err != nil {
	    log.Fatal(err)
	}
	defer store.Close()

SEE ALSO:
  - holidays/store.go: DeclaredStore interface this implements
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Wisley56/Apontamento-de-Horas/holidays"
	"github.com/Wisley56/Apontamento-de-Horas/timesheet"
)

const dateLayout = "2006-01-02"

// Store implements holidays.DeclaredStore on SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a store for the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS declared_holidays (
		id TEXT PRIMARY KEY,
		uf TEXT NOT NULL,
		date TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE(uf, date)
	);

	CREATE INDEX IF NOT EXISTS idx_declared_holidays_uf_date
		ON declared_holidays(uf, date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveHoliday inserts a declared holiday, renaming on (uf, date) conflict.
func (s *Store) SaveHoliday(ctx context.Context, h holidays.Declared) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO declared_holidays (id, uf, date, name, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(uf, date) DO UPDATE SET name = excluded.name`,
		h.ID, string(h.UF), h.Date.Time().Format(dateLayout), h.Name,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// ListHolidays returns all declared holidays for a UF, in date order.
func (s *Store) ListHolidays(ctx context.Context, uf holidays.UF) ([]holidays.Declared, error) {
	return s.queryHolidays(ctx, `
		SELECT id, uf, date, name FROM declared_holidays
		WHERE uf = ? ORDER BY date`, string(uf))
}

// HolidaysInYear implements holidays.DeclaredStore.
func (s *Store) HolidaysInYear(ctx context.Context, uf holidays.UF, year int) ([]holidays.Declared, error) {
	return s.queryHolidays(ctx, `
		SELECT id, uf, date, name FROM declared_holidays
		WHERE uf = ? AND date >= ? AND date <= ? ORDER BY date`,
		string(uf),
		fmt.Sprintf("%04d-01-01", year),
		fmt.Sprintf("%04d-12-31", year),
	)
}

// DeleteHoliday removes a declared holiday by ID.
func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM declared_holidays WHERE id = ?`, id)
	return err
}

func (s *Store) queryHolidays(ctx context.Context, query string, args ...any) ([]holidays.Declared, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []holidays.Declared
	for rows.Next() {
		var h holidays.Declared
		var uf, date string
		if err := rows.Scan(&h.ID, &uf, &date, &h.Name); err != nil {
			return nil, err
		}
		t, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("corrupt date %q for holiday %s: %w", date, h.ID, err)
		}
		h.UF = holidays.UF(uf)
		h.Date = timesheet.DateFromTime(t)
		out = append(out, h)
	}
	return out, rows.Err()
}
