package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/daystreak/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS day_records (
	id TEXT NOT NULL,
	day TEXT PRIMARY KEY,
	status TEXT NOT NULL CHECK (status IN ('zero', 'reset')),
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}
	return s.open()
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return fmt.Errorf("failed to exec pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Load() (map[string]models.DayRecord, error) {
	records := make(map[string]models.DayRecord)

	// A store that was never written is an empty collection, not an error.
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return records, nil
	}

	if err := s.open(); err != nil {
		// A file that cannot be opened as our database is corrupt
		// persisted data; the session recovers with an empty collection.
		return records, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	rows, err := s.db.Query("SELECT id, day, status, created_at, updated_at FROM day_records")
	if err != nil {
		return records, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec models.DayRecord
		var createdAt, updatedAt string
		if err := rows.Scan(&rec.ID, &rec.Day, &rec.Status, &createdAt, &updatedAt); err != nil {
			return make(map[string]models.DayRecord), fmt.Errorf("%w: %v", ErrMalformedData, err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		rec.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		records[rec.Day] = rec
	}
	if err := rows.Err(); err != nil {
		return make(map[string]models.DayRecord), fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	return records, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) SaveRecord(rec models.DayRecord) error {
	if err := s.open(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO day_records (id, day, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			status = excluded.status,
			updated_at = excluded.updated_at`,
		rec.ID, rec.Day, string(rec.Status),
		rec.CreatedAt.UTC().Format(time.RFC3339),
		rec.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save record for %s: %w", rec.Day, err)
	}
	return nil
}

func (s *SQLiteStore) DeleteRecord(day string) error {
	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM day_records WHERE day = ?", day); err != nil {
		return fmt.Errorf("failed to delete record for %s: %w", day, err)
	}
	return nil
}

func (s *SQLiteStore) Clear() error {
	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM day_records"); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
