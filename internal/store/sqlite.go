package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const recordsSchema = `
CREATE TABLE IF NOT EXISTS records (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SQLiteBackend persists records in a single-table SQLite database. It is the
// durable Backend used outside tests.
type SQLiteBackend struct {
	db *sql.DB
}

// DefaultDBPath returns the default database location under the user's home
// directory.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".namaa.db"), nil
}

// OpenSQLite opens (and creates if missing) the record database at path.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(recordsSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create records table: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

func (s *SQLiteBackend) Get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		// Read errors are indistinguishable from absence for callers; the
		// Namespace substitutes the default either way.
		return "", false
	}
	return value, true
}

func (s *SQLiteBackend) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO records (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert record %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteBackend) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM records WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteBackend) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM records ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list record keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan record key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate record keys: %w", err)
	}
	return keys, nil
}

func (s *SQLiteBackend) Close() error { return s.db.Close() }
