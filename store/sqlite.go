package store

import (
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS state (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLite stores blobs in a single key/value table.
type SQLite struct {
	*sql.DB
}

// NewSQLite opens the sqlite database at path and initialises the schema.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=1000")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db}, nil
}

func (s *SQLite) Get(key string) ([]byte, error) {
	var value []byte

	err := s.QueryRow("SELECT value FROM state WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	return value, err
}

func (s *SQLite) Put(key string, value []byte) error {
	_, err := s.Exec(`
		INSERT INTO state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)

	return err
}

func (s *SQLite) Delete(key string) error {
	_, err := s.Exec("DELETE FROM state WHERE key = ?", key)

	return err
}
