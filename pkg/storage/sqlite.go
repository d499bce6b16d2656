package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/antibyte/retrobasic/pkg/logger"
)

// SQLiteStore keeps program files in the programs table, keyed by owner
// and name. Server sessions use it so programs survive reconnects without
// touching the host filesystem.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an open database connection.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// ReadFile returns the stored program content for owner/name.
func (s *SQLiteStore) ReadFile(owner, name string) (string, error) {
	var content string
	err := s.db.QueryRow(
		`SELECT content FROM programs WHERE owner = ? AND name = ?`,
		owner, name,
	).Scan(&content)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("program %q not found", name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read program %q: %w", name, err)
	}
	return content, nil
}

// WriteFile stores program content under owner/name, replacing any
// previous version.
func (s *SQLiteStore) WriteFile(owner, name, content string) error {
	_, err := s.db.Exec(
		`INSERT INTO programs (owner, name, content, mod_time) VALUES (?, ?, ?, ?)
		 ON CONFLICT(owner, name) DO UPDATE SET content = excluded.content, mod_time = excluded.mod_time`,
		owner, name, content, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write program %q: %w", name, err)
	}
	logger.Debug(logger.AreaStorage, "stored program %s/%s (%d bytes)", owner, name, len(content))
	return nil
}

// List returns the program names stored for an owner, newest first.
func (s *SQLiteStore) List(owner string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT name FROM programs WHERE owner = ? ORDER BY mod_time DESC`, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
