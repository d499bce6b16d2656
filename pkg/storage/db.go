// Package storage provides the program file backends a BASIC session
// loads from and saves to: plain files on disk for the console REPL and a
// SQLite program library for server sessions.
package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens the SQLite database and verifies the connection.
func InitDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// CreateTables ensures all required tables exist in the database.
func CreateTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS programs (
			owner TEXT NOT NULL,
			name TEXT NOT NULL,
			content TEXT NOT NULL,
			mod_time INTEGER NOT NULL,
			PRIMARY KEY (owner, name)
		)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}
