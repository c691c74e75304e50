// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists assembled commands for later recall.
//
// Every command the user emits (printed, copied or executed) is recorded in
// a small SQLite database so `flagrun history` can replay recent picks.
// History is strictly best-effort: a missing or broken database never blocks
// the picker.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrClosed is returned when the store is used after Close.
var ErrClosed = errors.New("history store is closed")

// Entry is one recorded command emission.
type Entry struct {
	ID        string
	Base      string // the target program tokens, space-joined
	Command   string // the full assembled command line
	Mode      string // output mode name: print, clipboard, execute
	CreatedAt time.Time
}

// Store is a SQLite-backed history of emitted commands.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id         TEXT PRIMARY KEY,
	base       TEXT NOT NULL,
	command    TEXT NOT NULL,
	mode       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_created ON entries(created_at DESC);
`

// Open opens (creating if needed) the history database at path. The parent
// directory is created when missing.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record stores one emitted command.
func (s *Store) Record(base []string, command, mode string) error {
	if s.db == nil {
		return ErrClosed
	}
	_, err := s.db.Exec(
		`INSERT INTO entries (id, base, command, mode, created_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(),
		strings.Join(base, " "),
		command,
		mode,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("record history entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, base, command, mode, created_at FROM entries ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Base, &e.Command, &e.Mode, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the total number of recorded entries.
func (s *Store) Count() (int, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count history entries: %w", err)
	}
	return n, nil
}

// Clear deletes all recorded entries.
func (s *Store) Clear() error {
	if s.db == nil {
		return ErrClosed
	}
	if _, err := s.db.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
