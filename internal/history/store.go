// Package history persists a record of finished transfers so the
// `bulkget history` and `bulkget flush` commands can list and clear
// them. The store is a single sqlite database under the config
// directory.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/bulkget/bulkget/pkg/fetchlib"
)

const schema = `
CREATE TABLE IF NOT EXISTS transfers (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	url        TEXT    NOT NULL,
	path       TEXT    NOT NULL DEFAULT '',
	bytes      INTEGER NOT NULL DEFAULT 0,
	status     TEXT    NOT NULL,
	reason     TEXT    NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
`

// Transfer statuses stored in the database.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Entry is one finished transfer.
type Entry struct {
	ID        int64
	URL       string
	Path      string
	Bytes     int64
	Status    string
	Reason    string
	CreatedAt time.Time
}

// Store is a sqlite-backed transfer history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// The CLI is the only writer; a single connection sidesteps
	// SQLITE_BUSY during concurrent completions.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one entry.
func (s *Store) Record(e Entry) error {
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO transfers (url, path, bytes, status, reason, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		e.URL, e.Path, e.Bytes, e.Status, e.Reason, created,
	)
	if err != nil {
		return fmt.Errorf("record transfer: %w", err)
	}
	return nil
}

// RecordResult appends every outcome of a finished run.
func (s *Store) RecordResult(res *fetchlib.AggregateResult) error {
	for _, d := range res.Successful {
		if err := s.Record(Entry{URL: d.URL, Path: d.Path, Bytes: d.Bytes, Status: StatusOK}); err != nil {
			return err
		}
	}
	for _, f := range res.Failed {
		if err := s.Record(Entry{URL: f.URL, Status: StatusFailed, Reason: f.Reason()}); err != nil {
			return err
		}
	}
	return nil
}

// List returns up to limit entries, most recent first. A non-positive
// limit returns everything.
func (s *Store) List(limit int) ([]Entry, error) {
	q := `SELECT id, url, path, bytes, status, reason, created_at FROM transfers ORDER BY id DESC`
	args := []interface{}{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.URL, &e.Path, &e.Bytes, &e.Status, &e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Flush deletes the entire history and returns the number of entries
// removed.
func (s *Store) Flush() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM transfers`)
	if err != nil {
		return 0, fmt.Errorf("flush transfers: %w", err)
	}
	return res.RowsAffected()
}
