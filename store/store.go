// Package store persists extracted outlines in a SQLite database so they can
// be listed, shown and deleted later without re-reading the source file.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tsawler/outline/model"
)

// ErrNotFound is returned when no outline has the requested id
var ErrNotFound = errors.New("store: outline not found")

var schema = []string{`
	CREATE TABLE IF NOT EXISTS outlines (
		id            TEXT PRIMARY KEY,
		source        TEXT NOT NULL,
		title         TEXT NOT NULL,
		document_type TEXT NOT NULL DEFAULT '',
		pages         INTEGER NOT NULL DEFAULT 0,
		outline       TEXT NOT NULL,
		created_at    INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS outlines_created_at ON outlines(created_at)`,
}

// Record is a stored outline with the details of the run that produced it
type Record struct {
	ID           string
	Source       string // path of the decoded file
	DocumentType string
	Pages        int
	Outline      model.Outline
	CreatedAt    time.Time
}

// Store is a SQLite-backed outline store. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at path, creating parent directories
// as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("store: creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("store: opening database: %w", err)
	}
	// SQLite allows one writer; a single connection keeps writers queued
	// in the pool instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: creating schema: %w", err)
		}
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.path
}

// Save stores rec, replacing any record with the same id. An empty ID is
// filled with a new UUID and a zero CreatedAt with the current time; both
// are written back to rec.
func (s *Store) Save(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	outlineJSON, err := json.Marshal(rec.Outline)
	if err != nil {
		return fmt.Errorf("store: marshalling outline: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO outlines (id, source, title, document_type, pages, outline, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source = excluded.source,
			title = excluded.title,
			document_type = excluded.document_type,
			pages = excluded.pages,
			outline = excluded.outline,
			created_at = excluded.created_at
	`, rec.ID, rec.Source, rec.Outline.Title, rec.DocumentType, rec.Pages,
		string(outlineJSON), rec.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("store: saving outline: %w", err)
	}
	return nil
}

// Get returns the record with the given id
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source, document_type, pages, outline, created_at
		FROM outlines WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

// List returns all records, newest first
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, document_type, pages, outline, created_at
		FROM outlines
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("store: querying outlines: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterating outlines: %w", err)
	}
	return records, nil
}

// Delete removes the record with the given id
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM outlines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: deleting outline: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: deleting outline: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		rec         Record
		outlineJSON string
		createdAt   int64
	)
	if err := row.Scan(&rec.ID, &rec.Source, &rec.DocumentType, &rec.Pages, &outlineJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("store: scanning outline: %w", err)
	}
	if err := json.Unmarshal([]byte(outlineJSON), &rec.Outline); err != nil {
		return nil, fmt.Errorf("store: decoding outline %s: %w", rec.ID, err)
	}
	rec.CreatedAt = time.Unix(0, createdAt)
	return &rec, nil
}
