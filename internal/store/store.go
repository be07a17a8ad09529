// Package store handles SQLite persistence of the word bank.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/verte-zerg/kanatype/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNotFound is returned when a word is not in the bank.
var ErrNotFound = errors.New("word not found")

// Store wraps SQLite access for the word bank.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY,
			word TEXT NOT NULL,
			reading TEXT NOT NULL,
			status INTEGER NOT NULL,
			UNIQUE (word, reading)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_words_status ON words(status);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ImportWords upserts records. Existing rows keep their position and take the new status.
func (s *Store) ImportWords(ctx context.Context, records []model.WordRecord) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO words (word, reading, status) VALUES (?, ?, ?)
		 ON CONFLICT (word, reading) DO UPDATE SET status = excluded.status`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for _, rec := range records {
		if _, err = stmt.ExecContext(ctx, rec.Word, rec.Reading, rec.Status); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListWords returns the bank in insertion order, optionally including disabled words.
func (s *Store) ListWords(ctx context.Context, includeDisabled bool) ([]model.WordRecord, error) {
	query := `SELECT word, reading, status FROM words WHERE status > 0 ORDER BY id ASC`
	if includeDisabled {
		query = `SELECT word, reading, status FROM words ORDER BY id ASC`
	}
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.WordRecord
	for rows.Next() {
		var rec model.WordRecord
		if err := rows.Scan(&rec.Word, &rec.Reading, &rec.Status); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SetStatus updates the inclusion status of a word. When reading is empty
// every reading of word is updated.
func (s *Store) SetStatus(ctx context.Context, word, reading string, status int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE words SET status = ? WHERE word = ? AND (? = '' OR reading = ?)`,
		status, word, reading, reading)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ActiveEntries returns the enabled words as practice entries.
func (s *Store) ActiveEntries(ctx context.Context) ([]model.WordEntry, error) {
	records, err := s.ListWords(ctx, false)
	if err != nil {
		return nil, err
	}
	entries := make([]model.WordEntry, len(records))
	for i, rec := range records {
		entries[i] = model.WordEntry{Word: rec.Word, Reading: rec.Reading}
	}
	return entries, nil
}
