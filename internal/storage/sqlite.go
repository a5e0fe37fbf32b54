// Package storage persists the serialized ledger snapshot in a local SQLite
// database. The snapshot is stored whole under a single fixed key; every
// mutation rewrites the full blob, which is the source-of-truth discipline
// the rest of the application assumes.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/mdshariful/hishab/internal/backup"
	"github.com/mdshariful/hishab/internal/model"
)

// SnapshotKey is the fixed key the full snapshot is stored under.
const SnapshotKey = "hishab_data_v1"

// SQLiteStore implements snapshot persistence on a local SQLite file.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := validateString(path, "path"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save serializes the snapshot and writes it under the fixed key, replacing
// the previous blob.
func (s *SQLiteStore) Save(ctx context.Context, data *model.AppData) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if data == nil {
		return ErrNilSnapshot
	}

	blob, err := backup.Encode(data)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, saved_at = excluded.saved_at
	`, SnapshotKey, string(blob), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	slog.Debug("Saved snapshot",
		"bytes", len(blob),
		"transactions", len(data.Transactions),
		"savings", len(data.Savings),
		"debts", len(data.Debts))
	return nil
}

// Load reads the stored snapshot. A database with no snapshot yet yields a
// fresh default snapshot, not an error.
func (s *SQLiteStore) Load(ctx context.Context) (*model.AppData, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, SnapshotKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NewAppData(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	data, err := backup.DecodeFull([]byte(blob))
	if err != nil {
		return nil, fmt.Errorf("stored snapshot is unreadable: %w", err)
	}
	return data, nil
}

// LastSavedAt reports when the snapshot was last written. Returns the zero
// time when nothing has been saved yet.
func (s *SQLiteStore) LastSavedAt(ctx context.Context) (time.Time, error) {
	if err := validateContext(ctx); err != nil {
		return time.Time{}, err
	}

	var savedAt time.Time
	err := s.db.QueryRowContext(ctx,
		`SELECT saved_at FROM app_state WHERE key = ?`, SnapshotKey).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read save time: %w", err)
	}
	return savedAt, nil
}
