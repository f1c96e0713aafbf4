package roadmap

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists roadmap snapshots keyed by (user, resource). Put is an
// overwrite; last write wins.
type Store interface {
	Get(ctx context.Context, userID, resourceID string) (Snapshot, bool, error)
	Put(ctx context.Context, userID, resourceID string, s Snapshot) error
	Delete(ctx context.Context, userID, resourceID string) error
	Close() error
}

// SQLiteStore is the on-disk Store implementation.
type SQLiteStore struct {
	db *sql.DB
}

// OpenStore opens (or creates) the SQLite progress database.
func OpenStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, errors.New("progress db path is required")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("progress: mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("progress: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS roadmap_progress (
		user_id     TEXT NOT NULL,
		resource_id TEXT NOT NULL,
		snapshot    TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (user_id, resource_id)
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("progress: init schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get loads the last saved snapshot for the key. ok=false means no snapshot
// has ever been saved.
func (s *SQLiteStore) Get(ctx context.Context, userID, resourceID string) (Snapshot, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM roadmap_progress WHERE user_id = ? AND resource_id = ?`,
		userID, resourceID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("progress: get: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("progress: decode snapshot: %w", err)
	}
	return snap, true, nil
}

// Put upserts the snapshot for the key.
func (s *SQLiteStore) Put(ctx context.Context, userID, resourceID string, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("progress: encode snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO roadmap_progress (user_id, resource_id, snapshot, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_id, resource_id) DO UPDATE SET
		   snapshot = excluded.snapshot,
		   updated_at = excluded.updated_at`,
		userID, resourceID, string(raw), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("progress: put: %w", err)
	}
	return nil
}

// Delete removes the snapshot for the key, used when regenerating.
func (s *SQLiteStore) Delete(ctx context.Context, userID, resourceID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM roadmap_progress WHERE user_id = ? AND resource_id = ?`,
		userID, resourceID,
	)
	if err != nil {
		return fmt.Errorf("progress: delete: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
