package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SetMetadata upserts a global key-value pair. created_at is fixed at
// first insert; updated_at is refreshed on every write.
func (s *Store) SetMetadata(ctx context.Context, key, value string) error {
	if err := s.ready(); err != nil {
		return err
	}

	now := formatTime(time.Now().UTC())
	const query = `INSERT INTO metadata (key, value, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, query, key, value, now, now); err != nil {
		return fmt.Errorf("setting metadata %q: %w", key, err)
	}
	return nil
}

// GetMetadata returns the value for a key. An unknown key is reported
// through ok=false, not an error.
func (s *Store) GetMetadata(ctx context.Context, key string) (value string, ok bool, err error) {
	if err := s.ready(); err != nil {
		return "", false, err
	}

	err = s.db.QueryRowContext(ctx, "SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting metadata %q: %w", key, err)
	}
	return value, true, nil
}

// GetMetadataEntry returns the full metadata row for a key, or nil if
// the key does not exist.
func (s *Store) GetMetadataEntry(ctx context.Context, key string) (*Metadata, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	const query = "SELECT key, value, created_at, updated_at FROM metadata WHERE key = ?"
	var m Metadata
	var createdAt, updatedAt string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&m.Key, &m.Value, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting metadata entry %q: %w", key, err)
	}
	m.CreatedAt = parseTime(createdAt)
	m.UpdatedAt = parseTime(updatedAt)
	return &m, nil
}
