package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// PostgresStorage stores presentations in a PostgreSQL table, one row per
// presentation with the package bytes in a bytea column. The schema is
// managed by the goose migrations under migrations/.
type PostgresStorage struct {
	db *sql.DB
}

// Ensure PostgresStorage implements the Storage interface.
var _ Storage = (*PostgresStorage)(nil)

// NewPostgresStorage creates a PostgreSQL-backed Storage. The connection
// should be initialized, migrated, and closed by the caller.
func NewPostgresStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// Save implements Storage.Save as an upsert.
func (s *PostgresStorage) Save(ctx context.Context, id uuid.UUID, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO presentations (id, data)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
		id, data)
	if err != nil {
		return fmt.Errorf("failed to save presentation %s: %w", id, err)
	}
	return nil
}

// Get implements Storage.Get.
func (s *PostgresStorage) Get(ctx context.Context, id uuid.UUID) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM presentations WHERE id = $1`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get presentation %s: %w", id, err)
	}
	return data, nil
}

// Exists implements Storage.Exists.
func (s *PostgresStorage) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM presentations WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check presentation %s: %w", id, err)
	}
	return exists, nil
}

// Delete implements Storage.Delete.
func (s *PostgresStorage) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM presentations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete presentation %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete presentation %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
