package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStorage stores each presentation as a .pptx file in a flat directory,
// named by its ID. IDs are UUIDs, so file names never contain path
// separators.
type FileStorage struct {
	dir string
}

// Ensure FileStorage implements the Storage interface.
var _ Storage = (*FileStorage)(nil)

// NewFileStorage creates a file-backed Storage rooted at dir, creating the
// directory if it does not exist.
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("output directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String()+".pptx")
}

// Save implements Storage.Save.
func (s *FileStorage) Save(_ context.Context, id uuid.UUID, data []byte) error {
	if err := os.WriteFile(s.path(id), data, 0o644); err != nil {
		return fmt.Errorf("failed to write presentation %s: %w", id, err)
	}
	return nil
}

// Get implements Storage.Get.
func (s *FileStorage) Get(_ context.Context, id uuid.UUID) ([]byte, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to read presentation %s: %w", id, err)
	}
	return data, nil
}

// Exists implements Storage.Exists.
func (s *FileStorage) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, err := os.Stat(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat presentation %s: %w", id, err)
	}
	return true, nil
}

// Delete implements Storage.Delete.
func (s *FileStorage) Delete(_ context.Context, id uuid.UUID) error {
	if err := os.Remove(s.path(id)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return fmt.Errorf("failed to delete presentation %s: %w", id, err)
	}
	return nil
}
