package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common storage errors used across all backend implementations.
var (
	// ErrNotFound is returned when no presentation exists under the
	// requested ID.
	ErrNotFound = errors.New("presentation not found")

	// ErrUnknownBackend is returned by New when the configured backend name
	// does not match any implementation.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Backend names accepted by the configuration.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Storage persists serialized presentation packages keyed by ID.
//
// Implementations must be safe for concurrent use.
type Storage interface {
	// Save stores the presentation bytes under the given ID, replacing any
	// previous content.
	Save(ctx context.Context, id uuid.UUID, data []byte) error

	// Get retrieves the presentation bytes stored under the given ID.
	// Returns ErrNotFound if no presentation exists under the ID.
	Get(ctx context.Context, id uuid.UUID) ([]byte, error)

	// Exists reports whether a presentation is stored under the given ID.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Delete removes the presentation stored under the given ID.
	// Returns ErrNotFound if no presentation exists under the ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
