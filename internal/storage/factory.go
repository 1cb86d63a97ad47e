package storage

import (
	"database/sql"
	"fmt"

	"github.com/phrazzld/slidegen-api/internal/config"
)

// New selects and constructs the configured storage backend. The backend
// set is closed; config validation normally rejects anything else, so an
// unknown name here is a startup bug, not a user error.
//
// db is only used by the postgres backend and may be nil otherwise.
func New(cfg config.StorageConfig, db *sql.DB) (Storage, error) {
	switch cfg.Backend {
	case BackendFile:
		return NewFileStorage(cfg.OutputDir)
	case BackendMemory:
		return NewMemoryStorage(), nil
	case BackendPostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres backend requires a database connection")
		}
		return NewPostgresStorage(db), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
