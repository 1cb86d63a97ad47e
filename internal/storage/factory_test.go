package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/slidegen-api/internal/config"
	"github.com/phrazzld/slidegen-api/internal/storage"
)

func TestNew_SelectsBackend(t *testing.T) {
	t.Parallel()

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		store, err := storage.New(config.StorageConfig{
			Backend:   storage.BackendFile,
			OutputDir: t.TempDir(),
		}, nil)
		require.NoError(t, err)
		assert.IsType(t, &storage.FileStorage{}, store)
	})

	t.Run("memory", func(t *testing.T) {
		t.Parallel()

		store, err := storage.New(config.StorageConfig{
			Backend: storage.BackendMemory,
		}, nil)
		require.NoError(t, err)
		assert.IsType(t, &storage.MemoryStorage{}, store)
	})
}

func TestNew_PostgresRequiresConnection(t *testing.T) {
	t.Parallel()

	_, err := storage.New(config.StorageConfig{
		Backend: storage.BackendPostgres,
	}, nil)
	assert.Error(t, err)
}

func TestNew_UnknownBackend(t *testing.T) {
	t.Parallel()

	_, err := storage.New(config.StorageConfig{Backend: "s3"}, nil)
	assert.ErrorIs(t, err, storage.ErrUnknownBackend)
}
