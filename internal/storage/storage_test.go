package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aviodata/traffic-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalStorage_ArchiveRetrieveDelete(t *testing.T) {
	base := t.TempDir()
	store, err := NewLocalStorage(base, zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	payload := []byte("zip archive payload with some repetition repetition repetition")

	path, err := store.Archive(ctx, payload)
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	// snapshots are stored snappy-compressed
	raw, err := os.ReadFile(filepath.Join(base, path))
	require.NoError(t, err)
	assert.NotEqual(t, payload, raw)

	got, err := store.Retrieve(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	require.NoError(t, store.Delete(ctx, path))
	_, err = store.Retrieve(ctx, path)
	assert.Error(t, err)
}

func TestLocalStorage_CreatesBasePath(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "snapshots")
	_, err := NewLocalStorage(base, zap.NewNop())
	require.NoError(t, err)

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewStorage_ModeSelection(t *testing.T) {
	cfg := &config.StorageConfig{
		Mode:          "local",
		LocalBasePath: t.TempDir(),
	}
	store, err := NewStorage(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, store)

	_, err = NewStorage(&config.StorageConfig{Mode: "bogus"}, zap.NewNop())
	assert.Error(t, err)
}
