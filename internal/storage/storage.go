// Package storage archives raw dataset snapshots so an ingest can always be
// traced back to the exact bytes it came from. Snapshots are snappy-compressed
// and stored either on the local filesystem or in Azure Blob Storage.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aviodata/traffic-api/internal/config"
	"github.com/golang/snappy"
	"go.uber.org/zap"
)

// snapshotExt marks archived snapshots as snappy-compressed
const snapshotExt = ".zip.sz"

// Storage persists and retrieves raw dataset snapshots
type Storage interface {
	// Archive compresses and stores a snapshot, returning its storage path
	Archive(ctx context.Context, data []byte) (string, error)
	// Retrieve loads and decompresses a snapshot by storage path
	Retrieve(ctx context.Context, storagePath string) ([]byte, error)
	// Delete removes a snapshot; deleting a missing snapshot is not an error
	Delete(ctx context.Context, storagePath string) error
}

// NewStorage creates a storage instance based on configuration
func NewStorage(cfg *config.StorageConfig, logger *zap.Logger) (Storage, error) {
	switch cfg.Mode {
	case "local":
		return NewLocalStorage(cfg.LocalBasePath, logger)
	case "cloud", "azure":
		if cfg.CloudConnectionString == "" {
			return nil, fmt.Errorf("cloud connection string required for azure storage")
		}
		return NewAzureBlobStorage(cfg.CloudConnectionString, cfg.CloudContainer, logger)
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", cfg.Mode)
	}
}

// snapshotName derives a timestamped name for a new snapshot
func snapshotName(now time.Time) string {
	return now.UTC().Format("20060102T150405") + snapshotExt
}

// LocalStorage stores snapshots on the local filesystem
type LocalStorage struct {
	basePath string
	logger   *zap.Logger
}

// NewLocalStorage creates a local snapshot store rooted at basePath
func NewLocalStorage(basePath string, logger *zap.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &LocalStorage{basePath: basePath, logger: logger}, nil
}

// Archive compresses and writes a snapshot to disk
func (s *LocalStorage) Archive(ctx context.Context, data []byte) (string, error) {
	name := snapshotName(time.Now())
	fullPath := filepath.Join(s.basePath, name)

	compressed := snappy.Encode(nil, data)
	if err := os.WriteFile(fullPath, compressed, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	s.logger.Info("Snapshot archived",
		zap.String("path", name),
		zap.Int("raw_bytes", len(data)),
		zap.Int("compressed_bytes", len(compressed)),
	)
	return name, nil
}

// Retrieve reads and decompresses a snapshot from disk
func (s *LocalStorage) Retrieve(ctx context.Context, storagePath string) ([]byte, error) {
	compressed, err := os.ReadFile(filepath.Join(s.basePath, storagePath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("snapshot not found: %s", storagePath)
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	data, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress snapshot %s: %w", storagePath, err)
	}
	return data, nil
}

// Delete removes a snapshot from disk
func (s *LocalStorage) Delete(ctx context.Context, storagePath string) error {
	if err := os.Remove(filepath.Join(s.basePath, storagePath)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
