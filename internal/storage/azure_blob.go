package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/golang/snappy"
	"go.uber.org/zap"
)

// AzureBlobStorage stores snapshots in an Azure Blob Storage container
type AzureBlobStorage struct {
	client        *azblob.Client
	containerName string
	logger        *zap.Logger
}

// NewAzureBlobStorage creates an Azure-backed snapshot store
func NewAzureBlobStorage(connectionString, containerName string, logger *zap.Logger) (*AzureBlobStorage, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	// Ensure container exists
	_, err = client.CreateContainer(context.Background(), containerName, nil)
	if err != nil && !strings.Contains(err.Error(), "ContainerAlreadyExists") {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	logger.Info("Azure Blob Storage initialized",
		zap.String("container", containerName),
	)

	return &AzureBlobStorage{
		client:        client,
		containerName: containerName,
		logger:        logger,
	}, nil
}

// Archive compresses and uploads a snapshot blob
func (s *AzureBlobStorage) Archive(ctx context.Context, data []byte) (string, error) {
	blobName := snapshotName(time.Now())
	compressed := snappy.Encode(nil, data)

	_, err := s.client.UploadStream(ctx, s.containerName, blobName, bytes.NewReader(compressed), nil)
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot blob: %w", err)
	}

	s.logger.Info("Snapshot archived to Azure Blob Storage",
		zap.String("blob_name", blobName),
		zap.String("container", s.containerName),
		zap.Int("raw_bytes", len(data)),
		zap.Int("compressed_bytes", len(compressed)),
	)
	return blobName, nil
}

// Retrieve downloads and decompresses a snapshot blob
func (s *AzureBlobStorage) Retrieve(ctx context.Context, storagePath string) ([]byte, error) {
	resp, err := s.client.DownloadStream(ctx, s.containerName, storagePath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to download snapshot blob: %w", err)
	}
	defer resp.Body.Close()

	compressed, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot blob: %w", err)
	}

	data, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress snapshot %s: %w", storagePath, err)
	}
	return data, nil
}

// Delete removes a snapshot blob
func (s *AzureBlobStorage) Delete(ctx context.Context, storagePath string) error {
	_, err := s.client.DeleteBlob(ctx, s.containerName, storagePath, nil)
	if err != nil {
		if strings.Contains(err.Error(), "BlobNotFound") {
			return nil
		}
		return fmt.Errorf("failed to delete snapshot blob: %w", err)
	}
	return nil
}
