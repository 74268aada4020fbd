// Package ingest downloads the ASP_CIE dataset archive from data.gouv.fr
// and parses its CSV files into traffic records.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aviodata/traffic-api/internal/config"
	"go.uber.org/zap"
)

const (
	// Retry configuration for download attempts
	defaultMaxRetries     = 3
	defaultInitialBackoff = 1 * time.Second
	defaultMaxBackoff     = 10 * time.Second
	defaultBackoffFactor  = 2.0

	// maxArchiveSize bounds the downloaded archive (256 MiB); the upstream
	// resource is a few MiB, so anything near this limit is a broken response
	maxArchiveSize = 256 << 20
)

// Fetcher downloads the raw dataset archive
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Client fetches the dataset archive over HTTP with bounded retries
type Client struct {
	httpClient  *http.Client
	resourceURL string
	logger      *zap.Logger
}

// NewClient creates a dataset download client from configuration
func NewClient(cfg *config.DatasetConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.FetchTimeoutDuration(),
		},
		resourceURL: cfg.ResourceURL,
		logger:      logger,
	}
}

// Fetch downloads the dataset archive. Transient failures are retried with
// exponential backoff; context cancellation aborts between attempts.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	var lastErr error
	backoff := defaultInitialBackoff

	for attempt := 1; attempt <= defaultMaxRetries; attempt++ {
		data, err := c.fetchOnce(ctx)
		if err == nil {
			c.logger.Info("Dataset archive downloaded",
				zap.String("url", c.resourceURL),
				zap.Int("size_bytes", len(data)),
				zap.Int("attempt", attempt),
			)
			return data, nil
		}

		lastErr = err
		c.logger.Warn("Dataset download failed",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", defaultMaxRetries),
		)

		if attempt < defaultMaxRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff = min(time.Duration(float64(backoff)*defaultBackoffFactor), defaultMaxBackoff)
		}
	}

	return nil, fmt.Errorf("dataset download failed after %d attempts: %w", defaultMaxRetries, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/zip, application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from upstream", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxArchiveSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(data) > maxArchiveSize {
		return nil, fmt.Errorf("archive exceeds %d bytes", maxArchiveSize)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("upstream returned an empty body")
	}

	return data, nil
}
