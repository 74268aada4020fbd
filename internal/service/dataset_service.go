package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/aviodata/traffic-api/internal/config"
	"github.com/aviodata/traffic-api/internal/domain"
	"github.com/aviodata/traffic-api/internal/ingest"
	"github.com/aviodata/traffic-api/internal/mapper"
	"github.com/aviodata/traffic-api/internal/repository"
	"github.com/aviodata/traffic-api/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DatasetService orchestrates dataset refreshes: download the upstream
// archive, snapshot it, parse it and atomically replace the stored
// records, recording each attempt as an import run.
type DatasetService struct {
	fetcher    ingest.Fetcher
	storage    storage.Storage
	traffic    *repository.TrafficRepository
	importRuns *repository.ImportRunRepository
	cfg        *config.DatasetConfig
	logger     *zap.Logger

	mu         sync.Mutex
	refreshing bool
}

func NewDatasetService(
	fetcher ingest.Fetcher,
	store storage.Storage,
	traffic *repository.TrafficRepository,
	importRuns *repository.ImportRunRepository,
	cfg *config.DatasetConfig,
	logger *zap.Logger,
) *DatasetService {
	return &DatasetService{
		fetcher:    fetcher,
		storage:    store,
		traffic:    traffic,
		importRuns: importRuns,
		cfg:        cfg,
		logger:     logger,
	}
}

// Refresh downloads and re-ingests the upstream dataset. Only one refresh
// runs at a time; concurrent callers get ErrRefreshInProgress.
func (s *DatasetService) Refresh(ctx context.Context) (*domain.ImportRunDTO, error) {
	s.mu.Lock()
	if s.refreshing {
		s.mu.Unlock()
		return nil, ErrRefreshInProgress
	}
	s.refreshing = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}()

	run := &domain.ImportRun{
		ID:        uuid.New(),
		SourceURL: s.cfg.ResourceURL,
		Status:    domain.ImportStatusRunning,
		StartedAt: time.Now().UTC(),
	}
	if err := s.importRuns.Create(ctx, run); err != nil {
		return nil, err
	}

	if err := s.refresh(ctx, run); err != nil {
		s.logger.Error("Dataset refresh failed",
			zap.String("run_id", run.ID.String()),
			zap.Error(err))
		now := time.Now().UTC()
		run.Status = domain.ImportStatusFailed
		run.FinishedAt = &now
		run.Error = err.Error()
		if updateErr := s.importRuns.Update(ctx, run); updateErr != nil {
			s.logger.Error("Failed to record failed import run", zap.Error(updateErr))
		}
		return nil, err
	}

	now := time.Now().UTC()
	run.Status = domain.ImportStatusSucceeded
	run.FinishedAt = &now
	if err := s.importRuns.Update(ctx, run); err != nil {
		return nil, err
	}

	s.logger.Info("Dataset refresh completed",
		zap.String("run_id", run.ID.String()),
		zap.Int64("rows", run.RowCount),
		zap.Int64("rows_skipped", run.RowsSkipped),
		zap.Int("files", run.FilesParsed))

	dto := mapper.ToImportRunDTO(run)
	return &dto, nil
}

func (s *DatasetService) refresh(ctx context.Context, run *domain.ImportRun) error {
	archive, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}

	sum := sha256.Sum256(archive)
	run.Checksum = hex.EncodeToString(sum[:])

	// an unchanged archive still gets re-ingested; the snapshot archive is
	// the audit trail, not a cache
	snapshotPath, err := s.storage.Archive(ctx, archive)
	if err != nil {
		s.logger.Warn("Failed to archive dataset snapshot", zap.Error(err))
	} else {
		run.SnapshotPath = snapshotPath
	}

	result, err := ingest.ParseArchive(archive)
	if err != nil {
		return err
	}
	if len(result.Records) == 0 {
		return ErrEmptyDataset
	}

	if err := s.traffic.ReplaceAll(ctx, result.Records); err != nil {
		return err
	}

	run.RowCount = int64(len(result.Records))
	run.RowsSkipped = result.RowsSkipped
	run.FilesParsed = result.FilesParsed
	return nil
}

// Status reports the stored snapshot's size, coverage and freshness
func (s *DatasetService) Status(ctx context.Context) (*domain.DatasetStatus, error) {
	rowCount, err := s.traffic.Count(ctx, domain.RecordFilter{})
	if err != nil {
		return nil, err
	}

	years, err := s.traffic.Years(ctx)
	if err != nil {
		return nil, err
	}

	status := &domain.DatasetStatus{
		RowCount: rowCount,
		Years:    years,
		Stale:    true,
	}

	run, err := s.importRuns.LatestSucceeded(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return status, nil
		}
		return nil, err
	}

	dto := mapper.ToImportRunDTO(run)
	status.LastImport = &dto
	if run.FinishedAt != nil {
		status.Stale = time.Since(*run.FinishedAt) > s.cfg.StaleMaxAgeDuration()
	}
	return status, nil
}

// NeedsRefresh reports whether the startup refresh should run: the store
// is empty or the last successful import is older than the staleness
// threshold
func (s *DatasetService) NeedsRefresh(ctx context.Context) (bool, error) {
	status, err := s.Status(ctx)
	if err != nil {
		return false, err
	}
	return status.RowCount == 0 || status.Stale, nil
}

// ImportHistory returns the most recent import runs, newest first
func (s *DatasetService) ImportHistory(ctx context.Context, limit int) ([]domain.ImportRunDTO, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	runs, err := s.importRuns.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	dtos := make([]domain.ImportRunDTO, len(runs))
	for i := range runs {
		dtos[i] = mapper.ToImportRunDTO(&runs[i])
	}
	return dtos, nil
}
