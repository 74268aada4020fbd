package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/aviodata/traffic-api/internal/domain"
	"go.uber.org/zap"
)

// RefreshJobName is the name of the dataset refresh job
const RefreshJobName = "dataset_refresh"

// DatasetRefresher defines the interface for refreshing the stored
// dataset. The interface keeps the job decoupled from the service
// package.
type DatasetRefresher interface {
	// Refresh downloads and re-ingests the upstream dataset
	Refresh(ctx context.Context) (*domain.ImportRunDTO, error)

	// NeedsRefresh reports whether the store is empty or stale
	NeedsRefresh(ctx context.Context) (bool, error)
}

// RefreshJob re-ingests the upstream open-data archive on a schedule and,
// when the store is empty or stale, once on startup.
type RefreshJob struct {
	service DatasetRefresher
	logger  *zap.Logger
	timeout time.Duration
}

// NewRefreshJob creates a new dataset refresh job. The timeout bounds a
// single refresh run.
func NewRefreshJob(service DatasetRefresher, logger *zap.Logger, timeout time.Duration) *RefreshJob {
	return &RefreshJob{
		service: service,
		logger:  logger,
		timeout: timeout,
	}
}

// Run executes the refresh job. This is called by the scheduler according
// to the cron expression.
func (j *RefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	j.logger.Info("starting dataset refresh job")

	run, err := j.service.Refresh(ctx)
	if err != nil {
		j.logger.Error("dataset refresh job failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("dataset refresh job completed",
		zap.Int64("rows", run.RowCount),
		zap.Int64("rows_skipped", run.RowsSkipped),
		zap.Duration("duration", time.Since(start)))
}

// RegisterRefreshJob wires the refresh job into the scheduler and
// optionally kicks off the startup refresh in the background
func RegisterRefreshJob(scheduler *Scheduler, service DatasetRefresher, logger *zap.Logger, cronExpr string, timeout time.Duration, runStartupRefresh bool) error {
	job := NewRefreshJob(service, logger, timeout)

	if runStartupRefresh {
		go job.RunStartupRefresh()
	}

	return scheduler.AddJob(RefreshJobName, cronExpr, job.Run)
}

// RunStartupRefresh ingests the dataset on startup when the store is
// empty or the last import is older than the staleness threshold. A
// failed startup refresh is logged but not fatal: the API serves whatever
// snapshot is stored.
func (j *RefreshJob) RunStartupRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	needed, err := j.service.NeedsRefresh(ctx)
	if err != nil {
		j.logger.Error("failed to check dataset freshness", zap.Error(err))
		return
	}
	if !needed {
		j.logger.Info("stored dataset is fresh, skipping startup refresh")
		return
	}

	start := time.Now()
	j.logger.Info("starting startup dataset refresh")

	run, err := j.service.Refresh(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			j.logger.Error("startup dataset refresh timed out",
				zap.Duration("timeout", j.timeout))
			return
		}
		j.logger.Error("startup dataset refresh failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("startup dataset refresh completed",
		zap.Int64("rows", run.RowCount),
		zap.Duration("duration", time.Since(start)))
}
