package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aviodata/traffic-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRun(status domain.ImportStatus, startedAt time.Time) *domain.ImportRun {
	return &domain.ImportRun{
		ID:        uuid.New(),
		SourceURL: "https://example.test/asp_cie.zip",
		Status:    status,
		StartedAt: startedAt,
	}
}

func TestImportRunRepository_CreateAndUpdate(t *testing.T) {
	repo := NewImportRunRepository(setupTestDB(t))
	ctx := context.Background()

	run := newRun(domain.ImportStatusRunning, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, run))

	now := time.Now().UTC()
	run.Status = domain.ImportStatusSucceeded
	run.FinishedAt = &now
	run.RowCount = 1234
	require.NoError(t, repo.Update(ctx, run))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, run.ID, latest.ID)
	assert.Equal(t, domain.ImportStatusSucceeded, latest.Status)
	assert.Equal(t, int64(1234), latest.RowCount)
}

func TestImportRunRepository_LatestSucceeded(t *testing.T) {
	repo := NewImportRunRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.LatestSucceeded(ctx)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	base := time.Now().UTC()
	ok := newRun(domain.ImportStatusSucceeded, base.Add(-2*time.Hour))
	require.NoError(t, repo.Create(ctx, ok))
	failed := newRun(domain.ImportStatusFailed, base.Add(-1*time.Hour))
	require.NoError(t, repo.Create(ctx, failed))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, failed.ID, latest.ID)

	succeeded, err := repo.LatestSucceeded(ctx)
	require.NoError(t, err)
	assert.Equal(t, ok.ID, succeeded.ID)
}

func TestImportRunRepository_List(t *testing.T) {
	repo := NewImportRunRepository(setupTestDB(t))
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, newRun(domain.ImportStatusSucceeded, base.Add(time.Duration(i)*time.Minute))))
	}

	runs, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.True(t, runs[0].StartedAt.After(runs[1].StartedAt))
	assert.True(t, runs[1].StartedAt.After(runs[2].StartedAt))
}
