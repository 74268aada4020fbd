package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aviodata/traffic-api/internal/config"
	"github.com/aviodata/traffic-api/internal/domain"
	"github.com/aviodata/traffic-api/internal/repository"
	"github.com/aviodata/traffic-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fetchFunc func(ctx context.Context) ([]byte, error)

func (f fetchFunc) Fetch(ctx context.Context) ([]byte, error) { return f(ctx) }

const testCSVHeader = "ANMOIS;CIE;CIE_NOM;CIE_NAT;CIE_PAYS;CIE_PAX;CIE_FRP;CIE_PEQ;CIE_PKT;CIE_TKT;CIE_PEQKT;CIE_VOL\n"

func buildTestArchive(t *testing.T, rows string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("asp_cie_2019.csv")
	require.NoError(t, err)
	_, err = w.Write([]byte(testCSVHeader + rows))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

type datasetFixture struct {
	svc        *DatasetService
	traffic    *repository.TrafficRepository
	importRuns *repository.ImportRunRepository
	db         *gorm.DB
}

func setupDataset(t *testing.T, fetch fetchFunc) *datasetFixture {
	t.Helper()
	db := setupTestDB(t)
	traffic := repository.NewTrafficRepository(db)
	importRuns := repository.NewImportRunRepository(db)
	store, err := storage.NewLocalStorage(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	cfg := &config.DatasetConfig{
		ResourceURL: "https://example.org/asp_cie.zip",
		StaleMaxAge: 24,
	}
	svc := NewDatasetService(fetch, store, traffic, importRuns, cfg, zap.NewNop())
	return &datasetFixture{svc: svc, traffic: traffic, importRuns: importRuns, db: db}
}

func TestDatasetService_Refresh_Success(t *testing.T) {
	archive := buildTestArchive(t,
		"201901;AFR;AIR FRANCE;F;FRANCE;1000;50,5;1050;2000;100;2100;10\n"+
			"201902;BAW;BRITISH AIRWAYS;E;ROYAUME-UNI;500;0;500;900;0;900;5\n")
	fx := setupDataset(t, func(ctx context.Context) ([]byte, error) {
		return archive, nil
	})

	dto, err := fx.svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, string(domain.ImportStatusSucceeded), dto.Status)
	assert.Equal(t, int64(2), dto.RowCount)
	assert.NotEmpty(t, dto.Checksum)
	assert.NotNil(t, dto.FinishedAt)

	count, err := fx.traffic.Count(context.Background(), domain.RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	run, err := fx.importRuns.LatestSucceeded(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, run.SnapshotPath)
	assert.Equal(t, 1, run.FilesParsed)
}

func TestDatasetService_Refresh_ReplacesPreviousSnapshot(t *testing.T) {
	archive := buildTestArchive(t,
		"202001;AFR;AIR FRANCE;F;FRANCE;100;0;100;200;0;200;2\n")
	fx := setupDataset(t, func(ctx context.Context) ([]byte, error) {
		return archive, nil
	})

	stale := []domain.TrafficRecord{
		record(201901, "OLD", "OLD CARRIER", domain.NationalityFrench, "FRANCE", 999, 9),
	}
	require.NoError(t, fx.traffic.ReplaceAll(context.Background(), stale))

	_, err := fx.svc.Refresh(context.Background())
	require.NoError(t, err)

	years, err := fx.traffic.Years(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2020}, years)
}

func TestDatasetService_Refresh_FetchFailure(t *testing.T) {
	fetchErr := errors.New("upstream unavailable")
	fx := setupDataset(t, func(ctx context.Context) ([]byte, error) {
		return nil, fetchErr
	})

	_, err := fx.svc.Refresh(context.Background())
	require.ErrorIs(t, err, fetchErr)

	runs, err := fx.svc.ImportHistory(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, string(domain.ImportStatusFailed), runs[0].Status)
	assert.Contains(t, runs[0].Error, "upstream unavailable")
	assert.NotNil(t, runs[0].FinishedAt)
}

func TestDatasetService_Refresh_EmptyArchive(t *testing.T) {
	archive := buildTestArchive(t, "")
	fx := setupDataset(t, func(ctx context.Context) ([]byte, error) {
		return archive, nil
	})

	_, err := fx.svc.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrEmptyDataset)

	// the stored records are untouched on a failed refresh
	count, err := fx.traffic.Count(context.Background(), domain.RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestDatasetService_Status_EmptyStore(t *testing.T) {
	fx := setupDataset(t, func(ctx context.Context) ([]byte, error) {
		return nil, errors.New("not expected")
	})

	status, err := fx.svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.RowCount)
	assert.Empty(t, status.Years)
	assert.True(t, status.Stale)
	assert.Nil(t, status.LastImport)

	needs, err := fx.svc.NeedsRefresh(context.Background())
	require.NoError(t, err)
	assert.True(t, needs)
}

func TestDatasetService_Status_FreshImport(t *testing.T) {
	archive := buildTestArchive(t,
		"202301;AFR;AIR FRANCE;F;FRANCE;100;0;100;200;0;200;2\n")
	fx := setupDataset(t, func(ctx context.Context) ([]byte, error) {
		return archive, nil
	})

	_, err := fx.svc.Refresh(context.Background())
	require.NoError(t, err)

	status, err := fx.svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.RowCount)
	assert.Equal(t, []int{2023}, status.Years)
	assert.False(t, status.Stale)
	require.NotNil(t, status.LastImport)
	assert.Equal(t, string(domain.ImportStatusSucceeded), status.LastImport.Status)

	needs, err := fx.svc.NeedsRefresh(context.Background())
	require.NoError(t, err)
	assert.False(t, needs)
}

func TestDatasetService_Status_StaleImport(t *testing.T) {
	archive := buildTestArchive(t,
		"202301;AFR;AIR FRANCE;F;FRANCE;100;0;100;200;0;200;2\n")
	fx := setupDataset(t, func(ctx context.Context) ([]byte, error) {
		return archive, nil
	})

	_, err := fx.svc.Refresh(context.Background())
	require.NoError(t, err)

	// age the run past the staleness threshold
	run, err := fx.importRuns.LatestSucceeded(context.Background())
	require.NoError(t, err)
	old := time.Now().UTC().Add(-48 * time.Hour)
	run.FinishedAt = &old
	require.NoError(t, fx.importRuns.Update(context.Background(), run))

	status, err := fx.svc.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Stale)

	needs, err := fx.svc.NeedsRefresh(context.Background())
	require.NoError(t, err)
	assert.True(t, needs)
}

func TestDatasetService_ImportHistory_LimitClamp(t *testing.T) {
	fx := setupDataset(t, func(ctx context.Context) ([]byte, error) {
		return nil, errors.New("boom")
	})

	for i := 0; i < 3; i++ {
		_, _ = fx.svc.Refresh(context.Background())
	}

	runs, err := fx.svc.ImportHistory(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	runs, err = fx.svc.ImportHistory(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}
