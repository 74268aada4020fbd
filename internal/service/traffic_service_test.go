package service

import (
	"context"
	"testing"

	"github.com/aviodata/traffic-api/internal/domain"
	"github.com/aviodata/traffic-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTraffic(t *testing.T, records ...domain.TrafficRecord) *TrafficService {
	t.Helper()
	db := setupTestDB(t)
	repo := repository.NewTrafficRepository(db)
	require.NoError(t, repo.ReplaceAll(context.Background(), records))
	return NewTrafficService(repo, zap.NewNop())
}

func TestTrafficService_List(t *testing.T) {
	svc := setupTraffic(t,
		record(201901, "AFR", "AIR FRANCE", domain.NationalityFrench, "FRANCE", 100, 10),
		record(201902, "AFR", "AIR FRANCE", domain.NationalityFrench, "FRANCE", 110, 11),
		record(202001, "BAW", "BRITISH AIRWAYS", domain.NationalityForeign, "ROYAUME-UNI", 50, 5),
	)

	page, err := svc.List(context.Background(), domain.RecordFilter{}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 201901, page.Data[0].Period)

	page, err = svc.List(context.Background(), domain.RecordFilter{}, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, 2, page.Page)
}

func TestTrafficService_List_Filtered(t *testing.T) {
	svc := setupTraffic(t,
		record(201901, "AFR", "AIR FRANCE", domain.NationalityFrench, "FRANCE", 100, 10),
		record(202001, "BAW", "BRITISH AIRWAYS", domain.NationalityForeign, "ROYAUME-UNI", 50, 5),
	)

	page, err := svc.List(context.Background(), domain.RecordFilter{Nationality: domain.NationalityForeign}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "BAW", page.Data[0].CarrierCode)
}

func TestTrafficService_List_NationalityPartition(t *testing.T) {
	svc := setupTraffic(t,
		record(201901, "AFR", "AIR FRANCE", domain.NationalityFrench, "FRANCE", 100, 10),
		record(201902, "TVF", "TRANSAVIA FRANCE", domain.NationalityFrench, "FRANCE", 80, 8),
		record(202001, "BAW", "BRITISH AIRWAYS", domain.NationalityForeign, "ROYAUME-UNI", 50, 5),
	)

	all, err := svc.List(context.Background(), domain.RecordFilter{}, 1, 10)
	require.NoError(t, err)
	french, err := svc.List(context.Background(), domain.RecordFilter{Nationality: domain.NationalityFrench}, 1, 10)
	require.NoError(t, err)
	foreign, err := svc.List(context.Background(), domain.RecordFilter{Nationality: domain.NationalityForeign}, 1, 10)
	require.NoError(t, err)

	// the two nationalities partition the dataset
	assert.Equal(t, all.Total, french.Total+foreign.Total)
}

func TestTrafficService_List_NoMatches(t *testing.T) {
	svc := setupTraffic(t,
		record(201901, "AFR", "AIR FRANCE", domain.NationalityFrench, "FRANCE", 100, 10),
	)

	page, err := svc.List(context.Background(), domain.RecordFilter{YearFrom: 2050}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)
	assert.Empty(t, page.Data)
}

func TestTrafficService_List_PageDefaults(t *testing.T) {
	svc := setupTraffic(t,
		record(201901, "AFR", "AIR FRANCE", domain.NationalityFrench, "FRANCE", 100, 10),
	)

	page, err := svc.List(context.Background(), domain.RecordFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, defaultPageSize, page.PageSize)

	page, err = svc.List(context.Background(), domain.RecordFilter{}, 1, 5000)
	require.NoError(t, err)
	assert.Equal(t, maxPageSize, page.PageSize)
}

func TestTrafficService_List_InvalidFilter(t *testing.T) {
	svc := setupTraffic(t)

	_, err := svc.List(context.Background(), domain.RecordFilter{YearFrom: 2022, YearTo: 2019}, 1, 10)
	assert.ErrorIs(t, err, ErrInvalidYearRange)

	_, err = svc.List(context.Background(), domain.RecordFilter{Nationality: "Z"}, 1, 10)
	assert.ErrorIs(t, err, ErrInvalidNationality)
}

func TestTrafficService_Metrics(t *testing.T) {
	svc := setupTraffic(t)

	infos := svc.Metrics()
	require.Len(t, infos, len(domain.AllMetrics()))

	byName := make(map[domain.Metric]domain.MetricInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}

	assert.False(t, byName[domain.MetricPax].Computed)
	assert.True(t, byName[domain.MetricPaxPerFlight].Computed)
	assert.Equal(t, "tons", byName[domain.MetricFreight].Unit)
}
