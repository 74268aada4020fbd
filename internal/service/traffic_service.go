package service

import (
	"context"

	"github.com/aviodata/traffic-api/internal/domain"
	"github.com/aviodata/traffic-api/internal/mapper"
	"github.com/aviodata/traffic-api/internal/repository"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

// TrafficService serves filtered record listings and filter discovery
// metadata
type TrafficService struct {
	repo   *repository.TrafficRepository
	logger *zap.Logger
}

func NewTrafficService(repo *repository.TrafficRepository, logger *zap.Logger) *TrafficService {
	return &TrafficService{repo: repo, logger: logger}
}

// validateFilter rejects filters the repository layer would silently
// misinterpret
func validateFilter(f domain.RecordFilter) error {
	if f.YearFrom != 0 && f.YearTo != 0 && f.YearFrom > f.YearTo {
		return ErrInvalidYearRange
	}
	if f.Nationality != "" && !f.Nationality.IsValid() {
		return ErrInvalidNationality
	}
	return nil
}

// List returns a page of records matching the filter
func (s *TrafficService) List(ctx context.Context, f domain.RecordFilter, page, pageSize int) (*domain.RecordPage, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	records, total, err := s.repo.List(ctx, f, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &domain.RecordPage{
		Data:     mapper.ToRecordDTOs(records),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Years returns the years covered by the dataset
func (s *TrafficService) Years(ctx context.Context) ([]int, error) {
	return s.repo.Years(ctx)
}

// Countries returns the carrier countries present in the dataset
func (s *TrafficService) Countries(ctx context.Context) ([]string, error) {
	return s.repo.Countries(ctx)
}

// Metrics describes the selectable metrics
func (s *TrafficService) Metrics() []domain.MetricInfo {
	units := map[domain.Metric]string{
		domain.MetricPax:           "passengers",
		domain.MetricFreight:       "tons",
		domain.MetricPeq:           "passengers",
		domain.MetricPaxKM:         "billion pax-km",
		domain.MetricTonKM:         "billion ton-km",
		domain.MetricPeqKM:         "billion pax-km",
		domain.MetricFlights:       "flights",
		domain.MetricPaxPerFlight:  "passengers per flight",
		domain.MetricFreightPerPax: "tons per passenger",
	}
	metrics := domain.AllMetrics()
	infos := make([]domain.MetricInfo, len(metrics))
	for i, m := range metrics {
		infos[i] = domain.MetricInfo{
			Name:     m,
			Computed: m.IsComputed(),
			Unit:     units[m],
		}
	}
	return infos
}
