package service

import (
	"context"
	"sort"

	"github.com/aviodata/traffic-api/internal/domain"
	"github.com/aviodata/traffic-api/internal/mapper"
	"github.com/aviodata/traffic-api/internal/repository"
	"go.uber.org/zap"
)

const (
	// IntervalYear aggregates one point per year
	IntervalYear = "year"
	// IntervalMonth aggregates one point per yyyymm period
	IntervalMonth = "month"

	defaultCarrierLimit = 10
	maxCarrierLimit     = 50
)

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// AnalyticsService computes the aggregated dashboard views: headline
// KPIs, trends, country rankings, seasonality, carrier comparisons and
// the post-baseline recovery report.
type AnalyticsService struct {
	repo         *repository.TrafficRepository
	events       *repository.EventRepository
	baselineYear int
	logger       *zap.Logger
}

func NewAnalyticsService(repo *repository.TrafficRepository, events *repository.EventRepository, baselineYear int, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		repo:         repo,
		events:       events,
		baselineYear: baselineYear,
		logger:       logger,
	}
}

// Summary computes the headline KPIs over the filtered view
func (s *AnalyticsService) Summary(ctx context.Context, f domain.RecordFilter, metric domain.Metric) (*domain.SummaryMetrics, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	if !metric.IsValid() {
		return nil, ErrInvalidMetric
	}

	rowCount, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	passengers, flights, err := s.repo.Totals(ctx, f)
	if err != nil {
		return nil, err
	}

	series, err := s.repo.SeriesByYear(ctx, f, metric)
	if err != nil {
		return nil, err
	}

	summary := &domain.SummaryMetrics{
		Metric:          metric,
		RowCount:        rowCount,
		TotalPassengers: passengers,
		TotalFlights:    flights,
	}

	if len(series) > 0 {
		first := series[0].Value
		latest := series[len(series)-1].Value
		summary.FirstValue = first
		summary.LatestValue = latest
		if first != nil && latest != nil {
			delta := *latest - *first
			summary.ChangeAbsolute = &delta
			// a percentage change from zero is undefined
			if *first != 0 {
				pct := delta / *first * 100
				summary.ChangePercent = &pct
			}
		}
	}

	countries, err := s.repo.TotalsByCountry(ctx, f, metric, 1)
	if err != nil {
		return nil, err
	}
	if len(countries) > 0 {
		summary.TopCountry = countries[0].Country
	}

	return summary, nil
}

// Timeseries aggregates a metric over time, yearly or monthly, with the
// series median and any disruption events inside the covered range
func (s *AnalyticsService) Timeseries(ctx context.Context, f domain.RecordFilter, metric domain.Metric, interval string) (*domain.TimeseriesResult, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	if !metric.IsValid() {
		return nil, ErrInvalidMetric
	}
	if interval == "" {
		interval = IntervalYear
	}

	var points []domain.TimeseriesPoint
	var err error
	switch interval {
	case IntervalYear:
		points, err = s.repo.SeriesByYear(ctx, f, metric)
	case IntervalMonth:
		points, err = s.repo.SeriesByPeriod(ctx, f, metric)
	default:
		return nil, ErrInvalidAggregate
	}
	if err != nil {
		return nil, err
	}

	result := &domain.TimeseriesResult{
		Metric:   metric,
		Interval: interval,
		Points:   points,
		Median:   median(points),
	}

	if len(points) > 0 {
		from, to := periodBounds(points, interval)
		events, err := s.events.ListBetween(ctx, from, to)
		if err != nil {
			return nil, err
		}
		result.Events = mapper.ToEventDTOs(events)
	}

	return result, nil
}

// Countries ranks carrier countries by a metric total. limit <= 0 returns
// every country.
func (s *AnalyticsService) Countries(ctx context.Context, f domain.RecordFilter, metric domain.Metric, limit int) ([]domain.CountryTotal, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	if !metric.IsValid() {
		return nil, ErrInvalidMetric
	}
	return s.repo.TotalsByCountry(ctx, f, metric, limit)
}

// Seasonality builds the year-by-month matrix of a metric. lastYears > 0
// restricts the matrix to the most recent N years of the filtered view.
func (s *AnalyticsService) Seasonality(ctx context.Context, f domain.RecordFilter, metric domain.Metric, agg domain.Aggregate, lastYears int) (*domain.SeasonalityMatrix, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	if !metric.IsValid() {
		return nil, ErrInvalidMetric
	}
	if agg == "" {
		agg = domain.AggregateSum
	}
	if !agg.IsValid() {
		return nil, ErrInvalidAggregate
	}

	cells, err := s.repo.SeasonalityCells(ctx, f, metric, agg)
	if err != nil {
		return nil, err
	}

	years := make([]int, 0)
	seen := make(map[int]bool)
	for _, c := range cells {
		if !seen[c.Year] {
			seen[c.Year] = true
			years = append(years, c.Year)
		}
	}
	sort.Ints(years)
	if lastYears > 0 && len(years) > lastYears {
		years = years[len(years)-lastYears:]
	}

	yearIndex := make(map[int]int, len(years))
	matrix := make([][]*float64, len(years))
	for i, y := range years {
		yearIndex[y] = i
		matrix[i] = make([]*float64, 12)
	}
	for _, c := range cells {
		i, ok := yearIndex[c.Year]
		if !ok || c.Month < 1 || c.Month > 12 {
			continue
		}
		matrix[i][c.Month-1] = c.Value
	}

	result := &domain.SeasonalityMatrix{
		Metric:    metric,
		Aggregate: agg,
		Years:     years,
		Months:    monthLabels,
		Cells:     matrix,
	}

	if len(years) > 0 {
		events, err := s.events.ListBetween(ctx, years[0]*100+1, years[len(years)-1]*100+12)
		if err != nil {
			return nil, err
		}
		result.Events = mapper.ToEventDTOs(events)
	}

	return result, nil
}

// Carriers ranks carriers by a metric and attaches their yearly trends.
// When the filter carries no nationality the comparison defaults to
// French carriers, the view the dashboard opened on.
func (s *AnalyticsService) Carriers(ctx context.Context, f domain.RecordFilter, metric domain.Metric, limit int) (*domain.CarrierComparison, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	if !metric.IsValid() {
		return nil, ErrInvalidMetric
	}
	if limit < 1 {
		limit = defaultCarrierLimit
	}
	if limit > maxCarrierLimit {
		limit = maxCarrierLimit
	}
	if f.Nationality == "" {
		f.Nationality = domain.NationalityFrench
	}

	top, err := s.repo.TopCarriers(ctx, f, metric, limit)
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(top))
	for i, t := range top {
		codes[i] = t.CarrierCode
	}

	yearly, err := s.repo.CarrierYearTotals(ctx, f, metric, codes)
	if err != nil {
		return nil, err
	}

	trendIndex := make(map[string]*domain.CarrierSeries, len(top))
	trends := make([]domain.CarrierSeries, 0, len(top))
	for _, t := range top {
		trends = append(trends, domain.CarrierSeries{
			CarrierCode: t.CarrierCode,
			CarrierName: t.CarrierName,
		})
	}
	for i := range trends {
		trendIndex[trends[i].CarrierCode] = &trends[i]
	}
	for _, row := range yearly {
		series, ok := trendIndex[row.CarrierCode]
		if !ok {
			continue
		}
		series.Points = append(series.Points, domain.CarrierYearPoint{
			Year:  row.Year,
			Value: row.Value,
		})
	}

	return &domain.CarrierComparison{
		Metric: metric,
		Top:    top,
		Trends: trends,
	}, nil
}

// Recovery compares each carrier's latest-year total against the baseline
// year. The configured baseline is used when the filtered view covers it,
// otherwise the earliest year in view stands in.
func (s *AnalyticsService) Recovery(ctx context.Context, f domain.RecordFilter, metric domain.Metric, limit int) (*domain.RecoveryReport, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	if !metric.IsValid() {
		return nil, ErrInvalidMetric
	}
	if limit < 1 {
		limit = defaultCarrierLimit
	}
	if limit > maxCarrierLimit {
		limit = maxCarrierLimit
	}
	if f.Nationality == "" {
		f.Nationality = domain.NationalityFrench
	}

	years, err := s.repo.FilteredYears(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(years) == 0 {
		return nil, ErrNoData
	}

	baseline := years[0]
	for _, y := range years {
		if y == s.baselineYear {
			baseline = s.baselineYear
			break
		}
	}
	latest := years[len(years)-1]

	baselineTotals, err := s.repo.CarrierTotalsForYear(ctx, f, metric, baseline)
	if err != nil {
		return nil, err
	}
	latestTotals, err := s.repo.CarrierTotalsForYear(ctx, f, metric, latest)
	if err != nil {
		return nil, err
	}

	baselineByCode := make(map[string]float64, len(baselineTotals))
	for _, t := range baselineTotals {
		if t.Value != nil {
			baselineByCode[t.CarrierCode] = *t.Value
		}
	}

	rows := make([]domain.RecoveryRow, 0, limit)
	for _, t := range latestTotals {
		if len(rows) >= limit {
			break
		}
		var latestValue float64
		if t.Value != nil {
			latestValue = *t.Value
		}
		baselineValue := baselineByCode[t.CarrierCode]
		row := domain.RecoveryRow{
			CarrierCode:   t.CarrierCode,
			CarrierName:   t.CarrierName,
			BaselineValue: baselineValue,
			LatestValue:   latestValue,
			Delta:         latestValue - baselineValue,
		}
		// carriers absent from the baseline year have no recovery ratio
		if baselineValue != 0 {
			pct := latestValue / baselineValue * 100
			row.PercentRecovered = &pct
		}
		rows = append(rows, row)
	}

	return &domain.RecoveryReport{
		Metric:       metric,
		BaselineYear: baseline,
		LatestYear:   latest,
		Rows:         rows,
	}, nil
}

// median returns the median of the non-null point values, or nil when
// every point is null
func median(points []domain.TimeseriesPoint) *float64 {
	values := make([]float64, 0, len(points))
	for _, p := range points {
		if p.Value != nil {
			values = append(values, *p.Value)
		}
	}
	if len(values) == 0 {
		return nil
	}
	sort.Float64s(values)
	mid := len(values) / 2
	var m float64
	if len(values)%2 == 1 {
		m = values[mid]
	} else {
		m = (values[mid-1] + values[mid]) / 2
	}
	return &m
}

// periodBounds returns the inclusive yyyymm range covered by a series
func periodBounds(points []domain.TimeseriesPoint, interval string) (from, to int) {
	first := points[0].Period
	last := points[len(points)-1].Period
	if interval == IntervalYear {
		return first*100 + 1, last*100 + 12
	}
	return first, last
}
