package repository

import (
	"context"
	"fmt"

	"github.com/aviodata/traffic-api/internal/domain"
	"gorm.io/gorm"
)

// insertBatchSize bounds each bulk insert during snapshot replacement
const insertBatchSize = 1000

// TrafficRepository owns all queries against the traffic_records table
type TrafficRepository struct {
	db *gorm.DB
}

func NewTrafficRepository(db *gorm.DB) *TrafficRepository {
	return &TrafficRepository{db: db}
}

// applyFilter narrows a query to the records matching the filter predicate
func applyFilter(q *gorm.DB, f domain.RecordFilter) *gorm.DB {
	if f.YearFrom != 0 {
		q = q.Where("year >= ?", f.YearFrom)
	}
	if f.YearTo != 0 {
		q = q.Where("year <= ?", f.YearTo)
	}
	if len(f.Countries) > 0 {
		q = q.Where("country IN ?", f.Countries)
	}
	if f.Nationality != "" {
		q = q.Where("nationality = ?", f.Nationality)
	}
	return q
}

// metricExpr builds the SQL aggregation expression for a metric.
// Computed ratio metrics always aggregate as ratio-of-sums with a NULL
// result when the denominator sums to zero.
func metricExpr(m domain.Metric, agg domain.Aggregate) string {
	switch m {
	case domain.MetricPaxPerFlight:
		return "CAST(SUM(passengers) AS REAL) / NULLIF(CAST(SUM(flights) AS REAL), 0)"
	case domain.MetricFreightPerPax:
		return "SUM(freight_tons) / NULLIF(CAST(SUM(passengers) AS REAL), 0)"
	}
	col := m.Column()
	if agg == domain.AggregateMean {
		return fmt.Sprintf("AVG(%s)", col)
	}
	return fmt.Sprintf("CAST(SUM(%s) AS REAL)", col)
}

// ReplaceAll atomically swaps the stored snapshot for a new set of records.
// Readers never observe a partially-loaded dataset.
func (r *TrafficRepository) ReplaceAll(ctx context.Context, records []domain.TrafficRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.TrafficRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear traffic records: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(records, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert traffic records: %w", err)
		}
		return nil
	})
}

// List returns a page of filtered records ordered by period and carrier
func (r *TrafficRepository) List(ctx context.Context, f domain.RecordFilter, page, pageSize int) ([]domain.TrafficRecord, int64, error) {
	var records []domain.TrafficRecord
	var total int64

	query := applyFilter(r.db.WithContext(ctx).Model(&domain.TrafficRecord{}), f)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("period, carrier_code").Offset(offset).Limit(pageSize).Find(&records).Error
	return records, total, err
}

// Count returns the number of records matching the filter
func (r *TrafficRepository) Count(ctx context.Context, f domain.RecordFilter) (int64, error) {
	var count int64
	err := applyFilter(r.db.WithContext(ctx).Model(&domain.TrafficRecord{}), f).Count(&count).Error
	return count, err
}

// Years returns the distinct years present in the dataset, ascending
func (r *TrafficRepository) Years(ctx context.Context) ([]int, error) {
	var years []int
	err := r.db.WithContext(ctx).Model(&domain.TrafficRecord{}).
		Distinct("year").Order("year").Pluck("year", &years).Error
	return years, err
}

// FilteredYears returns the distinct years within the filtered view, ascending
func (r *TrafficRepository) FilteredYears(ctx context.Context, f domain.RecordFilter) ([]int, error) {
	var years []int
	err := applyFilter(r.db.WithContext(ctx).Model(&domain.TrafficRecord{}), f).
		Distinct("year").Order("year").Pluck("year", &years).Error
	return years, err
}

// Countries returns the distinct carrier countries, ascending
func (r *TrafficRepository) Countries(ctx context.Context) ([]string, error) {
	var countries []string
	err := r.db.WithContext(ctx).Model(&domain.TrafficRecord{}).
		Where("country <> ''").Distinct("country").Order("country").
		Pluck("country", &countries).Error
	return countries, err
}

// Totals returns the summed passenger and flight volumes of the filtered view
func (r *TrafficRepository) Totals(ctx context.Context, f domain.RecordFilter) (passengers int64, flights int64, err error) {
	var row struct {
		Passengers *int64
		Flights    *int64
	}
	err = applyFilter(r.db.WithContext(ctx).Model(&domain.TrafficRecord{}), f).
		Select("SUM(passengers) AS passengers, SUM(flights) AS flights").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	if row.Passengers != nil {
		passengers = *row.Passengers
	}
	if row.Flights != nil {
		flights = *row.Flights
	}
	return passengers, flights, nil
}

// SeriesByYear aggregates a metric per year over the filtered view
func (r *TrafficRepository) SeriesByYear(ctx context.Context, f domain.RecordFilter, metric domain.Metric) ([]domain.TimeseriesPoint, error) {
	var points []domain.TimeseriesPoint
	err := applyFilter(r.db.WithContext(ctx).Model(&domain.TrafficRecord{}), f).
		Select(fmt.Sprintf("year AS period, %s AS value", metricExpr(metric, domain.AggregateSum))).
		Group("year").Order("year").
		Scan(&points).Error
	return points, err
}

// SeriesByPeriod aggregates a metric per yyyymm period over the filtered view
func (r *TrafficRepository) SeriesByPeriod(ctx context.Context, f domain.RecordFilter, metric domain.Metric) ([]domain.TimeseriesPoint, error) {
	var points []domain.TimeseriesPoint
	err := applyFilter(r.db.WithContext(ctx).Model(&domain.TrafficRecord{}), f).
		Select(fmt.Sprintf("period, %s AS value", metricExpr(metric, domain.AggregateSum))).
		Group("period").Order("period").
		Scan(&points).Error
	return points, err
}

// TotalsByCountry aggregates a metric per carrier country, descending.
// limit <= 0 returns all countries. Computed ratios can be NULL and
// Postgres sorts NULLs first under DESC, so the ranked queries pin them
// last explicitly.
func (r *TrafficRepository) TotalsByCountry(ctx context.Context, f domain.RecordFilter, metric domain.Metric, limit int) ([]domain.CountryTotal, error) {
	var totals []domain.CountryTotal
	query := applyFilter(r.db.WithContext(ctx).Model(&domain.TrafficRecord{}), f).
		Select(fmt.Sprintf("country, %s AS value", metricExpr(metric, domain.AggregateSum))).
		Where("country <> ''").
		Group("country").Order("value DESC NULLS LAST")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Scan(&totals).Error
	return totals, err
}

// SeasonalityCell is one aggregated year/month cell
type SeasonalityCell struct {
	Year  int
	Month int
	Value *float64
}

// SeasonalityCells aggregates a metric per year and month over the
// filtered view, ordered by year then month
func (r *TrafficRepository) SeasonalityCells(ctx context.Context, f domain.RecordFilter, metric domain.Metric, agg domain.Aggregate) ([]SeasonalityCell, error) {
	var cells []SeasonalityCell
	err := applyFilter(r.db.WithContext(ctx).Model(&domain.TrafficRecord{}), f).
		Select(fmt.Sprintf("year, month, %s AS value", metricExpr(metric, agg))).
		Group("year, month").Order("year, month").
		Scan(&cells).Error
	return cells, err
}

// TopCarriers ranks carriers by a metric total over the filtered view
func (r *TrafficRepository) TopCarriers(ctx context.Context, f domain.RecordFilter, metric domain.Metric, limit int) ([]domain.CarrierTotal, error) {
	var totals []domain.CarrierTotal
	err := applyFilter(r.db.WithContext(ctx).Model(&domain.TrafficRecord{}), f).
		Select(fmt.Sprintf("carrier_code, carrier_name, %s AS value", metricExpr(metric, domain.AggregateSum))).
		Group("carrier_code, carrier_name").Order("value DESC NULLS LAST").
		Limit(limit).
		Scan(&totals).Error
	return totals, err
}

// CarrierYearValue is one carrier's aggregated value for one year
type CarrierYearValue struct {
	CarrierCode string
	CarrierName string
	Year        int
	Value       *float64
}

// CarrierYearTotals aggregates a metric per carrier and year for the given
// carrier codes
func (r *TrafficRepository) CarrierYearTotals(ctx context.Context, f domain.RecordFilter, metric domain.Metric, carrierCodes []string) ([]CarrierYearValue, error) {
	if len(carrierCodes) == 0 {
		return nil, nil
	}
	var rows []CarrierYearValue
	err := applyFilter(r.db.WithContext(ctx).Model(&domain.TrafficRecord{}), f).
		Select(fmt.Sprintf("carrier_code, carrier_name, year, %s AS value", metricExpr(metric, domain.AggregateSum))).
		Where("carrier_code IN ?", carrierCodes).
		Group("carrier_code, carrier_name, year").Order("carrier_code, year").
		Scan(&rows).Error
	return rows, err
}

// CarrierTotalsForYear aggregates a metric per carrier for a single year
func (r *TrafficRepository) CarrierTotalsForYear(ctx context.Context, f domain.RecordFilter, metric domain.Metric, year int) ([]domain.CarrierTotal, error) {
	var totals []domain.CarrierTotal
	err := applyFilter(r.db.WithContext(ctx).Model(&domain.TrafficRecord{}), f).
		Select(fmt.Sprintf("carrier_code, carrier_name, %s AS value", metricExpr(metric, domain.AggregateSum))).
		Where("year = ?", year).
		Group("carrier_code, carrier_name").Order("value DESC NULLS LAST").
		Scan(&totals).Error
	return totals, err
}
