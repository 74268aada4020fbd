package domain

import "time"

// RecordDTO is the JSON shape of a traffic record
type RecordDTO struct {
	Period        int     `json:"period"`
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	CarrierCode   string  `json:"carrierCode"`
	CarrierName   string  `json:"carrierName,omitempty"`
	Nationality   string  `json:"nationality"`
	Country       string  `json:"country"`
	Passengers    int64   `json:"passengers"`
	FreightTons   float64 `json:"freightTons"`
	EquivalentPax float64 `json:"equivalentPax"`
	PaxKM         float64 `json:"paxKm"`
	TonKM         float64 `json:"tonKm"`
	EquivalentKM  float64 `json:"equivalentPaxKm"`
	Flights       int64   `json:"flights"`
}

// RecordPage is a paginated record listing
type RecordPage struct {
	Data     []RecordDTO `json:"data"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

// EventDTO is the JSON shape of a disruption annotation
type EventDTO struct {
	Period  int    `json:"period"`
	Label   string `json:"label"`
	Details string `json:"details,omitempty"`
}

// TimeseriesPoint is one aggregated value per period. Value is null for
// computed ratio metrics whose denominator summed to zero.
type TimeseriesPoint struct {
	Period int      `json:"period"` // yyyy, or yyyymm for monthly interval
	Value  *float64 `json:"value"`
}

// TimeseriesResult is the aggregated trend view. Median is the median of
// the point values, the reference line the dashboard drew on its trend
// chart; it is null when every point is null.
type TimeseriesResult struct {
	Metric   Metric            `json:"metric"`
	Interval string            `json:"interval"` // "year" or "month"
	Points   []TimeseriesPoint `json:"points"`
	Median   *float64          `json:"median"`
	Events   []EventDTO        `json:"events,omitempty"`
}

// CountryTotal is a metric total for one carrier country
type CountryTotal struct {
	Country string   `json:"country"`
	Value   *float64 `json:"value"`
}

// SeasonalityMatrix is a year-by-month aggregation of a metric. Cells is
// indexed [year][month-1]; a cell is null when no record covers that
// year/month under the active filter.
type SeasonalityMatrix struct {
	Metric    Metric       `json:"metric"`
	Aggregate Aggregate    `json:"aggregate"`
	Years     []int        `json:"years"`
	Months    []string     `json:"months"` // Jan..Dec labels
	Cells     [][]*float64 `json:"cells"`
	Events    []EventDTO   `json:"events,omitempty"`
}

// CarrierTotal is a metric total for one carrier
type CarrierTotal struct {
	CarrierCode string   `json:"carrierCode"`
	CarrierName string   `json:"carrierName"`
	Value       *float64 `json:"value"`
}

// CarrierYearPoint is one carrier's metric total for one year
type CarrierYearPoint struct {
	Year  int      `json:"year"`
	Value *float64 `json:"value"`
}

// CarrierSeries is the per-year trend for one carrier
type CarrierSeries struct {
	CarrierCode string             `json:"carrierCode"`
	CarrierName string             `json:"carrierName"`
	Points      []CarrierYearPoint `json:"points"`
}

// CarrierComparison ranks carriers by a metric and carries their yearly
// trends, the deep-dive comparison view of the dashboard.
type CarrierComparison struct {
	Metric Metric          `json:"metric"`
	Top    []CarrierTotal  `json:"top"`
	Trends []CarrierSeries `json:"trends"`
}

// RecoveryRow compares one carrier's latest-year total against the
// baseline year. PercentRecovered is null when the baseline total is zero
// (a carrier that did not exist in the baseline year).
type RecoveryRow struct {
	CarrierCode      string   `json:"carrierCode"`
	CarrierName      string   `json:"carrierName"`
	BaselineValue    float64  `json:"baselineValue"`
	LatestValue      float64  `json:"latestValue"`
	Delta            float64  `json:"delta"`
	PercentRecovered *float64 `json:"percentRecovered"`
}

// RecoveryReport is the per-carrier recovery analysis vs a baseline year
type RecoveryReport struct {
	Metric       Metric        `json:"metric"`
	BaselineYear int           `json:"baselineYear"`
	LatestYear   int           `json:"latestYear"`
	Rows         []RecoveryRow `json:"rows"`
}

// SummaryMetrics are the headline KPIs over the filtered view.
// ChangePercent is null when the first point of the series is zero, where
// a percentage is undefined.
type SummaryMetrics struct {
	Metric          Metric   `json:"metric"`
	RowCount        int64    `json:"rowCount"`
	TotalPassengers int64    `json:"totalPassengers"`
	TotalFlights    int64    `json:"totalFlights"`
	FirstValue      *float64 `json:"firstValue"`
	LatestValue     *float64 `json:"latestValue"`
	ChangeAbsolute  *float64 `json:"changeAbsolute"`
	ChangePercent   *float64 `json:"changePercent"`
	TopCountry      string   `json:"topCountry,omitempty"`
}

// ImportRunDTO is the JSON shape of an ingest attempt
type ImportRunDTO struct {
	ID           string     `json:"id"`
	SourceURL    string     `json:"sourceUrl"`
	Status       string     `json:"status"`
	StartedAt    time.Time  `json:"startedAt"`
	FinishedAt   *time.Time `json:"finishedAt,omitempty"`
	RowCount     int64      `json:"rowCount"`
	RowsSkipped  int64      `json:"rowsSkipped"`
	FilesParsed  int        `json:"filesParsed"`
	Checksum     string     `json:"checksum,omitempty"`
	SnapshotPath string     `json:"snapshotPath,omitempty"`
	Error        string     `json:"error,omitempty"`
}

// DatasetStatus describes the stored snapshot and its freshness
type DatasetStatus struct {
	RowCount   int64         `json:"rowCount"`
	Years      []int         `json:"years"`
	Stale      bool          `json:"stale"`
	LastImport *ImportRunDTO `json:"lastImport,omitempty"`
}

// MetricInfo describes one selectable metric for filter discovery
type MetricInfo struct {
	Name     Metric `json:"name"`
	Computed bool   `json:"computed"`
	Unit     string `json:"unit,omitempty"`
}
