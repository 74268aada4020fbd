package domain

// Metric identifies a numeric dataset column, or a ratio computed from two
// columns. Computed metrics aggregate as ratio-of-sums, not sum-of-ratios,
// so a carrier flying many small aircraft doesn't dominate the average.
type Metric string

const (
	MetricPax     Metric = "pax"     // passengers carried
	MetricFreight Metric = "freight" // freight and mail, tons
	MetricPeq     Metric = "peq"     // equivalent passengers
	MetricPaxKM   Metric = "pkt"     // passenger-km, billions
	MetricTonKM   Metric = "tkt"     // ton-km, billions
	MetricPeqKM   Metric = "peqkt"   // equivalent passenger-km, billions
	MetricFlights Metric = "flights" // commercial flights

	// Computed ratios
	MetricPaxPerFlight  Metric = "paxPerFlight"  // pax / flights
	MetricFreightPerPax Metric = "freightPerPax" // freight tons / pax
)

// storedColumns maps stored metrics to their database column
var storedColumns = map[Metric]string{
	MetricPax:     "passengers",
	MetricFreight: "freight_tons",
	MetricPeq:     "equivalent_pax",
	MetricPaxKM:   "pax_km",
	MetricTonKM:   "ton_km",
	MetricPeqKM:   "equivalent_pax_km",
	MetricFlights: "flights",
}

// AllMetrics lists every selectable metric, stored columns first
func AllMetrics() []Metric {
	return []Metric{
		MetricPax, MetricFreight, MetricPeq, MetricPaxKM, MetricTonKM,
		MetricPeqKM, MetricFlights, MetricPaxPerFlight, MetricFreightPerPax,
	}
}

// IsValid reports whether the metric is selectable
func (m Metric) IsValid() bool {
	if _, ok := storedColumns[m]; ok {
		return true
	}
	return m == MetricPaxPerFlight || m == MetricFreightPerPax
}

// IsComputed reports whether the metric is a ratio of two stored columns
func (m Metric) IsComputed() bool {
	return m == MetricPaxPerFlight || m == MetricFreightPerPax
}

// Column returns the database column for a stored metric, or "" for
// computed metrics
func (m Metric) Column() string {
	return storedColumns[m]
}

// Aggregate selects how a metric is folded over a group of records
type Aggregate string

const (
	AggregateSum  Aggregate = "sum"
	AggregateMean Aggregate = "mean"
)

// IsValid reports whether the aggregate is supported
func (a Aggregate) IsValid() bool {
	return a == AggregateSum || a == AggregateMean
}
