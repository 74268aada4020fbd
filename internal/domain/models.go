package domain

import (
	"time"

	"github.com/google/uuid"
)

// CarrierNationality classifies a carrier as French or foreign,
// matching the CIE_NAT column of the upstream dataset.
type CarrierNationality string

const (
	NationalityFrench  CarrierNationality = "F"
	NationalityForeign CarrierNationality = "E"
)

// IsValid reports whether the nationality is one of the dataset codes
func (n CarrierNationality) IsValid() bool {
	return n == NationalityFrench || n == NationalityForeign
}

// TrafficRecord is one monthly observation for one carrier from the
// ASP_CIE dataset. Volumes follow the upstream units: freight in tons,
// the *KM columns in billions, equivalent passengers at 1 peq = 1 pax or
// 0.1 ton of freight/mail.
type TrafficRecord struct {
	ID              uint               `gorm:"primaryKey"`
	Period          int                `gorm:"not null;index"` // yyyymm
	Year            int                `gorm:"not null;index"`
	Month           int                `gorm:"not null;index"`
	CarrierCode     string             `gorm:"type:varchar(10);not null;index;column:carrier_code"`
	CarrierName     string             `gorm:"type:varchar(200);column:carrier_name"`
	Nationality     CarrierNationality `gorm:"type:varchar(1);index"`
	Country         string             `gorm:"type:varchar(100);index"`
	Passengers      int64              `gorm:"not null;default:0"`
	FreightTons     float64            `gorm:"not null;default:0;column:freight_tons"`
	EquivalentPax   float64            `gorm:"not null;default:0;column:equivalent_pax"`
	PaxKM           float64            `gorm:"not null;default:0;column:pax_km"`
	TonKM           float64            `gorm:"not null;default:0;column:ton_km"`
	EquivalentPaxKM float64            `gorm:"not null;default:0;column:equivalent_pax_km"`
	Flights         int64              `gorm:"not null;default:0"`
	CreatedAt       time.Time          `gorm:"not null"`
}

// TableName overrides the gorm table name
func (TrafficRecord) TableName() string {
	return "traffic_records"
}

// ImportStatus is the lifecycle state of a dataset import run
type ImportStatus string

const (
	ImportStatusRunning   ImportStatus = "running"
	ImportStatusSucceeded ImportStatus = "succeeded"
	ImportStatusFailed    ImportStatus = "failed"
)

// ImportRun records one ingest attempt against the upstream dataset
type ImportRun struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey"`
	SourceURL    string       `gorm:"type:varchar(500);not null;column:source_url"`
	Status       ImportStatus `gorm:"type:varchar(20);not null;index"`
	StartedAt    time.Time    `gorm:"not null;index"`
	FinishedAt   *time.Time
	RowCount     int64  `gorm:"not null;default:0;column:row_count"`
	RowsSkipped  int64  `gorm:"not null;default:0;column:rows_skipped"`
	FilesParsed  int    `gorm:"not null;default:0;column:files_parsed"`
	Checksum     string `gorm:"type:varchar(64)"` // sha256 of the downloaded archive
	SnapshotPath string `gorm:"type:varchar(500);column:snapshot_path"`
	Error        string `gorm:"type:text"`
}

// TableName overrides the gorm table name
func (ImportRun) TableName() string {
	return "import_runs"
}

// Event is a notable disruption annotation (COVID, strikes) that clients
// can overlay on timeseries and seasonality views.
type Event struct {
	ID      uint   `gorm:"primaryKey"`
	Period  int    `gorm:"not null;index"` // yyyymm
	Label   string `gorm:"type:varchar(100);not null"`
	Details string `gorm:"type:text"`
}

// TableName overrides the gorm table name
func (Event) TableName() string {
	return "events"
}

// DefaultEvents returns the built-in disruption annotations seeded on
// first start.
func DefaultEvents() []Event {
	return []Event{
		{Period: 202003, Label: "COVID-19 lockdown", Details: "First national lockdown, near-total suspension of commercial traffic"},
		{Period: 202004, Label: "COVID-19 lockdown", Details: "Continued lockdown, traffic at historic lows"},
		{Period: 202109, Label: "Air traffic control strike", Details: "National ATC strike causing widespread cancellations"},
	}
}

// RecordFilter narrows the dataset the way the dashboard sidebar did:
// a year range, a set of carrier countries, and a carrier nationality.
// Zero values leave the corresponding dimension unfiltered.
type RecordFilter struct {
	YearFrom    int
	YearTo      int
	Countries   []string
	Nationality CarrierNationality
}

// IsZero reports whether the filter matches the whole dataset
func (f RecordFilter) IsZero() bool {
	return f.YearFrom == 0 && f.YearTo == 0 && len(f.Countries) == 0 && f.Nationality == ""
}

// Matches reports whether a record satisfies the filter predicate
func (f RecordFilter) Matches(r *TrafficRecord) bool {
	if f.YearFrom != 0 && r.Year < f.YearFrom {
		return false
	}
	if f.YearTo != 0 && r.Year > f.YearTo {
		return false
	}
	if f.Nationality != "" && r.Nationality != f.Nationality {
		return false
	}
	if len(f.Countries) > 0 {
		found := false
		for _, c := range f.Countries {
			if r.Country == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
