package mapper

import (
	"github.com/aviodata/traffic-api/internal/domain"
)

// ToRecordDTO converts a traffic record to its JSON shape
func ToRecordDTO(r *domain.TrafficRecord) domain.RecordDTO {
	return domain.RecordDTO{
		Period:        r.Period,
		Year:          r.Year,
		Month:         r.Month,
		CarrierCode:   r.CarrierCode,
		CarrierName:   r.CarrierName,
		Nationality:   string(r.Nationality),
		Country:       r.Country,
		Passengers:    r.Passengers,
		FreightTons:   r.FreightTons,
		EquivalentPax: r.EquivalentPax,
		PaxKM:         r.PaxKM,
		TonKM:         r.TonKM,
		EquivalentKM:  r.EquivalentPaxKM,
		Flights:       r.Flights,
	}
}

// ToRecordDTOs converts a slice of traffic records
func ToRecordDTOs(records []domain.TrafficRecord) []domain.RecordDTO {
	dtos := make([]domain.RecordDTO, len(records))
	for i := range records {
		dtos[i] = ToRecordDTO(&records[i])
	}
	return dtos
}

// ToEventDTO converts an event annotation to its JSON shape
func ToEventDTO(e *domain.Event) domain.EventDTO {
	return domain.EventDTO{
		Period:  e.Period,
		Label:   e.Label,
		Details: e.Details,
	}
}

// ToEventDTOs converts a slice of events
func ToEventDTOs(events []domain.Event) []domain.EventDTO {
	dtos := make([]domain.EventDTO, len(events))
	for i := range events {
		dtos[i] = ToEventDTO(&events[i])
	}
	return dtos
}

// ToImportRunDTO converts an ingest audit record to its JSON shape
func ToImportRunDTO(run *domain.ImportRun) domain.ImportRunDTO {
	return domain.ImportRunDTO{
		ID:           run.ID.String(),
		SourceURL:    run.SourceURL,
		Status:       string(run.Status),
		StartedAt:    run.StartedAt,
		FinishedAt:   run.FinishedAt,
		RowCount:     run.RowCount,
		RowsSkipped:  run.RowsSkipped,
		FilesParsed:  run.FilesParsed,
		Checksum:     run.Checksum,
		SnapshotPath: run.SnapshotPath,
		Error:        run.Error,
	}
}
