package service

import (
	"context"

	"github.com/aviodata/traffic-api/internal/domain"
	"github.com/aviodata/traffic-api/internal/mapper"
	"github.com/aviodata/traffic-api/internal/repository"
)

// EventService serves the disruption annotations
type EventService struct {
	repo *repository.EventRepository
}

func NewEventService(repo *repository.EventRepository) *EventService {
	return &EventService{repo: repo}
}

// List returns all annotations ordered by period
func (s *EventService) List(ctx context.Context) ([]domain.EventDTO, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToEventDTOs(events), nil
}

// Seed inserts the built-in annotations when none exist yet
func (s *EventService) Seed(ctx context.Context) error {
	return s.repo.SeedDefaults(ctx)
}
