package repository

import (
	"context"

	"github.com/aviodata/traffic-api/internal/domain"
	"gorm.io/gorm"
)

// EventRepository stores annotated calendar events such as strikes and
// lockdown periods
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// List returns all events ordered by period
func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	err := r.db.WithContext(ctx).Order("period").Find(&events).Error
	return events, err
}

// ListBetween returns events falling inside [from, to], inclusive, both
// given as yyyymm periods
func (r *EventRepository) ListBetween(ctx context.Context, from, to int) ([]domain.Event, error) {
	var events []domain.Event
	err := r.db.WithContext(ctx).
		Where("period >= ? AND period <= ?", from, to).
		Order("period").Find(&events).Error
	return events, err
}

// SeedDefaults inserts the built-in event annotations when the table is
// empty
func (r *EventRepository) SeedDefaults(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Event{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(domain.DefaultEvents()).Error
}
