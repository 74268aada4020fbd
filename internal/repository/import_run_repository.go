package repository

import (
	"context"

	"github.com/aviodata/traffic-api/internal/domain"
	"gorm.io/gorm"
)

// ImportRunRepository stores the audit trail of dataset refreshes
type ImportRunRepository struct {
	db *gorm.DB
}

func NewImportRunRepository(db *gorm.DB) *ImportRunRepository {
	return &ImportRunRepository{db: db}
}

func (r *ImportRunRepository) Create(ctx context.Context, run *domain.ImportRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *ImportRunRepository) Update(ctx context.Context, run *domain.ImportRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}

// Latest returns the most recently started run, regardless of outcome
func (r *ImportRunRepository) Latest(ctx context.Context) (*domain.ImportRun, error) {
	var run domain.ImportRun
	err := r.db.WithContext(ctx).Order("started_at DESC").First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// LatestSucceeded returns the most recent run that completed successfully
func (r *ImportRunRepository) LatestSucceeded(ctx context.Context) (*domain.ImportRun, error) {
	var run domain.ImportRun
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.ImportStatusSucceeded).
		Order("started_at DESC").First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// List returns the most recent runs, newest first
func (r *ImportRunRepository) List(ctx context.Context, limit int) ([]domain.ImportRun, error) {
	var runs []domain.ImportRun
	err := r.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&runs).Error
	return runs, err
}
