package repository

import (
	"context"

	"github.com/sjperalta/statutory-api/internal/models"

	"gorm.io/gorm"
)

// OverrideRepository defines the interface for the append-only override
// ledger. There is deliberately no Update or Delete.
type OverrideRepository interface {
	Create(ctx context.Context, override *models.StatutoryOverride) error
	FindByID(ctx context.Context, id uint) (*models.StatutoryOverride, error)
	ListByRow(ctx context.Context, rowID uint) ([]models.StatutoryOverride, error)
	ListByComputation(ctx context.Context, computationID uint) ([]models.StatutoryOverride, error)
	CountByComputation(ctx context.Context, computationID uint) (int64, error)
}

type overrideRepository struct {
	db *gorm.DB
}

// NewOverrideRepository creates a new override repository
func NewOverrideRepository(db *gorm.DB) OverrideRepository {
	return &overrideRepository{db: db}
}

func (r *overrideRepository) Create(ctx context.Context, override *models.StatutoryOverride) error {
	return r.db.WithContext(ctx).Omit("EmployeeStatutory").Create(override).Error
}

func (r *overrideRepository) FindByID(ctx context.Context, id uint) (*models.StatutoryOverride, error) {
	var override models.StatutoryOverride
	if err := r.db.WithContext(ctx).First(&override, id).Error; err != nil {
		return nil, err
	}
	return &override, nil
}

// ListByRow returns a row's history, newest first
func (r *overrideRepository) ListByRow(ctx context.Context, rowID uint) ([]models.StatutoryOverride, error) {
	var overrides []models.StatutoryOverride
	err := r.db.WithContext(ctx).
		Where("employee_statutory_id = ?", rowID).
		Order("id DESC").
		Find(&overrides).Error
	return overrides, err
}

// ListByComputation returns every entry of a computation, newest first
func (r *overrideRepository) ListByComputation(ctx context.Context, computationID uint) ([]models.StatutoryOverride, error) {
	var overrides []models.StatutoryOverride
	err := r.db.WithContext(ctx).
		Where("computation_id = ?", computationID).
		Order("id DESC").
		Find(&overrides).Error
	return overrides, err
}

func (r *overrideRepository) CountByComputation(ctx context.Context, computationID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.StatutoryOverride{}).
		Where("computation_id = ?", computationID).
		Count(&count).Error
	return count, err
}
