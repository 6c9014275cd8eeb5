package repository

import (
	"context"

	"github.com/sjperalta/statutory-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConfigRepository defines the interface for statutory config data access
type ConfigRepository interface {
	FindByCompanyID(ctx context.Context, companyID uint) (*models.StatutoryConfig, error)
	Upsert(ctx context.Context, cfg *models.StatutoryConfig) error
}

type configRepository struct {
	db *gorm.DB
}

// NewConfigRepository creates a new config repository
func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) FindByCompanyID(ctx context.Context, companyID uint) (*models.StatutoryConfig, error) {
	var cfg models.StatutoryConfig
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Upsert inserts the company's config or replaces every setting of the
// existing row, then reloads it so ID and timestamps are current
func (r *configRepository) Upsert(ctx context.Context, cfg *models.StatutoryConfig) error {
	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "company_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"pf_enabled", "pf_wage_basis", "pf_employee_rate", "pf_employer_rate",
			"pf_wage_ceiling", "pf_enforce_ceiling",
			"esi_enabled", "esi_wage_threshold", "esi_employee_rate", "esi_employer_rate",
			"rounding_mode", "updated_by", "updated_at",
		}),
	}).Create(cfg).Error
	if err != nil {
		return err
	}
	var stored models.StatutoryConfig
	if err := db.Where("company_id = ?", cfg.CompanyID).First(&stored).Error; err != nil {
		return err
	}
	*cfg = stored
	return nil
}
