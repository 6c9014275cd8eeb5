package repository

import (
	"context"

	"github.com/sjperalta/statutory-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var totalColumns = []string{
	"total_gross_wages", "total_pf_employee", "total_pf_employer",
	"total_esi_employee", "total_esi_employer",
	"total_employee_deductions", "total_employer_contributions", "total_net_payable",
	"updated_at",
}

var rowAmountColumns = []string{
	"pf_employee_amount", "pf_employer_amount", "pf_total_amount",
	"esi_employee_amount", "esi_employer_amount", "esi_total_amount",
	"total_employee_deduction", "total_employer_contribution", "net_payable",
	"updated_at",
}

// ComputationRepository defines the interface for statutory computation data
// access, including the per-worker result rows
type ComputationRepository interface {
	Create(ctx context.Context, computation *models.StatutoryComputation) error
	FindByPeriodID(ctx context.Context, periodID uint) (*models.StatutoryComputation, error)
	FindByPeriodIDWithRows(ctx context.Context, periodID uint) (*models.StatutoryComputation, error)
	FindByIDWithRows(ctx context.Context, id uint) (*models.StatutoryComputation, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.StatutoryComputation, error)
	FindByPeriodIDForUpdate(ctx context.Context, periodID uint) (*models.StatutoryComputation, error)
	UpdateLock(ctx context.Context, computation *models.StatutoryComputation) error
	UpdateTotals(ctx context.Context, computation *models.StatutoryComputation) error
	Delete(ctx context.Context, computation *models.StatutoryComputation) error

	FindRowByID(ctx context.Context, rowID uint) (*models.EmployeeStatutory, error)
	UpdateRowAmounts(ctx context.Context, row *models.EmployeeStatutory) error
}

type computationRepository struct {
	db *gorm.DB
}

// NewComputationRepository creates a new computation repository
func NewComputationRepository(db *gorm.DB) ComputationRepository {
	return &computationRepository{db: db}
}

// Create inserts the computation and its rows. A second computation for the
// same billing period fails with ErrDuplicate.
func (r *computationRepository) Create(ctx context.Context, computation *models.StatutoryComputation) error {
	err := r.db.WithContext(ctx).
		Omit("BillingPeriod").
		Create(computation).Error
	return translateError(err)
}

func (r *computationRepository) FindByPeriodID(ctx context.Context, periodID uint) (*models.StatutoryComputation, error) {
	var computation models.StatutoryComputation
	err := r.db.WithContext(ctx).Where("billing_period_id = ?", periodID).First(&computation).Error
	if err != nil {
		return nil, err
	}
	return &computation, nil
}

func (r *computationRepository) FindByPeriodIDWithRows(ctx context.Context, periodID uint) (*models.StatutoryComputation, error) {
	var computation models.StatutoryComputation
	err := r.withRows(ctx).Where("billing_period_id = ?", periodID).First(&computation).Error
	if err != nil {
		return nil, err
	}
	return &computation, nil
}

func (r *computationRepository) FindByIDWithRows(ctx context.Context, id uint) (*models.StatutoryComputation, error) {
	var computation models.StatutoryComputation
	if err := r.withRows(ctx).First(&computation, id).Error; err != nil {
		return nil, err
	}
	return &computation, nil
}

// FindByIDForUpdate locks the computation row until the surrounding
// transaction ends, then loads it with its worker rows. Lock, delete and
// override writers all take this lock first, so the rows they read are
// current.
func (r *computationRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.StatutoryComputation, error) {
	var locked models.StatutoryComputation
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&locked, id).Error
	if err != nil {
		return nil, err
	}
	return r.FindByIDWithRows(ctx, locked.ID)
}

func (r *computationRepository) FindByPeriodIDForUpdate(ctx context.Context, periodID uint) (*models.StatutoryComputation, error) {
	var locked models.StatutoryComputation
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("billing_period_id = ?", periodID).
		First(&locked).Error
	if err != nil {
		return nil, err
	}
	return r.FindByIDWithRows(ctx, locked.ID)
}

func (r *computationRepository) withRows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("BillingPeriod").
		Preload("Rows", func(db *gorm.DB) *gorm.DB {
			return db.Order("employee_statutory_results.id ASC")
		})
}

func (r *computationRepository) UpdateLock(ctx context.Context, computation *models.StatutoryComputation) error {
	return r.db.WithContext(ctx).
		Model(computation).
		Select("locked", "locked_at", "updated_at").
		Updates(computation).Error
}

func (r *computationRepository) UpdateTotals(ctx context.Context, computation *models.StatutoryComputation) error {
	return r.db.WithContext(ctx).
		Model(computation).
		Select(totalColumns).
		Updates(computation).Error
}

// Delete removes the computation together with its rows
func (r *computationRepository) Delete(ctx context.Context, computation *models.StatutoryComputation) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("computation_id = ?", computation.ID).Delete(&models.EmployeeStatutory{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.StatutoryComputation{}, computation.ID).Error
}

func (r *computationRepository) FindRowByID(ctx context.Context, rowID uint) (*models.EmployeeStatutory, error) {
	var row models.EmployeeStatutory
	if err := r.db.WithContext(ctx).First(&row, rowID).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateRowAmounts persists the four contribution amounts and every total
// derived from them
func (r *computationRepository) UpdateRowAmounts(ctx context.Context, row *models.EmployeeStatutory) error {
	return r.db.WithContext(ctx).
		Model(row).
		Select(rowAmountColumns).
		Updates(row).Error
}
