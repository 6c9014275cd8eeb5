package repository

import (
	"context"
	"time"

	"github.com/sjperalta/statutory-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BillingPeriodRepository defines the interface for billing period data access
type BillingPeriodRepository interface {
	Create(ctx context.Context, period *models.BillingPeriod) error
	FindByID(ctx context.Context, id uint) (*models.BillingPeriod, error)
	FindByIDWithEmployees(ctx context.Context, id uint) (*models.BillingPeriod, error)
	HasOverlap(ctx context.Context, projectID uint, from, to time.Time) (bool, error)
	UpdateStatus(ctx context.Context, period *models.BillingPeriod) error
	UpsertAssignment(ctx context.Context, assignment *models.BillingEmployee) error
	ListAssignments(ctx context.Context, periodID uint) ([]models.BillingEmployee, error)
}

type billingPeriodRepository struct {
	db *gorm.DB
}

// NewBillingPeriodRepository creates a new billing period repository
func NewBillingPeriodRepository(db *gorm.DB) BillingPeriodRepository {
	return &billingPeriodRepository{db: db}
}

func (r *billingPeriodRepository) Create(ctx context.Context, period *models.BillingPeriod) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(period).Error
}

func (r *billingPeriodRepository) FindByID(ctx context.Context, id uint) (*models.BillingPeriod, error) {
	var period models.BillingPeriod
	if err := r.db.WithContext(ctx).First(&period, id).Error; err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *billingPeriodRepository) FindByIDWithEmployees(ctx context.Context, id uint) (*models.BillingPeriod, error) {
	var period models.BillingPeriod
	err := r.db.WithContext(ctx).
		Preload("Employees", func(db *gorm.DB) *gorm.DB {
			return db.Order("billing_employees.id ASC")
		}).
		Preload("Employees.Employee").
		First(&period, id).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// HasOverlap reports whether another period of the project intersects
// [from, to]
func (r *billingPeriodRepository) HasOverlap(ctx context.Context, projectID uint, from, to time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BillingPeriod{}).
		Where("project_id = ? AND from_date <= ? AND to_date >= ?", projectID, to, from).
		Count(&count).Error
	return count > 0, err
}

func (r *billingPeriodRepository) UpdateStatus(ctx context.Context, period *models.BillingPeriod) error {
	return r.db.WithContext(ctx).
		Model(period).
		Select("status", "finalized_at", "updated_at").
		Updates(period).Error
}

// UpsertAssignment creates the worker assignment or overwrites its days and
// wage total
func (r *billingPeriodRepository) UpsertAssignment(ctx context.Context, assignment *models.BillingEmployee) error {
	db := r.db.WithContext(ctx)
	err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "billing_period_id"}, {Name: "employee_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"days_worked", "wage_amount", "updated_at"}),
	}).Create(assignment).Error
	if err != nil {
		return err
	}
	var stored models.BillingEmployee
	err = db.Preload("Employee").
		Where("billing_period_id = ? AND employee_id = ?", assignment.BillingPeriodID, assignment.EmployeeID).
		First(&stored).Error
	if err != nil {
		return err
	}
	*assignment = stored
	return nil
}

// ListAssignments returns the period's workers in assignment order
func (r *billingPeriodRepository) ListAssignments(ctx context.Context, periodID uint) ([]models.BillingEmployee, error) {
	var assignments []models.BillingEmployee
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("billing_period_id = ?", periodID).
		Order("id ASC").
		Find(&assignments).Error
	return assignments, err
}
