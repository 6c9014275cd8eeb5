package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/statutory-api/internal/models"
	"github.com/sjperalta/statutory-api/internal/repository"
	"github.com/sjperalta/statutory-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// CreateBillingPeriodInput is the body of a new billing period
type CreateBillingPeriodInput struct {
	CompanyID uint   `json:"company_id"`
	ProjectID uint   `json:"project_id" validate:"required"`
	FromDate  string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate    string `json:"to_date" validate:"required,datetime=2006-01-02"`
	Label     string `json:"label" validate:"max=100"`
}

// AssignWorkerInput records a worker's attendance total for a period. When
// WageAmount is omitted it is days worked times the worker's daily wage.
type AssignWorkerInput struct {
	EmployeeID uint     `json:"employee_id" validate:"required"`
	DaysWorked *float64 `json:"days_worked" validate:"required,gte=0,lte=366"`
	WageAmount *float64 `json:"wage_amount" validate:"omitempty,gte=0"`
}

// BillingPeriodService is the thin billing collaborator the statutory core
// needs: periods, worker assignment and the attendance edit guard
type BillingPeriodService struct {
	repos            *repository.Repositories
	auditSvc         *AuditService
	defaultCompanyID uint
}

func NewBillingPeriodService(repos *repository.Repositories, auditSvc *AuditService, defaultCompanyID uint) *BillingPeriodService {
	return &BillingPeriodService{repos: repos, auditSvc: auditSvc, defaultCompanyID: defaultCompanyID}
}

// Create opens a draft billing period that does not overlap another period
// of the same project
func (s *BillingPeriodService) Create(ctx context.Context, in CreateBillingPeriodInput, actor Actor) (*models.BillingPeriod, error) {
	const op = "create billing period"

	if err := validateStruct(op, in); err != nil {
		return nil, err
	}
	from, _ := time.Parse(dateLayout, in.FromDate)
	to, _ := time.Parse(dateLayout, in.ToDate)
	if from.After(to) {
		return nil, validationError(op, "to_date", "must not be before from_date (%s > %s)", in.FromDate, in.ToDate)
	}

	companyID := in.CompanyID
	if companyID == 0 {
		companyID = s.defaultCompanyID
	}

	overlap, err := s.repos.BillingPeriod.HasOverlap(ctx, in.ProjectID, from, to)
	if err != nil {
		return nil, internalError(op, err)
	}
	if overlap {
		return nil, conflictError(op, "project %d already has a billing period overlapping %s to %s", in.ProjectID, in.FromDate, in.ToDate)
	}

	period := &models.BillingPeriod{
		CompanyID: companyID,
		ProjectID: in.ProjectID,
		FromDate:  from,
		ToDate:    to,
		Label:     in.Label,
		Status:    models.BillingPeriodStatusDraft,
	}

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.BillingPeriod.Create(ctx, period); err != nil {
			return err
		}
		return s.auditSvc.WithRepos(tx).Log(ctx, actor, models.AuditActionCreate, models.AuditEntityBillingPeriod, period.ID,
			fmt.Sprintf("project %d: %s to %s", in.ProjectID, in.FromDate, in.ToDate))
	})
	if err != nil {
		return nil, internalError(op, err)
	}

	logger.Info("[BillingPeriodService] Billing period created", "billing_period_id", period.ID, "project_id", in.ProjectID)
	return period, nil
}

// Get returns a period with its assigned workers in assignment order
func (s *BillingPeriodService) Get(ctx context.Context, id uint) (*models.BillingPeriod, error) {
	const op = "get billing period"

	period, err := s.repos.BillingPeriod.FindByIDWithEmployees(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundError(op, "billing period %d not found", id)
	}
	if err != nil {
		return nil, internalError(op, err)
	}
	return period, nil
}

// EnsureAttendanceEditable rejects attendance changes once the period is
// finalized. The computation lock plays no part here.
func (s *BillingPeriodService) EnsureAttendanceEditable(ctx context.Context, periodID uint) (*models.BillingPeriod, error) {
	const op = "edit attendance"

	period, err := s.repos.BillingPeriod.FindByID(ctx, periodID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundError(op, "billing period %d not found", periodID)
	}
	if err != nil {
		return nil, internalError(op, err)
	}
	if period.IsFinalized() {
		return nil, forbiddenError(op, "billing period %d is finalized; attendance can no longer be edited", periodID)
	}
	return period, nil
}

// AssignWorker adds a worker to the period or replaces their attendance
// figures
func (s *BillingPeriodService) AssignWorker(ctx context.Context, periodID uint, in AssignWorkerInput, actor Actor) (*models.BillingEmployee, error) {
	const op = "assign worker"

	if err := validateStruct(op, in); err != nil {
		return nil, err
	}
	period, err := s.EnsureAttendanceEditable(ctx, periodID)
	if err != nil {
		return nil, err
	}

	employee, err := s.repos.Employee.FindByID(ctx, in.EmployeeID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundError(op, "employee %d not found", in.EmployeeID)
	}
	if err != nil {
		return nil, internalError(op, err)
	}
	if !employee.Active {
		return nil, validationError(op, "employee_id", "employee %d is inactive", in.EmployeeID)
	}
	if employee.CompanyID != period.CompanyID {
		return nil, validationError(op, "employee_id", "employee %d does not belong to company %d", in.EmployeeID, period.CompanyID)
	}

	days := decimal.NewFromFloat(*in.DaysWorked).Round(2)
	wage := days.Mul(employee.DailyWage).Round(2)
	if in.WageAmount != nil {
		wage = decimal.NewFromFloat(*in.WageAmount).Round(2)
	}

	assignment := &models.BillingEmployee{
		BillingPeriodID: periodID,
		EmployeeID:      employee.ID,
		DaysWorked:      days,
		WageAmount:      wage,
	}

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.BillingPeriod.UpsertAssignment(ctx, assignment); err != nil {
			return err
		}
		return s.auditSvc.WithRepos(tx).Log(ctx, actor, models.AuditActionAssign, models.AuditEntityBillingPeriod, periodID,
			fmt.Sprintf("employee %d: %s days, wage %s", employee.ID, days.String(), wage.StringFixed(2)))
	})
	if err != nil {
		return nil, internalError(op, err)
	}
	return assignment, nil
}
