package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/statutory-api/internal/models"
	"github.com/sjperalta/statutory-api/internal/repository"
)

// CreateEmployeeInput registers a worker. Scheme flags default to enrolled.
type CreateEmployeeInput struct {
	CompanyID     uint     `json:"company_id"`
	Name          string   `json:"name" validate:"required,max=255"`
	DailyWage     *float64 `json:"daily_wage" validate:"required,gte=0"`
	PFApplicable  *bool    `json:"pf_applicable"`
	ESIApplicable *bool    `json:"esi_applicable"`
}

type EmployeeService struct {
	repos            *repository.Repositories
	auditSvc         *AuditService
	defaultCompanyID uint
}

func NewEmployeeService(repos *repository.Repositories, auditSvc *AuditService, defaultCompanyID uint) *EmployeeService {
	return &EmployeeService{repos: repos, auditSvc: auditSvc, defaultCompanyID: defaultCompanyID}
}

func (s *EmployeeService) Create(ctx context.Context, in CreateEmployeeInput, actor Actor) (*models.Employee, error) {
	const op = "create employee"

	if err := validateStruct(op, in); err != nil {
		return nil, err
	}

	employee := &models.Employee{
		CompanyID:     in.CompanyID,
		Name:          in.Name,
		DailyWage:     decimal.NewFromFloat(*in.DailyWage).Round(2),
		PFApplicable:  true,
		ESIApplicable: true,
		Active:        true,
	}
	if employee.CompanyID == 0 {
		employee.CompanyID = s.defaultCompanyID
	}
	if in.PFApplicable != nil {
		employee.PFApplicable = *in.PFApplicable
	}
	if in.ESIApplicable != nil {
		employee.ESIApplicable = *in.ESIApplicable
	}

	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Employee.Create(ctx, employee); err != nil {
			return err
		}
		return s.auditSvc.WithRepos(tx).Log(ctx, actor, models.AuditActionCreate, models.AuditEntityEmployee, employee.ID,
			fmt.Sprintf("%s, daily wage %s", employee.Name, employee.DailyWage.StringFixed(2)))
	})
	if err != nil {
		return nil, internalError(op, err)
	}
	return employee, nil
}

func (s *EmployeeService) Get(ctx context.Context, id uint) (*models.Employee, error) {
	employee, err := s.repos.Employee.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundError("get employee", "employee %d not found", id)
	}
	if err != nil {
		return nil, internalError("get employee", err)
	}
	return employee, nil
}
