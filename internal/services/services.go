package services

import (
	"github.com/sjperalta/statutory-api/internal/config"
	"github.com/sjperalta/statutory-api/internal/repository"
)

// Services holds all service instances
type Services struct {
	Audit         *AuditService
	Config        *StatutoryConfigService
	Computation   *ComputationService
	Override      *OverrideService
	BillingPeriod *BillingPeriodService
	Employee      *EmployeeService
	Export        *ExportService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	auditSvc := NewAuditService(repos.Audit)
	configSvc := NewStatutoryConfigService(repos, auditSvc)

	return &Services{
		Audit:         auditSvc,
		Config:        configSvc,
		Computation:   NewComputationService(repos, configSvc, auditSvc),
		Override:      NewOverrideService(repos, auditSvc),
		BillingPeriod: NewBillingPeriodService(repos, auditSvc, cfg.DefaultCompanyID),
		Employee:      NewEmployeeService(repos, auditSvc, cfg.DefaultCompanyID),
		Export:        NewExportService(),
	}
}
