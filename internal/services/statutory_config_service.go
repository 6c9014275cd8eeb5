package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/statutory-api/internal/models"
	"github.com/sjperalta/statutory-api/internal/repository"
	"github.com/sjperalta/statutory-api/internal/statutory"
	"github.com/sjperalta/statutory-api/pkg/logger"
)

// ConfigProvider hands out an immutable copy of a company's statutory
// configuration
type ConfigProvider interface {
	Snapshot(ctx context.Context, companyID uint) (statutory.Config, error)
}

// StatutoryConfigInput is the body of a config update. Omitted fields keep
// their current value, or the statutory default for a new config.
type StatutoryConfigInput struct {
	CompanyID uint `json:"company_id" validate:"required"`

	PFEnabled        *bool    `json:"pf_enabled"`
	PFWageBasis      *string  `json:"pf_wage_basis" validate:"omitempty,oneof=gross basic custom"`
	PFEmployeeRate   *float64 `json:"pf_employee_rate" validate:"omitempty,gte=0"`
	PFEmployerRate   *float64 `json:"pf_employer_rate" validate:"omitempty,gte=0"`
	PFWageCeiling    *float64 `json:"pf_wage_ceiling" validate:"omitempty,gte=0"`
	PFEnforceCeiling *bool    `json:"pf_enforce_ceiling"`

	ESIEnabled       *bool    `json:"esi_enabled"`
	ESIWageThreshold *float64 `json:"esi_wage_threshold" validate:"omitempty,gte=0"`
	ESIEmployeeRate  *float64 `json:"esi_employee_rate" validate:"omitempty,gte=0"`
	ESIEmployerRate  *float64 `json:"esi_employer_rate" validate:"omitempty,gte=0"`

	RoundingMode *string `json:"rounding_mode" validate:"omitempty,oneof=round floor ceil"`
}

func (in *StatutoryConfigInput) applyTo(cfg statutory.Config) statutory.Config {
	setBool := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	setDec := func(dst *decimal.Decimal, v *float64) {
		if v != nil {
			*dst = decimal.NewFromFloat(*v)
		}
	}

	setBool(&cfg.PFEnabled, in.PFEnabled)
	if in.PFWageBasis != nil {
		cfg.PFWageBasis = statutory.WageBasis(*in.PFWageBasis)
	}
	setDec(&cfg.PFEmployeeRate, in.PFEmployeeRate)
	setDec(&cfg.PFEmployerRate, in.PFEmployerRate)
	setDec(&cfg.PFWageCeiling, in.PFWageCeiling)
	setBool(&cfg.PFEnforceCeiling, in.PFEnforceCeiling)
	setBool(&cfg.ESIEnabled, in.ESIEnabled)
	setDec(&cfg.ESIWageThreshold, in.ESIWageThreshold)
	setDec(&cfg.ESIEmployeeRate, in.ESIEmployeeRate)
	setDec(&cfg.ESIEmployerRate, in.ESIEmployerRate)
	if in.RoundingMode != nil {
		cfg.RoundingMode = statutory.RoundingMode(*in.RoundingMode)
	}
	return cfg
}

type StatutoryConfigService struct {
	repos    *repository.Repositories
	auditSvc *AuditService
}

func NewStatutoryConfigService(repos *repository.Repositories, auditSvc *AuditService) *StatutoryConfigService {
	return &StatutoryConfigService{repos: repos, auditSvc: auditSvc}
}

// Get returns the stored config of a company
func (s *StatutoryConfigService) Get(ctx context.Context, companyID uint) (*models.StatutoryConfig, error) {
	const op = "get config"

	cfg, err := s.repos.Config.FindByCompanyID(ctx, companyID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundError(op, "company %d has no statutory configuration", companyID)
	}
	if err != nil {
		return nil, internalError(op, err)
	}
	return cfg, nil
}

// Snapshot implements ConfigProvider
func (s *StatutoryConfigService) Snapshot(ctx context.Context, companyID uint) (statutory.Config, error) {
	const op = "load config"

	cfg, err := s.repos.Config.FindByCompanyID(ctx, companyID)
	if errors.Is(err, repository.ErrNotFound) {
		return statutory.Config{}, configurationError(op, "company %d has no statutory configuration", companyID)
	}
	if err != nil {
		return statutory.Config{}, internalError(op, err)
	}

	snapshot := cfg.ToConfig()
	if err := snapshot.Validate(); err != nil {
		return statutory.Config{}, configurationError(op, "stored configuration for company %d is invalid: %v", companyID, err)
	}
	return snapshot, nil
}

// Set validates and stores a company's config
func (s *StatutoryConfigService) Set(ctx context.Context, in StatutoryConfigInput, actor Actor) (*models.StatutoryConfig, error) {
	const op = "set config"

	if err := validateStruct(op, in); err != nil {
		return nil, err
	}

	base := statutory.DefaultConfig()
	existing, err := s.repos.Config.FindByCompanyID(ctx, in.CompanyID)
	switch {
	case err == nil:
		base = existing.ToConfig()
	case !errors.Is(err, repository.ErrNotFound):
		return nil, internalError(op, err)
	}

	cfg := in.applyTo(base)
	if err := cfg.Validate(); err != nil {
		var fe *statutory.FieldError
		if errors.As(err, &fe) {
			return nil, validationError(op, fe.Field, "%s", fe.Message)
		}
		return nil, validationError(op, "", "%v", err)
	}

	row := &models.StatutoryConfig{CompanyID: in.CompanyID, UpdatedBy: actor.name()}
	row.Apply(cfg)

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Config.Upsert(ctx, row); err != nil {
			return err
		}
		return s.auditSvc.WithRepos(tx).Log(ctx, actor, models.AuditActionUpdateConfig, models.AuditEntityConfig, row.ID,
			fmt.Sprintf("company %d: pf_enabled=%t esi_enabled=%t rounding=%s", in.CompanyID, cfg.PFEnabled, cfg.ESIEnabled, cfg.RoundingMode))
	})
	if err != nil {
		return nil, internalError(op, err)
	}

	logger.Info("[StatutoryConfigService] Config updated", "company_id", in.CompanyID, "actor", actor.name())
	return row, nil
}
