package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sjperalta/statutory-api/internal/models"
	"github.com/sjperalta/statutory-api/internal/repository"
	"github.com/sjperalta/statutory-api/internal/statemachine"
	"github.com/sjperalta/statutory-api/internal/statutory"
	"github.com/sjperalta/statutory-api/pkg/logger"
)

// FinalizeResult is returned by Finalize
type FinalizeResult struct {
	ComputationID    uint   `json:"computation_id"`
	Locked           bool   `json:"locked"`
	AlreadyFinalized bool   `json:"already_finalized"`
	Summary          string `json:"summary"`
}

// ComputationService runs the finalization workflow of a billing period:
// compute, persist, finalize the period and lock the computation, as one
// unit and idempotently.
type ComputationService struct {
	repos    *repository.Repositories
	configs  ConfigProvider
	auditSvc *AuditService
	now      func() time.Time
}

func NewComputationService(repos *repository.Repositories, configs ConfigProvider, auditSvc *AuditService) *ComputationService {
	return &ComputationService{
		repos:    repos,
		configs:  configs,
		auditSvc: auditSvc,
		now:      time.Now,
	}
}

func (s *ComputationService) loadPeriod(ctx context.Context, op string, periodID uint) (*models.BillingPeriod, error) {
	period, err := s.repos.BillingPeriod.FindByID(ctx, periodID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundError(op, "billing period %d not found", periodID)
	}
	if err != nil {
		return nil, internalError(op, err)
	}
	return period, nil
}

// loadComputation returns nil, nil when the period has no computation
func (s *ComputationService) loadComputation(ctx context.Context, op string, periodID uint) (*models.StatutoryComputation, error) {
	computation, err := s.repos.Computation.FindByPeriodIDWithRows(ctx, periodID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, internalError(op, err)
	}
	return computation, nil
}

// buildInput checks the compute preconditions and assembles the calculator
// input. It performs no writes.
func (s *ComputationService) buildInput(ctx context.Context, op string, period *models.BillingPeriod) (statutory.PeriodInput, error) {
	assignments, err := s.repos.BillingPeriod.ListAssignments(ctx, period.ID)
	if err != nil {
		return statutory.PeriodInput{}, internalError(op, err)
	}
	if len(assignments) == 0 {
		return statutory.PeriodInput{}, validationError(op, "employees", "billing period %d has no assigned workers", period.ID)
	}

	cfg, err := s.configs.Snapshot(ctx, period.CompanyID)
	if err != nil {
		return statutory.PeriodInput{}, err
	}

	in := statutory.PeriodInput{
		BillingPeriodID: period.ID,
		FromDate:        period.FromDate,
		ToDate:          period.ToDate,
		Config:          cfg,
		Employees:       make([]statutory.WageInput, 0, len(assignments)),
	}
	for i := range assignments {
		in.Employees = append(in.Employees, assignments[i].ToWageInput())
	}
	return in, nil
}

// Preview computes a billing period without persisting anything
func (s *ComputationService) Preview(ctx context.Context, periodID uint) (statutory.PeriodResult, error) {
	const op = "compute"

	period, err := s.loadPeriod(ctx, op, periodID)
	if err != nil {
		return statutory.PeriodResult{}, err
	}
	in, err := s.buildInput(ctx, op, period)
	if err != nil {
		return statutory.PeriodResult{}, err
	}
	return statutory.ComputePeriod(in), nil
}

// Finalize computes, persists and locks the period's statutory result. A
// second call returns the stored computation without recomputing.
func (s *ComputationService) Finalize(ctx context.Context, periodID uint, actor Actor) (*FinalizeResult, error) {
	const op = "finalize"

	period, err := s.loadPeriod(ctx, op, periodID)
	if err != nil {
		return nil, err
	}

	existing, err := s.loadComputation(ctx, op, periodID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.finalizeExisting(ctx, period, existing, actor)
	}

	in, err := s.buildInput(ctx, op, period)
	if err != nil {
		return nil, err
	}
	result := statutory.ComputePeriod(in)
	computation := models.NewStatutoryComputation(result, actor.name(), s.now())

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := statemachine.NewComputationLockFSM(computation).Lock(ctx); err != nil {
			return err
		}
		if err := tx.Computation.Create(ctx, computation); err != nil {
			return err
		}
		if err := s.finalizePeriod(ctx, tx, period); err != nil {
			return err
		}
		return s.auditSvc.WithRepos(tx).Log(ctx, actor, models.AuditActionFinalize, models.AuditEntityBillingPeriod, period.ID,
			fmt.Sprintf("computation %d: %d workers, gross %s, net payable %s",
				computation.ID, len(computation.Rows), computation.TotalGrossWages.StringFixed(2), computation.TotalNetPayable.StringFixed(2)))
	})

	if errors.Is(err, repository.ErrDuplicate) {
		// Another request inserted the computation first.
		logger.FromContext(ctx).Warn("[ComputationService] Concurrent finalize detected, converging", "billing_period_id", periodID)
		return s.finalizeAfterRace(ctx, periodID, actor)
	}
	if err != nil {
		return nil, internalError(op, err)
	}

	logger.FromContext(ctx).Info("[ComputationService] Billing period finalized",
		"billing_period_id", period.ID,
		"computation_id", computation.ID,
		"workers", len(computation.Rows),
	)

	return &FinalizeResult{
		ComputationID:    computation.ID,
		Locked:           computation.Locked,
		AlreadyFinalized: false,
		Summary:          statutory.Summary(period.FromDate, period.ToDate, len(computation.Rows), computation.Totals()),
	}, nil
}

func (s *ComputationService) finalizeAfterRace(ctx context.Context, periodID uint, actor Actor) (*FinalizeResult, error) {
	const op = "finalize"

	period, err := s.loadPeriod(ctx, op, periodID)
	if err != nil {
		return nil, err
	}
	existing, err := s.loadComputation(ctx, op, periodID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, conflictError(op, "billing period %d computation vanished during concurrent finalize", periodID)
	}
	return s.finalizeExisting(ctx, period, existing, actor)
}

// finalizeExisting makes sure an existing computation is locked and its
// period finalized. Nothing is recomputed.
func (s *ComputationService) finalizeExisting(ctx context.Context, period *models.BillingPeriod, computation *models.StatutoryComputation, actor Actor) (*FinalizeResult, error) {
	const op = "finalize"

	if !computation.Locked || period.MayFinalize() {
		err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
			current, err := s.lockComputation(ctx, tx, op, period.ID)
			if err != nil {
				return err
			}
			computation = current
			if !current.Locked {
				if err := statemachine.NewComputationLockFSM(current).Lock(ctx); err != nil {
					return err
				}
				if err := tx.Computation.UpdateLock(ctx, current); err != nil {
					return err
				}
			}
			if err := s.finalizePeriod(ctx, tx, period); err != nil {
				return err
			}
			return s.auditSvc.WithRepos(tx).Log(ctx, actor, models.AuditActionLock, models.AuditEntityComputation, computation.ID,
				fmt.Sprintf("finalize re-entry for billing period %d", period.ID))
		})
		if err != nil {
			return nil, internalError(op, err)
		}
		logger.FromContext(ctx).Info("[ComputationService] Existing computation locked on finalize",
			"billing_period_id", period.ID, "computation_id", computation.ID)
	}

	return &FinalizeResult{
		ComputationID:    computation.ID,
		Locked:           true,
		AlreadyFinalized: true,
		Summary:          statutory.Summary(period.FromDate, period.ToDate, len(computation.Rows), computation.Totals()),
	}, nil
}

func (s *ComputationService) finalizePeriod(ctx context.Context, tx *repository.Repositories, period *models.BillingPeriod) error {
	if !period.MayFinalize() {
		return nil
	}
	if err := statemachine.NewBillingPeriodFSM(period).Finalize(ctx); err != nil {
		return err
	}
	return tx.BillingPeriod.UpdateStatus(ctx, period)
}

// Get returns the stored computation with every worker row
func (s *ComputationService) Get(ctx context.Context, periodID uint) (*models.StatutoryComputation, error) {
	const op = "get computation"

	if _, err := s.loadPeriod(ctx, op, periodID); err != nil {
		return nil, err
	}
	computation, err := s.loadComputation(ctx, op, periodID)
	if err != nil {
		return nil, err
	}
	if computation == nil {
		return nil, notComputedError(op, periodID)
	}
	return computation, nil
}

// Lock blocks overrides and deletion. Locking a locked computation is a no-op.
func (s *ComputationService) Lock(ctx context.Context, periodID uint, actor Actor) (*models.StatutoryComputation, error) {
	return s.setLock(ctx, "lock", periodID, true, actor)
}

// Unlock re-enables overrides. The period status is left untouched.
func (s *ComputationService) Unlock(ctx context.Context, periodID uint, actor Actor) (*models.StatutoryComputation, error) {
	return s.setLock(ctx, "unlock", periodID, false, actor)
}

func (s *ComputationService) setLock(ctx context.Context, op string, periodID uint, locked bool, actor Actor) (*models.StatutoryComputation, error) {
	if _, err := s.loadPeriod(ctx, op, periodID); err != nil {
		return nil, err
	}

	var (
		computation *models.StatutoryComputation
		changed     bool
	)
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		current, err := s.lockComputation(ctx, tx, op, periodID)
		if err != nil {
			return err
		}
		computation = current
		if current.Locked == locked {
			return nil
		}

		lockFSM := statemachine.NewComputationLockFSM(current)
		transition, action := lockFSM.Lock, models.AuditActionLock
		if !locked {
			transition, action = lockFSM.Unlock, models.AuditActionUnlock
		}
		if err := transition(ctx); err != nil {
			return err
		}
		if err := tx.Computation.UpdateLock(ctx, current); err != nil {
			return err
		}
		changed = true
		return s.auditSvc.WithRepos(tx).Log(ctx, actor, action, models.AuditEntityComputation, current.ID,
			fmt.Sprintf("billing period %d", periodID))
	})
	if err != nil {
		return nil, internalError(op, err)
	}

	if changed {
		logger.FromContext(ctx).Info("[ComputationService] Computation "+op+"ed",
			"billing_period_id", periodID, "computation_id", computation.ID, "actor", actor.name())
	}
	return computation, nil
}

// Delete removes an unlocked computation without override history, so the
// period can be finalized again from fresh attendance
func (s *ComputationService) Delete(ctx context.Context, periodID uint, actor Actor) error {
	const op = "delete computation"

	if _, err := s.loadPeriod(ctx, op, periodID); err != nil {
		return err
	}

	var computationID uint
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		computation, err := s.lockComputation(ctx, tx, op, periodID)
		if err != nil {
			return err
		}
		if computation.Locked {
			return forbiddenError(op, "computation %d is locked; unlock it before deleting", computation.ID)
		}

		overrides, err := tx.Override.CountByComputation(ctx, computation.ID)
		if err != nil {
			return err
		}
		if overrides > 0 {
			return conflictError(op, "computation %d has %d override entries; override history is permanent", computation.ID, overrides)
		}

		computationID = computation.ID
		if err := tx.Computation.Delete(ctx, computation); err != nil {
			return err
		}
		return s.auditSvc.WithRepos(tx).Log(ctx, actor, models.AuditActionDelete, models.AuditEntityComputation, computation.ID,
			fmt.Sprintf("billing period %d", periodID))
	})
	if err != nil {
		return internalError(op, err)
	}

	logger.FromContext(ctx).Info("[ComputationService] Computation deleted", "billing_period_id", periodID, "computation_id", computationID)
	return nil
}

// lockComputation reads the period's computation under a row lock held until
// tx ends. Overrides take the same lock, so lock state and override history
// seen here cannot change before commit.
func (s *ComputationService) lockComputation(ctx context.Context, tx *repository.Repositories, op string, periodID uint) (*models.StatutoryComputation, error) {
	computation, err := tx.Computation.FindByPeriodIDForUpdate(ctx, periodID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notComputedError(op, periodID)
	}
	if err != nil {
		return nil, err
	}
	return computation, nil
}

// Summary renders the stored computation as plain text
func (s *ComputationService) Summary(ctx context.Context, periodID uint) (string, error) {
	computation, err := s.Get(ctx, periodID)
	if err != nil {
		return "", err
	}
	period := computation.BillingPeriod
	if period == nil {
		return "", internalError("summary", fmt.Errorf("computation %d has no billing period", computation.ID))
	}
	return statutory.Summary(period.FromDate, period.ToDate, len(computation.Rows), computation.Totals()), nil
}
