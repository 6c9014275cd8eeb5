package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/statutory-api/internal/models"
	"github.com/sjperalta/statutory-api/internal/repository"
	"github.com/sjperalta/statutory-api/pkg/logger"
)

// ApplyOverrideInput is a manual correction of one contribution amount
type ApplyOverrideInput struct {
	RowID  uint             `json:"-"`
	Field  string           `json:"field" validate:"required,oneof=pf_employee_amount pf_employer_amount esi_employee_amount esi_employer_amount"`
	Value  *decimal.Decimal `json:"value" validate:"required"`
	Reason string           `json:"reason" validate:"required,max=1000"`
}

// ApplyOverrideResult is returned by Apply. OverrideID is zero when the value
// was already current and nothing was recorded.
type ApplyOverrideResult struct {
	OverrideID    uint            `json:"override_id"`
	OriginalValue decimal.Decimal `json:"original_value"`
	Changed       bool            `json:"changed"`
}

// RemoveOverrideResult is returned by Remove
type RemoveOverrideResult struct {
	RestoredValue decimal.Decimal `json:"restored_value"`
}

// OverrideService maintains the override ledger of finalized computations.
// Every mutation re-derives the row totals and re-aggregates the period.
type OverrideService struct {
	repos    *repository.Repositories
	auditSvc *AuditService
	now      func() time.Time
}

func NewOverrideService(repos *repository.Repositories, auditSvc *AuditService) *OverrideService {
	return &OverrideService{repos: repos, auditSvc: auditSvc, now: time.Now}
}

// Apply sets one contribution field of a worker row
func (s *OverrideService) Apply(ctx context.Context, in ApplyOverrideInput, actor Actor) (*ApplyOverrideResult, error) {
	const op = "apply override"

	if err := validateStruct(op, in); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Reason) == "" {
		return nil, validationError(op, "reason", "is required")
	}
	if in.Value.IsNegative() {
		return nil, validationError(op, "value", "must be greater than or equal to 0 (got %s)", in.Value)
	}
	field, _ := models.ParseOverrideField(in.Field)
	value := in.Value.Round(2)

	row, err := s.loadRow(ctx, op, in.RowID)
	if err != nil {
		return nil, err
	}

	result := &ApplyOverrideResult{}
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		computation, current, err := s.lockRow(ctx, tx, op, row.ComputationID, row.ID)
		if err != nil {
			return err
		}

		result.OriginalValue = field.Get(current)
		if result.OriginalValue.Equal(value) {
			return nil
		}

		override := &models.StatutoryOverride{
			EmployeeStatutoryID: current.ID,
			ComputationID:       computation.ID,
			Field:               field,
			Action:              models.OverrideActionApply,
			OverrideValue:       value,
			Reason:              strings.TrimSpace(in.Reason),
			OverriddenBy:        actor.name(),
			OverriddenAt:        s.now(),
		}
		if err := s.record(ctx, tx, computation, current, override, actor, models.AuditActionOverride); err != nil {
			return err
		}
		result.OverrideID = override.ID
		result.Changed = true
		return nil
	})
	if err != nil {
		return nil, internalError(op, err)
	}

	if result.Changed {
		logger.FromContext(ctx).Info("[OverrideService] Override applied",
			"override_id", result.OverrideID, "row_id", row.ID, "field", string(field), "actor", actor.name())
	}
	return result, nil
}

// Remove restores the value an override replaced. Only the most recent
// active override of a field can be removed; the ledger keeps both entries.
func (s *OverrideService) Remove(ctx context.Context, overrideID uint, actor Actor) (*RemoveOverrideResult, error) {
	const op = "remove override"

	target, err := s.repos.Override.FindByID(ctx, overrideID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundError(op, "override %d not found", overrideID)
	}
	if err != nil {
		return nil, internalError(op, err)
	}

	var revert *models.StatutoryOverride
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		computation, row, err := s.lockRow(ctx, tx, op, target.ComputationID, target.EmployeeStatutoryID)
		if err != nil {
			return err
		}
		if !target.IsApply() {
			return conflictError(op, "override %d is itself a revert entry", overrideID)
		}

		history, err := tx.Override.ListByRow(ctx, row.ID)
		if err != nil {
			return err
		}
		active := activeOverrides(history, target.Field)
		switch {
		case len(active) == 0 || !containsOverride(active, target.ID):
			return conflictError(op, "override %d has already been removed", overrideID)
		case active[len(active)-1].ID != target.ID:
			return conflictError(op, "override %d is superseded by override %d on %s; remove that first",
				overrideID, active[len(active)-1].ID, target.Field)
		}

		revert = &models.StatutoryOverride{
			EmployeeStatutoryID: row.ID,
			ComputationID:       computation.ID,
			Field:               target.Field,
			Action:              models.OverrideActionRevert,
			OverrideValue:       target.OriginalValue,
			Reason:              fmt.Sprintf("revert override #%d", target.ID),
			OverriddenBy:        actor.name(),
			RevertsOverrideID:   &target.ID,
			OverriddenAt:        s.now(),
		}
		return s.record(ctx, tx, computation, row, revert, actor, models.AuditActionRevertOverride)
	})
	if err != nil {
		return nil, internalError(op, err)
	}

	logger.FromContext(ctx).Info("[OverrideService] Override removed",
		"override_id", target.ID, "revert_id", revert.ID, "actor", actor.name())

	return &RemoveOverrideResult{RestoredValue: target.OriginalValue}, nil
}

// lockRow takes the computation's row lock for the rest of tx and returns the
// computation with the worker row as read under it. Concurrent overrides,
// lock changes and deletes of the same computation queue behind this lock.
func (s *OverrideService) lockRow(ctx context.Context, tx *repository.Repositories, op string, computationID, rowID uint) (*models.StatutoryComputation, *models.EmployeeStatutory, error) {
	computation, err := tx.Computation.FindByIDForUpdate(ctx, computationID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, notFoundError(op, "computation %d not found", computationID)
	}
	if err != nil {
		return nil, nil, err
	}
	if computation.Locked {
		return nil, nil, forbiddenError(op, "computation %d is locked; unlock it before changing overrides", computation.ID)
	}

	for i := range computation.Rows {
		if computation.Rows[i].ID == rowID {
			return computation, &computation.Rows[i], nil
		}
	}
	return nil, nil, notFoundError(op, "statutory row %d not found in computation %d", rowID, computation.ID)
}

// record appends entry to the ledger, sets the field on row, recomputes the
// row and re-aggregates the period from every row. row must belong to
// computation as returned by lockRow.
func (s *OverrideService) record(ctx context.Context, tx *repository.Repositories, computation *models.StatutoryComputation, row *models.EmployeeStatutory, entry *models.StatutoryOverride, actor Actor, action string) error {
	entry.OriginalValue = entry.Field.Get(row)
	if err := tx.Override.Create(ctx, entry); err != nil {
		return err
	}

	entry.Field.Set(row, entry.OverrideValue)
	row.Recalculate()
	if err := tx.Computation.UpdateRowAmounts(ctx, row); err != nil {
		return err
	}

	computation.Reaggregate()
	if err := tx.Computation.UpdateTotals(ctx, computation); err != nil {
		return err
	}

	return s.auditSvc.WithRepos(tx).Log(ctx, actor, action, models.AuditEntityResult, row.ID,
		fmt.Sprintf("override %d: %s %s -> %s (%s)", entry.ID, entry.Field,
			entry.OriginalValue.StringFixed(2), entry.OverrideValue.StringFixed(2), entry.Reason))
}

func (s *OverrideService) loadRow(ctx context.Context, op string, rowID uint) (*models.EmployeeStatutory, error) {
	row, err := s.repos.Computation.FindRowByID(ctx, rowID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundError(op, "statutory row %d not found", rowID)
	}
	if err != nil {
		return nil, internalError(op, err)
	}
	return row, nil
}

// ListByRow returns the ledger of one worker row, newest first
func (s *OverrideService) ListByRow(ctx context.Context, rowID uint) ([]models.StatutoryOverride, error) {
	const op = "list overrides"

	if _, err := s.loadRow(ctx, op, rowID); err != nil {
		return nil, err
	}
	overrides, err := s.repos.Override.ListByRow(ctx, rowID)
	if err != nil {
		return nil, internalError(op, err)
	}
	return overrides, nil
}

// ListByPeriod returns the ledger of a period's computation, newest first
func (s *OverrideService) ListByPeriod(ctx context.Context, periodID uint) ([]models.StatutoryOverride, error) {
	const op = "list overrides"

	if _, err := s.repos.BillingPeriod.FindByID(ctx, periodID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError(op, "billing period %d not found", periodID)
		}
		return nil, internalError(op, err)
	}
	computation, err := s.repos.Computation.FindByPeriodID(ctx, periodID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notComputedError(op, periodID)
	}
	if err != nil {
		return nil, internalError(op, err)
	}

	overrides, err := s.repos.Override.ListByComputation(ctx, computation.ID)
	if err != nil {
		return nil, internalError(op, err)
	}
	return overrides, nil
}

// activeOverrides replays a row's ledger (newest first) for one field and
// returns the apply entries still in effect, oldest first. Each revert undoes
// the apply it names.
func activeOverrides(history []models.StatutoryOverride, field models.OverrideField) []models.StatutoryOverride {
	var active []models.StatutoryOverride
	for i := len(history) - 1; i >= 0; i-- {
		entry := history[i]
		if entry.Field != field {
			continue
		}
		if entry.IsApply() {
			active = append(active, entry)
			continue
		}
		if entry.RevertsOverrideID == nil {
			continue
		}
		for j := len(active) - 1; j >= 0; j-- {
			if active[j].ID == *entry.RevertsOverrideID {
				active = append(active[:j], active[j+1:]...)
				break
			}
		}
	}
	return active
}

func containsOverride(list []models.StatutoryOverride, id uint) bool {
	for _, o := range list {
		if o.ID == id {
			return true
		}
	}
	return false
}
