package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/statutory-api/internal/models"
	"github.com/sjperalta/statutory-api/internal/repository"
	"github.com/sjperalta/statutory-api/internal/statutory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unlockedComputation finalizes a period of the given wages and unlocks it
// so overrides are accepted
func unlockedComputation(t *testing.T, env *testEnv, wages ...float64) *models.StatutoryComputation {
	t.Helper()
	ctx := context.Background()
	env.withDefaultConfig(t)
	period := env.period(t, wages...)

	_, err := env.svc.Computation.Finalize(ctx, period.ID, testActor)
	require.NoError(t, err)
	computation, err := env.svc.Computation.Unlock(ctx, period.ID, testActor)
	require.NoError(t, err)
	return computation
}

func applyInput(rowID uint, field models.OverrideField, value string) ApplyOverrideInput {
	v := decimal.RequireFromString(value)
	return ApplyOverrideInput{RowID: rowID, Field: string(field), Value: &v, Reason: "site supervisor correction"}
}

func TestOverrideService_ApplyAndRemove(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)
	computation := unlockedComputation(t, env, 13000, 20000)
	row := computation.Rows[0]

	applied, err := env.svc.Override.Apply(ctx, applyInput(row.ID, models.OverrideFieldPFEmployee, "1500"), testActor)
	require.NoError(t, err)
	assert.True(t, applied.Changed)
	assert.NotZero(t, applied.OverrideID)
	assert.True(t, dec("1560").Equal(applied.OriginalValue))

	updated, err := env.svc.Computation.Get(ctx, computation.BillingPeriodID)
	require.NoError(t, err)
	first := updated.Rows[0]
	assert.True(t, dec("1500").Equal(first.PFEmployeeAmount))
	assert.True(t, dec("3060").Equal(first.PFTotalAmount))
	assert.True(t, dec("1598").Equal(first.TotalEmployeeDeduction))
	assert.True(t, dec("11402").Equal(first.NetPayable))
	// Untouched amounts keep their computed values.
	assert.True(t, dec("1560").Equal(first.PFEmployerAmount))

	assert.True(t, dec("3300").Equal(updated.TotalPFEmployee))
	assert.True(t, dec("3548").Equal(updated.TotalEmployeeDeductions))
	assert.True(t, dec("29452").Equal(updated.TotalNetPayable))

	removed, err := env.svc.Override.Remove(ctx, applied.OverrideID, testActor)
	require.NoError(t, err)
	assert.True(t, dec("1560").Equal(removed.RestoredValue))

	restored, err := env.svc.Computation.Get(ctx, computation.BillingPeriodID)
	require.NoError(t, err)
	assert.True(t, dec("1560").Equal(restored.Rows[0].PFEmployeeAmount))
	assert.True(t, dec("29392").Equal(restored.TotalNetPayable))

	history, err := env.svc.Override.ListByRow(ctx, row.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.OverrideActionRevert, history[0].Action)
	require.NotNil(t, history[0].RevertsOverrideID)
	assert.Equal(t, applied.OverrideID, *history[0].RevertsOverrideID)
	assert.Equal(t, models.OverrideActionApply, history[1].Action)
	assert.Equal(t, testActor.Name, history[1].OverriddenBy)

	_, err = env.svc.Override.Remove(ctx, applied.OverrideID, testActor)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = env.svc.Override.Remove(ctx, history[0].ID, testActor)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestOverrideService_StackedOverrides(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)
	computation := unlockedComputation(t, env, 13000)
	row := computation.Rows[0]

	first, err := env.svc.Override.Apply(ctx, applyInput(row.ID, models.OverrideFieldESIEmployer, "400"), testActor)
	require.NoError(t, err)
	second, err := env.svc.Override.Apply(ctx, applyInput(row.ID, models.OverrideFieldESIEmployer, "410.456"), testActor)
	require.NoError(t, err)
	assert.True(t, dec("400").Equal(second.OriginalValue))

	// The newer override must go first.
	_, err = env.svc.Override.Remove(ctx, first.OverrideID, testActor)
	assert.ErrorIs(t, err, ErrConflict)

	removed, err := env.svc.Override.Remove(ctx, second.OverrideID, testActor)
	require.NoError(t, err)
	assert.True(t, dec("400").Equal(removed.RestoredValue))

	removed, err = env.svc.Override.Remove(ctx, first.OverrideID, testActor)
	require.NoError(t, err)
	assert.True(t, dec("423").Equal(removed.RestoredValue))

	stored, err := env.svc.Computation.Get(ctx, computation.BillingPeriodID)
	require.NoError(t, err)
	assert.True(t, dec("423").Equal(stored.Rows[0].ESIEmployerAmount))
	assert.True(t, dec("1983").Equal(stored.Rows[0].TotalEmployerContribution))

	byPeriod, err := env.svc.Override.ListByPeriod(ctx, computation.BillingPeriodID)
	require.NoError(t, err)
	assert.Len(t, byPeriod, 4)
}

func TestOverrideService_RoundsValue(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)
	computation := unlockedComputation(t, env, 13000)

	_, err := env.svc.Override.Apply(ctx, applyInput(computation.Rows[0].ID, models.OverrideFieldESIEmployee, "97.456"), testActor)
	require.NoError(t, err)

	stored, err := env.svc.Computation.Get(ctx, computation.BillingPeriodID)
	require.NoError(t, err)
	assert.True(t, dec("97.46").Equal(stored.Rows[0].ESIEmployeeAmount))
}

func TestOverrideService_EqualValueIsNoop(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)
	computation := unlockedComputation(t, env, 13000)
	row := computation.Rows[0]

	result, err := env.svc.Override.Apply(ctx, applyInput(row.ID, models.OverrideFieldPFEmployer, "1560.00"), testActor)
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Zero(t, result.OverrideID)

	history, err := env.svc.Override.ListByRow(ctx, row.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestOverrideService_LockedComputation(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)
	computation := unlockedComputation(t, env, 13000)
	row := computation.Rows[0]

	applied, err := env.svc.Override.Apply(ctx, applyInput(row.ID, models.OverrideFieldPFEmployee, "1000"), testActor)
	require.NoError(t, err)

	_, err = env.svc.Computation.Lock(ctx, computation.BillingPeriodID, testActor)
	require.NoError(t, err)

	_, err = env.svc.Override.Apply(ctx, applyInput(row.ID, models.OverrideFieldPFEmployee, "900"), testActor)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = env.svc.Override.Remove(ctx, applied.OverrideID, testActor)
	assert.ErrorIs(t, err, ErrForbidden)

	stored, err := env.svc.Computation.Get(ctx, computation.BillingPeriodID)
	require.NoError(t, err)
	assert.True(t, dec("1000").Equal(stored.Rows[0].PFEmployeeAmount))
}

func TestOverrideService_ApplyValidation(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)
	computation := unlockedComputation(t, env, 13000)
	rowID := computation.Rows[0].ID

	tests := []struct {
		name    string
		input   ApplyOverrideInput
		kind    error
		field   string
	}{
		{"unknown field", applyInput(rowID, models.OverrideField("gross_wage"), "10"), ErrValidation, "field"},
		{"negative value", applyInput(rowID, models.OverrideFieldPFEmployee, "-1"), ErrValidation, "value"},
		{"missing value", ApplyOverrideInput{RowID: rowID, Field: string(models.OverrideFieldPFEmployee), Reason: "x"}, ErrValidation, "value"},
		{"blank reason", func() ApplyOverrideInput {
			in := applyInput(rowID, models.OverrideFieldPFEmployee, "10")
			in.Reason = "   "
			return in
		}(), ErrValidation, "reason"},
		{"unknown row", applyInput(rowID+100, models.OverrideFieldPFEmployee, "10"), ErrNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.Override.Apply(ctx, tt.input, testActor)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var svcErr *Error
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, tt.field, svcErr.Field)
		})
	}

	_, err := env.svc.Override.Remove(ctx, 999, testActor)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Overrides on different rows of one computation must leave the stored totals
// equal to the sum of the stored rows.
func TestOverrideService_TotalsFollowEveryRow(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)
	computation := unlockedComputation(t, env, 13000, 20000, 8000)

	edits := []ApplyOverrideInput{
		applyInput(computation.Rows[0].ID, models.OverrideFieldPFEmployee, "1500"),
		applyInput(computation.Rows[1].ID, models.OverrideFieldESIEmployer, "700"),
		applyInput(computation.Rows[2].ID, models.OverrideFieldPFEmployer, "900"),
		applyInput(computation.Rows[0].ID, models.OverrideFieldESIEmployee, "90"),
	}
	for _, in := range edits {
		_, err := env.svc.Override.Apply(ctx, in, testActor)
		require.NoError(t, err)

		stored, err := env.svc.Computation.Get(ctx, computation.BillingPeriodID)
		require.NoError(t, err)
		results := make([]statutory.Result, 0, len(stored.Rows))
		for i := range stored.Rows {
			results = append(results, stored.Rows[i].ToResult())
		}
		assert.True(t, statutory.Aggregate(results).Equal(stored.Totals()), "totals drifted after %s on row %d", in.Field, in.RowID)
	}
}

// staleRows serves worker rows as they were before the last override, the
// view a request holds when another override commits after its first read
type staleRows struct {
	repository.ComputationRepository
	stale map[uint]models.EmployeeStatutory
}

func (r *staleRows) FindRowByID(ctx context.Context, rowID uint) (*models.EmployeeStatutory, error) {
	if row, ok := r.stale[rowID]; ok {
		return &row, nil
	}
	return r.ComputationRepository.FindRowByID(ctx, rowID)
}

func TestOverrideService_DecidesOnLockedRead(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)
	computation := unlockedComputation(t, env, 13000)
	row := computation.Rows[0]

	_, err := env.svc.Override.Apply(ctx, applyInput(row.ID, models.OverrideFieldPFEmployee, "1500"), testActor)
	require.NoError(t, err)

	env.repos.Computation = &staleRows{ComputationRepository: env.repos.Computation, stale: map[uint]models.EmployeeStatutory{row.ID: row}}

	// The stale view still shows 1560, but the current value is 1500.
	noop, err := env.svc.Override.Apply(ctx, applyInput(row.ID, models.OverrideFieldPFEmployee, "1500"), testActor)
	require.NoError(t, err)
	assert.False(t, noop.Changed)
	assert.True(t, dec("1500").Equal(noop.OriginalValue))

	changed, err := env.svc.Override.Apply(ctx, applyInput(row.ID, models.OverrideFieldPFEmployee, "1560"), testActor)
	require.NoError(t, err)
	assert.True(t, changed.Changed)
	assert.True(t, dec("1500").Equal(changed.OriginalValue))

	// A lock taken after the stale read still blocks the override.
	_, err = env.svc.Computation.Lock(ctx, computation.BillingPeriodID, testActor)
	require.NoError(t, err)
	_, err = env.svc.Override.Apply(ctx, applyInput(row.ID, models.OverrideFieldPFEmployee, "1400"), testActor)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestActiveOverrides(t *testing.T) {
	pf := models.OverrideFieldPFEmployee
	reverts := func(id uint) *uint { return &id }

	// Newest first, as the repository returns them.
	history := []models.StatutoryOverride{
		{ID: 5, Field: pf, Action: models.OverrideActionApply},
		{ID: 4, Field: pf, Action: models.OverrideActionRevert, RevertsOverrideID: reverts(3)},
		{ID: 3, Field: pf, Action: models.OverrideActionApply},
		{ID: 2, Field: models.OverrideFieldESIEmployee, Action: models.OverrideActionApply},
		{ID: 1, Field: pf, Action: models.OverrideActionApply},
	}

	active := activeOverrides(history, pf)
	require.Len(t, active, 2)
	assert.Equal(t, uint(1), active[0].ID)
	assert.Equal(t, uint(5), active[1].ID)
	assert.True(t, containsOverride(active, 5))
	assert.False(t, containsOverride(active, 3))
}
