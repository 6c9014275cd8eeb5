package services

import (
	"context"
	"testing"

	"github.com/sjperalta/statutory-api/internal/models"
	"github.com/sjperalta/statutory-api/internal/statutory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatutoryConfigService_SetAndGet(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)

	_, err := env.svc.Config.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.svc.Config.Snapshot(ctx, 1)
	assert.ErrorIs(t, err, ErrConfiguration)

	created, err := env.svc.Config.Set(ctx, StatutoryConfigInput{CompanyID: 1, PFWageBasis: ptr("basic")}, testActor)
	require.NoError(t, err)
	assert.Equal(t, testActor.Name, created.UpdatedBy)

	cfg, err := env.svc.Config.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, statutory.WageBasisBasic, cfg.PFWageBasis)
	assert.True(t, dec("12").Equal(cfg.PFEmployeeRate))
	assert.True(t, dec("21000").Equal(cfg.ESIWageThreshold))
	assert.True(t, cfg.ESIEnabled)

	// Omitted fields keep their stored value.
	_, err = env.svc.Config.Set(ctx, StatutoryConfigInput{CompanyID: 1, ESIEnabled: ptr(false), RoundingMode: ptr("floor")}, testActor)
	require.NoError(t, err)

	stored, err := env.svc.Config.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
	assert.Equal(t, string(statutory.WageBasisBasic), stored.PFWageBasis)
	assert.Equal(t, string(statutory.RoundingFloor), stored.RoundingMode)
	assert.False(t, stored.ESIEnabled)
	assert.True(t, stored.PFEnabled)

	logs, _, err := env.svc.Audit.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.AuditActionUpdateConfig, logs[0].Action)
}

func TestStatutoryConfigService_SetValidation(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)

	tests := []struct {
		name  string
		input StatutoryConfigInput
		field string
	}{
		{"missing company", StatutoryConfigInput{}, "company_id"},
		{"unknown wage basis", StatutoryConfigInput{CompanyID: 1, PFWageBasis: ptr("net")}, "pf_wage_basis"},
		{"unknown rounding", StatutoryConfigInput{CompanyID: 1, RoundingMode: ptr("banker")}, "rounding_mode"},
		{"negative rate", StatutoryConfigInput{CompanyID: 1, PFEmployeeRate: ptr(-1.0)}, "pf_employee_rate"},
		{"rate over 100", StatutoryConfigInput{CompanyID: 1, ESIEmployerRate: ptr(101.0)}, "esi_employer_rate"},
		{"zero ceiling", StatutoryConfigInput{CompanyID: 1, PFWageCeiling: ptr(0.0)}, "pf_wage_ceiling"},
		{"zero threshold", StatutoryConfigInput{CompanyID: 1, ESIWageThreshold: ptr(0.0)}, "esi_wage_threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.Config.Set(ctx, tt.input, testActor)
			assert.ErrorIs(t, err, ErrValidation)

			var svcErr *Error
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, tt.field, svcErr.Field)
		})
	}

	// Range checks only apply to enabled schemes.
	_, err := env.svc.Config.Set(ctx, StatutoryConfigInput{CompanyID: 1, ESIEnabled: ptr(false), ESIEmployerRate: ptr(101.0)}, testActor)
	assert.NoError(t, err)

	_, err = env.svc.Config.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}
