package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)

	emp, err := env.svc.Employee.Create(ctx, CreateEmployeeInput{
		Name:          "Meena",
		DailyWage:     ptr(712.345),
		ESIApplicable: ptr(false),
	}, testActor)
	require.NoError(t, err)
	assert.Equal(t, uint(1), emp.CompanyID)
	assert.True(t, dec("712.35").Equal(emp.DailyWage))
	assert.True(t, emp.PFApplicable)
	assert.False(t, emp.ESIApplicable)
	assert.True(t, emp.Active)

	loaded, err := env.svc.Employee.Get(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Meena", loaded.Name)

	_, err = env.svc.Employee.Get(ctx, emp.ID+1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.svc.Employee.Create(ctx, CreateEmployeeInput{Name: "no wage"}, testActor)
	assert.ErrorIs(t, err, ErrValidation)
}
