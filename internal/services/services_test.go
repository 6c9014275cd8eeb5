package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/statutory-api/internal/config"
	"github.com/sjperalta/statutory-api/internal/database"
	"github.com/sjperalta/statutory-api/internal/models"
	"github.com/sjperalta/statutory-api/internal/repository"
	"github.com/stretchr/testify/require"
)

var testActor = Actor{Name: "payroll@example.com", IPAddress: "127.0.0.1"}

type testEnv struct {
	repos *repository.Repositories
	svc   *Services
}

func setupServices(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	repos := repository.NewRepositories(db)
	return &testEnv{repos: repos, svc: NewServices(repos, &config.Config{DefaultCompanyID: 1})}
}

// withDefaultConfig stores the statutory defaults for company 1
func (e *testEnv) withDefaultConfig(t *testing.T) {
	t.Helper()
	_, err := e.svc.Config.Set(context.Background(), StatutoryConfigInput{CompanyID: 1}, testActor)
	require.NoError(t, err)
}

func (e *testEnv) employee(t *testing.T, name string, dailyWage int64) *models.Employee {
	t.Helper()
	emp := &models.Employee{
		CompanyID:     1,
		Name:          name,
		DailyWage:     decimal.NewFromInt(dailyWage),
		PFApplicable:  true,
		ESIApplicable: true,
		Active:        true,
	}
	require.NoError(t, e.repos.Employee.Create(context.Background(), emp))
	return emp
}

// period creates a March 2026 period with one worker per wage, in order
func (e *testEnv) period(t *testing.T, wages ...float64) *models.BillingPeriod {
	t.Helper()
	ctx := context.Background()

	period, err := e.svc.BillingPeriod.Create(ctx, CreateBillingPeriodInput{
		ProjectID: 1,
		FromDate:  "2026-03-01",
		ToDate:    "2026-03-31",
	}, testActor)
	require.NoError(t, err)

	for _, w := range wages {
		emp := e.employee(t, "worker", 500)
		days := 26.0
		wage := w
		_, err := e.svc.BillingPeriod.AssignWorker(ctx, period.ID, AssignWorkerInput{
			EmployeeID: emp.ID,
			DaysWorked: &days,
			WageAmount: &wage,
		}, testActor)
		require.NoError(t, err)
	}
	return period
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}
