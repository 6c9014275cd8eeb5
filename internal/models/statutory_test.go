package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/statutory-api/internal/statutory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleRow() EmployeeStatutory {
	return NewEmployeeStatutory(statutory.ComputeEmployee(statutory.WageInput{
		EmployeeID:    1,
		Name:          "Asha",
		WageAmount:    dec("13000"),
		PFApplicable:  true,
		ESIApplicable: true,
	}, statutory.DefaultConfig()))
}

func TestParseOverrideField(t *testing.T) {
	for _, f := range OverrideFields {
		got, ok := ParseOverrideField(string(f))
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}

	_, ok := ParseOverrideField("pf_wage_basis")
	assert.False(t, ok)
}

func TestOverrideField_GetSet(t *testing.T) {
	tests := []struct {
		field    OverrideField
		original string
	}{
		{OverrideFieldPFEmployee, "1560"},
		{OverrideFieldPFEmployer, "1560"},
		{OverrideFieldESIEmployee, "98"},
		{OverrideFieldESIEmployer, "423"},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			row := sampleRow()
			assert.True(t, dec(tt.original).Equal(tt.field.Get(&row)))

			tt.field.Set(&row, dec("7"))
			assert.True(t, dec("7").Equal(tt.field.Get(&row)))
		})
	}
}

func TestEmployeeStatutory_Recalculate(t *testing.T) {
	row := sampleRow()

	OverrideFieldPFEmployee.Set(&row, dec("1000"))
	OverrideFieldESIEmployer.Set(&row, dec("400"))
	row.Recalculate()

	assert.True(t, dec("2560").Equal(row.PFTotalAmount))
	assert.True(t, dec("498").Equal(row.ESITotalAmount))
	assert.True(t, dec("1098").Equal(row.TotalEmployeeDeduction))
	assert.True(t, dec("1960").Equal(row.TotalEmployerContribution))
	assert.True(t, dec("11902").Equal(row.NetPayable))
}

func TestStatutoryComputation_Reaggregate(t *testing.T) {
	res := statutory.ComputePeriod(statutory.PeriodInput{
		BillingPeriodID: 9,
		Config:          statutory.DefaultConfig(),
		Employees: []statutory.WageInput{
			{EmployeeID: 1, WageAmount: dec("13000"), PFApplicable: true, ESIApplicable: true},
			{EmployeeID: 2, WageAmount: dec("20000"), PFApplicable: true, ESIApplicable: true},
		},
	})

	c := NewStatutoryComputation(res, "admin", time.Now())
	require.Len(t, c.Rows, 2)
	assert.Equal(t, uint(9), c.BillingPeriodID)
	assert.True(t, c.Totals().Equal(res.Totals))

	OverrideFieldPFEmployer.Set(&c.Rows[1], dec("0"))
	c.Rows[1].Recalculate()
	c.Reaggregate()

	assert.True(t, dec("1560").Equal(c.TotalPFEmployer))
	assert.True(t, res.Totals.PFEmployee.Equal(c.TotalPFEmployee))
}

func TestConfigSnapshot_PreservesSettings(t *testing.T) {
	cfg := statutory.DefaultConfig()
	cfg.PFWageBasis = statutory.WageBasisBasic
	cfg.RoundingMode = statutory.RoundingCeil

	snap := NewConfigSnapshot(cfg)
	assert.Equal(t, ConfigSnapshotVersion, snap.Version)

	back := snap.Config()
	assert.Equal(t, cfg.PFWageBasis, back.PFWageBasis)
	assert.Equal(t, cfg.RoundingMode, back.RoundingMode)
	assert.True(t, cfg.ESIEmployeeRate.Equal(back.ESIEmployeeRate))
	assert.True(t, cfg.PFWageCeiling.Equal(back.PFWageCeiling))
}

func TestBillingPeriod_Status(t *testing.T) {
	p := &BillingPeriod{Status: BillingPeriodStatusDraft}
	assert.True(t, p.MayFinalize())
	assert.False(t, p.IsFinalized())

	p.Status = BillingPeriodStatusFinalized
	assert.False(t, p.MayFinalize())
	assert.True(t, p.IsFinalized())
}
