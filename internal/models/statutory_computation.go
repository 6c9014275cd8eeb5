package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/statutory-api/internal/statutory"
	"gorm.io/datatypes"
)

// StatutoryComputation is the persisted result of finalizing a billing period.
// At most one exists per period.
type StatutoryComputation struct {
	ID              uint                                `gorm:"primaryKey" json:"id"`
	BillingPeriodID uint                                `gorm:"not null;uniqueIndex" json:"billing_period_id"`
	ConfigSnapshot  datatypes.JSONType[ConfigSnapshot] `gorm:"not null" json:"config_snapshot"`

	TotalGrossWages            decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"total_gross_wages"`
	TotalPFEmployee            decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"total_pf_employee"`
	TotalPFEmployer            decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"total_pf_employer"`
	TotalESIEmployee           decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"total_esi_employee"`
	TotalESIEmployer           decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"total_esi_employer"`
	TotalEmployeeDeductions    decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"total_employee_deductions"`
	TotalEmployerContributions decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"total_employer_contributions"`
	TotalNetPayable            decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"total_net_payable"`

	Locked     bool       `gorm:"not null;index" json:"locked"`
	LockedAt   *time.Time `json:"locked_at"`
	ComputedAt time.Time  `gorm:"not null" json:"computed_at"`
	ComputedBy string     `gorm:"size:255" json:"computed_by"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Associations
	BillingPeriod *BillingPeriod      `gorm:"foreignKey:BillingPeriodID" json:"billing_period,omitempty"`
	Rows          []EmployeeStatutory `gorm:"foreignKey:ComputationID" json:"employee_results,omitempty"`
}

// TableName specifies the table name for StatutoryComputation
func (StatutoryComputation) TableName() string {
	return "statutory_computations"
}

// MayLock returns true if the computation can be locked
func (c *StatutoryComputation) MayLock() bool {
	return !c.Locked
}

// MayUnlock returns true if the computation can be unlocked
func (c *StatutoryComputation) MayUnlock() bool {
	return c.Locked
}

// Totals returns the stored period totals
func (c *StatutoryComputation) Totals() statutory.Totals {
	return statutory.Totals{
		GrossWages:            c.TotalGrossWages,
		PFEmployee:            c.TotalPFEmployee,
		PFEmployer:            c.TotalPFEmployer,
		ESIEmployee:           c.TotalESIEmployee,
		ESIEmployer:           c.TotalESIEmployer,
		EmployeeDeductions:    c.TotalEmployeeDeductions,
		EmployerContributions: c.TotalEmployerContributions,
		NetPayable:            c.TotalNetPayable,
	}
}

// SetTotals overwrites the stored period totals
func (c *StatutoryComputation) SetTotals(t statutory.Totals) {
	c.TotalGrossWages = t.GrossWages
	c.TotalPFEmployee = t.PFEmployee
	c.TotalPFEmployer = t.PFEmployer
	c.TotalESIEmployee = t.ESIEmployee
	c.TotalESIEmployer = t.ESIEmployer
	c.TotalEmployeeDeductions = t.EmployeeDeductions
	c.TotalEmployerContributions = t.EmployerContributions
	c.TotalNetPayable = t.NetPayable
}

// Reaggregate recomputes the period totals from every row
func (c *StatutoryComputation) Reaggregate() {
	results := make([]statutory.Result, 0, len(c.Rows))
	for i := range c.Rows {
		results = append(results, c.Rows[i].ToResult())
	}
	c.SetTotals(statutory.Aggregate(results))
}

// NewStatutoryComputation builds an unsaved computation, rows included, from
// a period result
func NewStatutoryComputation(res statutory.PeriodResult, computedBy string, at time.Time) *StatutoryComputation {
	c := &StatutoryComputation{
		BillingPeriodID: res.BillingPeriodID,
		ConfigSnapshot:  datatypes.NewJSONType(NewConfigSnapshot(res.Config)),
		ComputedAt:      at,
		ComputedBy:      computedBy,
		Rows:            make([]EmployeeStatutory, 0, len(res.Employees)),
	}
	c.SetTotals(res.Totals)
	for _, r := range res.Employees {
		c.Rows = append(c.Rows, NewEmployeeStatutory(r))
	}
	return c
}
