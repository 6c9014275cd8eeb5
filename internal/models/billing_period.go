package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/statutory-api/internal/statutory"
)

// BillingPeriod is the recurring window workers are billed over
type BillingPeriod struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CompanyID   uint       `gorm:"not null;index" json:"company_id"`
	ProjectID   uint       `gorm:"not null;index" json:"project_id"`
	FromDate    time.Time  `gorm:"not null" json:"from_date"`
	ToDate      time.Time  `gorm:"not null" json:"to_date"`
	Label       string     `gorm:"size:100" json:"label"`
	Status      string     `gorm:"size:20;not null;index" json:"status"`
	FinalizedAt *time.Time `json:"finalized_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Associations
	Employees []BillingEmployee `gorm:"foreignKey:BillingPeriodID" json:"employees,omitempty"`
}

// TableName specifies the table name for BillingPeriod
func (BillingPeriod) TableName() string {
	return "billing_periods"
}

// Billing period status constants
const (
	BillingPeriodStatusDraft     = "draft"
	BillingPeriodStatusFinalized = "finalized"
)

// MayFinalize returns true if the period can move to finalized
func (p *BillingPeriod) MayFinalize() bool {
	return p.Status == BillingPeriodStatusDraft
}

// IsFinalized returns true once attendance for the period is frozen
func (p *BillingPeriod) IsFinalized() bool {
	return p.Status == BillingPeriodStatusFinalized
}

// BillingEmployee assigns a worker to a period with the wage accrued there.
// ID order is assignment order.
type BillingEmployee struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	BillingPeriodID uint            `gorm:"not null;uniqueIndex:idx_billing_period_employee" json:"billing_period_id"`
	EmployeeID      uint            `gorm:"not null;uniqueIndex:idx_billing_period_employee" json:"employee_id"`
	DaysWorked      decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"days_worked"`
	WageAmount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"wage_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Associations
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee"`
}

// TableName specifies the table name for BillingEmployee
func (BillingEmployee) TableName() string {
	return "billing_employees"
}

// ToWageInput builds the calculator input; Employee must be loaded
func (b *BillingEmployee) ToWageInput() statutory.WageInput {
	return statutory.WageInput{
		EmployeeID:    b.EmployeeID,
		Name:          b.Employee.Name,
		DaysWorked:    b.DaysWorked,
		DailyWage:     b.Employee.DailyWage,
		WageAmount:    b.WageAmount,
		PFApplicable:  b.Employee.PFApplicable,
		ESIApplicable: b.Employee.ESIApplicable,
	}
}
