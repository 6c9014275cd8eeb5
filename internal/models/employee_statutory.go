package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/statutory-api/internal/statutory"
)

// EmployeeStatutory is one worker's persisted statutory result
type EmployeeStatutory struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ComputationID uint            `gorm:"not null;uniqueIndex:idx_computation_employee" json:"computation_id"`
	EmployeeID    uint            `gorm:"not null;uniqueIndex:idx_computation_employee" json:"employee_id"`
	EmployeeName  string          `gorm:"size:255" json:"employee_name"`
	DaysWorked    decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"days_worked"`

	GrossWage  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"gross_wage"`
	BasicWage  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"basic_wage"`
	CustomWage decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"custom_wage"`

	PFApplicable     bool            `gorm:"not null" json:"pf_applicable"`
	PFWageBasis      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"pf_wage_basis"`
	PFWageCapped     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"pf_wage_capped"`
	PFEmployeeAmount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"pf_employee_amount"`
	PFEmployerAmount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"pf_employer_amount"`
	PFTotalAmount    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"pf_total_amount"`
	PFExplanation    string          `gorm:"type:text" json:"pf_explanation"`

	ESIApplicable     bool            `gorm:"not null" json:"esi_applicable"`
	ESIWageBasis      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"esi_wage_basis"`
	ESIEmployeeAmount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"esi_employee_amount"`
	ESIEmployerAmount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"esi_employer_amount"`
	ESITotalAmount    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"esi_total_amount"`
	ESIExplanation    string          `gorm:"type:text" json:"esi_explanation"`

	TotalEmployeeDeduction    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total_employee_deduction"`
	TotalEmployerContribution decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total_employer_contribution"`
	NetPayable                decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"net_payable"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Computation *StatutoryComputation `gorm:"foreignKey:ComputationID" json:"-"`
}

// TableName specifies the table name for EmployeeStatutory
func (EmployeeStatutory) TableName() string {
	return "employee_statutory_results"
}

func NewEmployeeStatutory(r statutory.Result) EmployeeStatutory {
	return EmployeeStatutory{
		EmployeeID:                r.EmployeeID,
		EmployeeName:              r.Name,
		DaysWorked:                r.DaysWorked,
		GrossWage:                 r.GrossWage,
		BasicWage:                 r.BasicWage,
		CustomWage:                r.CustomWage,
		PFApplicable:              r.PF.Applicable,
		PFWageBasis:               r.PF.WageBasis,
		PFWageCapped:              r.PF.WageCapped,
		PFEmployeeAmount:          r.PF.EmployeeAmount,
		PFEmployerAmount:          r.PF.EmployerAmount,
		PFTotalAmount:             r.PF.TotalAmount,
		PFExplanation:             r.PF.Explanation,
		ESIApplicable:             r.ESI.Applicable,
		ESIWageBasis:              r.ESI.WageBasis,
		ESIEmployeeAmount:         r.ESI.EmployeeAmount,
		ESIEmployerAmount:         r.ESI.EmployerAmount,
		ESITotalAmount:            r.ESI.TotalAmount,
		ESIExplanation:            r.ESI.Explanation,
		TotalEmployeeDeduction:    r.TotalEmployeeDeduction,
		TotalEmployerContribution: r.TotalEmployerContribution,
		NetPayable:                r.NetPayable,
	}
}

// ToResult converts the row back into a calculator result
func (e *EmployeeStatutory) ToResult() statutory.Result {
	return statutory.Result{
		EmployeeID: e.EmployeeID,
		Name:       e.EmployeeName,
		DaysWorked: e.DaysWorked,
		GrossWage:  e.GrossWage,
		BasicWage:  e.BasicWage,
		CustomWage: e.CustomWage,
		PF: statutory.SchemeResult{
			Applicable:     e.PFApplicable,
			WageBasis:      e.PFWageBasis,
			WageCapped:     e.PFWageCapped,
			EmployeeAmount: e.PFEmployeeAmount,
			EmployerAmount: e.PFEmployerAmount,
			TotalAmount:    e.PFTotalAmount,
			Explanation:    e.PFExplanation,
		},
		ESI: statutory.SchemeResult{
			Applicable:     e.ESIApplicable,
			WageBasis:      e.ESIWageBasis,
			WageCapped:     e.ESIWageBasis,
			EmployeeAmount: e.ESIEmployeeAmount,
			EmployerAmount: e.ESIEmployerAmount,
			TotalAmount:    e.ESITotalAmount,
			Explanation:    e.ESIExplanation,
		},
		TotalEmployeeDeduction:    e.TotalEmployeeDeduction,
		TotalEmployerContribution: e.TotalEmployerContribution,
		NetPayable:                e.NetPayable,
	}
}

// Recalculate refreshes every total that depends on the four contribution
// amounts
func (e *EmployeeStatutory) Recalculate() {
	e.PFTotalAmount = e.PFEmployeeAmount.Add(e.PFEmployerAmount)
	e.ESITotalAmount = e.ESIEmployeeAmount.Add(e.ESIEmployerAmount)
	e.TotalEmployeeDeduction = e.PFEmployeeAmount.Add(e.ESIEmployeeAmount)
	e.TotalEmployerContribution = e.PFEmployerAmount.Add(e.ESIEmployerAmount)
	e.NetPayable = e.GrossWage.Sub(e.TotalEmployeeDeduction)
}
