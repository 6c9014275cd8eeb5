package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OverrideField is one of the four contribution amounts that may be
// corrected by hand
type OverrideField string

const (
	OverrideFieldPFEmployee  OverrideField = "pf_employee_amount"
	OverrideFieldPFEmployer  OverrideField = "pf_employer_amount"
	OverrideFieldESIEmployee OverrideField = "esi_employee_amount"
	OverrideFieldESIEmployer OverrideField = "esi_employer_amount"
)

// OverrideFields lists every overridable field
var OverrideFields = []OverrideField{
	OverrideFieldPFEmployee,
	OverrideFieldPFEmployer,
	OverrideFieldESIEmployee,
	OverrideFieldESIEmployer,
}

// ParseOverrideField returns the field named s
func ParseOverrideField(s string) (OverrideField, bool) {
	for _, f := range OverrideFields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// Get reads the field from row
func (f OverrideField) Get(row *EmployeeStatutory) decimal.Decimal {
	switch f {
	case OverrideFieldPFEmployee:
		return row.PFEmployeeAmount
	case OverrideFieldPFEmployer:
		return row.PFEmployerAmount
	case OverrideFieldESIEmployee:
		return row.ESIEmployeeAmount
	case OverrideFieldESIEmployer:
		return row.ESIEmployerAmount
	}
	panic("models: unknown override field " + string(f))
}

// Set writes the field on row. Callers must Recalculate afterwards.
func (f OverrideField) Set(row *EmployeeStatutory, v decimal.Decimal) {
	switch f {
	case OverrideFieldPFEmployee:
		row.PFEmployeeAmount = v
	case OverrideFieldPFEmployer:
		row.PFEmployerAmount = v
	case OverrideFieldESIEmployee:
		row.ESIEmployeeAmount = v
	case OverrideFieldESIEmployer:
		row.ESIEmployerAmount = v
	default:
		panic("models: unknown override field " + string(f))
	}
}

// Override action constants
const (
	OverrideActionApply  = "apply"
	OverrideActionRevert = "revert"
)

// StatutoryOverride is an append-only ledger entry recording a manual
// correction (apply) or its removal (revert). Entries are never updated.
type StatutoryOverride struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	EmployeeStatutoryID uint            `gorm:"not null;index" json:"employee_statutory_id"`
	ComputationID       uint            `gorm:"not null;index" json:"computation_id"`
	Field               OverrideField   `gorm:"size:40;not null" json:"field"`
	Action              string          `gorm:"size:10;not null" json:"action"`
	OriginalValue       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"original_value"`
	OverrideValue       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"override_value"`
	Reason              string          `gorm:"type:text;not null" json:"reason"`
	OverriddenBy        string          `gorm:"size:255;not null" json:"overridden_by"`
	RevertsOverrideID   *uint           `gorm:"index" json:"reverts_override_id,omitempty"`
	OverriddenAt        time.Time       `gorm:"not null" json:"overridden_at"`
	CreatedAt           time.Time       `json:"created_at"`

	// Associations
	EmployeeStatutory *EmployeeStatutory `gorm:"foreignKey:EmployeeStatutoryID" json:"-"`
}

// TableName specifies the table name for StatutoryOverride
func (StatutoryOverride) TableName() string {
	return "statutory_overrides"
}

// IsApply returns true for an entry that changed a value
func (o *StatutoryOverride) IsApply() bool {
	return o.Action == OverrideActionApply
}
