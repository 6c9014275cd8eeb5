package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a worker that can be assigned to billing periods
type Employee struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CompanyID     uint            `gorm:"not null;index" json:"company_id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	DailyWage     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"daily_wage"`
	PFApplicable  bool            `gorm:"not null" json:"pf_applicable"`
	ESIApplicable bool            `gorm:"not null" json:"esi_applicable"`
	Active        bool            `gorm:"not null;index" json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName specifies the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
