package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/statutory-api/internal/statutory"
)

// StatutoryConfig is a company's PF/ESI configuration. One row per company.
type StatutoryConfig struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `gorm:"not null;uniqueIndex" json:"company_id"`

	PFEnabled        bool            `gorm:"not null" json:"pf_enabled"`
	PFWageBasis      string          `gorm:"size:10;not null" json:"pf_wage_basis"`
	PFEmployeeRate   decimal.Decimal `gorm:"type:numeric(6,3);not null" json:"pf_employee_rate"`
	PFEmployerRate   decimal.Decimal `gorm:"type:numeric(6,3);not null" json:"pf_employer_rate"`
	PFWageCeiling    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"pf_wage_ceiling"`
	PFEnforceCeiling bool            `gorm:"not null" json:"pf_enforce_ceiling"`

	ESIEnabled       bool            `gorm:"not null" json:"esi_enabled"`
	ESIWageThreshold decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"esi_wage_threshold"`
	ESIEmployeeRate  decimal.Decimal `gorm:"type:numeric(6,3);not null" json:"esi_employee_rate"`
	ESIEmployerRate  decimal.Decimal `gorm:"type:numeric(6,3);not null" json:"esi_employer_rate"`

	RoundingMode string    `gorm:"size:10;not null" json:"rounding_mode"`
	UpdatedBy    string    `gorm:"size:255" json:"updated_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for StatutoryConfig
func (StatutoryConfig) TableName() string {
	return "statutory_configs"
}

// ToConfig returns the immutable calculation settings held by the row
func (c *StatutoryConfig) ToConfig() statutory.Config {
	return statutory.Config{
		PFEnabled:        c.PFEnabled,
		PFWageBasis:      statutory.WageBasis(c.PFWageBasis),
		PFEmployeeRate:   c.PFEmployeeRate,
		PFEmployerRate:   c.PFEmployerRate,
		PFWageCeiling:    c.PFWageCeiling,
		PFEnforceCeiling: c.PFEnforceCeiling,
		ESIEnabled:       c.ESIEnabled,
		ESIWageThreshold: c.ESIWageThreshold,
		ESIEmployeeRate:  c.ESIEmployeeRate,
		ESIEmployerRate:  c.ESIEmployerRate,
		RoundingMode:     statutory.RoundingMode(c.RoundingMode),
	}
}

// Apply copies cfg onto the row, keeping identity and timestamps
func (c *StatutoryConfig) Apply(cfg statutory.Config) {
	c.PFEnabled = cfg.PFEnabled
	c.PFWageBasis = string(cfg.PFWageBasis)
	c.PFEmployeeRate = cfg.PFEmployeeRate
	c.PFEmployerRate = cfg.PFEmployerRate
	c.PFWageCeiling = cfg.PFWageCeiling
	c.PFEnforceCeiling = cfg.PFEnforceCeiling
	c.ESIEnabled = cfg.ESIEnabled
	c.ESIWageThreshold = cfg.ESIWageThreshold
	c.ESIEmployeeRate = cfg.ESIEmployeeRate
	c.ESIEmployerRate = cfg.ESIEmployerRate
	c.RoundingMode = string(cfg.RoundingMode)
}
