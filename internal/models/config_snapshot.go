package models

import (
	"github.com/shopspring/decimal"
	"github.com/sjperalta/statutory-api/internal/statutory"
)

// ConfigSnapshotVersion is bumped whenever ConfigSnapshot changes shape
const ConfigSnapshotVersion = 1

// ConfigSnapshot is the frozen configuration stored with a computation
type ConfigSnapshot struct {
	Version int `json:"version"`

	PFEnabled        bool            `json:"pf_enabled"`
	PFWageBasis      string          `json:"pf_wage_basis"`
	PFEmployeeRate   decimal.Decimal `json:"pf_employee_rate"`
	PFEmployerRate   decimal.Decimal `json:"pf_employer_rate"`
	PFWageCeiling    decimal.Decimal `json:"pf_wage_ceiling"`
	PFEnforceCeiling bool            `json:"pf_enforce_ceiling"`

	ESIEnabled       bool            `json:"esi_enabled"`
	ESIWageThreshold decimal.Decimal `json:"esi_wage_threshold"`
	ESIEmployeeRate  decimal.Decimal `json:"esi_employee_rate"`
	ESIEmployerRate  decimal.Decimal `json:"esi_employer_rate"`

	RoundingMode string `json:"rounding_mode"`
}

func NewConfigSnapshot(cfg statutory.Config) ConfigSnapshot {
	return ConfigSnapshot{
		Version:          ConfigSnapshotVersion,
		PFEnabled:        cfg.PFEnabled,
		PFWageBasis:      string(cfg.PFWageBasis),
		PFEmployeeRate:   cfg.PFEmployeeRate,
		PFEmployerRate:   cfg.PFEmployerRate,
		PFWageCeiling:    cfg.PFWageCeiling,
		PFEnforceCeiling: cfg.PFEnforceCeiling,
		ESIEnabled:       cfg.ESIEnabled,
		ESIWageThreshold: cfg.ESIWageThreshold,
		ESIEmployeeRate:  cfg.ESIEmployeeRate,
		ESIEmployerRate:  cfg.ESIEmployerRate,
		RoundingMode:     string(cfg.RoundingMode),
	}
}

// Config rebuilds the calculation settings the snapshot was taken from
func (s ConfigSnapshot) Config() statutory.Config {
	return statutory.Config{
		PFEnabled:        s.PFEnabled,
		PFWageBasis:      statutory.WageBasis(s.PFWageBasis),
		PFEmployeeRate:   s.PFEmployeeRate,
		PFEmployerRate:   s.PFEmployerRate,
		PFWageCeiling:    s.PFWageCeiling,
		PFEnforceCeiling: s.PFEnforceCeiling,
		ESIEnabled:       s.ESIEnabled,
		ESIWageThreshold: s.ESIWageThreshold,
		ESIEmployeeRate:  s.ESIEmployeeRate,
		ESIEmployerRate:  s.ESIEmployerRate,
		RoundingMode:     statutory.RoundingMode(s.RoundingMode),
	}
}
