// Package statutory computes PF and ESI contributions for billing periods.
//
// Everything in this package is a pure function of its inputs: no I/O, no
// clocks, no errors except from Config.Validate. Amounts are carried as
// decimal.Decimal and rounded to whole rupees per amount.
package statutory

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// WageBasis selects which wage figure a scheme's rate applies to
type WageBasis string

const (
	WageBasisGross  WageBasis = "gross"
	WageBasisBasic  WageBasis = "basic"
	WageBasisCustom WageBasis = "custom"
)

// Valid reports whether b is a known wage basis
func (b WageBasis) Valid() bool {
	switch b {
	case WageBasisGross, WageBasisBasic, WageBasisCustom:
		return true
	}
	return false
}

// RoundingMode controls how every computed amount becomes a whole number
type RoundingMode string

const (
	RoundingRound RoundingMode = "round"
	RoundingFloor RoundingMode = "floor"
	RoundingCeil  RoundingMode = "ceil"
)

// Valid reports whether m is a known rounding mode
func (m RoundingMode) Valid() bool {
	switch m {
	case RoundingRound, RoundingFloor, RoundingCeil:
		return true
	}
	return false
}

// Config is an immutable view of a company's statutory settings.
// Rates are percentages (12 means 12%).
type Config struct {
	PFEnabled        bool
	PFWageBasis      WageBasis
	PFEmployeeRate   decimal.Decimal
	PFEmployerRate   decimal.Decimal
	PFWageCeiling    decimal.Decimal
	PFEnforceCeiling bool

	ESIEnabled       bool
	ESIWageThreshold decimal.Decimal
	ESIEmployeeRate  decimal.Decimal
	ESIEmployerRate  decimal.Decimal

	RoundingMode RoundingMode
}

// DefaultConfig returns the statutory defaults applied to omitted settings
func DefaultConfig() Config {
	return Config{
		PFEnabled:        true,
		PFWageBasis:      WageBasisGross,
		PFEmployeeRate:   decimal.NewFromInt(12),
		PFEmployerRate:   decimal.NewFromInt(12),
		PFWageCeiling:    decimal.NewFromInt(15000),
		PFEnforceCeiling: true,
		ESIEnabled:       true,
		ESIWageThreshold: decimal.NewFromInt(21000),
		ESIEmployeeRate:  decimal.RequireFromString("0.75"),
		ESIEmployerRate:  decimal.RequireFromString("3.25"),
		RoundingMode:     RoundingRound,
	}
}

// FieldError names the setting that failed validation
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	zero    = decimal.Zero
	hundred = decimal.NewFromInt(100)
)

// Validate checks the settings of every enabled scheme. The returned error
// joins one *FieldError per violation.
func (c Config) Validate() error {
	var errs []error
	add := func(field, msg string) {
		errs = append(errs, &FieldError{Field: field, Message: msg})
	}

	if !c.PFWageBasis.Valid() {
		add("pf_wage_basis", fmt.Sprintf("must be one of gross, basic, custom (got %q)", c.PFWageBasis))
	}
	if !c.RoundingMode.Valid() {
		add("rounding_mode", fmt.Sprintf("must be one of round, floor, ceil (got %q)", c.RoundingMode))
	}

	if c.PFEnabled {
		if !rateInRange(c.PFEmployeeRate) {
			add("pf_employee_rate", "PF employee rate must be between 0 and 100")
		}
		if !rateInRange(c.PFEmployerRate) {
			add("pf_employer_rate", "PF employer rate must be between 0 and 100")
		}
		if !c.PFWageCeiling.GreaterThan(zero) {
			add("pf_wage_ceiling", "PF wage ceiling must be positive")
		}
	}

	if c.ESIEnabled {
		if !rateInRange(c.ESIEmployeeRate) {
			add("esi_employee_rate", "ESI employee rate must be between 0 and 100")
		}
		if !rateInRange(c.ESIEmployerRate) {
			add("esi_employer_rate", "ESI employer rate must be between 0 and 100")
		}
		if !c.ESIWageThreshold.GreaterThan(zero) {
			add("esi_wage_threshold", "ESI threshold must be positive")
		}
	}

	return errors.Join(errs...)
}

func rateInRange(rate decimal.Decimal) bool {
	return rate.GreaterThanOrEqual(zero) && rate.LessThanOrEqual(hundred)
}
