package statutory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const explanationSep = " | "

// SchemeResult is one scheme's outcome for one worker
type SchemeResult struct {
	Applicable     bool
	WageBasis      decimal.Decimal
	WageCapped     decimal.Decimal
	EmployeeAmount decimal.Decimal
	EmployerAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	Explanation    string
}

func excluded(reason string) SchemeResult {
	return SchemeResult{
		WageBasis:      decimal.Zero,
		WageCapped:     decimal.Zero,
		EmployeeAmount: decimal.Zero,
		EmployerAmount: decimal.Zero,
		TotalAmount:    decimal.Zero,
		Explanation:    reason,
	}
}

// ComputePF applies the provident fund rules to a worker's gross wage
func ComputePF(gross decimal.Decimal, enrolled bool, cfg Config) SchemeResult {
	if !cfg.PFEnabled {
		return excluded("PF disabled in configuration")
	}
	if !enrolled {
		return excluded("Employee not enrolled in PF")
	}

	basis := ResolveWageBasis(gross, cfg.PFWageBasis)

	capped := basis
	ceilingApplied := cfg.PFEnforceCeiling && basis.GreaterThan(cfg.PFWageCeiling)
	if ceilingApplied {
		capped = cfg.PFWageCeiling
	}

	employee := percentOf(capped, cfg.PFEmployeeRate, cfg.RoundingMode)
	employer := percentOf(capped, cfg.PFEmployerRate, cfg.RoundingMode)

	parts := []string{fmt.Sprintf("Wage Basis (%s): ₹%s", cfg.PFWageBasis, basis.StringFixed(2))}
	if ceilingApplied {
		parts = append(parts, fmt.Sprintf("Capped at: ₹%s", cfg.PFWageCeiling.StringFixed(2)))
	}
	parts = append(parts,
		fmt.Sprintf("Employee (%s%%): ₹%s", cfg.PFEmployeeRate, employee),
		fmt.Sprintf("Employer (%s%%): ₹%s", cfg.PFEmployerRate, employer),
	)

	return SchemeResult{
		Applicable:     true,
		WageBasis:      basis,
		WageCapped:     capped,
		EmployeeAmount: employee,
		EmployerAmount: employer,
		TotalAmount:    employee.Add(employer),
		Explanation:    strings.Join(parts, explanationSep),
	}
}
