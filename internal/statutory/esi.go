package statutory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ComputeESI applies the state insurance rules to a worker's gross wage.
// A wage strictly above the threshold makes the scheme inapplicable.
func ComputeESI(gross decimal.Decimal, enrolled bool, cfg Config) SchemeResult {
	if !cfg.ESIEnabled {
		return excluded("ESI disabled in configuration")
	}
	if !enrolled {
		return excluded("Employee not enrolled in ESI")
	}

	if gross.GreaterThan(cfg.ESIWageThreshold) {
		res := excluded(fmt.Sprintf("Wage (₹%s) exceeds ESI threshold (₹%s)",
			gross.StringFixed(2), cfg.ESIWageThreshold.StringFixed(2)))
		res.WageBasis = gross
		return res
	}

	employee := percentOf(gross, cfg.ESIEmployeeRate, cfg.RoundingMode)
	employer := percentOf(gross, cfg.ESIEmployerRate, cfg.RoundingMode)

	explanation := strings.Join([]string{
		fmt.Sprintf("Wage Basis (gross): ₹%s", gross.StringFixed(2)),
		fmt.Sprintf("Employee (%s%%): ₹%s", cfg.ESIEmployeeRate, employee),
		fmt.Sprintf("Employer (%s%%): ₹%s", cfg.ESIEmployerRate, employer),
	}, explanationSep)

	return SchemeResult{
		Applicable:     true,
		WageBasis:      gross,
		WageCapped:     gross,
		EmployeeAmount: employee,
		EmployerAmount: employer,
		TotalAmount:    employee.Add(employer),
		Explanation:    explanation,
	}
}
