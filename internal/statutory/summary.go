package statutory

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Summary renders a plain-text report of a computed period
func Summary(from, to time.Time, employees int, t Totals) string {
	lines := []string{
		fmt.Sprintf("Billing Period: %s to %s", from.Format(dateLayout), to.Format(dateLayout)),
		fmt.Sprintf("Employees Processed: %d", employees),
		"",
		"Totals:",
		fmt.Sprintf("  Gross Wages: ₹%s", t.GrossWages.StringFixed(2)),
		fmt.Sprintf("  PF Employee: ₹%s", t.PFEmployee.StringFixed(2)),
		fmt.Sprintf("  PF Employer: ₹%s", t.PFEmployer.StringFixed(2)),
		fmt.Sprintf("  ESI Employee: ₹%s", t.ESIEmployee.StringFixed(2)),
		fmt.Sprintf("  ESI Employer: ₹%s", t.ESIEmployer.StringFixed(2)),
		fmt.Sprintf("  Total Deductions: ₹%s", t.EmployeeDeductions.StringFixed(2)),
		fmt.Sprintf("  Total Contributions: ₹%s", t.EmployerContributions.StringFixed(2)),
		fmt.Sprintf("  Net Payable: ₹%s", t.NetPayable.StringFixed(2)),
	}
	return strings.Join(lines, "\n")
}

// Summary renders r with Summary
func (r PeriodResult) Summary() string {
	return Summary(r.FromDate, r.ToDate, len(r.Employees), r.Totals)
}
