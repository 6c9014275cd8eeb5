package statutory

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodInput is everything needed to compute one billing period
type PeriodInput struct {
	BillingPeriodID uint
	FromDate        time.Time
	ToDate          time.Time
	Employees       []WageInput
	Config          Config
}

// Totals are the period-level sums of every contribution field
type Totals struct {
	GrossWages            decimal.Decimal
	PFEmployee            decimal.Decimal
	PFEmployer            decimal.Decimal
	ESIEmployee           decimal.Decimal
	ESIEmployer           decimal.Decimal
	EmployeeDeductions    decimal.Decimal
	EmployerContributions decimal.Decimal
	NetPayable            decimal.Decimal
}

// Add accumulates one worker's figures
func (t Totals) Add(r Result) Totals {
	return Totals{
		GrossWages:            t.GrossWages.Add(r.GrossWage),
		PFEmployee:            t.PFEmployee.Add(r.PF.EmployeeAmount),
		PFEmployer:            t.PFEmployer.Add(r.PF.EmployerAmount),
		ESIEmployee:           t.ESIEmployee.Add(r.ESI.EmployeeAmount),
		ESIEmployer:           t.ESIEmployer.Add(r.ESI.EmployerAmount),
		EmployeeDeductions:    t.EmployeeDeductions.Add(r.TotalEmployeeDeduction),
		EmployerContributions: t.EmployerContributions.Add(r.TotalEmployerContribution),
		NetPayable:            t.NetPayable.Add(r.NetPayable),
	}
}

// Equal compares every field by value
func (t Totals) Equal(o Totals) bool {
	return t.GrossWages.Equal(o.GrossWages) &&
		t.PFEmployee.Equal(o.PFEmployee) &&
		t.PFEmployer.Equal(o.PFEmployer) &&
		t.ESIEmployee.Equal(o.ESIEmployee) &&
		t.ESIEmployer.Equal(o.ESIEmployer) &&
		t.EmployeeDeductions.Equal(o.EmployeeDeductions) &&
		t.EmployerContributions.Equal(o.EmployerContributions) &&
		t.NetPayable.Equal(o.NetPayable)
}

// Aggregate sums results from scratch
func Aggregate(results []Result) Totals {
	var t Totals
	for _, r := range results {
		t = t.Add(r)
	}
	return t
}

// PeriodResult is a computed billing period bound to the config it used
type PeriodResult struct {
	BillingPeriodID uint
	FromDate        time.Time
	ToDate          time.Time
	Config          Config
	Employees       []Result
	Totals          Totals
}

// ComputePeriod computes every worker in input order and sums the totals.
// The returned Config is a copy; later edits to the caller's config do not
// reach it.
func ComputePeriod(in PeriodInput) PeriodResult {
	results := make([]Result, 0, len(in.Employees))
	for _, emp := range in.Employees {
		results = append(results, ComputeEmployee(emp, in.Config))
	}

	return PeriodResult{
		BillingPeriodID: in.BillingPeriodID,
		FromDate:        in.FromDate,
		ToDate:          in.ToDate,
		Config:          in.Config,
		Employees:       results,
		Totals:          Aggregate(results),
	}
}
