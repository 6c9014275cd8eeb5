package statutory

import "github.com/shopspring/decimal"

// WageInput is one worker's wage for a billing period
type WageInput struct {
	EmployeeID    uint
	Name          string
	DaysWorked    decimal.Decimal
	DailyWage     decimal.Decimal
	WageAmount    decimal.Decimal
	PFApplicable  bool
	ESIApplicable bool
}

// Result is the explainable statutory outcome for one worker
type Result struct {
	EmployeeID uint
	Name       string
	DaysWorked decimal.Decimal

	GrossWage  decimal.Decimal
	BasicWage  decimal.Decimal
	CustomWage decimal.Decimal

	PF  SchemeResult
	ESI SchemeResult

	TotalEmployeeDeduction    decimal.Decimal
	TotalEmployerContribution decimal.Decimal
	NetPayable                decimal.Decimal
}

// ComputeEmployee combines both schemes for one worker
func ComputeEmployee(in WageInput, cfg Config) Result {
	gross := in.WageAmount
	pf := ComputePF(gross, in.PFApplicable, cfg)
	esi := ComputeESI(gross, in.ESIApplicable, cfg)

	deduction := pf.EmployeeAmount.Add(esi.EmployeeAmount)

	return Result{
		EmployeeID:                in.EmployeeID,
		Name:                      in.Name,
		DaysWorked:                in.DaysWorked,
		GrossWage:                 gross,
		BasicWage:                 ResolveWageBasis(gross, WageBasisBasic),
		CustomWage:                ResolveWageBasis(gross, WageBasisCustom),
		PF:                        pf,
		ESI:                       esi,
		TotalEmployeeDeduction:    deduction,
		TotalEmployerContribution: pf.EmployerAmount.Add(esi.EmployerAmount),
		NetPayable:                gross.Sub(deduction),
	}
}
