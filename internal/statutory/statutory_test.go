package statutory

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, d(expected).Equal(actual), append([]any{"expected %s, got %s", expected, actual.String()}, msgAndArgs...)...)
}

func TestResolveWageBasis(t *testing.T) {
	tests := []struct {
		basis    WageBasis
		expected string
	}{
		{WageBasisGross, "13000"},
		{WageBasisBasic, "6500"},
		{WageBasisCustom, "13000"},
	}

	for _, tt := range tests {
		t.Run(string(tt.basis), func(t *testing.T) {
			assertDecimal(t, tt.expected, ResolveWageBasis(d("13000"), tt.basis))
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		mode     RoundingMode
		expected string
	}{
		{"round half up", "97.5", RoundingRound, "98"},
		{"round down", "97.49", RoundingRound, "97"},
		{"floor", "422.9", RoundingFloor, "422"},
		{"ceil", "422.1", RoundingCeil, "423"},
		{"ceil exact", "1560", RoundingCeil, "1560"},
		{"unknown mode rounds", "0.5", RoundingMode("bankers"), "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expected, Round(d(tt.amount), tt.mode))
		})
	}
}

func TestComputePF(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("gross basis under ceiling", func(t *testing.T) {
		res := ComputePF(d("13000"), true, cfg)

		assert.True(t, res.Applicable)
		assertDecimal(t, "13000", res.WageBasis)
		assertDecimal(t, "13000", res.WageCapped)
		assertDecimal(t, "1560", res.EmployeeAmount)
		assertDecimal(t, "1560", res.EmployerAmount)
		assertDecimal(t, "3120", res.TotalAmount)
		assert.Equal(t, "Wage Basis (gross): ₹13000.00 | Employee (12%): ₹1560 | Employer (12%): ₹1560", res.Explanation)
	})

	t.Run("ceiling enforced", func(t *testing.T) {
		res := ComputePF(d("20000"), true, cfg)

		assertDecimal(t, "20000", res.WageBasis)
		assertDecimal(t, "15000", res.WageCapped)
		assertDecimal(t, "1800", res.EmployeeAmount)
		assertDecimal(t, "1800", res.EmployerAmount)
		assert.Contains(t, res.Explanation, "Capped at: ₹15000.00")
	})

	t.Run("ceiling not enforced", func(t *testing.T) {
		c := cfg
		c.PFEnforceCeiling = false
		res := ComputePF(d("20000"), true, c)

		assertDecimal(t, "20000", res.WageCapped)
		assertDecimal(t, "2400", res.EmployeeAmount)
		assert.NotContains(t, res.Explanation, "Capped")
	})

	t.Run("basic basis", func(t *testing.T) {
		c := cfg
		c.PFWageBasis = WageBasisBasic
		res := ComputePF(d("13000"), true, c)

		assertDecimal(t, "6500", res.WageBasis)
		assertDecimal(t, "780", res.EmployeeAmount)
		assertDecimal(t, "780", res.EmployerAmount)
		assert.Contains(t, res.Explanation, "Wage Basis (basic): ₹6500.00")
	})

	t.Run("ceiling applies after basis resolution", func(t *testing.T) {
		c := cfg
		c.PFWageBasis = WageBasisBasic
		res := ComputePF(d("40000"), true, c)

		assertDecimal(t, "20000", res.WageBasis)
		assertDecimal(t, "15000", res.WageCapped)
	})

	t.Run("disabled", func(t *testing.T) {
		c := cfg
		c.PFEnabled = false
		res := ComputePF(d("13000"), true, c)

		assert.False(t, res.Applicable)
		assert.True(t, res.WageBasis.IsZero())
		assert.True(t, res.EmployeeAmount.IsZero())
		assert.Equal(t, "PF disabled in configuration", res.Explanation)
	})

	t.Run("not enrolled", func(t *testing.T) {
		res := ComputePF(d("13000"), false, cfg)

		assert.False(t, res.Applicable)
		assert.True(t, res.TotalAmount.IsZero())
		assert.Equal(t, "Employee not enrolled in PF", res.Explanation)
	})

	t.Run("rounding per amount", func(t *testing.T) {
		c := cfg
		c.PFEmployeeRate = d("12.5")
		c.PFEmployerRate = d("12.5")
		c.RoundingMode = RoundingCeil
		// 1001 * 12.5% = 125.125 each; ceiling the sum instead would give 251
		res := ComputePF(d("1001"), true, c)

		assertDecimal(t, "126", res.EmployeeAmount)
		assertDecimal(t, "126", res.EmployerAmount)
		assertDecimal(t, "252", res.TotalAmount)
	})
}

func TestComputeESI(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("below threshold", func(t *testing.T) {
		res := ComputeESI(d("13000"), true, cfg)

		assert.True(t, res.Applicable)
		assertDecimal(t, "13000", res.WageBasis)
		assertDecimal(t, "98", res.EmployeeAmount)
		assertDecimal(t, "423", res.EmployerAmount)
		assertDecimal(t, "521", res.TotalAmount)
		assert.Equal(t, "Wage Basis (gross): ₹13000.00 | Employee (0.75%): ₹98 | Employer (3.25%): ₹423", res.Explanation)
	})

	t.Run("above threshold", func(t *testing.T) {
		res := ComputeESI(d("25000"), true, cfg)

		assert.False(t, res.Applicable)
		assertDecimal(t, "25000", res.WageBasis)
		assert.True(t, res.EmployeeAmount.IsZero())
		assert.True(t, res.EmployerAmount.IsZero())
		assert.Equal(t, "Wage (₹25000.00) exceeds ESI threshold (₹21000.00)", res.Explanation)
	})

	t.Run("exactly at threshold", func(t *testing.T) {
		res := ComputeESI(d("21000"), true, cfg)

		assert.True(t, res.Applicable)
		assertDecimal(t, "158", res.EmployeeAmount)
	})

	t.Run("basis ignores pf basis selector", func(t *testing.T) {
		c := cfg
		c.PFWageBasis = WageBasisBasic
		res := ComputeESI(d("13000"), true, c)

		assertDecimal(t, "13000", res.WageBasis)
	})

	t.Run("disabled and not enrolled", func(t *testing.T) {
		c := cfg
		c.ESIEnabled = false
		assert.Equal(t, "ESI disabled in configuration", ComputeESI(d("100"), true, c).Explanation)
		assert.Equal(t, "Employee not enrolled in ESI", ComputeESI(d("100"), false, cfg).Explanation)
	})
}

func TestComputeEmployee(t *testing.T) {
	res := ComputeEmployee(WageInput{
		EmployeeID:    7,
		Name:          "Ravi",
		DaysWorked:    d("26"),
		DailyWage:     d("500"),
		WageAmount:    d("13000"),
		PFApplicable:  true,
		ESIApplicable: true,
	}, DefaultConfig())

	assert.Equal(t, uint(7), res.EmployeeID)
	assertDecimal(t, "13000", res.GrossWage)
	assertDecimal(t, "6500", res.BasicWage)
	assertDecimal(t, "13000", res.CustomWage)
	assertDecimal(t, "1658", res.TotalEmployeeDeduction)
	assertDecimal(t, "1983", res.TotalEmployerContribution)
	assertDecimal(t, "11342", res.NetPayable)
}

func TestComputePeriod(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()

	in := PeriodInput{
		BillingPeriodID: 3,
		FromDate:        from,
		ToDate:          to,
		Config:          cfg,
		Employees: []WageInput{
			{EmployeeID: 2, Name: "B", WageAmount: d("13000"), PFApplicable: true, ESIApplicable: true},
			{EmployeeID: 1, Name: "A", WageAmount: d("25000"), PFApplicable: true, ESIApplicable: true},
			{EmployeeID: 3, Name: "C", WageAmount: d("9000.50"), PFApplicable: false, ESIApplicable: true},
		},
	}

	res := ComputePeriod(in)

	require.Len(t, res.Employees, 3)
	assert.Equal(t, []uint{2, 1, 3}, []uint{res.Employees[0].EmployeeID, res.Employees[1].EmployeeID, res.Employees[2].EmployeeID})

	var gross, pfEmp, pfEr, esiEmp, esiEr, ded, contrib, net decimal.Decimal
	for _, r := range res.Employees {
		gross = gross.Add(r.GrossWage)
		pfEmp = pfEmp.Add(r.PF.EmployeeAmount)
		pfEr = pfEr.Add(r.PF.EmployerAmount)
		esiEmp = esiEmp.Add(r.ESI.EmployeeAmount)
		esiEr = esiEr.Add(r.ESI.EmployerAmount)
		ded = ded.Add(r.TotalEmployeeDeduction)
		contrib = contrib.Add(r.TotalEmployerContribution)
		net = net.Add(r.NetPayable)
	}

	assert.True(t, gross.Equal(res.Totals.GrossWages))
	assert.True(t, pfEmp.Equal(res.Totals.PFEmployee))
	assert.True(t, pfEr.Equal(res.Totals.PFEmployer))
	assert.True(t, esiEmp.Equal(res.Totals.ESIEmployee))
	assert.True(t, esiEr.Equal(res.Totals.ESIEmployer))
	assert.True(t, ded.Equal(res.Totals.EmployeeDeductions))
	assert.True(t, contrib.Equal(res.Totals.EmployerContributions))
	assert.True(t, net.Equal(res.Totals.NetPayable))
	assertDecimal(t, "47000.50", res.Totals.GrossWages)

	// The snapshot is a copy of the input config.
	in.Config.PFEmployeeRate = d("50")
	assertDecimal(t, "12", res.Config.PFEmployeeRate)
}

func TestComputePeriod_Empty(t *testing.T) {
	res := ComputePeriod(PeriodInput{Config: DefaultConfig()})

	assert.Empty(t, res.Employees)
	assert.True(t, res.Totals.Equal(Totals{}))
}

func TestSummary(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	res := ComputePeriod(PeriodInput{
		FromDate:  from,
		ToDate:    to,
		Config:    DefaultConfig(),
		Employees: []WageInput{{WageAmount: d("13000"), PFApplicable: true, ESIApplicable: true}},
	})

	summary := res.Summary()
	assert.Contains(t, summary, "Billing Period: 2026-01-01 to 2026-01-15")
	assert.Contains(t, summary, "Employees Processed: 1")
	assert.Contains(t, summary, "  PF Employee: ₹1560.00")
	assert.Contains(t, summary, "  ESI Employer: ₹423.00")
	assert.Contains(t, summary, "  Net Payable: ₹11342.00")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		fields []string
	}{
		{"defaults are valid", func(c *Config) {}, nil},
		{"pf rate above 100", func(c *Config) { c.PFEmployeeRate = d("101") }, []string{"pf_employee_rate"}},
		{"negative employer rate", func(c *Config) { c.PFEmployerRate = d("-1") }, []string{"pf_employer_rate"}},
		{"zero ceiling", func(c *Config) { c.PFWageCeiling = decimal.Zero }, []string{"pf_wage_ceiling"}},
		{"disabled pf skips checks", func(c *Config) {
			c.PFEnabled = false
			c.PFWageCeiling = decimal.Zero
		}, nil},
		{"esi threshold and rate", func(c *Config) {
			c.ESIWageThreshold = d("-5")
			c.ESIEmployerRate = d("120")
		}, []string{"esi_employer_rate", "esi_wage_threshold"}},
		{"bad enums", func(c *Config) {
			c.PFWageBasis = "net"
			c.RoundingMode = "up"
		}, []string{"pf_wage_basis", "rounding_mode"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			var got []string
			for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
				var fe *FieldError
				require.True(t, errors.As(e, &fe))
				got = append(got, fe.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}
