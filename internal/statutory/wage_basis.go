package statutory

import "github.com/shopspring/decimal"

var basicShare = decimal.RequireFromString("0.5")

// ResolveWageBasis derives the wage a scheme applies its rate to.
// Basic is a fixed 50% of gross; custom currently equals gross.
func ResolveWageBasis(gross decimal.Decimal, basis WageBasis) decimal.Decimal {
	switch basis {
	case WageBasisBasic:
		return gross.Mul(basicShare)
	case WageBasisCustom:
		return gross
	default:
		return gross
	}
}

// Round converts an amount to whole rupees. "round" is half-up for the
// non-negative amounts this package produces.
func Round(amount decimal.Decimal, mode RoundingMode) decimal.Decimal {
	switch mode {
	case RoundingFloor:
		return amount.Floor()
	case RoundingCeil:
		return amount.Ceil()
	default:
		return amount.Round(0)
	}
}

// percentOf returns round(base × rate / 100)
func percentOf(base, rate decimal.Decimal, mode RoundingMode) decimal.Decimal {
	return Round(base.Mul(rate).Div(hundred), mode)
}
