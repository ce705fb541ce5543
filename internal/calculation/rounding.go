package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/scobrk/nswtax/internal/domain"
)

// applyRounding rounds a final total half-up to the schedule's unit. It is
// called exactly once per result, on the summed total, never per band, so
// breakdown lines keep their rounding-free values.
//
// Tax amounts are never negative here, so decimal's round-half-away-from-
// zero is exactly round-half-up.
func applyRounding(amount decimal.Decimal, unit domain.RoundingUnit) decimal.Decimal {
	if unit == domain.RoundToDollar {
		return amount.Round(0)
	}
	return amount.Round(2)
}

// roundCharge rounds a surcharge amount to the cent. Surcharges are money
// values in their own right and keep cent precision regardless of the base
// schedule's rounding unit.
func roundCharge(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
