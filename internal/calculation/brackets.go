package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/scobrk/nswtax/internal/domain"
)

// CalculateProgressiveTax walks an ordered band table and applies marginal
// rate semantics: only the slice of the amount inside a band is taxed at
// that band's rate, and the band's fixed amount is charged once any of the
// amount reaches the band. Returns the pre-rounding total and one breakdown
// line per band that contributed.
//
// Bands are half-open [min, max): an amount sitting exactly on a boundary
// leaves nothing in the next band, so that band's fixed amount is not
// charged. Zero amounts produce a zero total and no lines.
func CalculateProgressiveTax(amount decimal.Decimal, thresholds []domain.RateThreshold) (decimal.Decimal, []domain.BreakdownLine) {
	total := decimal.Zero
	var lines []domain.BreakdownLine

	remaining := amount
	for i := range thresholds {
		t := thresholds[i]
		if !remaining.GreaterThan(decimal.Zero) {
			break
		}

		taxable := remaining
		if width, bounded := t.Width(); bounded {
			taxable = decimal.Min(remaining, width)
		}
		if !taxable.GreaterThan(decimal.Zero) {
			continue
		}

		lineAmount := taxable.Mul(t.Rate).Add(t.FixedAmount)
		total = total.Add(lineAmount)
		lines = append(lines, bandLine(t, taxable, lineAmount))
		remaining = remaining.Sub(taxable)
	}

	return total, lines
}

func bandLine(t domain.RateThreshold, taxable, amount decimal.Decimal) domain.BreakdownLine {
	min := t.MinValue
	line := domain.BreakdownLine{
		Description:   t.Description,
		BandMin:       &min,
		TaxableAmount: taxable,
		Rate:          t.Rate,
		FixedAmount:   t.FixedAmount,
		Amount:        amount,
	}
	if t.MaxValue != nil {
		max := *t.MaxValue
		line.BandMax = &max
	}
	return line
}
