package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/scobrk/nswtax/internal/domain"
)

var one = decimal.NewFromInt(1)

// StampDutyCalculator computes NSW transfer (stamp) duty: progressive bands
// with per-band fixed amounts, the first home buyer full exemption and
// sliding-scale concession, and the foreign purchaser additional duty.
type StampDutyCalculator struct {
	schedule *domain.TaxSchedule
}

// NewStampDutyCalculator creates a stamp duty calculator for a schedule.
func NewStampDutyCalculator(schedule *domain.TaxSchedule) *StampDutyCalculator {
	return &StampDutyCalculator{schedule: schedule}
}

// Calculate runs one stamp duty calculation.
func (c *StampDutyCalculator) Calculate(input domain.StampDutyInput) (*domain.TaxCalculationResult, error) {
	if input.PropertyValue.IsNegative() {
		return nil, &domain.ValidationError{Field: "property_value", Message: "must not be negative"}
	}

	var concessions []string
	partial := false
	if rule := c.schedule.Concession; rule != nil && input.IsFirstHomeBuyer {
		if !input.PropertyValue.GreaterThan(rule.FullExemptionThreshold) {
			return exemptResult(c.schedule.TaxType, domain.RuleFirstHomeBuyerFullExemption,
				fmt.Sprintf("First home buyer full exemption (property value <= $%s)",
					rule.FullExemptionThreshold.StringFixed(0))), nil
		}
		if !input.PropertyValue.GreaterThan(rule.PartialExemptionMax) {
			partial = true
			concessions = append(concessions, domain.RuleFirstHomeBuyerPartialExemption)
		}
	}

	total, lines := CalculateProgressiveTax(input.PropertyValue, c.schedule.Thresholds)

	// The concession reduces the bracket result linearly and is recorded as
	// a negative line, keeping the breakdown sum equal to the final total.
	if partial {
		reduction := concessionReduction(input.PropertyValue, c.schedule.Concession)
		reductionAmount := total.Mul(reduction)
		total = total.Sub(reductionAmount)
		lines = append(lines, domain.BreakdownLine{
			Description: "First home buyer partial exemption",
			Rate:        reduction,
			Amount:      reductionAmount.Neg(),
		})
	}

	flags := map[string]bool{domain.FlagForeignPurchaser: input.IsForeignPurchaser}
	charges, warnings := applySurcharges(input.PropertyValue, c.schedule.Surcharges, flags)

	return assembleResult(c.schedule.TaxType, applyRounding(total, c.schedule.Rounding),
		lines, nil, concessions, charges, warnings), nil
}

// concessionReduction is the sliding-scale factor: 1 at the full exemption
// threshold, 0 at the partial exemption ceiling, linear between, clipped to
// [0, 1]. The reduced duty therefore never goes negative and never exceeds
// the unreduced figure.
func concessionReduction(value decimal.Decimal, rule *domain.ConcessionRule) decimal.Decimal {
	span := rule.PartialExemptionMax.Sub(rule.FullExemptionThreshold)
	if !span.IsPositive() {
		return decimal.Zero
	}
	reduction := rule.PartialExemptionMax.Sub(value).Div(span)
	if reduction.IsNegative() {
		return decimal.Zero
	}
	if reduction.GreaterThan(one) {
		return one
	}
	return reduction
}
