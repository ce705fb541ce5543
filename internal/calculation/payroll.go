package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/scobrk/nswtax/internal/domain"
)

var twelve = decimal.NewFromInt(12)

// PayrollTaxCalculator computes NSW payroll tax: nothing up to the tax-free
// threshold, a flat marginal rate on the excess. The threshold is the
// schedule's 0% first band, so the same walk serves here too.
type PayrollTaxCalculator struct {
	schedule *domain.TaxSchedule
}

// NewPayrollTaxCalculator creates a payroll tax calculator for a schedule.
func NewPayrollTaxCalculator(schedule *domain.TaxSchedule) *PayrollTaxCalculator {
	return &PayrollTaxCalculator{schedule: schedule}
}

// Calculate runs one payroll tax calculation. A monthly period divides the
// annual result by twelve, uniformly across the total and the breakdown tax
// amounts, before the final rounding.
func (c *PayrollTaxCalculator) Calculate(input domain.PayrollTaxInput) (*domain.TaxCalculationResult, error) {
	if input.AnnualPayroll.IsNegative() {
		return nil, &domain.ValidationError{Field: "annual_payroll", Message: "must not be negative"}
	}
	period := input.Period
	if period == "" {
		period = domain.PeriodAnnual
	}
	if period != domain.PeriodAnnual && period != domain.PeriodMonthly {
		return nil, &domain.ValidationError{
			Field:   "period",
			Message: fmt.Sprintf("unknown calculation period %q", string(input.Period)),
		}
	}

	total, lines := CalculateProgressiveTax(input.AnnualPayroll, c.schedule.Thresholds)

	var exemptions []string
	if threshold := c.taxFreeThreshold(); threshold != nil && !input.AnnualPayroll.GreaterThan(*threshold) {
		exemptions = append(exemptions, domain.RuleBelowThreshold)
		total = decimal.Zero
		lines = []domain.BreakdownLine{{
			Description: fmt.Sprintf("Annual payroll below tax-free threshold of $%s",
				threshold.StringFixed(0)),
			TaxableAmount: input.AnnualPayroll,
			Amount:        decimal.Zero,
		}}
	}

	if period == domain.PeriodMonthly {
		total = total.Div(twelve)
		for i := range lines {
			lines[i].Amount = lines[i].Amount.Div(twelve)
		}
	}

	return assembleResult(c.schedule.TaxType, applyRounding(total, c.schedule.Rounding),
		lines, exemptions, nil, nil, nil), nil
}

// taxFreeThreshold returns the upper bound of a leading 0% band, or nil if
// the schedule has none.
func (c *PayrollTaxCalculator) taxFreeThreshold() *decimal.Decimal {
	if len(c.schedule.Thresholds) == 0 {
		return nil
	}
	first := c.schedule.Thresholds[0]
	if !first.Rate.IsZero() || first.MaxValue == nil {
		return nil
	}
	return first.MaxValue
}
