package calculation

import (
	"github.com/scobrk/nswtax/internal/domain"
)

// LandTaxCalculator computes NSW land tax over a loaded schedule: a
// progressive walk over the unimproved land value, a principal place of
// residence exemption, and the premium property surcharge above $3M.
type LandTaxCalculator struct {
	schedule *domain.TaxSchedule
}

// NewLandTaxCalculator creates a land tax calculator for a schedule.
func NewLandTaxCalculator(schedule *domain.TaxSchedule) *LandTaxCalculator {
	return &LandTaxCalculator{schedule: schedule}
}

// Calculate runs one land tax calculation.
func (c *LandTaxCalculator) Calculate(input domain.LandTaxInput) (*domain.TaxCalculationResult, error) {
	if input.PropertyValue.IsNegative() {
		return nil, &domain.ValidationError{Field: "property_value", Message: "must not be negative"}
	}

	// The exemption short-circuits before surcharges: an exempt home
	// attracts no premium property charge or warning.
	if input.IsPrincipalPlaceOfResidence && c.schedule.HasExemption(domain.RulePrincipalPlaceOfResidence) {
		return exemptResult(c.schedule.TaxType, domain.RulePrincipalPlaceOfResidence,
			"Principal place of residence exemption"), nil
	}

	total, lines := CalculateProgressiveTax(input.PropertyValue, c.schedule.Thresholds)
	charges, warnings := applySurcharges(input.PropertyValue, c.schedule.Surcharges, nil)

	return assembleResult(c.schedule.TaxType, applyRounding(total, c.schedule.Rounding),
		lines, nil, nil, charges, warnings), nil
}
