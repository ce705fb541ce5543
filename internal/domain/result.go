package domain

import "github.com/shopspring/decimal"

// Rule and charge names used by the embedded NSW schedules. Schedule files
// reference the same names so results stay stable across config sources.
const (
	RulePrincipalPlaceOfResidence      = "principal_place_of_residence"
	RuleBelowThreshold                 = "below_threshold"
	RuleFirstHomeBuyerFullExemption    = "first_home_buyer_full_exemption"
	RuleFirstHomeBuyerPartialExemption = "first_home_buyer_partial_exemption"

	ChargeForeignPurchaserDuty = "foreign_purchaser_additional_duty"
	ChargePremiumPropertyTax   = "premium_property_tax"
)

// ExactConfidence is the confidence reported for every calculation:
// published-rate arithmetic is exact, not probabilistic.
const ExactConfidence = 1.0

// BreakdownLine is one ordered component of a calculation. Band lines carry
// the band range and marginal arithmetic; rule lines (exemptions,
// concessions) carry a description and a signed amount. The sum of Amount
// across all lines reconstructs the pre-rounding total.
type BreakdownLine struct {
	Description   string           `json:"description"`
	BandMin       *decimal.Decimal `json:"band_min,omitempty"`
	BandMax       *decimal.Decimal `json:"band_max,omitempty"`
	TaxableAmount decimal.Decimal  `json:"taxable_amount"`
	Rate          decimal.Decimal  `json:"rate"`
	FixedAmount   decimal.Decimal  `json:"fixed_amount"`
	Amount        decimal.Decimal  `json:"amount"`
}

// AdditionalCharge is a named surcharge reported alongside, never inside,
// the base total.
type AdditionalCharge struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// TaxCalculationResult is the output contract for every calculation. It is
// assembled once and never mutated; identical inputs produce identical
// results.
type TaxCalculationResult struct {
	TaxType            TaxType            `json:"tax_type"`
	TotalTax           decimal.Decimal    `json:"total_tax"`
	Breakdown          []BreakdownLine    `json:"breakdown"`
	ExemptionsApplied  []string           `json:"exemptions_applied"`
	ConcessionsApplied []string           `json:"concessions_applied"`
	AdditionalCharges  []AdditionalCharge `json:"additional_charges"`
	Warnings           []string           `json:"warnings"`
	Confidence         float64            `json:"confidence"`
}

// BreakdownTotal sums the breakdown line amounts. This is the pre-rounding
// total; TotalTax is this figure rounded per the schedule policy.
func (r *TaxCalculationResult) BreakdownTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range r.Breakdown {
		total = total.Add(line.Amount)
	}
	return total
}

// AdditionalTotal sums the itemized surcharges.
func (r *TaxCalculationResult) AdditionalTotal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range r.AdditionalCharges {
		total = total.Add(c.Amount)
	}
	return total
}

// TotalIncludingCharges returns TotalTax plus all additional charges, for
// callers that want a single combined figure.
func (r *TaxCalculationResult) TotalIncludingCharges() decimal.Decimal {
	return r.TotalTax.Add(r.AdditionalTotal())
}
