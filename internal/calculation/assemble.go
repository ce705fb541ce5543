package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/scobrk/nswtax/internal/domain"
)

// assembleResult builds the immutable result, normalizing nil slices to
// empty ones so callers and encoders always see lists.
func assembleResult(taxType domain.TaxType, total decimal.Decimal, lines []domain.BreakdownLine,
	exemptions, concessions []string, charges []domain.AdditionalCharge, warnings []string) *domain.TaxCalculationResult {

	if lines == nil {
		lines = []domain.BreakdownLine{}
	}
	if exemptions == nil {
		exemptions = []string{}
	}
	if concessions == nil {
		concessions = []string{}
	}
	if charges == nil {
		charges = []domain.AdditionalCharge{}
	}
	if warnings == nil {
		warnings = []string{}
	}

	return &domain.TaxCalculationResult{
		TaxType:            taxType,
		TotalTax:           total,
		Breakdown:          lines,
		ExemptionsApplied:  exemptions,
		ConcessionsApplied: concessions,
		AdditionalCharges:  charges,
		Warnings:           warnings,
		Confidence:         domain.ExactConfidence,
	}
}

// exemptResult is the short-circuit result for a full exemption: zero tax,
// the rule named, and a single explanatory line. The bracket walk and any
// surcharge rules are never evaluated.
func exemptResult(taxType domain.TaxType, rule, description string) *domain.TaxCalculationResult {
	line := domain.BreakdownLine{
		Description: description,
		Amount:      decimal.Zero,
	}
	return assembleResult(taxType, decimal.Zero, []domain.BreakdownLine{line},
		[]string{rule}, nil, nil, nil)
}
