package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/scobrk/nswtax/internal/domain"
)

// applySurcharges evaluates a schedule's surcharge rules against the
// original input value. Each triggered rule yields a named charge and its
// warning. Charges stack independently and are never folded into the base
// total; a rule gated on a flag fires only when flags carries it as true.
//
// A zero threshold means the rule applies whenever its flag does, even for
// a zero value, so the charge still shows up itemized (as zero) for callers
// that surface obligations rather than amounts.
func applySurcharges(value decimal.Decimal, rules []domain.SurchargeRule, flags map[string]bool) ([]domain.AdditionalCharge, []string) {
	var charges []domain.AdditionalCharge
	var warnings []string

	for _, rule := range rules {
		if rule.Flag != "" && !flags[rule.Flag] {
			continue
		}
		if !rule.Threshold.IsZero() && !value.GreaterThan(rule.Threshold) {
			continue
		}

		base := value
		if rule.Basis == domain.SurchargeBasisMarginal {
			base = value.Sub(rule.Threshold)
		}
		charges = append(charges, domain.AdditionalCharge{
			Name:   rule.Name,
			Amount: roundCharge(base.Mul(rule.Rate)),
		})
		if rule.Warning != "" {
			warnings = append(warnings, rule.Warning)
		}
	}

	return charges, warnings
}
