package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/scobrk/nswtax/internal/config"
	"github.com/scobrk/nswtax/internal/domain"
)

func TestStampDutyCalculation(t *testing.T) {
	calc := NewStampDutyCalculator(config.DefaultStampDutySchedule2024())

	tests := []struct {
		name        string
		value       decimal.Decimal
		expectedTax decimal.Decimal
	}{
		{
			name:        "First band only",
			value:       decimal.NewFromInt(14000),
			expectedTax: decimal.NewFromInt(175),
		},
		{
			name:        "One dollar into the second band",
			value:       decimal.NewFromInt(14001),
			expectedTax: decimal.NewFromInt(350), // 175 + 0.015 + 175, rounded
		},
		{
			name:        "Mid-range purchase",
			value:       decimal.NewFromInt(100000),
			expectedTax: decimal.NewFromInt(3890),
		},
		{
			name:        "At the full exemption threshold without the concession",
			value:       decimal.NewFromInt(650000),
			expectedTax: decimal.NewFromInt(36013), // 36012.50 rounded half-up
		},
		{
			name:        "At the partial exemption ceiling without the concession",
			value:       decimal.NewFromInt(800000),
			expectedTax: decimal.NewFromInt(42763), // 42762.50 rounded half-up
		},
		{
			name:        "Into the premium band",
			value:       decimal.NewFromInt(1200000),
			expectedTax: decimal.NewFromInt(105210),
		},
		{
			name:        "Two million",
			value:       decimal.NewFromInt(2000000),
			expectedTax: decimal.NewFromInt(149210),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Calculate(domain.StampDutyInput{PropertyValue: tt.value})
			assert.NoError(t, err)
			assert.True(t, result.TotalTax.Equal(tt.expectedTax),
				"%s: Expected %s, got %s", tt.name, tt.expectedTax, result.TotalTax)
			assert.Equal(t, domain.TaxTypeStampDuty, result.TaxType)
			assert.Empty(t, result.ExemptionsApplied)
			assert.Empty(t, result.ConcessionsApplied)
		})
	}
}

func TestStampDutyFirstHomeBuyerFullExemption(t *testing.T) {
	calc := NewStampDutyCalculator(config.DefaultStampDutySchedule2024())

	for _, value := range []decimal.Decimal{
		decimal.NewFromInt(400000),
		decimal.NewFromInt(650000), // the threshold itself is exempt
	} {
		result, err := calc.Calculate(domain.StampDutyInput{
			PropertyValue:    value,
			IsFirstHomeBuyer: true,
		})
		assert.NoError(t, err)
		assert.True(t, result.TotalTax.IsZero(),
			"Expected zero duty at %s, got %s", value, result.TotalTax)
		assert.Equal(t, []string{domain.RuleFirstHomeBuyerFullExemption}, result.ExemptionsApplied)
		assert.Len(t, result.Breakdown, 1)
		assert.Equal(t, "First home buyer full exemption (property value <= $650000)",
			result.Breakdown[0].Description)
	}
}

func TestStampDutyFirstHomeBuyerPartialExemption(t *testing.T) {
	calc := NewStampDutyCalculator(config.DefaultStampDutySchedule2024())

	// 725000 sits exactly halfway along the sliding scale, so the duty of
	// 39387.50 is halved to 19693.75 and rounded to 19694.
	result, err := calc.Calculate(domain.StampDutyInput{
		PropertyValue:    decimal.NewFromInt(725000),
		IsFirstHomeBuyer: true,
	})
	assert.NoError(t, err)
	assert.True(t, result.TotalTax.Equal(decimal.NewFromInt(19694)),
		"Expected 19694, got %s", result.TotalTax)
	assert.Equal(t, []string{domain.RuleFirstHomeBuyerPartialExemption}, result.ConcessionsApplied)

	last := result.Breakdown[len(result.Breakdown)-1]
	assert.Equal(t, "First home buyer partial exemption", last.Description)
	assert.True(t, last.Rate.Equal(decimal.NewFromFloat(0.5)),
		"Expected reduction factor 0.5, got %s", last.Rate)
	assert.True(t, last.Amount.Equal(decimal.NewFromFloat(-19693.75)),
		"Expected -19693.75 reduction, got %s", last.Amount)
}

func TestStampDutyConcessionBoundaries(t *testing.T) {
	calc := NewStampDutyCalculator(config.DefaultStampDutySchedule2024())

	// Just past the full exemption threshold the reduction factor is nearly
	// 1, so the duty rounds all the way down to zero.
	justOver, err := calc.Calculate(domain.StampDutyInput{
		PropertyValue:    decimal.NewFromInt(650001),
		IsFirstHomeBuyer: true,
	})
	assert.NoError(t, err)
	assert.True(t, justOver.TotalTax.IsZero(),
		"Expected duty to round to zero just over the threshold, got %s", justOver.TotalTax)
	assert.Equal(t, []string{domain.RuleFirstHomeBuyerPartialExemption}, justOver.ConcessionsApplied)

	// At the ceiling the factor is exactly 0: the concession is still
	// recorded but the duty matches the unreduced figure.
	atCeiling, err := calc.Calculate(domain.StampDutyInput{
		PropertyValue:    decimal.NewFromInt(800000),
		IsFirstHomeBuyer: true,
	})
	assert.NoError(t, err)
	assert.True(t, atCeiling.TotalTax.Equal(decimal.NewFromInt(42763)),
		"Expected the unreduced duty at the ceiling, got %s", atCeiling.TotalTax)
	assert.Equal(t, []string{domain.RuleFirstHomeBuyerPartialExemption}, atCeiling.ConcessionsApplied)

	// Past the ceiling the scheme no longer applies at all.
	pastCeiling, err := calc.Calculate(domain.StampDutyInput{
		PropertyValue:    decimal.NewFromInt(900000),
		IsFirstHomeBuyer: true,
	})
	assert.NoError(t, err)
	assert.True(t, pastCeiling.TotalTax.Equal(decimal.NewFromInt(47263)),
		"Expected plain duty past the ceiling, got %s", pastCeiling.TotalTax)
	assert.Empty(t, pastCeiling.ConcessionsApplied)
}

func TestStampDutyForeignPurchaser(t *testing.T) {
	calc := NewStampDutyCalculator(config.DefaultStampDutySchedule2024())

	result, err := calc.Calculate(domain.StampDutyInput{
		PropertyValue:      decimal.NewFromInt(2000000),
		IsForeignPurchaser: true,
	})
	assert.NoError(t, err)

	// The base duty is unchanged; the surcharge is itemized on top.
	assert.True(t, result.TotalTax.Equal(decimal.NewFromInt(149210)),
		"Expected base duty unchanged, got %s", result.TotalTax)
	assert.Len(t, result.AdditionalCharges, 1)
	charge := result.AdditionalCharges[0]
	assert.Equal(t, domain.ChargeForeignPurchaserDuty, charge.Name)
	assert.True(t, charge.Amount.Equal(decimal.NewFromInt(160000)),
		"Expected 160000 (8%% of the full value), got %s", charge.Amount)
	assert.Contains(t, result.Warnings, "Foreign purchaser additional duty (8%) applies")

	// Without the flag there is no charge and no warning.
	domestic, err := calc.Calculate(domain.StampDutyInput{
		PropertyValue: decimal.NewFromInt(2000000),
	})
	assert.NoError(t, err)
	assert.Empty(t, domestic.AdditionalCharges)
	assert.Empty(t, domestic.Warnings)
}

func TestStampDutyFullExemptionSkipsSurcharges(t *testing.T) {
	calc := NewStampDutyCalculator(config.DefaultStampDutySchedule2024())

	// The full exemption short-circuits before the surcharge rules run, so
	// even a foreign first home buyer pays nothing under it.
	result, err := calc.Calculate(domain.StampDutyInput{
		PropertyValue:      decimal.NewFromInt(650000),
		IsFirstHomeBuyer:   true,
		IsForeignPurchaser: true,
	})
	assert.NoError(t, err)
	assert.True(t, result.TotalTax.IsZero())
	assert.Empty(t, result.AdditionalCharges)
	assert.Empty(t, result.Warnings)
}

func TestStampDutyNegativeValue(t *testing.T) {
	calc := NewStampDutyCalculator(config.DefaultStampDutySchedule2024())

	_, err := calc.Calculate(domain.StampDutyInput{PropertyValue: decimal.NewFromInt(-100)})
	assert.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err), "Expected an input validation error, got %v", err)
}
