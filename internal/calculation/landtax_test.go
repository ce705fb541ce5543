package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/scobrk/nswtax/internal/config"
	"github.com/scobrk/nswtax/internal/domain"
)

func TestLandTaxCalculation(t *testing.T) {
	calc := NewLandTaxCalculator(config.DefaultLandTaxSchedule2024())

	tests := []struct {
		name        string
		value       decimal.Decimal
		expectedTax decimal.Decimal
	}{
		{
			name:        "Below threshold pays nothing",
			value:       decimal.NewFromInt(500000),
			expectedTax: decimal.Zero,
		},
		{
			name:        "Exactly at threshold pays nothing",
			value:       decimal.NewFromInt(969000),
			expectedTax: decimal.Zero,
		},
		{
			name:        "One dollar over threshold",
			value:       decimal.NewFromInt(969001),
			expectedTax: decimal.NewFromFloat(0.02), // 1 * 1.6% rounded up to the cent
		},
		{
			name:        "General rate band",
			value:       decimal.NewFromInt(2000000),
			expectedTax: decimal.NewFromInt(16496), // (2000000 - 969000) * 1.6%
		},
		{
			name:        "Premium rate band",
			value:       decimal.NewFromInt(5000000),
			expectedTax: decimal.NewFromInt(66544), // 3519000 * 1.6% + 512000 * 2%
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Calculate(domain.LandTaxInput{PropertyValue: tt.value})
			assert.NoError(t, err)
			assert.True(t, result.TotalTax.Equal(tt.expectedTax),
				"%s: Expected %s, got %s", tt.name, tt.expectedTax, result.TotalTax)
			assert.Equal(t, domain.TaxTypeLandTax, result.TaxType)
		})
	}
}

func TestLandTaxPrincipalPlaceOfResidence(t *testing.T) {
	calc := NewLandTaxCalculator(config.DefaultLandTaxSchedule2024())

	// The exemption applies regardless of value, and it short-circuits the
	// premium property surcharge too.
	result, err := calc.Calculate(domain.LandTaxInput{
		PropertyValue:               decimal.NewFromInt(5000000),
		IsPrincipalPlaceOfResidence: true,
	})
	assert.NoError(t, err)
	assert.True(t, result.TotalTax.IsZero(), "Expected zero tax, got %s", result.TotalTax)
	assert.Equal(t, []string{domain.RulePrincipalPlaceOfResidence}, result.ExemptionsApplied)
	assert.Empty(t, result.AdditionalCharges)
	assert.Empty(t, result.Warnings)
	assert.Len(t, result.Breakdown, 1)
	assert.Equal(t, "Principal place of residence exemption", result.Breakdown[0].Description)
}

func TestLandTaxPremiumPropertySurcharge(t *testing.T) {
	calc := NewLandTaxCalculator(config.DefaultLandTaxSchedule2024())

	tests := []struct {
		name           string
		value          decimal.Decimal
		expectedTax    decimal.Decimal
		expectedCharge *decimal.Decimal
	}{
		{
			name:           "At the premium threshold no surcharge applies",
			value:          decimal.NewFromInt(3000000),
			expectedTax:    decimal.NewFromInt(32496), // (3000000 - 969000) * 1.6%
			expectedCharge: nil,
		},
		{
			name:           "One dollar over the premium threshold",
			value:          decimal.NewFromInt(3000001),
			expectedTax:    decimal.NewFromFloat(32496.02),
			expectedCharge: decimalPtr(decimal.NewFromFloat(60000.02)), // 2% of the whole value
		},
		{
			name:           "Well over the premium threshold",
			value:          decimal.NewFromInt(5000000),
			expectedTax:    decimal.NewFromInt(66544),
			expectedCharge: decimalPtr(decimal.NewFromInt(100000)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Calculate(domain.LandTaxInput{PropertyValue: tt.value})
			assert.NoError(t, err)

			// The surcharge never folds into the base total.
			assert.True(t, result.TotalTax.Equal(tt.expectedTax),
				"%s: Expected base tax %s, got %s", tt.name, tt.expectedTax, result.TotalTax)

			if tt.expectedCharge == nil {
				assert.Empty(t, result.AdditionalCharges)
				assert.Empty(t, result.Warnings)
				return
			}

			assert.Len(t, result.AdditionalCharges, 1)
			charge := result.AdditionalCharges[0]
			assert.Equal(t, domain.ChargePremiumPropertyTax, charge.Name)
			assert.True(t, charge.Amount.Equal(*tt.expectedCharge),
				"%s: Expected charge %s, got %s", tt.name, tt.expectedCharge, charge.Amount)
			assert.Contains(t, result.Warnings,
				"Premium property tax (2% surcharge) applies to properties over $3M")
		})
	}
}

func TestLandTaxNegativeValue(t *testing.T) {
	calc := NewLandTaxCalculator(config.DefaultLandTaxSchedule2024())

	result, err := calc.Calculate(domain.LandTaxInput{PropertyValue: decimal.NewFromInt(-1)})
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err), "Expected an input validation error, got %v", err)

	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "property_value", validation.Field)
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
