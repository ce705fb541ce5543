package config

import (
	"github.com/shopspring/decimal"

	"github.com/scobrk/nswtax/internal/domain"
)

// NSW RATE SCHEDULE ASSUMPTIONS:
// 1. Figures are the 2024-25 published Revenue NSW tables: land tax
//    threshold $969,000 and premium threshold $4,488,000; payroll tax-free
//    threshold $1,300,000 at 5.45%; transfer duty bands to $1,064,000.
// 2. Stamp duty bands carry both a fixed amount and a marginal rate; the
//    walk accumulates the fixed amount of every band the value reaches.
// 3. Surcharges (foreign purchaser 8%, premium property 2%) are flat on the
//    whole value, itemized separately from the base total.
// 4. Land tax rounds to the cent; payroll tax and transfer duty round to
//    the whole dollar. All rounding is half-up on the final total.

// DefaultSchedules builds the embedded 2024-25 NSW schedule set. The same
// validation applied to schedule files runs here, so a bad edit to the
// literals fails construction rather than producing wrong figures.
func DefaultSchedules() (*domain.ScheduleSet, error) {
	return BuildScheduleSet([]*domain.TaxSchedule{
		DefaultLandTaxSchedule2024(),
		DefaultPayrollTaxSchedule2024(),
		DefaultStampDutySchedule2024(),
	})
}

// DefaultLandTaxSchedule2024 returns the 2024 land tax year schedule.
func DefaultLandTaxSchedule2024() *domain.TaxSchedule {
	return &domain.TaxSchedule{
		TaxType:  domain.TaxTypeLandTax,
		Rounding: domain.RoundToCent,
		Thresholds: []domain.RateThreshold{
			{
				MinValue:    decimal.Zero,
				MaxValue:    bound(969000),
				Rate:        decimal.Zero,
				FixedAmount: decimal.Zero,
				Description: "Below land tax threshold",
			},
			{
				// General rate: 1.6% of the value above the threshold
				MinValue:    decimal.NewFromInt(969000),
				MaxValue:    bound(4488000),
				Rate:        decimal.NewFromFloat(0.016),
				FixedAmount: decimal.Zero,
				Description: "General rate",
			},
			{
				// Premium rate: 2% of the value above the premium threshold
				MinValue:    decimal.NewFromInt(4488000),
				MaxValue:    nil,
				Rate:        decimal.NewFromFloat(0.02),
				FixedAmount: decimal.Zero,
				Description: "Premium rate",
			},
		},
		Exemptions: []domain.ExemptionRule{
			{Name: domain.RulePrincipalPlaceOfResidence, AppliesTo: "all_residential"},
		},
		Surcharges: []domain.SurchargeRule{
			{
				Name:      domain.ChargePremiumPropertyTax,
				Rate:      decimal.NewFromFloat(0.02),
				Threshold: decimal.NewFromInt(3000000),
				Basis:     domain.SurchargeBasisFullValue,
				Warning:   "Premium property tax (2% surcharge) applies to properties over $3M",
			},
		},
		RateStructure: "progressive_tiered",
		EffectiveFrom: "2024-01-01",
		EffectiveTo:   "2024-12-31",
		LastUpdated:   "2024-09-15",
		Source:        "Land Tax Management Act 1956 (NSW)",
	}
}

// DefaultPayrollTaxSchedule2024 returns the 2024-25 payroll tax schedule.
// The tax-free threshold is expressed as a 0% first band so the same walk
// serves every tax type.
func DefaultPayrollTaxSchedule2024() *domain.TaxSchedule {
	return &domain.TaxSchedule{
		TaxType:  domain.TaxTypePayrollTax,
		Rounding: domain.RoundToDollar,
		Thresholds: []domain.RateThreshold{
			{
				MinValue:    decimal.Zero,
				MaxValue:    bound(1300000),
				Rate:        decimal.Zero,
				FixedAmount: decimal.Zero,
				Description: "Tax-free threshold",
			},
			{
				MinValue:    decimal.NewFromInt(1300000),
				MaxValue:    nil,
				Rate:        decimal.NewFromFloat(0.0545),
				FixedAmount: decimal.Zero,
				Description: "Taxable payroll (excess over threshold)",
			},
		},
		MonthlyThreshold: bound(108333),
		RateStructure:    "flat_rate_above_threshold",
		EffectiveFrom:    "2024-07-01",
		EffectiveTo:      "2025-06-30",
		LastUpdated:      "2024-09-15",
		Source:           "Payroll Tax Act 2007 (NSW)",
	}
}

// DefaultStampDutySchedule2024 returns the 2024-25 transfer (stamp) duty
// schedule with the first home buyer concession and the foreign purchaser
// surcharge.
func DefaultStampDutySchedule2024() *domain.TaxSchedule {
	return &domain.TaxSchedule{
		TaxType:  domain.TaxTypeStampDuty,
		Rounding: domain.RoundToDollar,
		Thresholds: []domain.RateThreshold{
			{
				MinValue:    decimal.Zero,
				MaxValue:    bound(14000),
				Rate:        decimal.NewFromFloat(0.0125),
				FixedAmount: decimal.Zero,
				Description: "Duty on amount in this band",
			},
			{
				MinValue:    decimal.NewFromInt(14000),
				MaxValue:    bound(32000),
				Rate:        decimal.NewFromFloat(0.015),
				FixedAmount: decimal.NewFromInt(175),
				Description: "Duty on amount in this band",
			},
			{
				MinValue:    decimal.NewFromInt(32000),
				MaxValue:    bound(85000),
				Rate:        decimal.NewFromFloat(0.0175),
				FixedAmount: decimal.NewFromInt(445),
				Description: "Duty on amount in this band",
			},
			{
				MinValue:    decimal.NewFromInt(85000),
				MaxValue:    bound(319000),
				Rate:        decimal.NewFromFloat(0.035),
				FixedAmount: decimal.NewFromFloat(1372.50),
				Description: "Duty on amount in this band",
			},
			{
				MinValue:    decimal.NewFromInt(319000),
				MaxValue:    bound(1064000),
				Rate:        decimal.NewFromFloat(0.045),
				FixedAmount: decimal.NewFromFloat(9562.50),
				Description: "Duty on amount in this band",
			},
			{
				MinValue:    decimal.NewFromInt(1064000),
				MaxValue:    nil,
				Rate:        decimal.NewFromFloat(0.055),
				FixedAmount: decimal.NewFromFloat(43087.50),
				Description: "Duty on amount in this band",
			},
		},
		Concession: &domain.ConcessionRule{
			Name:                   "first_home_buyer",
			FullExemptionThreshold: decimal.NewFromInt(650000),
			PartialExemptionMax:    decimal.NewFromInt(800000),
		},
		Surcharges: []domain.SurchargeRule{
			{
				Name:    domain.ChargeForeignPurchaserDuty,
				Rate:    decimal.NewFromFloat(0.08),
				Basis:   domain.SurchargeBasisFullValue,
				Flag:    domain.FlagForeignPurchaser,
				Warning: "Foreign purchaser additional duty (8%) applies",
			},
		},
		RateStructure: "progressive_tiered",
		EffectiveFrom: "2024-07-01",
		EffectiveTo:   "2025-06-30",
		LastUpdated:   "2024-09-15",
		Source:        "Duties Act 1997 (NSW)",
	}
}

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}
