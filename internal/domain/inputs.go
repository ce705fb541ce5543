package domain

import "github.com/shopspring/decimal"

// PayrollPeriod selects annual or monthly payroll tax reporting. Monthly
// divides the annual figure by twelve, uniformly across total and breakdown.
type PayrollPeriod string

const (
	PeriodAnnual  PayrollPeriod = "annual"
	PeriodMonthly PayrollPeriod = "monthly"
)

// Input flag names referenced by schedule surcharge rules.
const (
	FlagForeignPurchaser = "is_foreign_purchaser"
)

// LandTaxInput describes one land tax calculation request.
type LandTaxInput struct {
	PropertyValue               decimal.Decimal
	IsPrincipalPlaceOfResidence bool
}

// PayrollTaxInput describes one payroll tax calculation request. An empty
// Period means annual.
type PayrollTaxInput struct {
	AnnualPayroll decimal.Decimal
	Period        PayrollPeriod
}

// StampDutyInput describes one transfer duty calculation request.
type StampDutyInput struct {
	PropertyValue      decimal.Decimal
	IsFirstHomeBuyer   bool
	IsForeignPurchaser bool
}

// CalculationInput is the generic flag bag accepted by the type-dispatching
// entry point. Each calculator reads only the fields it understands.
type CalculationInput struct {
	Amount                      decimal.Decimal
	IsPrincipalPlaceOfResidence bool
	IsFirstHomeBuyer            bool
	IsForeignPurchaser          bool
	Period                      PayrollPeriod
}

// Scenario discriminators. A scenario may match both sections at once.
const (
	TransactionPropertyPurchase = "property_purchase"
	EntityBusiness              = "business"
)

// ScenarioInput describes a combined multi-tax scenario. Taxes are computed
// independently; no cross-tax interaction exists in the NSW rules modelled
// here.
type ScenarioInput struct {
	TransactionType             string
	EntityType                  string
	PropertyValue               decimal.Decimal
	IsFirstHomeBuyer            bool
	IsForeignPurchaser          bool
	IsPrincipalPlaceOfResidence bool
	AnnualPayroll               *decimal.Decimal
}

// ScenarioResult holds the independently computed results of a combined
// scenario, in computation order.
type ScenarioResult struct {
	Results []*TaxCalculationResult `json:"results"`
}

// Get returns the result for a tax type, or nil.
func (sr *ScenarioResult) Get(taxType TaxType) *TaxCalculationResult {
	for _, r := range sr.Results {
		if r.TaxType == taxType {
			return r
		}
	}
	return nil
}

// TotalBaseTax sums the base totals across all results. Surcharges stay
// itemized; see TotalAdditionalCharges.
func (sr *ScenarioResult) TotalBaseTax() decimal.Decimal {
	total := decimal.Zero
	for _, r := range sr.Results {
		total = total.Add(r.TotalTax)
	}
	return total
}

// TotalAdditionalCharges sums the itemized surcharges across all results.
func (sr *ScenarioResult) TotalAdditionalCharges() decimal.Decimal {
	total := decimal.Zero
	for _, r := range sr.Results {
		total = total.Add(r.AdditionalTotal())
	}
	return total
}
