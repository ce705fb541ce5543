package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TaxType identifies a revenue schedule supported by the engine.
type TaxType string

const (
	TaxTypeLandTax    TaxType = "land_tax"
	TaxTypePayrollTax TaxType = "payroll_tax"
	TaxTypeStampDuty  TaxType = "stamp_duty"
)

// RoundingUnit selects the unit the final tax total is rounded to.
// Rounding is half-up and applied once, to the summed total.
type RoundingUnit string

const (
	RoundToCent   RoundingUnit = "cent"
	RoundToDollar RoundingUnit = "dollar"
)

// SurchargeBasis states how a surcharge amount is computed once triggered.
type SurchargeBasis string

const (
	// SurchargeBasisFullValue charges rate * the whole input value once the
	// threshold is exceeded, not just the excess above it.
	SurchargeBasisFullValue SurchargeBasis = "full_value"
	// SurchargeBasisMarginal charges rate * the excess above the threshold.
	// None of the embedded NSW schedules use it.
	SurchargeBasisMarginal SurchargeBasis = "marginal"
)

// RateThreshold is one band of a progressive rate schedule. Bands are
// half-open [MinValue, MaxValue); a nil MaxValue marks the unbounded top
// band. FixedAmount is charged once the amount reaches the band, on top of
// the marginal component.
type RateThreshold struct {
	MinValue    decimal.Decimal  `yaml:"min_value" json:"min_value"`
	MaxValue    *decimal.Decimal `yaml:"max_value,omitempty" json:"max_value,omitempty"`
	Rate        decimal.Decimal  `yaml:"rate" json:"rate"`
	FixedAmount decimal.Decimal  `yaml:"fixed_amount" json:"fixed_amount"`
	Description string           `yaml:"description,omitempty" json:"description,omitempty"`
}

// IsUnbounded reports whether this is the open-ended top band.
func (rt RateThreshold) IsUnbounded() bool {
	return rt.MaxValue == nil
}

// Width returns MaxValue - MinValue. ok is false for the unbounded band.
func (rt RateThreshold) Width() (decimal.Decimal, bool) {
	if rt.MaxValue == nil {
		return decimal.Zero, false
	}
	return rt.MaxValue.Sub(rt.MinValue), true
}

// ExemptionRule names a full exemption the schedule recognises. The
// calculator honours the matching input flag only when the rule is present,
// so a schedule file can switch exemptions off.
type ExemptionRule struct {
	Name      string `yaml:"name" json:"name"`
	AppliesTo string `yaml:"applies_to,omitempty" json:"applies_to,omitempty"`
}

// ConcessionRule holds the sliding-scale concession parameters: full
// exemption at or below FullExemptionThreshold, linear taper up to
// PartialExemptionMax, full liability above that.
type ConcessionRule struct {
	Name                   string          `yaml:"name" json:"name"`
	FullExemptionThreshold decimal.Decimal `yaml:"full_exemption_threshold" json:"full_exemption_threshold"`
	PartialExemptionMax    decimal.Decimal `yaml:"partial_exemption_max" json:"partial_exemption_max"`
}

// SurchargeRule is a flat additional charge layered on top of the base tax,
// reported separately and never folded into the base total. Threshold is a
// strictly-greater trigger; zero means the rule applies whenever its flag
// does. Flag names the input flag gating the rule; empty means value-only.
type SurchargeRule struct {
	Name      string          `yaml:"name" json:"name"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Basis     SurchargeBasis  `yaml:"basis" json:"basis"`
	Flag      string          `yaml:"flag,omitempty" json:"flag,omitempty"`
	Warning   string          `yaml:"warning,omitempty" json:"warning,omitempty"`
}

// TaxSchedule bundles everything the engine needs for one tax type: the
// ordered band table, rounding policy, exemption/concession/surcharge rules,
// and display metadata.
type TaxSchedule struct {
	TaxType          TaxType          `yaml:"tax_type" json:"tax_type"`
	Rounding         RoundingUnit     `yaml:"rounding" json:"rounding"`
	Thresholds       []RateThreshold  `yaml:"thresholds" json:"thresholds"`
	Exemptions       []ExemptionRule  `yaml:"exemptions,omitempty" json:"exemptions,omitempty"`
	Concession       *ConcessionRule  `yaml:"concession,omitempty" json:"concession,omitempty"`
	Surcharges       []SurchargeRule  `yaml:"surcharges,omitempty" json:"surcharges,omitempty"`
	MonthlyThreshold *decimal.Decimal `yaml:"monthly_threshold,omitempty" json:"monthly_threshold,omitempty"`

	RateStructure string `yaml:"rate_structure,omitempty" json:"rate_structure,omitempty"`
	EffectiveFrom string `yaml:"effective_from,omitempty" json:"effective_from,omitempty"`
	EffectiveTo   string `yaml:"effective_to,omitempty" json:"effective_to,omitempty"`
	LastUpdated   string `yaml:"last_updated,omitempty" json:"last_updated,omitempty"`
	Source        string `yaml:"source,omitempty" json:"source,omitempty"`
}

// HasExemption reports whether the schedule recognises the named exemption.
func (s *TaxSchedule) HasExemption(name string) bool {
	for _, e := range s.Exemptions {
		if e.Name == name {
			return true
		}
	}
	return false
}

// ScheduleInfo is the display summary returned for a loaded schedule.
type ScheduleInfo struct {
	TaxType       TaxType      `json:"tax_type"`
	RateStructure string       `json:"rate_structure,omitempty"`
	EffectiveFrom string       `json:"effective_from,omitempty"`
	EffectiveTo   string       `json:"effective_to,omitempty"`
	LastUpdated   string       `json:"last_updated,omitempty"`
	Source        string       `json:"source,omitempty"`
	Bands         int          `json:"bands"`
	Rounding      RoundingUnit `json:"rounding"`
}

// ScheduleSet is the read-only repository of loaded schedules, one per tax
// type. It is built once at startup and safe for concurrent reads.
type ScheduleSet struct {
	schedules map[TaxType]*TaxSchedule
	order     []TaxType
}

// NewScheduleSet builds a set from validated schedules. Duplicate tax types
// are rejected.
func NewScheduleSet(schedules []*TaxSchedule) (*ScheduleSet, error) {
	set := &ScheduleSet{schedules: make(map[TaxType]*TaxSchedule, len(schedules))}
	for _, s := range schedules {
		if _, exists := set.schedules[s.TaxType]; exists {
			return nil, &ScheduleValidationError{
				TaxType:  s.TaxType,
				Problems: []string{"duplicate schedule for tax type"},
			}
		}
		set.schedules[s.TaxType] = s
		set.order = append(set.order, s.TaxType)
	}
	sort.Slice(set.order, func(i, j int) bool { return set.order[i] < set.order[j] })
	return set, nil
}

// Get returns the schedule for a tax type.
func (ss *ScheduleSet) Get(taxType TaxType) (*TaxSchedule, bool) {
	s, ok := ss.schedules[taxType]
	return s, ok
}

// Types returns the loaded tax types in sorted order.
func (ss *ScheduleSet) Types() []TaxType {
	out := make([]TaxType, len(ss.order))
	copy(out, ss.order)
	return out
}

// Len returns the number of loaded schedules.
func (ss *ScheduleSet) Len() int {
	return len(ss.schedules)
}
