package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/scobrk/nswtax/internal/domain"
)

// ScheduleParser loads and validates rate schedule files. A schedule file is
// a YAML document with a top-level "schedules" list; see test/testdata for a
// complete example.
type ScheduleParser struct{}

// NewScheduleParser creates a new schedule parser.
func NewScheduleParser() *ScheduleParser {
	return &ScheduleParser{}
}

type scheduleDocument struct {
	Schedules []*domain.TaxSchedule `yaml:"schedules"`
}

// LoadFromFile reads, parses, and validates a schedule file.
func (p *ScheduleParser) LoadFromFile(filename string) (*domain.ScheduleSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read schedule file %s", filename)
	}
	set, err := p.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load schedule file %s", filename)
	}
	return set, nil
}

// Parse unmarshals a schedule document and validates every schedule in it.
func (p *ScheduleParser) Parse(data []byte) (*domain.ScheduleSet, error) {
	var doc scheduleDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse schedule document")
	}
	if len(doc.Schedules) == 0 {
		return nil, errors.New("schedule document contains no schedules")
	}
	return BuildScheduleSet(doc.Schedules)
}

// BuildScheduleSet validates each schedule and assembles the read-only set.
func BuildScheduleSet(schedules []*domain.TaxSchedule) (*domain.ScheduleSet, error) {
	for _, s := range schedules {
		if err := ValidateSchedule(s); err != nil {
			return nil, err
		}
	}
	return domain.NewScheduleSet(schedules)
}

var one = decimal.NewFromInt(1)

// ValidateSchedule checks the structural invariants of one schedule: bands
// cover [0, inf) contiguously with exactly one unbounded top band, rates sit
// in [0, 1], fixed amounts are non-negative, and rule parameters are
// coherent. Every problem found is reported, not just the first.
func ValidateSchedule(s *domain.TaxSchedule) error {
	var problems []string
	fail := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if s.TaxType == "" {
		fail("tax_type is required")
	}
	switch s.Rounding {
	case domain.RoundToCent, domain.RoundToDollar:
	default:
		fail("unknown rounding unit %q", string(s.Rounding))
	}

	if len(s.Thresholds) == 0 {
		fail("schedule has no rate thresholds")
	} else {
		validateThresholds(s.Thresholds, fail)
	}

	if c := s.Concession; c != nil {
		if c.FullExemptionThreshold.IsNegative() {
			fail("concession %s: full_exemption_threshold is negative", c.Name)
		}
		if !c.PartialExemptionMax.GreaterThan(c.FullExemptionThreshold) {
			fail("concession %s: partial_exemption_max %s must exceed full_exemption_threshold %s",
				c.Name, c.PartialExemptionMax, c.FullExemptionThreshold)
		}
	}

	for _, sur := range s.Surcharges {
		if sur.Name == "" {
			fail("surcharge has no name")
		}
		if sur.Rate.IsNegative() || sur.Rate.GreaterThan(one) {
			fail("surcharge %s: rate %s outside [0, 1]", sur.Name, sur.Rate)
		}
		if sur.Threshold.IsNegative() {
			fail("surcharge %s: threshold is negative", sur.Name)
		}
		switch sur.Basis {
		case domain.SurchargeBasisFullValue, domain.SurchargeBasisMarginal:
		default:
			fail("surcharge %s: basis must be explicit, got %q", sur.Name, string(sur.Basis))
		}
	}

	if s.MonthlyThreshold != nil && s.MonthlyThreshold.IsNegative() {
		fail("monthly_threshold is negative")
	}

	if len(problems) > 0 {
		return &domain.ScheduleValidationError{TaxType: s.TaxType, Problems: problems}
	}
	return nil
}

func validateThresholds(thresholds []domain.RateThreshold, fail func(string, ...interface{})) {
	last := len(thresholds) - 1
	for i, t := range thresholds {
		if t.MinValue.IsNegative() {
			fail("threshold %d: min_value %s is negative", i, t.MinValue)
		}
		if t.Rate.IsNegative() || t.Rate.GreaterThan(one) {
			fail("threshold %d: rate %s outside [0, 1]", i, t.Rate)
		}
		if t.FixedAmount.IsNegative() {
			fail("threshold %d: fixed_amount %s is negative", i, t.FixedAmount)
		}
		if t.MaxValue != nil && !t.MaxValue.GreaterThan(t.MinValue) {
			fail("threshold %d: max_value %s must exceed min_value %s", i, t.MaxValue, t.MinValue)
		}
		if i < last && t.MaxValue == nil {
			fail("threshold %d: only the last threshold may be unbounded", i)
		}
	}

	if !thresholds[0].MinValue.IsZero() {
		fail("first threshold must start at 0, got %s", thresholds[0].MinValue)
	}
	if thresholds[last].MaxValue != nil {
		fail("last threshold must be unbounded")
	}
	for i := 1; i <= last; i++ {
		prev := thresholds[i-1]
		if prev.MaxValue == nil {
			continue
		}
		if !thresholds[i].MinValue.Equal(*prev.MaxValue) {
			fail("threshold %d: gap or overlap: min_value %s does not meet previous max_value %s",
				i, thresholds[i].MinValue, prev.MaxValue)
		}
	}
}
