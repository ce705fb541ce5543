package calculation

import (
	"go.uber.org/zap"

	"github.com/scobrk/nswtax/internal/domain"
)

// RateCalculationService is the calculation entry point over an immutable,
// pre-validated schedule set. It holds no per-call state, so every method
// is safe for concurrent use without synchronization.
type RateCalculationService struct {
	schedules *domain.ScheduleSet
	logger    *zap.Logger

	landTax   *LandTaxCalculator
	payroll   *PayrollTaxCalculator
	stampDuty *StampDutyCalculator
}

// NewRateCalculationService builds the service for a loaded schedule set.
// A nil logger disables logging. Missing schedules surface later as
// not-found errors on the calls that need them, not here.
func NewRateCalculationService(schedules *domain.ScheduleSet, logger *zap.Logger) *RateCalculationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &RateCalculationService{schedules: schedules, logger: logger}

	if s, ok := schedules.Get(domain.TaxTypeLandTax); ok {
		svc.landTax = NewLandTaxCalculator(s)
	}
	if s, ok := schedules.Get(domain.TaxTypePayrollTax); ok {
		svc.payroll = NewPayrollTaxCalculator(s)
	}
	if s, ok := schedules.Get(domain.TaxTypeStampDuty); ok {
		svc.stampDuty = NewStampDutyCalculator(s)
	}

	logger.Info("rate calculation service initialized",
		zap.Int("schedules", schedules.Len()),
		zap.Strings("tax_types", typeNames(schedules.Types())))
	return svc
}

// CalculateLandTax computes land tax for a property value.
func (s *RateCalculationService) CalculateLandTax(input domain.LandTaxInput) (*domain.TaxCalculationResult, error) {
	if s.landTax == nil {
		return nil, &domain.ScheduleNotFoundError{TaxType: domain.TaxTypeLandTax}
	}
	s.logger.Debug("calculating land tax",
		zap.String("property_value", input.PropertyValue.String()),
		zap.Bool("principal_place_of_residence", input.IsPrincipalPlaceOfResidence))
	return s.landTax.Calculate(input)
}

// CalculatePayrollTax computes payroll tax for an annual payroll.
func (s *RateCalculationService) CalculatePayrollTax(input domain.PayrollTaxInput) (*domain.TaxCalculationResult, error) {
	if s.payroll == nil {
		return nil, &domain.ScheduleNotFoundError{TaxType: domain.TaxTypePayrollTax}
	}
	s.logger.Debug("calculating payroll tax",
		zap.String("annual_payroll", input.AnnualPayroll.String()),
		zap.String("period", string(input.Period)))
	return s.payroll.Calculate(input)
}

// CalculateStampDuty computes transfer duty for a property value.
func (s *RateCalculationService) CalculateStampDuty(input domain.StampDutyInput) (*domain.TaxCalculationResult, error) {
	if s.stampDuty == nil {
		return nil, &domain.ScheduleNotFoundError{TaxType: domain.TaxTypeStampDuty}
	}
	s.logger.Debug("calculating stamp duty",
		zap.String("property_value", input.PropertyValue.String()),
		zap.Bool("first_home_buyer", input.IsFirstHomeBuyer),
		zap.Bool("foreign_purchaser", input.IsForeignPurchaser))
	return s.stampDuty.Calculate(input)
}

// Calculate dispatches on tax type, reading only the generic input fields
// the target calculator understands. Unsupported types report not-found,
// never a zero result.
func (s *RateCalculationService) Calculate(taxType domain.TaxType, input domain.CalculationInput) (*domain.TaxCalculationResult, error) {
	switch taxType {
	case domain.TaxTypeLandTax:
		return s.CalculateLandTax(domain.LandTaxInput{
			PropertyValue:               input.Amount,
			IsPrincipalPlaceOfResidence: input.IsPrincipalPlaceOfResidence,
		})
	case domain.TaxTypePayrollTax:
		return s.CalculatePayrollTax(domain.PayrollTaxInput{
			AnnualPayroll: input.Amount,
			Period:        input.Period,
		})
	case domain.TaxTypeStampDuty:
		return s.CalculateStampDuty(domain.StampDutyInput{
			PropertyValue:      input.Amount,
			IsFirstHomeBuyer:   input.IsFirstHomeBuyer,
			IsForeignPurchaser: input.IsForeignPurchaser,
		})
	default:
		return nil, &domain.ScheduleNotFoundError{TaxType: taxType}
	}
}

// CalculateScenario computes every tax a combined scenario attracts. Taxes
// are independent: a property purchase yields stamp duty on the transfer
// plus ongoing land tax, a business with payroll yields payroll tax, and
// one scenario may be both. No cross-tax coupling exists.
func (s *RateCalculationService) CalculateScenario(input domain.ScenarioInput) (*domain.ScenarioResult, error) {
	var results []*domain.TaxCalculationResult

	if input.TransactionType == domain.TransactionPropertyPurchase {
		duty, err := s.CalculateStampDuty(domain.StampDutyInput{
			PropertyValue:      input.PropertyValue,
			IsFirstHomeBuyer:   input.IsFirstHomeBuyer,
			IsForeignPurchaser: input.IsForeignPurchaser,
		})
		if err != nil {
			return nil, err
		}
		land, err := s.CalculateLandTax(domain.LandTaxInput{
			PropertyValue:               input.PropertyValue,
			IsPrincipalPlaceOfResidence: input.IsPrincipalPlaceOfResidence,
		})
		if err != nil {
			return nil, err
		}
		results = append(results, duty, land)
	}

	if input.EntityType == domain.EntityBusiness && input.AnnualPayroll != nil {
		payroll, err := s.CalculatePayrollTax(domain.PayrollTaxInput{
			AnnualPayroll: *input.AnnualPayroll,
		})
		if err != nil {
			return nil, err
		}
		results = append(results, payroll)
	}

	if len(results) == 0 {
		return nil, &domain.ValidationError{
			Field:   "scenario",
			Message: "no transaction_type or entity_type matched a supported calculation",
		}
	}
	return &domain.ScenarioResult{Results: results}, nil
}

// AvailableTaxTypes lists the loaded tax types in sorted order.
func (s *RateCalculationService) AvailableTaxTypes() []domain.TaxType {
	return s.schedules.Types()
}

// ScheduleInfo summarizes a loaded schedule for display.
func (s *RateCalculationService) ScheduleInfo(taxType domain.TaxType) (*domain.ScheduleInfo, error) {
	schedule, ok := s.schedules.Get(taxType)
	if !ok {
		return nil, &domain.ScheduleNotFoundError{TaxType: taxType}
	}
	return &domain.ScheduleInfo{
		TaxType:       schedule.TaxType,
		RateStructure: schedule.RateStructure,
		EffectiveFrom: schedule.EffectiveFrom,
		EffectiveTo:   schedule.EffectiveTo,
		LastUpdated:   schedule.LastUpdated,
		Source:        schedule.Source,
		Bands:         len(schedule.Thresholds),
		Rounding:      schedule.Rounding,
	}, nil
}

func typeNames(types []domain.TaxType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}
