package output

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/scobrk/nswtax/internal/domain"
)

// JSONFormatter renders results as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.TaxCalculationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

type scenarioEnvelope struct {
	Results                []*domain.TaxCalculationResult `json:"results"`
	TotalBaseTax           decimal.Decimal                `json:"total_base_tax"`
	TotalAdditionalCharges decimal.Decimal                `json:"total_additional_charges"`
}

func (JSONFormatter) FormatScenario(scenario *domain.ScenarioResult) ([]byte, error) {
	return json.MarshalIndent(scenarioEnvelope{
		Results:                scenario.Results,
		TotalBaseTax:           scenario.TotalBaseTax(),
		TotalAdditionalCharges: scenario.TotalAdditionalCharges(),
	}, "", "  ")
}
