package output

import (
	"bytes"
	"encoding/csv"

	"github.com/scobrk/nswtax/internal/domain"
)

// CSVFormatter renders results as CSV, one row per breakdown line plus
// total and additional-charge rows.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

var csvHeader = []string{
	"tax_type", "description", "band_min", "band_max",
	"taxable_amount", "rate", "fixed_amount", "amount",
}

func (CSVFormatter) Format(result *domain.TaxCalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	if err := writeResultRows(writer, result); err != nil {
		return nil, err
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

func (CSVFormatter) FormatScenario(scenario *domain.ScenarioResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, result := range scenario.Results {
		if err := writeResultRows(writer, result); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

func writeResultRows(writer *csv.Writer, result *domain.TaxCalculationResult) error {
	taxType := string(result.TaxType)

	for _, line := range result.Breakdown {
		bandMin, bandMax := "", ""
		if line.BandMin != nil {
			bandMin = line.BandMin.StringFixed(0)
		}
		if line.BandMax != nil {
			bandMax = line.BandMax.StringFixed(0)
		}
		row := []string{
			taxType, line.Description, bandMin, bandMax,
			line.TaxableAmount.StringFixed(2), line.Rate.String(),
			line.FixedAmount.StringFixed(2), line.Amount.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	total := []string{taxType, "TOTAL", "", "", "", "", "", result.TotalTax.StringFixed(2)}
	if err := writer.Write(total); err != nil {
		return err
	}

	for _, charge := range result.AdditionalCharges {
		row := []string{taxType, charge.Name, "", "", "", "", "", charge.Amount.StringFixed(2)}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}
