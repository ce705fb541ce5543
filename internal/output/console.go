package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/scobrk/nswtax/internal/domain"
)

// ConsoleFormatter renders a human-readable report.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.TaxCalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	writeResult(&buf, result)
	return buf.Bytes(), nil
}

func (ConsoleFormatter) FormatScenario(scenario *domain.ScenarioResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintln(&buf, "COMBINED TAX SCENARIO")
	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintln(&buf)

	for _, result := range scenario.Results {
		writeResult(&buf, result)
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, strings.Repeat("-", 64))
	fmt.Fprintf(&buf, "Total base tax:           %s\n", FormatCurrency(scenario.TotalBaseTax()))
	fmt.Fprintf(&buf, "Total additional charges: %s\n", FormatCurrency(scenario.TotalAdditionalCharges()))
	return buf.Bytes(), nil
}

func writeResult(buf *bytes.Buffer, result *domain.TaxCalculationResult) {
	title := strings.ToUpper(strings.ReplaceAll(string(result.TaxType), "_", " "))
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", len(title)))
	fmt.Fprintf(buf, "Total tax: %s\n", FormatCurrency(result.TotalTax))

	if len(result.Breakdown) > 0 {
		fmt.Fprintln(buf, "Breakdown:")
		for _, line := range result.Breakdown {
			writeLine(buf, line)
		}
	}
	if len(result.ExemptionsApplied) > 0 {
		fmt.Fprintf(buf, "Exemptions applied: %s\n", strings.Join(result.ExemptionsApplied, ", "))
	}
	if len(result.ConcessionsApplied) > 0 {
		fmt.Fprintf(buf, "Concessions applied: %s\n", strings.Join(result.ConcessionsApplied, ", "))
	}
	if len(result.AdditionalCharges) > 0 {
		fmt.Fprintln(buf, "Additional charges:")
		for _, charge := range result.AdditionalCharges {
			fmt.Fprintf(buf, "  %s: %s\n", charge.Name, FormatCurrency(charge.Amount))
		}
		fmt.Fprintf(buf, "Total including additional charges: %s\n",
			FormatCurrency(result.TotalIncludingCharges()))
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(buf, "Warning: %s\n", warning)
	}
}

func writeLine(buf *bytes.Buffer, line domain.BreakdownLine) {
	if line.BandMin == nil {
		fmt.Fprintf(buf, "  %s: %s\n", line.Description, FormatCurrency(line.Amount))
		return
	}

	upper := "unlimited"
	if line.BandMax != nil {
		upper = "$" + line.BandMax.StringFixed(0)
	}
	bandRange := fmt.Sprintf("$%s - %s", line.BandMin.StringFixed(0), upper)
	fmt.Fprintf(buf, "  %-24s taxable %s @ %s + %s = %s\n",
		bandRange,
		FormatCurrency(line.TaxableAmount),
		FormatPercentage(line.Rate),
		FormatCurrency(line.FixedAmount),
		FormatCurrency(line.Amount))
}
