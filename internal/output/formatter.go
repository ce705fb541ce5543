package output

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/scobrk/nswtax/internal/domain"
)

// Formatter renders calculation results in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.TaxCalculationResult) ([]byte, error)
	FormatScenario(scenario *domain.ScenarioResult) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName returns the registered formatter with that name, or
// nil if none matches.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// Names lists the registered formatter names.
func Names() []string {
	names := make([]string, len(formatters))
	for i, f := range formatters {
		names[i] = f.Name()
	}
	return names
}

// WriteTo formats a result and writes it to w.
func WriteTo(w io.Writer, f Formatter, result *domain.TaxCalculationResult) error {
	data, err := f.Format(result)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteScenarioTo formats a scenario result and writes it to w.
func WriteScenarioTo(w io.Writer, f Formatter, scenario *domain.ScenarioResult) error {
	data, err := f.FormatScenario(scenario)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// FormatCurrency formats a decimal as currency.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a fractional rate as a percentage.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
