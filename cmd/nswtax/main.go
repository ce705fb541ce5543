package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scobrk/nswtax/internal/calculation"
	"github.com/scobrk/nswtax/internal/config"
	"github.com/scobrk/nswtax/internal/domain"
	"github.com/scobrk/nswtax/internal/logging"
	"github.com/scobrk/nswtax/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "nswtax",
	Short: "NSW revenue tax calculator CLI",
	Long:  "Calculates NSW land tax, payroll tax, and transfer (stamp) duty from published rate schedules, with full per-band breakdowns.",
}

var landTaxCmd = &cobra.Command{
	Use:   "land-tax [property-value]",
	Short: "Calculate land tax for a property value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := buildLogger(cmd)
		service := buildService(cmd, logger)

		ppr, _ := cmd.Flags().GetBool("ppr")
		result, err := service.CalculateLandTax(domain.LandTaxInput{
			PropertyValue:               parseAmount(logger, "property-value", args[0]),
			IsPrincipalPlaceOfResidence: ppr,
		})
		if err != nil {
			logger.Fatal("land tax calculation failed", zap.Error(err))
		}
		renderResult(logger, cmd, result)
	},
}

var payrollTaxCmd = &cobra.Command{
	Use:   "payroll-tax [annual-payroll]",
	Short: "Calculate payroll tax for an annual payroll",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := buildLogger(cmd)
		service := buildService(cmd, logger)

		period, _ := cmd.Flags().GetString("period")
		result, err := service.CalculatePayrollTax(domain.PayrollTaxInput{
			AnnualPayroll: parseAmount(logger, "annual-payroll", args[0]),
			Period:        domain.PayrollPeriod(period),
		})
		if err != nil {
			logger.Fatal("payroll tax calculation failed", zap.Error(err))
		}
		renderResult(logger, cmd, result)
	},
}

var stampDutyCmd = &cobra.Command{
	Use:   "stamp-duty [property-value]",
	Short: "Calculate transfer (stamp) duty for a property value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := buildLogger(cmd)
		service := buildService(cmd, logger)

		firstHomeBuyer, _ := cmd.Flags().GetBool("first-home-buyer")
		foreignPurchaser, _ := cmd.Flags().GetBool("foreign-purchaser")
		result, err := service.CalculateStampDuty(domain.StampDutyInput{
			PropertyValue:      parseAmount(logger, "property-value", args[0]),
			IsFirstHomeBuyer:   firstHomeBuyer,
			IsForeignPurchaser: foreignPurchaser,
		})
		if err != nil {
			logger.Fatal("stamp duty calculation failed", zap.Error(err))
		}
		renderResult(logger, cmd, result)
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "nswtax %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// addCommonFlags attaches the flags every calculation command shares.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	cmd.Flags().String("schedules", "", "Path to a YAML rate schedule file (default: embedded 2024-25 NSW schedules)")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	cmd.Flags().Bool("log-json", false, "Emit logs as structured JSON")
}

func buildLogger(cmd *cobra.Command) *zap.Logger {
	debugMode, _ := cmd.Flags().GetBool("debug")
	jsonLogs, _ := cmd.Flags().GetBool("log-json")

	level := ""
	if debugMode {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{Level: level, JSON: jsonLogs})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return logger
}

func buildService(cmd *cobra.Command, logger *zap.Logger) *calculation.RateCalculationService {
	schedulesFile, _ := cmd.Flags().GetString("schedules")

	var set *domain.ScheduleSet
	var err error
	if schedulesFile != "" {
		set, err = config.NewScheduleParser().LoadFromFile(schedulesFile)
	} else {
		set, err = config.DefaultSchedules()
	}
	if err != nil {
		logger.Fatal("failed to load rate schedules", zap.Error(err))
	}
	return calculation.NewRateCalculationService(set, logger)
}

func parseAmount(logger *zap.Logger, field, raw string) decimal.Decimal {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		logger.Fatal("invalid amount", zap.String(field, raw), zap.Error(err))
	}
	return value
}

func renderResult(logger *zap.Logger, cmd *cobra.Command, result *domain.TaxCalculationResult) {
	if err := output.WriteTo(os.Stdout, formatterFor(logger, cmd), result); err != nil {
		logger.Fatal("failed to format result", zap.Error(err))
	}
}

func formatterFor(logger *zap.Logger, cmd *cobra.Command) output.Formatter {
	format, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(format)
	if f == nil {
		logger.Fatal("unsupported output format",
			zap.String("format", format),
			zap.Strings("supported", output.Names()))
	}
	return f
}

func init() {
	addCommonFlags(landTaxCmd)
	landTaxCmd.Flags().Bool("ppr", false, "Property is the owner's principal place of residence")

	addCommonFlags(payrollTaxCmd)
	payrollTaxCmd.Flags().String("period", "annual", "Calculation period (annual, monthly)")

	addCommonFlags(stampDutyCmd)
	stampDutyCmd.Flags().Bool("first-home-buyer", false, "Purchaser qualifies for the first home buyer scheme")
	stampDutyCmd.Flags().Bool("foreign-purchaser", false, "Purchaser is a foreign person")

	rootCmd.AddCommand(landTaxCmd)
	rootCmd.AddCommand(payrollTaxCmd)
	rootCmd.AddCommand(stampDutyCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
