package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scobrk/nswtax/internal/domain"
	"github.com/scobrk/nswtax/internal/output"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Calculate every tax that applies to a combined scenario",
	Long: `Runs all calculations relevant to a transaction or entity in one pass.

A property purchase produces stamp duty plus the ongoing land tax liability.
A business with an annual payroll produces payroll tax. Each tax is computed
independently against its own rate schedule.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := buildLogger(cmd)
		service := buildService(cmd, logger)

		input, err := scenarioInputFromFlags(cmd)
		if err != nil {
			logger.Fatal("invalid scenario input", zap.Error(err))
		}
		result, err := service.CalculateScenario(input)
		if err != nil {
			logger.Fatal("scenario calculation failed", zap.Error(err))
		}

		if err := output.WriteScenarioTo(os.Stdout, formatterFor(logger, cmd), result); err != nil {
			logger.Fatal("failed to format scenario", zap.Error(err))
		}
	},
}

func scenarioInputFromFlags(cmd *cobra.Command) (domain.ScenarioInput, error) {
	transaction, _ := cmd.Flags().GetString("transaction")
	entity, _ := cmd.Flags().GetString("entity")
	ppr, _ := cmd.Flags().GetBool("ppr")
	firstHomeBuyer, _ := cmd.Flags().GetBool("first-home-buyer")
	foreignPurchaser, _ := cmd.Flags().GetBool("foreign-purchaser")

	input := domain.ScenarioInput{
		TransactionType:             transaction,
		EntityType:                  entity,
		IsPrincipalPlaceOfResidence: ppr,
		IsFirstHomeBuyer:            firstHomeBuyer,
		IsForeignPurchaser:          foreignPurchaser,
	}

	if raw, _ := cmd.Flags().GetString("value"); raw != "" {
		value, err := parseOptionalAmount("value", raw)
		if err != nil {
			return domain.ScenarioInput{}, err
		}
		input.PropertyValue = *value
	}
	if raw, _ := cmd.Flags().GetString("payroll"); raw != "" {
		payroll, err := parseOptionalAmount("payroll", raw)
		if err != nil {
			return domain.ScenarioInput{}, err
		}
		input.AnnualPayroll = payroll
	}
	return input, nil
}

func parseOptionalAmount(field, raw string) (*decimal.Decimal, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse --%s %q", field, raw)
	}
	return &value, nil
}

func init() {
	addCommonFlags(scenarioCmd)
	scenarioCmd.Flags().String("transaction", "", "Transaction type (property_purchase)")
	scenarioCmd.Flags().String("entity", "", "Entity type (business)")
	scenarioCmd.Flags().String("value", "", "Property value for the transaction")
	scenarioCmd.Flags().String("payroll", "", "Annual payroll of the entity")
	scenarioCmd.Flags().Bool("ppr", false, "Property is the owner's principal place of residence")
	scenarioCmd.Flags().Bool("first-home-buyer", false, "Purchaser qualifies for the first home buyer scheme")
	scenarioCmd.Flags().Bool("foreign-purchaser", false, "Purchaser is a foreign person")

	rootCmd.AddCommand(scenarioCmd)
}
