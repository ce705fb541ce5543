package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scobrk/nswtax/internal/config"
	"github.com/scobrk/nswtax/internal/domain"
	"github.com/scobrk/nswtax/internal/output"
)

var schedulesCmd = &cobra.Command{
	Use:   "schedules [tax-type]",
	Short: "List loaded rate schedules or show one schedule's details",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := buildLogger(cmd)
		service := buildService(cmd, logger)

		if len(args) == 0 {
			fmt.Println("Loaded rate schedules:")
			for _, taxType := range service.AvailableTaxTypes() {
				fmt.Printf("  %s\n", taxType)
			}
			return
		}

		info, err := service.ScheduleInfo(domain.TaxType(args[0]))
		if err != nil {
			logger.Fatal("schedule lookup failed", zap.Error(err))
		}
		printScheduleInfo(info)
	},
}

func printScheduleInfo(info *domain.ScheduleInfo) {
	fmt.Printf("Tax type:       %s\n", info.TaxType)
	fmt.Printf("Rate structure: %s\n", info.RateStructure)
	fmt.Printf("Bands:          %d\n", info.Bands)
	fmt.Printf("Rounding:       %s\n", info.Rounding)
	fmt.Printf("Effective:      %s to %s\n", info.EffectiveFrom, info.EffectiveTo)
	fmt.Printf("Last updated:   %s\n", info.LastUpdated)
	fmt.Printf("Source:         %s\n", info.Source)
}

var validateCmd = &cobra.Command{
	Use:   "validate [schedule-file]",
	Short: "Validate a YAML rate schedule file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		set, err := config.NewScheduleParser().LoadFromFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Schedule file is invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Schedule file is valid (%d schedules)\n", set.Len())
		for _, taxType := range set.Types() {
			schedule, _ := set.Get(taxType)
			fmt.Printf("  %s: %d bands, %s rounding\n", taxType, len(schedule.Thresholds), schedule.Rounding)
		}
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported output formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Supported output formats:")
		for _, name := range output.Names() {
			fmt.Printf("  %s\n", name)
		}
	},
}

func init() {
	addCommonFlags(schedulesCmd)

	rootCmd.AddCommand(schedulesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(formatsCmd)
}
