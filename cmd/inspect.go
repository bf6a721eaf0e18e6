// =============================================================================
// Sales Analytics - Inspect Command
// =============================================================================
//
// This file defines the 'inspect' command, which parses and validates the
// input file without running enrichment or reporting. It prints the filter
// guidance a user needs before choosing --region / --min-amount /
// --max-amount values for a real run.
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-analytics/internal/config"
	"github.com/ginjaninja78/sales-analytics/internal/pipeline"
	"github.com/ginjaninja78/sales-analytics/internal/validation"
)

// inspectCmd represents the 'inspect' command.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Parse and validate the input file without processing it",
	Long: `The inspect command reads and parses the configured input file, applies
the structural validation rules, and prints a summary plus filter guidance:
the distinct regions present and the observed amount range. No catalog fetch,
enrichment, or report generation happens.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect()
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inputOverride, "input", "", "Override the configured input file")
}

func runInspect() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if inputOverride != "" {
		cfg.InputFile = inputOverride
	}

	parsed, hints, err := pipeline.Inspect(cfg.InputFile)
	if err != nil {
		return err
	}
	_, summary := validation.ValidateAndFilter(parsed, validation.FilterParams{})

	fmt.Printf("Input file: %s\n\n", cfg.InputFile)
	fmt.Printf("Parsed records   : %d\n", summary.TotalInput)
	fmt.Printf("Valid records    : %d\n", summary.ValidCount)
	fmt.Printf("Invalid records  : %d\n\n", summary.InvalidCount)

	if len(hints.Regions) == 0 {
		fmt.Println("No valid records; nothing to filter on.")
		return nil
	}

	fmt.Println("Filter guidance:")
	fmt.Printf("  Regions present : %s\n", strings.Join(hints.Regions, ", "))
	fmt.Printf("  Amount range    : %.2f to %.2f\n", hints.MinAmount, hints.MaxAmount)
	return nil
}
