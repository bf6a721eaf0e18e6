// =============================================================================
// Sales Analytics - Run Command
// =============================================================================
//
// This file defines the 'run' command, which executes the full analytics
// pipeline for the configured input file.
//
// COMMAND USAGE:
//   sales-analytics run [flags]
//
// FLAGS:
//   --input        : Override the configured input file
//   --region       : Keep only records from this region (case-insensitive)
//   --min-amount   : Keep only records with amount >= this value
//   --max-amount   : Keep only records with amount <= this value
//   --interactive  : Prompt for filter parameters after showing guidance
//
// PROCESSING PIPELINE:
//   1. Load configuration and build the logger
//   2. Resolve filter parameters (flags or interactive prompt)
//   3. Run the pipeline: read, parse, validate, fetch, enrich, save, report
//   4. Print the run summary
//
// On error the failure is written to an error log in the output directory,
// reported on stderr, and the process exits with non-zero status.
//
// =============================================================================

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/sales-analytics/internal/catalog"
	"github.com/ginjaninja78/sales-analytics/internal/config"
	"github.com/ginjaninja78/sales-analytics/internal/logger"
	"github.com/ginjaninja78/sales-analytics/internal/pipeline"
	"github.com/ginjaninja78/sales-analytics/internal/validation"
	"github.com/ginjaninja78/sales-analytics/pkg/utils"
)

// Command flags for 'run'.
var (
	inputOverride string
	filterRegion  string
	minAmountFlag string
	maxAmountFlag string
	interactive   bool
)

// runCmd represents the 'run' command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full sales analytics pipeline",
	Long: `The run command reads the configured sales data file, parses and
validates its records, enriches them against the product catalog service,
persists the enriched dataset, and generates the analytics report.

Filters can be supplied via flags or interactively. Records excluded by a
filter are not counted as invalid; they are tracked separately in the run
summary.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&inputOverride, "input", "", "Override the configured input file")
	runCmd.Flags().StringVar(&filterRegion, "region", "", "Keep only records from this region (case-insensitive)")
	runCmd.Flags().StringVar(&minAmountFlag, "min-amount", "", "Keep only records with amount >= this value")
	runCmd.Flags().StringVar(&maxAmountFlag, "max-amount", "", "Keep only records with amount <= this value")
	runCmd.Flags().BoolVar(&interactive, "interactive", false, "Prompt for filter parameters after showing guidance")
}

// runPipeline wires the configuration, logger, catalog client and pipeline
// together and executes one run.
func runPipeline() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if inputOverride != "" {
		cfg.InputFile = inputOverride
	}

	log, err := logger.New(cfg.LogLevel, verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	filters, err := resolveFilters(cfg)
	if err != nil {
		return err
	}

	client := catalog.NewClient(cfg.APIBaseURL, time.Duration(cfg.APITimeoutSeconds)*time.Second, log)
	defer client.Close()

	p := pipeline.New(cfg, client, log)
	p.OnStep = printStep

	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("     SALES ANALYTICS SYSTEM")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println()

	result, err := p.Run(context.Background(), filters)
	if err != nil {
		// Leave a trace for unattended runs, then fail the command.
		fm := utils.NewFileManager(cfg.ArchiveDir, cfg.OutputDir)
		if logPath, logErr := fm.WriteErrorLog(err); logErr == nil {
			log.Error("run failed", zap.Error(err), zap.String("error_log", logPath))
		} else {
			log.Error("run failed", zap.Error(err))
		}
		return err
	}

	printSummary(result)
	return nil
}

// printStep renders one progress line with a trailing check mark.
func printStep(step, total int, message string) {
	fmt.Printf("[%d/%d] %-50s ✓\n", step, total, message)
}

// printSummary renders the closing summary block.
func printSummary(result *pipeline.Result) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Run complete.")
	fmt.Printf("  Lines read:          %d\n", result.Stats.RawLines)
	fmt.Printf("  Parsed records:      %d\n", result.Stats.Parsed)
	fmt.Printf("  Invalid records:     %d\n", result.Stats.Invalid)
	if result.Stats.FilteredByRegion > 0 || result.Stats.FilteredByAmount > 0 {
		fmt.Printf("  Filtered by region:  %d\n", result.Stats.FilteredByRegion)
		fmt.Printf("  Filtered by amount:  %d\n", result.Stats.FilteredByAmount)
	}
	fmt.Printf("  Valid records:       %d\n", result.Stats.Valid)
	fmt.Printf("  Catalog matches:     %d/%d\n", result.Stats.Matched, result.Stats.Enriched)
	fmt.Printf("  Time elapsed:        %s\n", result.Stats.Elapsed.Round(time.Millisecond))
	fmt.Println()
	fmt.Println("Output files:")
	fmt.Printf("  • %s\n", result.EnrichedFile)
	fmt.Printf("  • %s\n", result.ReportFile)
	fmt.Println(strings.Repeat("=", 50))
}

// =============================================================================
// FILTER RESOLUTION
// =============================================================================

// resolveFilters turns flags (or the interactive prompt) into FilterParams.
// The core pipeline only ever sees resolved parameters.
func resolveFilters(cfg *config.Config) (validation.FilterParams, error) {
	params := validation.FilterParams{Region: filterRegion}

	var err error
	if params.MinAmount, err = parseAmountFlag("min-amount", minAmountFlag); err != nil {
		return params, err
	}
	if params.MaxAmount, err = parseAmountFlag("max-amount", maxAmountFlag); err != nil {
		return params, err
	}

	if !interactive {
		return params, nil
	}
	return promptFilters(cfg, params)
}

// parseAmountFlag converts an optional numeric flag. Blank means unset.
func parseAmountFlag(name, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s value %q: %w", name, value, err)
	}
	return &f, nil
}

// promptFilters shows filter guidance for the input file and prompts for
// filter parameters on stdin. Blank answers skip the respective filter;
// flag-provided values are used as prompt defaults.
func promptFilters(cfg *config.Config, params validation.FilterParams) (validation.FilterParams, error) {
	_, hints, err := pipeline.Inspect(cfg.InputFile)
	if err != nil {
		return params, err
	}

	fmt.Println("Filter guidance:")
	fmt.Printf("  Regions present : %s\n", strings.Join(hints.Regions, ", "))
	fmt.Printf("  Amount range    : %.2f to %.2f\n", hints.MinAmount, hints.MaxAmount)
	fmt.Println()

	in := bufio.NewReader(os.Stdin)

	region, err := promptLine(in, "  Region (leave blank to skip): ")
	if err != nil {
		return params, err
	}
	if region != "" {
		params.Region = region
	}

	minStr, err := promptLine(in, "  Min amount (leave blank to skip): ")
	if err != nil {
		return params, err
	}
	if minStr != "" {
		if params.MinAmount, err = parseAmountFlag("min-amount", minStr); err != nil {
			return params, err
		}
	}

	maxStr, err := promptLine(in, "  Max amount (leave blank to skip): ")
	if err != nil {
		return params, err
	}
	if maxStr != "" {
		if params.MaxAmount, err = parseAmountFlag("max-amount", maxStr); err != nil {
			return params, err
		}
	}

	return params, nil
}

// promptLine prints a prompt and reads one trimmed line. EOF on a closed
// stdin is treated as a blank answer so piped runs don't fail.
func promptLine(in *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", nil
	}
	return strings.TrimSpace(line), nil
}
