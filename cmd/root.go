// =============================================================================
// Sales Analytics - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (run, inspect, version) attach to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (sales-analytics)
//   ├── runCmd     (sales-analytics run)
//   ├── inspectCmd (sales-analytics inspect)
//   └── versionCmd (sales-analytics version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sales-analytics",
	Short: "Sales Analytics - normalize, validate, enrich and report on sales exports",

	Long: `Sales Analytics is a CLI tool that ingests a pipe-delimited sales
transaction export, validates and optionally filters the records, enriches
them against an external product catalog service, and emits an enriched
dataset plus a formatted text analytics report.

Key Features:
  - Tolerant parsing of legacy exports (encoding fallback, malformed rows dropped)
  - Rule-based validation with region and amount-range filters
  - Revenue, region, product, customer and daily-trend analytics
  - Product catalog enrichment with match reporting
  - XLSX input support alongside the pipe-delimited text format

Example Usage:
  sales-analytics run                           # Process the configured input file
  sales-analytics run --region North --min-amount 100
  sales-analytics run --interactive             # Prompt for filter parameters
  sales-analytics inspect                       # Show filter guidance only`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
