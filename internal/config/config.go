// =============================================================================
// Sales Analytics - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. A single YAML file (config.yaml by default) controls file
// locations, catalog API settings, analytics defaults, and logging.
//
// ARCHITECTURE:
//   The configuration system is designed to be:
//   - Optional: a missing config file falls back to built-in defaults,
//     so `sales-analytics run` works out of the box
//   - Partial: omitted keys keep their default values
//   - Validated: obviously broken values are rejected on load
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the global application configuration, loaded from config.yaml.
type Config struct {
	// =========================================================================
	// FILE SETTINGS
	// =========================================================================

	// InputFile is the pipe-delimited sales data file to process.
	// An .xlsx file is also accepted; the first sheet is read instead.
	// Default: "data/sales_data.txt"
	InputFile string `yaml:"input_file"`

	// OutputDir is the directory where the analytics report is written.
	// Default: "output"
	OutputDir string `yaml:"output_dir"`

	// EnrichedFile is the path of the persisted enriched dataset.
	// Default: "data/enriched_sales_data.txt"
	EnrichedFile string `yaml:"enriched_file"`

	// ReportFile is the path of the generated text report.
	// Default: "output/sales_report.txt"
	ReportFile string `yaml:"report_file"`

	// ArchiveDir is the directory where the input file is moved after a
	// successful run, when ArchiveOnSuccess is set.
	// Default: "data/archive"
	ArchiveDir string `yaml:"archive_dir"`

	// ArchiveOnSuccess moves the input file into ArchiveDir after the run
	// completes without errors. Failed runs leave the input in place.
	// Default: false
	ArchiveOnSuccess bool `yaml:"archive_on_success"`

	// =========================================================================
	// CATALOG API SETTINGS
	// =========================================================================

	// APIBaseURL is the base URL of the external product catalog service.
	// Default: "https://dummyjson.com"
	APIBaseURL string `yaml:"api_base_url"`

	// APITimeoutSeconds bounds the catalog fetch. A fetch failure is fatal
	// for the whole run; no partial enrichment is attempted.
	// Default: 15
	APITimeoutSeconds int `yaml:"api_timeout_seconds"`

	// =========================================================================
	// ANALYTICS SETTINGS
	// =========================================================================

	// TopProducts is the N used for the top-selling-products ranking.
	// Default: 5
	TopProducts int `yaml:"top_products"`

	// LowQuantityThreshold marks products as low-performing when their
	// summed quantity is strictly below it.
	// Default: 10
	LowQuantityThreshold int `yaml:"low_quantity_threshold"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	return &Config{
		InputFile:            "data/sales_data.txt",
		OutputDir:            "output",
		EnrichedFile:         "data/enriched_sales_data.txt",
		ReportFile:           "output/sales_report.txt",
		ArchiveDir:           "data/archive",
		ArchiveOnSuccess:     false,
		APIBaseURL:           "https://dummyjson.com",
		APITimeoutSeconds:    15,
		TopProducts:          5,
		LowQuantityThreshold: 10,
		LogLevel:             "info",
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from the given YAML file.
//
// A missing file is not an error: the defaults are returned so the tool can
// run without any configuration. A file that exists but cannot be parsed is
// an error, since silently ignoring it would hide typos.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// validate rejects configurations that would make a run meaningless.
func (c *Config) validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("input_file must not be empty")
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url must not be empty")
	}
	if c.APITimeoutSeconds <= 0 {
		return fmt.Errorf("api_timeout_seconds must be positive, got %d", c.APITimeoutSeconds)
	}
	if c.TopProducts <= 0 {
		return fmt.Errorf("top_products must be positive, got %d", c.TopProducts)
	}
	if c.LowQuantityThreshold < 0 {
		return fmt.Errorf("low_quantity_threshold must not be negative, got %d", c.LowQuantityThreshold)
	}
	return nil
}
