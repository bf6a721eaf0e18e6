// =============================================================================
// Sales Analytics - Run Pipeline
// =============================================================================
//
// This module contains the core orchestration logic for one run. It executes
// the batch pipeline end to end:
//
//   1. Read the sales data file (encoding fallback, header dropped)
//   2. Parse the raw lines into transactions
//   3. Validate and apply the resolved filters
//   4. Fetch the product catalog
//   5. Enrich the valid transactions
//   6. Persist the enriched dataset
//   7. Generate the analytics report
//   8. Archive the input file (optional)
//
// Row-level problems are absorbed into counters along the way; a read or
// fetch failure aborts the run and is returned to the caller, which exits
// non-zero. The run is single-threaded: one finite in-memory batch per run.
//
// =============================================================================

package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ginjaninja78/sales-analytics/internal/analytics"
	"github.com/ginjaninja78/sales-analytics/internal/catalog"
	"github.com/ginjaninja78/sales-analytics/internal/config"
	"github.com/ginjaninja78/sales-analytics/internal/report"
	"github.com/ginjaninja78/sales-analytics/internal/salesfile"
	"github.com/ginjaninja78/sales-analytics/internal/types"
	"github.com/ginjaninja78/sales-analytics/internal/validation"
	"github.com/ginjaninja78/sales-analytics/pkg/utils"
)

// totalSteps is the number of progress steps reported per run.
const totalSteps = 8

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// CatalogClient is the boundary to the external product catalog service.
// The concrete client lives in internal/catalog; tests substitute fakes.
type CatalogClient interface {
	FetchAllProducts(ctx context.Context) ([]catalog.Product, error)
}

// StepFunc receives progress notifications. Step numbers are 1-based.
type StepFunc func(step, total int, message string)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Stats contains the record counters accumulated across the run.
type Stats struct {
	// RawLines is the number of data lines read (header excluded).
	RawLines int

	// Parsed is the number of structurally parseable records.
	Parsed int

	// Invalid is the number of parsed records violating business rules.
	Invalid int

	// FilteredByRegion / FilteredByAmount count filter exclusions among the
	// structurally valid records. The counters are not exclusive.
	FilteredByRegion int
	FilteredByAmount int

	// Valid is the number of records surviving validation and filters.
	Valid int

	// Enriched is the number of records written to the enriched dataset.
	Enriched int

	// Matched is the number of enriched records with a catalog match.
	Matched int

	// Elapsed is the total run duration.
	Elapsed time.Duration
}

// Result represents the outcome of a successful run.
type Result struct {
	// InputFile is the sales data file that was processed.
	InputFile string

	// EnrichedFile is the path of the persisted enriched dataset.
	EnrichedFile string

	// ReportFile is the path of the generated report.
	ReportFile string

	// Stats contains the run counters.
	Stats Stats
}

// =============================================================================
// PIPELINE
// =============================================================================

// Pipeline executes one sales analytics run.
type Pipeline struct {
	cfg     *config.Config
	catalog CatalogClient
	logger  *zap.Logger

	// OnStep, when set, receives progress notifications for user-facing
	// step output. The pipeline itself only logs.
	OnStep StepFunc
}

// New creates a Pipeline over the given configuration and catalog client.
func New(cfg *config.Config, catalogClient CatalogClient, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		catalog: catalogClient,
		logger:  logger,
	}
}

// step emits a progress notification when a callback is registered.
func (p *Pipeline) step(n int, format string, args ...interface{}) {
	if p.OnStep != nil {
		p.OnStep(n, totalSteps, fmt.Sprintf(format, args...))
	}
}

// Run executes the pipeline with the given resolved filter parameters.
func (p *Pipeline) Run(ctx context.Context, filters validation.FilterParams) (*Result, error) {
	started := time.Now()
	inputFile := p.cfg.InputFile

	// =========================================================================
	// STEP 1: READ
	// =========================================================================
	lines, err := readInput(inputFile)
	if err != nil {
		return nil, err
	}
	p.step(1, "Read %d lines from %s", len(lines), inputFile)
	p.logger.Info("read sales data", zap.String("file", inputFile), zap.Int("lines", len(lines)))

	// =========================================================================
	// STEP 2: PARSE
	// =========================================================================
	parsed := salesfile.ParseTransactions(lines)
	p.step(2, "Parsed %d records (%d lines dropped)", len(parsed), len(lines)-len(parsed))
	p.logger.Info("parsed transactions",
		zap.Int("parsed", len(parsed)),
		zap.Int("dropped", len(lines)-len(parsed)),
	)

	// =========================================================================
	// STEP 3: VALIDATE AND FILTER
	// =========================================================================
	valid, summary := validation.ValidateAndFilter(parsed, filters)
	p.step(3, "Validated: %d valid, %d invalid", summary.ValidCount, summary.InvalidCount)
	p.logger.Info("validated transactions",
		zap.Int("valid", summary.ValidCount),
		zap.Int("invalid", summary.InvalidCount),
		zap.Int("filtered_by_region", summary.FilteredByRegion),
		zap.Int("filtered_by_amount", summary.FilteredByAmount),
	)

	// =========================================================================
	// STEP 4: FETCH CATALOG
	// =========================================================================
	products, err := p.catalog.FetchAllProducts(ctx)
	if err != nil {
		// Fatal: no partial enrichment is attempted.
		return nil, fmt.Errorf("fetching product catalog: %w", err)
	}
	p.step(4, "Fetched %d catalog products", len(products))

	// =========================================================================
	// STEP 5: ENRICH
	// =========================================================================
	mapping := catalog.BuildProductMapping(products)
	enriched := catalog.Enrich(valid, mapping)
	matched := catalog.MatchCount(enriched)
	p.step(5, "Enriched %d/%d records (%s)", matched, len(enriched), matchRate(matched, len(enriched)))
	p.logger.Info("enriched transactions",
		zap.Int("matched", matched),
		zap.Int("total", len(enriched)),
	)

	// =========================================================================
	// STEP 6: SAVE ENRICHED DATASET
	// =========================================================================
	if err := salesfile.WriteEnrichedData(p.cfg.EnrichedFile, enriched); err != nil {
		return nil, fmt.Errorf("saving enriched data: %w", err)
	}
	p.step(6, "Saved enriched data to %s", p.cfg.EnrichedFile)

	// =========================================================================
	// STEP 7: GENERATE REPORT
	// =========================================================================
	writer := report.NewWriter(p.cfg.TopProducts)
	if err := writer.Write(p.cfg.ReportFile, valid, enriched); err != nil {
		return nil, fmt.Errorf("generating report: %w", err)
	}
	p.step(7, "Saved report to %s", p.cfg.ReportFile)

	if ce := p.logger.Check(zap.DebugLevel, "aggregate highlights"); ce != nil {
		peak := analytics.FindPeakSalesDay(valid)
		ce.Write(
			zap.String("peak_day", peak.Date),
			zap.Float64("peak_revenue", peak.Revenue),
			zap.Int("trend_days", len(analytics.DailySalesTrend(valid))),
			zap.Int("customers", len(analytics.CustomerAnalysis(valid))),
			zap.Int("low_performers", len(analytics.LowPerformingProducts(valid, p.cfg.LowQuantityThreshold))),
		)
	}

	// =========================================================================
	// STEP 8: ARCHIVE INPUT
	// =========================================================================
	if p.cfg.ArchiveOnSuccess {
		fm := utils.NewFileManager(p.cfg.ArchiveDir, p.cfg.OutputDir)
		archived, err := fm.ArchiveFile(inputFile)
		if err != nil {
			// The run itself succeeded; a failed archive is logged, not fatal.
			p.logger.Warn("failed to archive input file", zap.String("file", inputFile), zap.Error(err))
			p.step(8, "Archive skipped: %v", err)
		} else {
			p.step(8, "Archived input to %s", archived)
		}
	} else {
		p.step(8, "Process complete")
	}

	return &Result{
		InputFile:    inputFile,
		EnrichedFile: p.cfg.EnrichedFile,
		ReportFile:   p.cfg.ReportFile,
		Stats: Stats{
			RawLines:         len(lines),
			Parsed:           len(parsed),
			Invalid:          summary.InvalidCount,
			FilteredByRegion: summary.FilteredByRegion,
			FilteredByAmount: summary.FilteredByAmount,
			Valid:            summary.ValidCount,
			Enriched:         len(enriched),
			Matched:          matched,
			Elapsed:          time.Since(started),
		},
	}, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// readInput dispatches on the input file type: workbooks go through the
// xlsx reader, everything else through the encoding-fallback text reader.
func readInput(path string) ([]string, error) {
	if salesfile.IsXLSX(path) {
		return salesfile.ReadSalesDataXLSX(path)
	}
	return salesfile.ReadSalesData(path)
}

// Inspect parses and validates the input without filters and returns the
// parsed set together with filter guidance. Used by the inspect command and
// by the interactive prompt before the real run.
func Inspect(inputFile string) ([]types.Transaction, validation.Hints, error) {
	lines, err := readInput(inputFile)
	if err != nil {
		return nil, validation.Hints{}, err
	}
	parsed := salesfile.ParseTransactions(lines)
	return parsed, validation.FilterHints(parsed), nil
}

// matchRate formats a match ratio as a percentage string.
func matchRate(matched, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(matched)/float64(total)*100)
}
