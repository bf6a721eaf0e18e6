package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ginjaninja78/sales-analytics/internal/catalog"
	"github.com/ginjaninja78/sales-analytics/internal/config"
	"github.com/ginjaninja78/sales-analytics/internal/validation"
)

// fakeCatalog satisfies CatalogClient without a network.
type fakeCatalog struct {
	products []catalog.Product
	err      error
}

func (f *fakeCatalog) FetchAllProducts(ctx context.Context) ([]catalog.Product, error) {
	return f.products, f.err
}

const sampleInput = `TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
T1|2024-01-01|P1|Widget|5|10.00|C1|North
T2|2024-01-01|P2|Gadget|3|20.00|C1|South
T3|2024-01-02|P3|Gizmo|2|only seven fields
X4|2024-01-02|P4|Doodad|1|5.00|C4|East
T5|2024-01-02|P5|Sprocket|2|8.00|C5|North
`

// sampleInput breakdown: one 7-field line is dropped by the parser, X4 fails
// the TransactionID rule, leaving T1, T2 and T5 valid with no filters.

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.InputFile = filepath.Join(dir, "sales_data.txt")
	cfg.OutputDir = filepath.Join(dir, "output")
	cfg.EnrichedFile = filepath.Join(dir, "enriched_sales_data.txt")
	cfg.ReportFile = filepath.Join(dir, "output", "sales_report.txt")
	cfg.ArchiveDir = filepath.Join(dir, "archive")

	require.NoError(t, os.WriteFile(cfg.InputFile, []byte(sampleInput), 0644))
	return cfg
}

func TestPipelineRun(t *testing.T) {
	cfg := testConfig(t)
	fake := &fakeCatalog{products: []catalog.Product{
		{ID: 1, Title: "Widget", Category: "tools", Brand: "Acme", Price: 9.99},
	}}

	p := New(cfg, fake, zaptest.NewLogger(t))
	var steps []string
	p.OnStep = func(step, total int, message string) {
		steps = append(steps, fmt.Sprintf("%d/%d %s", step, total, message))
	}

	result, err := p.Run(context.Background(), validation.FilterParams{})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Stats.RawLines)
	assert.Equal(t, 4, result.Stats.Parsed)
	assert.Equal(t, 1, result.Stats.Invalid)
	assert.Equal(t, 3, result.Stats.Valid)
	assert.Equal(t, 3, result.Stats.Enriched)
	assert.Equal(t, 1, result.Stats.Matched, "only Widget is in the catalog")
	assert.Len(t, steps, totalSteps)

	// Both output files exist and carry the expected shape.
	enriched, err := os.ReadFile(result.EnrichedFile)
	require.NoError(t, err)
	assert.Contains(t, string(enriched), "T1|2024-01-01|P1|Widget|5|10.00|C1|North|true|tools|Acme|9.99")

	report, err := os.ReadFile(result.ReportFile)
	require.NoError(t, err)
	assert.Contains(t, string(report), "SALES ANALYTICS REPORT")
	assert.Contains(t, string(report), "Records Processed: 3")
}

func TestPipelineRunWithFilters(t *testing.T) {
	cfg := testConfig(t)
	p := New(cfg, &fakeCatalog{}, zaptest.NewLogger(t))

	result, err := p.Run(context.Background(), validation.FilterParams{Region: "north"})
	require.NoError(t, err)

	// T1 and T5 are North (case-insensitive); T2 is filtered, not invalid.
	assert.Equal(t, 2, result.Stats.Valid)
	assert.Equal(t, 1, result.Stats.FilteredByRegion)
	assert.Equal(t, 1, result.Stats.Invalid)
}

func TestPipelineCatalogFailureIsFatal(t *testing.T) {
	cfg := testConfig(t)
	p := New(cfg, &fakeCatalog{err: errors.New("boom")}, zaptest.NewLogger(t))

	_, err := p.Run(context.Background(), validation.FilterParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog")

	// No partial enrichment: the enriched file must not exist.
	_, statErr := os.Stat(cfg.EnrichedFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPipelineMissingInputIsFatal(t *testing.T) {
	cfg := testConfig(t)
	cfg.InputFile = filepath.Join(t.TempDir(), "missing.txt")

	p := New(cfg, &fakeCatalog{}, zaptest.NewLogger(t))
	_, err := p.Run(context.Background(), validation.FilterParams{})
	assert.Error(t, err)
}

func TestPipelineArchiveOnSuccess(t *testing.T) {
	cfg := testConfig(t)
	cfg.ArchiveOnSuccess = true

	p := New(cfg, &fakeCatalog{}, zaptest.NewLogger(t))
	_, err := p.Run(context.Background(), validation.FilterParams{})
	require.NoError(t, err)

	// The input file moved into the archive directory.
	_, statErr := os.Stat(cfg.InputFile)
	assert.True(t, os.IsNotExist(statErr))

	entries, err := os.ReadDir(cfg.ArchiveDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "sales_data.txt")
}

func TestInspect(t *testing.T) {
	cfg := testConfig(t)

	parsed, hints, err := Inspect(cfg.InputFile)
	require.NoError(t, err)
	assert.Len(t, parsed, 4)
	assert.Equal(t, []string{"North", "South"}, hints.Regions, "invalid X4 does not contribute East")
	assert.Equal(t, 16.0, hints.MinAmount)
	assert.Equal(t, 60.0, hints.MaxAmount)
}
