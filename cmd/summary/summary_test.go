package summary_test

import (
	"bytes"
	"os"
	"testing"

	"fjacquet/co2-csv/cmd/root"
	"fjacquet/co2-csv/cmd/summary"
	"fjacquet/co2-csv/internal/config"
	"fjacquet/co2-csv/internal/container"
	"fjacquet/co2-csv/internal/logging"
	"fjacquet/co2-csv/internal/models"
	"fjacquet/co2-csv/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, st *store.MockStore, args ...string) (string, error) {
	t.Helper()
	cfg := &config.Config{
		CSV:    config.CSVConfig{Delimiter: ","},
		Files:  config.FilesConfig{Output: "invoice_with_co2_results.csv"},
		Report: config.ReportConfig{Format: "text"},
	}
	c, err := container.NewContainerWithStore(cfg, st, logging.NewMockLogger())
	require.NoError(t, err)

	originalContainer := root.GetContainer()
	root.SetContainer(c)
	defer root.SetContainer(originalContainer)

	var out bytes.Buffer
	summary.Cmd.SetOut(&out)
	defer summary.Cmd.SetOut(nil)
	defer func() { _ = summary.Cmd.Flags().Set("report-format", "") }()

	require.NoError(t, summary.Cmd.ParseFlags(args))
	err = summary.Cmd.RunE(summary.Cmd, nil)
	return out.String(), err
}

func enriched() []models.EnrichedLine {
	return []models.EnrichedLine{
		models.NewEnrichedLine(models.NewInvoiceLine("item_description", "Laptop", "quantity", "1"),
			models.MatchResult{Factor: 250, Tier: models.TierSubstring, Category: "laptop"}),
		models.NewEnrichedLine(models.NewInvoiceLine("item_description", "Mystery"), models.NoMatch()),
	}
}

func TestSummaryCommand_Metadata(t *testing.T) {
	assert.Equal(t, "summary", summary.Cmd.Use)
	assert.NotNil(t, summary.Cmd.Flags().Lookup("input"))
	assert.NotNil(t, summary.Cmd.Flags().Lookup("report-format"))
}

func TestSummaryCommand_Text(t *testing.T) {
	out, err := run(t, &store.MockStore{Enriched: enriched()})
	require.NoError(t, err)

	assert.Equal(t, "\n"+
		"========================================\n"+
		"       CO2 ACCOUNTING REPORT       \n"+
		"========================================\n"+
		"Total Carbon Footprint: 250.00 kg CO2\n"+
		"Highest Emitting Item:  Laptop (250.00 kg)\n"+
		"Warning: 1 items could not be matched to emission factors.\n"+
		"========================================\n\n", out)
}

func TestSummaryCommand_JSON(t *testing.T) {
	out, err := run(t, &store.MockStore{Enriched: enriched()}, "--report-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"total_co2_kg": "250.00"`)
	assert.Contains(t, out, `"unmatched_count": 1`)
}

func TestSummaryCommand_MissingFile(t *testing.T) {
	_, err := run(t, &store.MockStore{LoadEnrichedError: os.ErrNotExist})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
