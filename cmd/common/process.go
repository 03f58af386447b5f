// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"

	"fjacquet/co2-csv/internal/container"
	"fjacquet/co2-csv/internal/logging"
	"fjacquet/co2-csv/internal/models"
	"fjacquet/co2-csv/internal/report"
)

// CalculateOptions selects the files and outputs of one calculation run.
// Empty fields fall back to the configuration.
type CalculateOptions struct {
	FactorsFile  string
	InvoicesFile string
	OutputFile   string
	ReportFormat string
	ReportFile   string
	NoExport     bool
}

// CalculateResult is what a calculation run produced.
type CalculateResult struct {
	Lines   []models.EnrichedLine
	Summary models.SummaryReport
}

// withDefaults fills empty options from the container's configuration.
func (o CalculateOptions) withDefaults(c *container.Container) CalculateOptions {
	cfg := c.GetConfig()
	if o.FactorsFile == "" {
		o.FactorsFile = cfg.Files.Factors
	}
	if o.InvoicesFile == "" {
		o.InvoicesFile = cfg.Files.Invoices
	}
	if o.OutputFile == "" {
		o.OutputFile = cfg.Files.Output
	}
	if o.ReportFormat == "" {
		o.ReportFormat = cfg.Report.Format
	}
	if !cfg.Export.Enabled {
		o.NoExport = true
	}
	return o
}

// RunCalculation loads both tables, enriches every invoice line, writes the
// report to out and exports the enriched table. Loading errors abort the
// run before any line is processed.
func RunCalculation(c *container.Container, opts CalculateOptions, out io.Writer) (*CalculateResult, error) {
	if c == nil {
		return nil, fmt.Errorf("application container is not initialized")
	}
	opts = opts.withDefaults(c)
	log := c.GetLogger()

	if !report.IsSupportedFormat(opts.ReportFormat) {
		return nil, fmt.Errorf("unsupported report format: %s", opts.ReportFormat)
	}

	log.Info("Starting CO2 calculation",
		logging.F(logging.FieldInputFile, opts.InvoicesFile),
		logging.F("factors_file", opts.FactorsFile))

	m, err := c.LoadMatcher(opts.FactorsFile)
	if err != nil {
		return nil, fmt.Errorf("error loading emission factors: %w", err)
	}

	invoices, err := c.GetStore().LoadInvoices(opts.InvoicesFile)
	if err != nil {
		return nil, fmt.Errorf("error loading invoices: %w", err)
	}

	log.Info("Matching invoices to emission factors",
		logging.F(logging.FieldCount, len(invoices)))
	lines := c.NewCalculator(m).Calculate(invoices)

	summary := c.GetAggregator().Summarize(lines)
	summary.RunID = c.GetRunID()

	if err := c.GetReporter().Write(out, &summary, opts.ReportFormat); err != nil {
		return nil, err
	}
	if opts.ReportFile != "" {
		if err := c.GetReporter().SaveReport(&summary, opts.ReportFormat, opts.ReportFile); err != nil {
			return nil, err
		}
	}

	if opts.NoExport {
		log.Debug("Export disabled")
	} else if err := c.GetStore().ExportEnriched(lines, opts.OutputFile); err != nil {
		return nil, err
	}

	log.Info("Calculation completed successfully",
		logging.F("total_co2", summary.TotalCO2),
		logging.F("unmatched_count", summary.UnmatchedCount))

	return &CalculateResult{Lines: lines, Summary: summary}, nil
}

// RunSummary rebuilds the summary of a previously exported result table.
func RunSummary(c *container.Container, inputFile, format string, out io.Writer) (*models.SummaryReport, error) {
	if c == nil {
		return nil, fmt.Errorf("application container is not initialized")
	}
	if inputFile == "" {
		inputFile = c.GetConfig().Files.Output
	}
	if format == "" {
		format = c.GetConfig().Report.Format
	}
	if !report.IsSupportedFormat(format) {
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}

	lines, err := c.GetStore().LoadEnriched(inputFile)
	if err != nil {
		return nil, fmt.Errorf("error loading results: %w", err)
	}

	summary := c.GetAggregator().Summarize(lines)
	summary.RunID = c.GetRunID()

	if err := c.GetReporter().Write(out, &summary, format); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ResolveDescription matches a single description against the reference
// table at factorsFile.
func ResolveDescription(c *container.Container, factorsFile, description string) (models.MatchResult, error) {
	if c == nil {
		return models.MatchResult{}, fmt.Errorf("application container is not initialized")
	}
	if factorsFile == "" {
		factorsFile = c.GetConfig().Files.Factors
	}

	m, err := c.LoadMatcher(factorsFile)
	if err != nil {
		return models.MatchResult{}, fmt.Errorf("error loading emission factors: %w", err)
	}
	return m.Resolve(description), nil
}

// PrintMatch writes a match result in "key: value" lines.
func PrintMatch(out io.Writer, description string, result models.MatchResult) error {
	category := result.Category
	if category == "" {
		category = "-"
	}
	_, err := fmt.Fprintf(out, "description: %s\nfactor: %s\ntier: %s\ncategory: %s\n",
		description, models.FormatFloat(result.Factor), result.Tier, category)
	if err != nil {
		return err
	}
	if result.Tier == models.TierFuzzy {
		_, err = fmt.Fprintf(out, "word: %s\nsimilarity: %.3f\n", result.Word, result.Similarity)
	}
	return err
}
