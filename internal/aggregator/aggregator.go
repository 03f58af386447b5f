// Package aggregator reduces enriched invoice lines to a SummaryReport.
package aggregator

import (
	"fjacquet/co2-csv/internal/logging"
	"fjacquet/co2-csv/internal/models"
)

// initialMax is the running maximum before the first line is seen. Lines
// never go below zero in practice, so the first line always replaces it.
const initialMax = -1.0

// Aggregator computes run totals over enriched lines.
type Aggregator struct {
	logger logging.Logger
}

// New creates an Aggregator.
func New(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Aggregator{logger: logger}
}

// Summarize returns the total footprint, the first line with the strictly
// highest footprint and the number of unmatched lines. An empty input yields
// a zero total and no highest item.
func (a *Aggregator) Summarize(lines []models.EnrichedLine) models.SummaryReport {
	report := models.SummaryReport{}
	highest := initialMax

	for _, line := range lines {
		report.TotalCO2 += line.TotalLineCO2

		if line.TotalLineCO2 > highest {
			highest = line.TotalLineCO2
			desc := line.Description
			report.HighestItem = &desc
			report.HighestValue = line.TotalLineCO2
		}

		if line.MatchedFactor == models.UnmatchedFactor {
			report.UnmatchedCount++
		}
		report.Stats.Record(line)
	}

	fields := []logging.Field{
		logging.F(logging.FieldCount, len(lines)),
		logging.F("total_co2", report.TotalCO2),
		logging.F("unmatched_count", report.UnmatchedCount),
	}
	if report.HighestItem != nil {
		fields = append(fields, logging.F("highest_item", *report.HighestItem))
	}
	a.logger.Debug("Aggregated enriched lines", fields...)

	return report
}

// Summarize is a convenience wrapper using a discarding logger.
func Summarize(lines []models.EnrichedLine) models.SummaryReport {
	return New(nil).Summarize(lines)
}
