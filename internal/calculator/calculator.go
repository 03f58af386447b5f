// Package calculator turns invoice lines into enriched lines carrying the
// matched emission factor and the line's footprint.
package calculator

import (
	"fjacquet/co2-csv/internal/logging"
	"fjacquet/co2-csv/internal/models"
)

// Resolver resolves one description to a factor. *matcher.Matcher
// satisfies it.
type Resolver interface {
	Resolve(description string) models.MatchResult
}

// Calculator enriches invoice lines in input order.
type Calculator struct {
	resolver Resolver
	logger   logging.Logger
}

// New creates a Calculator backed by resolver.
func New(resolver Resolver, logger logging.Logger) *Calculator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Calculator{resolver: resolver, logger: logger}
}

// Calculate returns one enriched line per input line, in the same order.
// Input lines are never modified; each output holds its own copy.
func (c *Calculator) Calculate(lines []models.InvoiceLine) []models.EnrichedLine {
	out := make([]models.EnrichedLine, 0, len(lines))
	var stats models.MatchStats

	for i, line := range lines {
		enriched := models.NewEnrichedLine(line, c.resolver.Resolve(line.Description()))
		if enriched.Unmatched() {
			c.logger.Debug("Line has no emission factor",
				logging.F(logging.FieldLine, i+1),
				logging.F(logging.FieldDescription, enriched.Description))
		}
		stats.Record(enriched)
		out = append(out, enriched)
	}

	stats.LogSummary(c.logger)
	return out
}

// CalculateOne enriches a single line.
func (c *Calculator) CalculateOne(line models.InvoiceLine) models.EnrichedLine {
	return models.NewEnrichedLine(line, c.resolver.Resolve(line.Description()))
}
