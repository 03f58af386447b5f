// Package matcher resolves free-text purchase descriptions to emission
// factors. Resolution runs three tiers in order and stops at the first one
// that answers:
//
//  1. normalization: lowercase and trim the description
//  2. substring: the first indexed category contained in the description
//  3. fuzzy: the first description word whose closest category reaches the
//     similarity cutoff
//
// When no tier answers the factor is 0.0, which callers treat as "unmatched".
package matcher

import (
	"fjacquet/co2-csv/internal/factors"
	"fjacquet/co2-csv/internal/logging"
	"fjacquet/co2-csv/internal/models"
	"fjacquet/co2-csv/internal/textutils"
)

// Options tunes the tier chain. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	FuzzyEnabled bool
	FuzzyCutoff  float64
}

// DefaultOptions enables every tier with the standard cutoff.
func DefaultOptions() Options {
	return Options{
		FuzzyEnabled: true,
		FuzzyCutoff:  DefaultFuzzyCutoff,
	}
}

// Matcher runs the tier chain against one reference index. It holds no
// mutable state and returns the same answer for the same description.
type Matcher struct {
	index      *factors.Index
	strategies []Strategy
	logger     logging.Logger
}

// New creates a matcher over index with the given options.
func New(index *factors.Index, opts Options, logger logging.Logger) *Matcher {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	strategies := []Strategy{NewSubstringStrategy(index)}
	if opts.FuzzyEnabled {
		strategies = append(strategies, NewFuzzyWordStrategy(index, opts.FuzzyCutoff))
	}
	return NewWithStrategies(index, strategies, logger)
}

// NewWithStrategies creates a matcher running a custom tier chain.
func NewWithStrategies(index *factors.Index, strategies []Strategy, logger logging.Logger) *Matcher {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Matcher{
		index:      index,
		strategies: strategies,
		logger:     logger,
	}
}

// Match returns the factor for description, or 0.0 when nothing matches.
func (m *Matcher) Match(description string) float64 {
	return m.Resolve(description).Factor
}

// Resolve returns the factor together with the tier and category that
// produced it.
func (m *Matcher) Resolve(description string) models.MatchResult {
	normalized := textutils.Normalize(description)
	if normalized == "" {
		return models.NoMatch()
	}

	for _, strategy := range m.strategies {
		result, ok := strategy.Match(normalized)
		if !ok {
			continue
		}
		fields := []logging.Field{
			logging.F(logging.FieldDescription, description),
			logging.F(logging.FieldTier, strategy.Name()),
			logging.F(logging.FieldCategory, result.Category),
			logging.F(logging.FieldFactor, result.Factor),
		}
		if result.Tier == models.TierFuzzy {
			fields = append(fields,
				logging.F(logging.FieldWord, result.Word),
				logging.F(logging.FieldSimilarity, result.Similarity))
		}
		m.logger.Debug("Description matched", fields...)
		return result
	}

	m.logger.Debug("No emission factor matched",
		logging.F(logging.FieldDescription, description))
	return models.NoMatch()
}

// Strategies returns the tier names in evaluation order.
func (m *Matcher) Strategies() []string {
	names := make([]string, len(m.strategies))
	for i, s := range m.strategies {
		names[i] = s.Name()
	}
	return names
}

// Index returns the reference index the matcher searches.
func (m *Matcher) Index() *factors.Index {
	return m.index
}
