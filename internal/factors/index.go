// Package factors builds the reference index of emission factors that the
// description matcher searches.
package factors

import (
	"fjacquet/co2-csv/internal/loaderror"
	"fjacquet/co2-csv/internal/logging"
	"fjacquet/co2-csv/internal/models"
	"fjacquet/co2-csv/internal/textutils"
)

// Index maps normalized category names to their factor. Iteration order is
// the order in which each category was first seen in the reference table;
// a later duplicate replaces the factor but not the position. The substring
// tier depends on this order, so the index never exposes a plain map.
//
// An Index is read-only once built.
type Index struct {
	categories []string
	factors    map[string]float64
}

// NewIndex builds an index from raw reference rows. Rows whose factor does
// not parse, or whose category is blank, are skipped without error.
func NewIndex(records []models.FactorRecord, logger logging.Logger) *Index {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}

	idx := &Index{
		categories: make([]string, 0, len(records)),
		factors:    make(map[string]float64, len(records)),
	}

	skipped := 0
	for i, rec := range records {
		key := textutils.Normalize(rec.Category)
		if key == "" {
			skipped++
			logger.Debug("Skipping reference row without category",
				logging.F(logging.FieldLine, i+1))
			continue
		}

		factor, err := models.ParseFloat(rec.Factor)
		if err != nil {
			skipped++
			logger.WithError(&loaderror.ParseError{
				Source: "reference",
				Field:  models.ColumnFactor,
				Value:  rec.Factor,
				Err:    err,
			}).Debug("Skipping reference row with invalid factor",
				logging.F(logging.FieldLine, i+1),
				logging.F(logging.FieldCategory, key))
			continue
		}

		idx.insert(key, factor)
	}

	logger.Debug("Reference index built",
		logging.F(logging.FieldCount, len(idx.categories)),
		logging.F("skipped", skipped))

	return idx
}

func (idx *Index) insert(key string, factor float64) {
	if _, exists := idx.factors[key]; !exists {
		idx.categories = append(idx.categories, key)
	}
	idx.factors[key] = factor
}

// Categories returns the normalized category names in index order.
func (idx *Index) Categories() []string {
	out := make([]string, len(idx.categories))
	copy(out, idx.categories)
	return out
}

// Factor looks up a normalized category.
func (idx *Index) Factor(category string) (float64, bool) {
	f, ok := idx.factors[category]
	return f, ok
}

// Len returns the number of distinct categories.
func (idx *Index) Len() int {
	return len(idx.categories)
}

// Each calls fn for every category in index order until fn returns false.
func (idx *Index) Each(fn func(category string, factor float64) bool) {
	for _, c := range idx.categories {
		if !fn(c, idx.factors[c]) {
			return
		}
	}
}
