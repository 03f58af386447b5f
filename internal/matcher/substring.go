package matcher

import (
	"strings"

	"fjacquet/co2-csv/internal/factors"
	"fjacquet/co2-csv/internal/models"
)

// SubstringStrategy matches when a known category occurs anywhere in the
// description, e.g. "uber" inside "uber ride to airport". Categories are
// tried in index order and the first hit wins.
type SubstringStrategy struct {
	index *factors.Index
}

// NewSubstringStrategy creates the substring tier over index.
func NewSubstringStrategy(index *factors.Index) *SubstringStrategy {
	return &SubstringStrategy{index: index}
}

func (s *SubstringStrategy) Name() string {
	return string(models.TierSubstring)
}

func (s *SubstringStrategy) Match(normalized string) (models.MatchResult, bool) {
	var (
		result models.MatchResult
		found  bool
	)
	s.index.Each(func(category string, factor float64) bool {
		if strings.Contains(normalized, category) {
			result = models.MatchResult{
				Factor:   factor,
				Tier:     models.TierSubstring,
				Category: category,
			}
			found = true
			return false
		}
		return true
	})
	return result, found
}
