package matcher

import (
	"github.com/pmezard/go-difflib/difflib"

	"fjacquet/co2-csv/internal/factors"
	"fjacquet/co2-csv/internal/models"
	"fjacquet/co2-csv/internal/textutils"
)

// DefaultFuzzyCutoff is the minimum similarity ratio a category needs to be
// accepted for a description word.
const DefaultFuzzyCutoff = 0.7

// FuzzyWordStrategy corrects typos word by word: "ppr ream" does not contain
// "paper", but "ppr" alone is close enough to it. Words are tried left to
// right and the first word with any candidate at or above the cutoff decides
// the match, even if a later word would score higher.
type FuzzyWordStrategy struct {
	index      *factors.Index
	cutoff     float64
	categories []string
	chars      [][]string
}

// NewFuzzyWordStrategy creates the fuzzy tier over index. A cutoff outside
// (0, 1] is replaced by DefaultFuzzyCutoff.
func NewFuzzyWordStrategy(index *factors.Index, cutoff float64) *FuzzyWordStrategy {
	if cutoff <= 0 || cutoff > 1 {
		cutoff = DefaultFuzzyCutoff
	}
	categories := index.Categories()
	chars := make([][]string, len(categories))
	for i, c := range categories {
		chars[i] = textutils.Runes(c)
	}
	return &FuzzyWordStrategy{
		index:      index,
		cutoff:     cutoff,
		categories: categories,
		chars:      chars,
	}
}

func (s *FuzzyWordStrategy) Name() string {
	return string(models.TierFuzzy)
}

// Cutoff returns the similarity threshold in use.
func (s *FuzzyWordStrategy) Cutoff() float64 {
	return s.cutoff
}

func (s *FuzzyWordStrategy) Match(normalized string) (models.MatchResult, bool) {
	for _, word := range textutils.Words(normalized) {
		category, score, ok := s.closest(word)
		if !ok {
			continue
		}
		factor, _ := s.index.Factor(category)
		return models.MatchResult{
			Factor:     factor,
			Tier:       models.TierFuzzy,
			Category:   category,
			Word:       word,
			Similarity: score,
		}, true
	}
	return models.MatchResult{}, false
}

// closest returns the best category for word among those whose similarity
// reaches the cutoff. Equal scores go to the lexicographically greatest
// category, so the outcome does not depend on index order.
func (s *FuzzyWordStrategy) closest(word string) (string, float64, bool) {
	sm := difflib.NewMatcher(nil, textutils.Runes(word))

	best, bestScore, found := "", 0.0, false
	for i, category := range s.categories {
		sm.SetSeq1(s.chars[i])
		// real quick and quick ratios are upper bounds of Ratio; skip the
		// full computation when they already miss the cutoff
		if sm.RealQuickRatio() < s.cutoff || sm.QuickRatio() < s.cutoff {
			continue
		}
		score := sm.Ratio()
		if score < s.cutoff {
			continue
		}
		if !found || score > bestScore || (score == bestScore && category > best) {
			best, bestScore, found = category, score, true
		}
	}
	return best, bestScore, found
}

// Similarity returns the ratio 2*M/T between a and b, where M is the number
// of characters in matching blocks and T the total length of both strings.
// Two empty strings are identical (1.0).
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(textutils.Runes(a), textutils.Runes(b)).Ratio()
}
