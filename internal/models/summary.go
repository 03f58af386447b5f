package models

import (
	"fjacquet/co2-csv/internal/logging"
)

// SummaryReport is the aggregate view of one calculation run.
type SummaryReport struct {
	RunID          string     `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	TotalCO2       float64    `json:"total_co2" yaml:"total_co2"`
	HighestItem    *string    `json:"highest_item" yaml:"highest_item"`
	HighestValue   float64    `json:"highest_value" yaml:"highest_value"`
	UnmatchedCount int        `json:"unmatched_count" yaml:"unmatched_count"`
	Stats          MatchStats `json:"stats" yaml:"stats"`
}

// HasHighestItem reports whether a highest emitter was found.
func (s SummaryReport) HasHighestItem() bool {
	return s.HighestItem != nil
}

// MatchStats counts lines per matching tier.
type MatchStats struct {
	Total     int `json:"total" yaml:"total"`
	Matched   int `json:"matched" yaml:"matched"`
	Substring int `json:"substring" yaml:"substring"`
	Fuzzy     int `json:"fuzzy" yaml:"fuzzy"`
	Unmatched int `json:"unmatched" yaml:"unmatched"`
}

// Record adds one line's outcome to the counters. A line is unmatched when
// it carries the sentinel factor, whatever tier produced it. Lines rebuilt
// from an export carry no tier and only count towards Matched.
func (s *MatchStats) Record(line EnrichedLine) {
	s.Total++
	if line.Unmatched() {
		s.Unmatched++
		return
	}
	s.Matched++
	switch line.Match.Tier {
	case TierSubstring:
		s.Substring++
	case TierFuzzy:
		s.Fuzzy++
	}
}

// MatchRate returns the matched share of lines as a percentage.
func (s MatchStats) MatchRate() float64 {
	if s.Total == 0 {
		return 0.0
	}
	return float64(s.Matched) / float64(s.Total) * 100.0
}

// LogSummary writes the counters at info level.
func (s MatchStats) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}
	logger.Info("Matching summary",
		logging.Field{Key: "total_lines", Value: s.Total},
		logging.Field{Key: "matched", Value: s.Matched},
		logging.Field{Key: "substring", Value: s.Substring},
		logging.Field{Key: "fuzzy", Value: s.Fuzzy},
		logging.Field{Key: "unmatched", Value: s.Unmatched},
		logging.Field{Key: "match_rate", Value: s.MatchRate()},
	)
}
