package models

// MatchTier names the matching tier that produced a factor.
type MatchTier string

const (
	TierSubstring MatchTier = "substring"
	TierFuzzy     MatchTier = "fuzzy"
	TierNone      MatchTier = "none"
)

// MatchResult describes how a description was resolved.
type MatchResult struct {
	Factor     float64   `json:"factor" yaml:"factor"`
	Tier       MatchTier `json:"tier" yaml:"tier"`
	Category   string    `json:"category,omitempty" yaml:"category,omitempty"`
	Word       string    `json:"word,omitempty" yaml:"word,omitempty"`             // fuzzy tier only
	Similarity float64   `json:"similarity,omitempty" yaml:"similarity,omitempty"` // fuzzy tier only
}

// NoMatch is the result returned when no tier matched.
func NoMatch() MatchResult {
	return MatchResult{Factor: UnmatchedFactor, Tier: TierNone}
}

// Matched reports whether a tier produced the result.
func (r MatchResult) Matched() bool {
	return r.Tier != TierNone && r.Tier != ""
}
