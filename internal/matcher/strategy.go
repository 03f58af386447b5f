package matcher

import "fjacquet/co2-csv/internal/models"

// Strategy is one matching tier. Strategies receive the description already
// normalized and report whether they resolved it.
type Strategy interface {
	// Match returns the resolved factor and true, or false when this tier
	// has no opinion and the next tier should run.
	Match(normalized string) (models.MatchResult, bool)

	// Name returns the tier name used in logs.
	Name() string
}
