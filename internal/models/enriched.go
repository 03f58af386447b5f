package models

// EnrichedLine is an invoice line after matching. Line is a private copy of
// the source line; the derived values live in their own fields and are only
// merged into the field list by Keys/Value.
type EnrichedLine struct {
	Line          InvoiceLine
	Description   string
	Quantity      float64
	MatchedFactor float64
	TotalLineCO2  float64
	Match         MatchResult
}

// NewEnrichedLine copies src and attaches the match outcome.
func NewEnrichedLine(src InvoiceLine, match MatchResult) EnrichedLine {
	qty := src.Quantity()
	return EnrichedLine{
		Line:          src.Clone(),
		Description:   src.Description(),
		Quantity:      qty,
		MatchedFactor: match.Factor,
		TotalLineCO2:  qty * match.Factor,
		Match:         match,
	}
}

// EnrichedFromExport rebuilds an enriched line from a previously exported
// row. Derived columns that are missing or unparseable read as 0.0.
func EnrichedFromExport(row InvoiceLine) EnrichedLine {
	factorText, _ := row.Get(ColumnMatchedFactor)
	totalText, _ := row.Get(ColumnTotalLineCO2)
	factor := ParseFloatDefault(factorText, UnmatchedFactor)

	match := NoMatch()
	if factor != UnmatchedFactor {
		match = MatchResult{Factor: factor}
	}

	return EnrichedLine{
		Line:          row.Clone(),
		Description:   row.Description(),
		Quantity:      row.Quantity(),
		MatchedFactor: factor,
		TotalLineCO2:  ParseFloatDefault(totalText, 0),
		Match:         match,
	}
}

// Unmatched reports whether the line carries the sentinel factor.
func (e EnrichedLine) Unmatched() bool {
	return e.MatchedFactor == UnmatchedFactor
}

// Keys returns the original field order followed by matched_factor and
// total_line_co2. A source column with one of those names keeps its
// position and is overwritten by the derived value.
func (e EnrichedLine) Keys() []string {
	keys := e.Line.Keys()
	for _, derived := range []string{ColumnMatchedFactor, ColumnTotalLineCO2} {
		if _, exists := e.Line.Get(derived); !exists {
			keys = append(keys, derived)
		}
	}
	return keys
}

// Value returns the export text for key.
func (e EnrichedLine) Value(key string) (string, bool) {
	switch key {
	case ColumnMatchedFactor:
		return FormatFloat(e.MatchedFactor), true
	case ColumnTotalLineCO2:
		return FormatFloat(e.TotalLineCO2), true
	}
	return e.Line.Get(key)
}
