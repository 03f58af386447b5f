package models

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatKg renders a kg CO2 value with two decimals for reports.
func FormatKg(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatFloat renders a derived value for export in its shortest round-trip
// form, always keeping a fractional part ("250.0", "12.5", "0.0") so the
// column reads as real numbers in every row.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
