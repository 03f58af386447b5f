package calculator

import (
	"testing"

	"fjacquet/co2-csv/internal/factors"
	"fjacquet/co2-csv/internal/logging"
	"fjacquet/co2-csv/internal/matcher"
	"fjacquet/co2-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver map[string]float64

func (s stubResolver) Resolve(description string) models.MatchResult {
	if f, ok := s[description]; ok {
		return models.MatchResult{Factor: f, Tier: models.TierSubstring, Category: description}
	}
	return models.NoMatch()
}

func newRealCalculator(t *testing.T, logger logging.Logger) *Calculator {
	t.Helper()
	idx := factors.NewIndex([]models.FactorRecord{
		{Category: "laptop", Factor: "250.0"},
		{Category: "coffee", Factor: "5.0"},
	}, nil)
	return New(matcher.New(idx, matcher.DefaultOptions(), nil), logger)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name          string
		line          models.InvoiceLine
		wantFactor    float64
		wantTotal     float64
		wantQuantity  float64
		wantUnmatched bool
	}{
		{
			name:         "quantity times factor",
			line:         models.NewInvoiceLine("item_description", "Laptop", "quantity", "2"),
			wantFactor:   250.0,
			wantTotal:    500.0,
			wantQuantity: 2,
		},
		{
			name:         "missing quantity defaults to one",
			line:         models.NewInvoiceLine("item_description", "Coffe"),
			wantFactor:   5.0,
			wantTotal:    5.0,
			wantQuantity: 1,
		},
		{
			name:         "unparseable quantity defaults to one",
			line:         models.NewInvoiceLine("item_description", "coffee beans", "quantity", "n/a"),
			wantFactor:   5.0,
			wantTotal:    5.0,
			wantQuantity: 1,
		},
		{
			name:          "unmatched line",
			line:          models.NewInvoiceLine("item_description", "gasoline", "quantity", "10"),
			wantQuantity:  10,
			wantUnmatched: true,
		},
		{
			name:          "missing description",
			line:          models.NewInvoiceLine("quantity", "3"),
			wantQuantity:  3,
			wantUnmatched: true,
		},
	}

	calc := newRealCalculator(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Calculate([]models.InvoiceLine{tt.line})
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantFactor, got[0].MatchedFactor)
			assert.Equal(t, tt.wantTotal, got[0].TotalLineCO2)
			assert.Equal(t, tt.wantQuantity, got[0].Quantity)
			assert.Equal(t, tt.wantUnmatched, got[0].Unmatched())
		})
	}
}

func TestCalculate_PreservesOrderAndFields(t *testing.T) {
	calc := New(stubResolver{"a": 1, "c": 3}, nil)
	lines := []models.InvoiceLine{
		models.NewInvoiceLine("id", "1", "item_description", "a", "vendor", "x"),
		models.NewInvoiceLine("id", "2", "item_description", "b", "vendor", "y"),
		models.NewInvoiceLine("id", "3", "item_description", "c", "vendor", "z"),
	}

	got := calc.Calculate(lines)
	require.Len(t, got, 3)
	for i, e := range got {
		id, _ := e.Value("id")
		assert.Equal(t, lines[i].Keys()[0], "id")
		want, _ := lines[i].Get("id")
		assert.Equal(t, want, id)
		vendor, ok := e.Value("vendor")
		assert.True(t, ok)
		wantVendor, _ := lines[i].Get("vendor")
		assert.Equal(t, wantVendor, vendor)
	}
	assert.Equal(t,
		[]string{"id", "item_description", "vendor", "matched_factor", "total_line_co2"},
		got[0].Keys())
	assert.True(t, got[1].Unmatched())
}

func TestCalculate_DoesNotMutateInput(t *testing.T) {
	calc := New(stubResolver{"a": 2}, nil)
	line := models.NewInvoiceLine("item_description", "a", "quantity", "4")

	got := calc.Calculate([]models.InvoiceLine{line})
	got[0].Line.Set("quantity", "99")

	assert.Equal(t, []string{"item_description", "quantity"}, line.Keys())
	q, _ := line.Get("quantity")
	assert.Equal(t, "4", q)
	_, has := line.Get(models.ColumnMatchedFactor)
	assert.False(t, has)
}

func TestCalculate_Empty(t *testing.T) {
	calc := New(stubResolver{}, nil)
	assert.Empty(t, calc.Calculate(nil))
}

func TestCalculate_LogsSummary(t *testing.T) {
	logger := logging.NewMockLogger()
	calc := newRealCalculator(t, logger)

	calc.Calculate([]models.InvoiceLine{
		models.NewInvoiceLine("item_description", "Laptop"),
		models.NewInvoiceLine("item_description", "coffe"),
		models.NewInvoiceLine("item_description", "gasoline"),
	})

	infos := logger.EntriesByLevel("INFO")
	require.Len(t, infos, 1)
	assert.Equal(t, "Matching summary", infos[0].Message)
	matched, _ := infos[0].FieldValue("matched")
	assert.Equal(t, 2, matched)
	unmatched, _ := infos[0].FieldValue("unmatched")
	assert.Equal(t, 1, unmatched)
	assert.True(t, logger.HasEntry("DEBUG", "Line has no emission factor"))
}

func TestCalculateOne(t *testing.T) {
	calc := newRealCalculator(t, nil)
	got := calc.CalculateOne(models.NewInvoiceLine("item_description", "LAPTOP stand", "quantity", "0.5"))
	assert.Equal(t, 125.0, got.TotalLineCO2)
	assert.Equal(t, models.TierSubstring, got.Match.Tier)
}
