package store

import (
	"fjacquet/co2-csv/internal/models"
)

// MockStore is an in-memory Store for testing.
type MockStore struct {
	Factors  []models.FactorRecord
	Invoices []models.InvoiceLine
	Enriched []models.EnrichedLine

	// Exported records every ExportEnriched call keyed by path.
	Exported map[string][]models.EnrichedLine

	// Error flags for testing error conditions
	LoadFactorsError    error
	LoadInvoicesError   error
	LoadEnrichedError   error
	ExportEnrichedError error
}

// LoadFactors returns the mock factor records.
func (m *MockStore) LoadFactors(string) ([]models.FactorRecord, error) {
	if m.LoadFactorsError != nil {
		return nil, m.LoadFactorsError
	}
	return m.Factors, nil
}

// LoadInvoices returns copies of the mock invoice lines.
func (m *MockStore) LoadInvoices(string) ([]models.InvoiceLine, error) {
	if m.LoadInvoicesError != nil {
		return nil, m.LoadInvoicesError
	}
	out := make([]models.InvoiceLine, len(m.Invoices))
	for i, l := range m.Invoices {
		out[i] = l.Clone()
	}
	return out, nil
}

// LoadEnriched returns the mock enriched lines.
func (m *MockStore) LoadEnriched(string) ([]models.EnrichedLine, error) {
	if m.LoadEnrichedError != nil {
		return nil, m.LoadEnrichedError
	}
	return m.Enriched, nil
}

// ExportEnriched records the lines under path.
func (m *MockStore) ExportEnriched(lines []models.EnrichedLine, path string) error {
	if m.ExportEnrichedError != nil {
		return m.ExportEnrichedError
	}
	if m.Exported == nil {
		m.Exported = make(map[string][]models.EnrichedLine)
	}
	m.Exported[path] = lines
	return nil
}
