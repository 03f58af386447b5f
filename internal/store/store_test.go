package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/co2-csv/internal/loaderror"
	"fjacquet/co2-csv/internal/logging"
	"fjacquet/co2-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestNewFileStore(t *testing.T) {
	assert.Equal(t, ',', NewFileStore(0, nil).Delimiter())
	assert.Equal(t, ';', NewFileStore(';', nil).Delimiter())
}

func TestFindFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "factors.csv")
	writeFile(t, path, "category,factor_kg_co2_per_unit\n")

	s := NewFileStore(0, nil)
	found, err := s.FindFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = s.FindFile(filepath.Join(dir, "nonexistent.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadFactors_CSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "factors.csv")
	writeFile(t, path, "category,factor_kg_co2_per_unit\n laptop , 250.0\ncoffee,5.0\npaper,n/a\n")

	records, err := NewFileStore(0, nil).LoadFactors(path)
	require.NoError(t, err)
	assert.Equal(t, []models.FactorRecord{
		{Category: "laptop", Factor: "250.0"},
		{Category: "coffee", Factor: "5.0"},
		{Category: "paper", Factor: "n/a"},
	}, records)
}

func TestLoadFactors_CSVExtraColumnsAndDelimiter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "factors.csv")
	writeFile(t, path, "\ufeffsource;category;factor_kg_co2_per_unit\nademe;uber;0.2\n")

	records, err := NewFileStore(';', nil).LoadFactors(path)
	require.NoError(t, err)
	assert.Equal(t, []models.FactorRecord{{Category: "uber", Factor: "0.2"}}, records)
}

func TestLoadFactors_YAML(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "bare sequence",
			file: "factors.yaml",
			content: `- category: laptop
  factor_kg_co2_per_unit: 250.0
- category: coffee
  factor_kg_co2_per_unit: "5.0"
`,
		},
		{
			name: "keyed document",
			file: "factors.yml",
			content: `factors:
  - category: laptop
    factor_kg_co2_per_unit: 250.0
  - category: coffee
    factor_kg_co2_per_unit: "5.0"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, tt.content)

			records, err := NewFileStore(0, nil).LoadFactors(path)
			require.NoError(t, err)
			assert.Equal(t, []models.FactorRecord{
				{Category: "laptop", Factor: "250.0"},
				{Category: "coffee", Factor: "5.0"},
			}, records)
		})
	}
}

func TestLoadFactors_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factors.xlsx")
	writeWorkbook(t, path, [][]interface{}{
		{"category", "factor_kg_co2_per_unit"},
		{"Laptop", "250"},
		{"coffee", "5.5"},
	})

	records, err := NewFileStore(0, nil).LoadFactors(path)
	require.NoError(t, err)
	assert.Equal(t, []models.FactorRecord{
		{Category: "Laptop", Factor: "250"},
		{Category: "coffee", Factor: "5.5"},
	}, records)
}

func TestLoadFactors_Errors(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(0, nil)

	empty := filepath.Join(dir, "empty.csv")
	writeFile(t, empty, "")
	_, err := s.LoadFactors(empty)
	assert.True(t, errors.Is(err, loaderror.ErrEmptyTable))

	headerOnly := filepath.Join(dir, "header.csv")
	writeFile(t, headerOnly, "category,factor_kg_co2_per_unit\n")
	_, err = s.LoadFactors(headerOnly)
	assert.True(t, errors.Is(err, loaderror.ErrEmptyTable))

	noFactor := filepath.Join(dir, "nofactor.csv")
	writeFile(t, noFactor, "category,value\nlaptop,250\n")
	_, err = s.LoadFactors(noFactor)
	var missing *loaderror.MissingColumnError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, models.ColumnFactor, missing.Column)

	unsupported := filepath.Join(dir, "factors.json")
	writeFile(t, unsupported, "[]")
	_, err = s.LoadFactors(unsupported)
	var format *loaderror.UnsupportedFormatError
	require.True(t, errors.As(err, &format))
	assert.Equal(t, ".json", format.Extension)

	_, err = s.LoadFactors(filepath.Join(dir, "missing.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	emptyYAML := filepath.Join(dir, "empty.yaml")
	writeFile(t, emptyYAML, "\n")
	_, err = s.LoadFactors(emptyYAML)
	assert.True(t, errors.Is(err, loaderror.ErrEmptyTable))
}

func TestLoadInvoices_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices.csv")
	writeFile(t, path, "invoice_id,item_description,quantity,vendor\n"+
		"1, Laptop Pro ,2,  Acme\n"+
		"2,Coffe\n"+
		"3,Uber Ride,1,Uber,extra\n")

	lines, err := NewFileStore(0, nil).LoadInvoices(path)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, []string{"invoice_id", "item_description", "quantity", "vendor"}, lines[0].Keys())
	assert.Equal(t, "Laptop Pro", lines[0].Description())
	vendor, _ := lines[0].Get("vendor")
	assert.Equal(t, "Acme", vendor)

	// short row: missing cells are absent, not empty
	assert.Equal(t, []string{"invoice_id", "item_description"}, lines[1].Keys())
	assert.Equal(t, 1.0, lines[1].Quantity())

	// cells beyond the header are dropped
	assert.Equal(t, 4, lines[2].Len())
}

func TestLoadInvoices_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices.xlsx")
	writeWorkbook(t, path, [][]interface{}{
		{"item_description", "quantity"},
		{"Laptop", "3"},
		{},
		{"Coffee beans", "12"},
	})

	lines, err := NewFileStore(0, nil).LoadInvoices(path)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Laptop", lines[0].Description())
	assert.Equal(t, 12.0, lines[1].Quantity())
}

func TestLoadInvoices_Errors(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(0, nil)

	headerOnly := filepath.Join(dir, "invoices.csv")
	writeFile(t, headerOnly, "item_description,quantity\n")
	_, err := s.LoadInvoices(headerOnly)
	var empty *loaderror.EmptyTableError
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, "no data rows", empty.Reason)

	yamlFile := filepath.Join(dir, "invoices.yaml")
	writeFile(t, yamlFile, "- item_description: laptop\n")
	_, err = s.LoadInvoices(yamlFile)
	var format *loaderror.UnsupportedFormatError
	assert.True(t, errors.As(err, &format))
}

func TestExportEnriched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.csv")
	logger := logging.NewMockLogger()
	s := NewFileStore(0, logger)

	lines := []models.EnrichedLine{
		models.NewEnrichedLine(
			models.NewInvoiceLine("invoice_id", "1", "item_description", "Laptop", "quantity", "2"),
			models.MatchResult{Factor: 250, Tier: models.TierSubstring, Category: "laptop"}),
		models.NewEnrichedLine(
			models.NewInvoiceLine("item_description", "Gasoline", "notes", "ignored"),
			models.NoMatch()),
	}

	require.NoError(t, s.ExportEnriched(lines, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"invoice_id,item_description,quantity,matched_factor,total_line_co2\n"+
			"1,Laptop,2,250.0,500.0\n"+
			",Gasoline,,0.0,0.0\n",
		string(data))
	assert.True(t, logger.HasEntry("INFO", "Detailed results exported"))
}

func TestExportEnriched_Delimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	s := NewFileStore(';', nil)

	lines := []models.EnrichedLine{
		models.NewEnrichedLine(
			models.NewInvoiceLine("item_description", "Coffee; ground", "quantity", "1.5"),
			models.MatchResult{Factor: 5, Tier: models.TierSubstring, Category: "coffee"}),
	}
	require.NoError(t, s.ExportEnriched(lines, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"item_description;quantity;matched_factor;total_line_co2\n"+
			"\"Coffee; ground\";1.5;5.0;7.5\n",
		string(data))
}

func TestExportEnriched_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	logger := logging.NewMockLogger()

	require.NoError(t, NewFileStore(0, logger).ExportEnriched(nil, path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.True(t, logger.HasEntry("WARN", "No data to export"))
}

func TestExportThenLoadEnriched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	s := NewFileStore(0, nil)

	lines := []models.EnrichedLine{
		models.NewEnrichedLine(
			models.NewInvoiceLine("item_description", "Laptop", "quantity", "2"),
			models.MatchResult{Factor: 250, Tier: models.TierSubstring, Category: "laptop"}),
		models.NewEnrichedLine(models.NewInvoiceLine("item_description", "xyz"), models.NoMatch()),
	}
	require.NoError(t, s.ExportEnriched(lines, path))

	loaded, err := s.LoadEnriched(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 500.0, loaded[0].TotalLineCO2)
	assert.Equal(t, 250.0, loaded[0].MatchedFactor)
	assert.True(t, loaded[1].Unmatched())
	assert.Equal(t, lines[0].Keys(), loaded[0].Keys())
}

func TestMockStore(t *testing.T) {
	var s Store = &MockStore{
		Invoices: []models.InvoiceLine{models.NewInvoiceLine("item_description", "a")},
	}

	lines, err := s.LoadInvoices("ignored")
	require.NoError(t, err)
	lines[0].Set("item_description", "changed")

	again, _ := s.LoadInvoices("ignored")
	assert.Equal(t, "a", again[0].Description())

	failing := &MockStore{LoadFactorsError: errors.New("boom")}
	_, err = failing.LoadFactors("x")
	assert.EqualError(t, err, "boom")

	var _ Store = (*FileStore)(nil)
}
