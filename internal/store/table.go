package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/co2-csv/internal/fileutils"
	"fjacquet/co2-csv/internal/loaderror"
	"fjacquet/co2-csv/internal/logging"
	"fjacquet/co2-csv/internal/models"

	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

// table is a raw grid: a header row followed by data rows of any length.
type table struct {
	path   string
	header []string
	rows   [][]string
}

// lines converts data rows to invoice lines keyed by header name. Values
// are trimmed. Cells beyond the header are dropped.
func (t *table) lines(logger logging.Logger) []models.InvoiceLine {
	out := make([]models.InvoiceLine, 0, len(t.rows))
	for i, row := range t.rows {
		if len(row) > len(t.header) {
			logger.Debug("Ignoring cells beyond the header",
				logging.F(logging.FieldLine, i+2),
				logging.F(logging.FieldCount, len(row)-len(t.header)))
		}
		var line models.InvoiceLine
		for j, key := range t.header {
			if j >= len(row) {
				break
			}
			line.Set(key, strings.TrimSpace(row[j]))
		}
		out = append(out, line)
	}
	return out
}

// requireColumns returns a MissingColumnError for the first absent column.
func (t *table) requireColumns(columns ...string) error {
	for _, c := range columns {
		if !containsColumn(t.header, c) {
			return &loaderror.MissingColumnError{FilePath: t.path, Column: c, Header: t.header}
		}
	}
	return nil
}

func containsColumn(header []string, column string) bool {
	for _, h := range header {
		if h == column {
			return true
		}
	}
	return false
}

func newCSVReader(r io.Reader, delimiter rune) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	return reader
}

func readCSVTable(path string, delimiter rune) (*table, error) {
	file, err := fileutils.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	reader := newCSVReader(file, delimiter)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &loaderror.EmptyTableError{FilePath: path, Reason: "no header row"}
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header of '%s': %w", path, err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV file '%s': %w", path, err)
	}

	return &table{path: path, header: header, rows: rows}, nil
}

// readXLSXTable reads the first sheet. Fully empty rows are skipped the way
// a CSV reader skips blank lines.
func readXLSXTable(path string) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook '%s': %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, &loaderror.EmptyTableError{FilePath: path, Reason: "workbook has no sheets"}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet '%s': %w", sheetName, err)
	}

	var nonEmpty [][]string
	for _, row := range rows {
		if !isRowEmpty(row) {
			nonEmpty = append(nonEmpty, row)
		}
	}
	if len(nonEmpty) == 0 {
		return nil, &loaderror.EmptyTableError{FilePath: path, Reason: "no header row"}
	}

	return &table{path: path, header: nonEmpty[0], rows: nonEmpty[1:]}, nil
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
