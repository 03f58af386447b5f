// Package store loads the reference and invoice tables from disk and writes
// enriched results back. It is the only layer that touches files; the core
// packages work on in-memory records.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/co2-csv/internal/fileutils"
	"fjacquet/co2-csv/internal/loaderror"
	"fjacquet/co2-csv/internal/logging"
	"fjacquet/co2-csv/internal/models"
)

// Supported file extensions.
const (
	ExtCSV  = ".csv"
	ExtXLSX = ".xlsx"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

var (
	factorFormats  = []string{ExtCSV, ExtXLSX, ExtYAML, ExtYML}
	invoiceFormats = []string{ExtCSV, ExtXLSX}
)

// DefaultDelimiter separates CSV fields unless configured otherwise.
const DefaultDelimiter = ','

// Store is the table I/O used by the pipeline.
type Store interface {
	LoadFactors(path string) ([]models.FactorRecord, error)
	LoadInvoices(path string) ([]models.InvoiceLine, error)
	LoadEnriched(path string) ([]models.EnrichedLine, error)
	ExportEnriched(lines []models.EnrichedLine, path string) error
}

// FileStore reads and writes tables on the local filesystem.
type FileStore struct {
	delimiter rune
	logger    logging.Logger
}

// NewFileStore creates a FileStore. A zero delimiter selects the default.
func NewFileStore(delimiter rune, logger logging.Logger) *FileStore {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &FileStore{delimiter: delimiter, logger: logger}
}

// Delimiter returns the CSV delimiter in use.
func (s *FileStore) Delimiter() rune {
	return s.delimiter
}

// FindFile looks for filename as given, then in ./data and in
// $HOME/.co2-csv. Absolute paths are only checked in place.
func (s *FileStore) FindFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", fmt.Errorf("the file '%s' was not found: %w", filename, os.ErrNotExist)
	}

	locations := []string{
		filename,
		filepath.Join("data", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".co2-csv", filename))
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}

	return "", fmt.Errorf("the file '%s' was not found: %w", filename, os.ErrNotExist)
}

// LoadFactors reads the emission-factor table. Factor values are returned
// as text; invalid ones are dropped later by the index.
func (s *FileStore) LoadFactors(path string) ([]models.FactorRecord, error) {
	resolved, err := s.FindFile(path)
	if err != nil {
		return nil, err
	}
	log := s.logger.WithField(logging.FieldFile, resolved)
	log.Info("Loading emission factors")

	var records []models.FactorRecord
	switch ext := fileutils.Extension(resolved); ext {
	case ExtCSV:
		records, err = s.readFactorsCSV(resolved)
	case ExtXLSX:
		records, err = s.readFactorsXLSX(resolved)
	case ExtYAML, ExtYML:
		records, err = s.readFactorsYAML(resolved)
	default:
		return nil, &loaderror.UnsupportedFormatError{FilePath: resolved, Extension: ext, Supported: factorFormats}
	}
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, &loaderror.EmptyTableError{FilePath: resolved, Reason: "no data rows"}
	}

	log.Info("Loaded emission factors", logging.F(logging.FieldCount, len(records)))
	return records, nil
}

// LoadInvoices reads the invoice table. Column order is kept, every value is
// trimmed and cells missing from short rows are left out of the line.
func (s *FileStore) LoadInvoices(path string) ([]models.InvoiceLine, error) {
	resolved, err := s.FindFile(path)
	if err != nil {
		return nil, err
	}
	log := s.logger.WithField(logging.FieldFile, resolved)
	log.Info("Loading invoice lines")

	tbl, err := s.readTable(resolved, invoiceFormats)
	if err != nil {
		return nil, err
	}

	lines := tbl.lines(log)
	if len(lines) == 0 {
		return nil, &loaderror.EmptyTableError{FilePath: resolved, Reason: "no data rows"}
	}

	log.Info("Loaded invoice lines", logging.F(logging.FieldCount, len(lines)))
	return lines, nil
}

// LoadEnriched reads a previously exported result table. Derived columns
// are parsed back; a row without them counts as unmatched.
func (s *FileStore) LoadEnriched(path string) ([]models.EnrichedLine, error) {
	rows, err := s.LoadInvoices(path)
	if err != nil {
		return nil, err
	}
	out := make([]models.EnrichedLine, len(rows))
	for i, row := range rows {
		out[i] = models.EnrichedFromExport(row)
	}
	return out, nil
}

func (s *FileStore) readTable(path string, supported []string) (*table, error) {
	switch ext := fileutils.Extension(path); ext {
	case ExtCSV:
		return readCSVTable(path, s.delimiter)
	case ExtXLSX:
		return readXLSXTable(path)
	default:
		return nil, &loaderror.UnsupportedFormatError{FilePath: path, Extension: ext, Supported: supported}
	}
}
