package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/co2-csv/internal/fileutils"
	"fjacquet/co2-csv/internal/loaderror"
	"fjacquet/co2-csv/internal/models"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// factorsDocument is the keyed YAML layout: "factors: [...]".
type factorsDocument struct {
	Factors []models.FactorRecord `yaml:"factors"`
}

// readFactorsCSV checks the header for the required columns, then lets
// gocsv map rows onto FactorRecord by tag.
func (s *FileStore) readFactorsCSV(path string) ([]models.FactorRecord, error) {
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte(utf8BOM))

	header, err := newCSVReader(bytes.NewReader(data), s.delimiter).Read()
	if errors.Is(err, io.EOF) {
		return nil, &loaderror.EmptyTableError{FilePath: path, Reason: "no header row"}
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header of '%s': %w", path, err)
	}
	tbl := &table{path: path, header: header}
	if err := tbl.requireColumns(models.ColumnCategory, models.ColumnFactor); err != nil {
		return nil, err
	}

	var records []models.FactorRecord
	if err := gocsv.UnmarshalCSV(newCSVReader(bytes.NewReader(data), s.delimiter), &records); err != nil {
		return nil, fmt.Errorf("error parsing CSV file '%s': %w", path, err)
	}
	return trimFactors(records), nil
}

func (s *FileStore) readFactorsXLSX(path string) ([]models.FactorRecord, error) {
	tbl, err := readXLSXTable(path)
	if err != nil {
		return nil, err
	}
	if err := tbl.requireColumns(models.ColumnCategory, models.ColumnFactor); err != nil {
		return nil, err
	}

	records := make([]models.FactorRecord, 0, len(tbl.rows))
	for _, line := range tbl.lines(s.logger) {
		category, _ := line.Get(models.ColumnCategory)
		factor, _ := line.Get(models.ColumnFactor)
		records = append(records, models.FactorRecord{Category: category, Factor: factor})
	}
	return records, nil
}

// readFactorsYAML accepts either a bare sequence of records or a document
// with a top-level "factors" key.
func (s *FileStore) readFactorsYAML(path string) ([]models.FactorRecord, error) {
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &loaderror.EmptyTableError{FilePath: path, Reason: "empty document"}
	}

	var records []models.FactorRecord
	if err := yaml.Unmarshal(data, &records); err == nil {
		return trimFactors(records), nil
	}

	var doc factorsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing YAML file '%s': %w", path, err)
	}
	return trimFactors(doc.Factors), nil
}

func trimFactors(records []models.FactorRecord) []models.FactorRecord {
	for i := range records {
		records[i].Category = strings.TrimSpace(records[i].Category)
		records[i].Factor = strings.TrimSpace(records[i].Factor)
	}
	return records
}
