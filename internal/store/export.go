package store

import (
	"encoding/csv"
	"fmt"

	"fjacquet/co2-csv/internal/fileutils"
	"fjacquet/co2-csv/internal/logging"
	"fjacquet/co2-csv/internal/models"

	"github.com/gocarina/gocsv"
)

// ExportEnriched writes lines to a CSV file. The header is the first line's
// field order; a later line missing one of those fields gets an empty cell
// and fields the first line does not have are not written. An empty input
// writes nothing.
func (s *FileStore) ExportEnriched(lines []models.EnrichedLine, path string) error {
	log := s.logger.WithFields(
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldDelimiter, string(s.delimiter)))

	if len(lines) == 0 {
		log.Warn("No data to export")
		return nil
	}

	file, err := fileutils.CreateFile(path)
	if err != nil {
		return fmt.Errorf("error exporting file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = s.delimiter
	writer := gocsv.NewSafeCSVWriter(csvWriter)

	header := lines[0].Keys()
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	record := make([]string, len(header))
	for _, line := range lines {
		for i, key := range header {
			value, _ := line.Value(key)
			record[i] = value
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV data: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.Info("Detailed results exported", logging.F(logging.FieldCount, len(lines)))
	return nil
}
