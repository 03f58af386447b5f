// Package loaderror defines the typed errors raised while loading reference
// and invoice tables. Per-row problems inside the core are never returned;
// they are wrapped in ParseError only to be logged.
package loaderror

import (
	"errors"
	"fmt"
)

// ParseError describes a field value that could not be parsed.
type ParseError struct {
	Source string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Source, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrEmptyTable is matched by every EmptyTableError through errors.Is.
var ErrEmptyTable = errors.New("table is empty")

// EmptyTableError is returned when a table has no header or no data rows.
// The pipeline refuses to run the core on such input.
type EmptyTableError struct {
	FilePath string
	Reason   string
}

func (e *EmptyTableError) Error() string {
	return fmt.Sprintf("the file '%s' appears to be empty: %s", e.FilePath, e.Reason)
}

func (e *EmptyTableError) Is(target error) bool {
	return target == ErrEmptyTable
}

// MissingColumnError is returned when a required header is absent.
type MissingColumnError struct {
	FilePath string
	Column   string
	Header   []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("file '%s' has no '%s' column (header: %v)", e.FilePath, e.Column, e.Header)
}

// UnsupportedFormatError is returned for file extensions no loader handles.
type UnsupportedFormatError struct {
	FilePath  string
	Extension string
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported table format '%s' for file '%s'. Expected one of: %v",
		e.Extension, e.FilePath, e.Supported)
}
