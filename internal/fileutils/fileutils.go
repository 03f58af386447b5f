// Package fileutils provides the file operations shared by the table store
// and the report writers.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/co2-csv/internal/models"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory and its parents if needed
func EnsureDirectoryExists(dirPath string) error {
	if dirPath == "" || DirectoryExists(dirPath) {
		return nil
	}
	if err := os.MkdirAll(dirPath, models.PermissionDirectory); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// Extension returns the lowercased extension of filePath, dot included.
func Extension(filePath string) string {
	return strings.ToLower(filepath.Ext(filePath))
}

// ReadFile reads the entire contents of a file. A missing file yields an
// error matching os.ErrNotExist.
func ReadFile(filePath string) ([]byte, error) {
	if !FileExists(filePath) {
		return nil, fmt.Errorf("the file '%s' was not found: %w", filePath, os.ErrNotExist)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- user supplied input path
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}

// OpenFile opens a file for reading. A missing file yields an error
// matching os.ErrNotExist.
func OpenFile(filePath string) (*os.File, error) {
	if !FileExists(filePath) {
		return nil, fmt.Errorf("the file '%s' was not found: %w", filePath, os.ErrNotExist)
	}

	file, err := os.Open(filePath) // #nosec G304 -- user supplied input path
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// CreateFile creates or truncates a file for writing, creating parent
// directories first.
func CreateFile(filePath string) (*os.File, error) {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return nil, err
	}

	file, err := os.Create(filePath) // #nosec G304 -- user supplied output path
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return file, nil
}

// WriteFile writes data to a file, creating any parent directories needed
func WriteFile(filePath string, data []byte, perm os.FileMode) error {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return err
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
