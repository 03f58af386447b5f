// Package models provides the data structures shared by the matching,
// calculation and reporting layers.
package models

// Column names of the reference table.
const (
	ColumnCategory = "category"
	ColumnFactor   = "factor_kg_co2_per_unit"
)

// Column names of invoice and enriched tables.
const (
	ColumnItemDescription = "item_description"
	ColumnQuantity        = "quantity"
	ColumnMatchedFactor   = "matched_factor"
	ColumnTotalLineCO2    = "total_line_co2"
)

// Defaults applied to invoice lines with missing or unusable fields.
const (
	DefaultDescription = "Unknown"
	DefaultQuantity    = 1.0
)

// UnmatchedFactor is the sentinel factor meaning no tier produced a match.
const UnmatchedFactor = 0.0

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
