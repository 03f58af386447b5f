package logging

// Field names shared by every component so log lines can be filtered
// consistently (e.g. `jq 'select(.tier == "fuzzy")'`).
const (
	FieldFile        = "file_path"
	FieldRunID       = "run_id"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldFactor      = "factor"
	FieldTier        = "tier"
	FieldWord        = "word"
	FieldSimilarity  = "similarity"
	FieldQuantity    = "quantity"
	FieldLine        = "line"
	FieldReason      = "reason"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldCount       = "count"
	FieldDelimiter   = "delimiter"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
)
