package domain

import "errors"

// Domain errors represent structural failures. Per-value coercion failures
// are never errors; they are recorded as Issues and the run continues.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSchema indicates a schema document is missing required keys
	// or declares something unusable (duplicate names, bad strip pattern).
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrUnknownField indicates a field name not present in the schema.
	ErrUnknownField = errors.New("unknown field")

	// ErrMissingColumn indicates the input file lacks a column the schema
	// declares. This is fatal: every declared column must be present.
	ErrMissingColumn = errors.New("missing column")
)
