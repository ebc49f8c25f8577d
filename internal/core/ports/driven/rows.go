package driven

import "github.com/digital-land/harmonise-cli/internal/core/domain"

// RowReader streams rows from an input file.
type RowReader interface {
	// Columns returns the input header, in file order.
	Columns() []string

	// Read returns the next row, or io.EOF when the input is exhausted.
	Read() (domain.Row, error)
}

// RowWriter receives harmonised rows. Implementations decide column order
// from the schema they were built with.
type RowWriter interface {
	// Write emits one output row.
	Write(row domain.Row) error
}
