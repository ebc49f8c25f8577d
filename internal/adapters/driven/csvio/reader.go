package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/digital-land/harmonise-cli/internal/core/domain"
	"github.com/digital-land/harmonise-cli/internal/core/ports/driven"
)

// Ensure RowReader implements the interface.
var _ driven.RowReader = (*RowReader)(nil)

// RowReader streams rows from a CSV file, keyed by the header row.
type RowReader struct {
	file    *os.File
	csv     *csv.Reader
	columns []string
}

// OpenRowReader opens a CSV file and reads its header. An input that
// cannot be opened or has no header is a structural failure.
func OpenRowReader(path string) (*RowReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}

	reader := csv.NewReader(file)
	// Rows with missing or surplus cells are tolerated; values map to
	// columns by position.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	return &RowReader{file: file, csv: reader, columns: header}, nil
}

// Columns returns the header, in file order.
func (r *RowReader) Columns() []string {
	return r.columns
}

// Read returns the next row, or io.EOF when the input is exhausted.
func (r *RowReader) Read() (domain.Row, error) {
	record, err := r.csv.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}

	row := make(domain.Row, len(r.columns))
	for i, name := range r.columns {
		if i < len(record) {
			row[name] = record[i]
		} else {
			row[name] = ""
		}
	}
	return row, nil
}

// Close closes the underlying file.
func (r *RowReader) Close() error {
	return r.file.Close()
}
