package csvio

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/digital-land/harmonise-cli/internal/core/domain"
	"github.com/digital-land/harmonise-cli/internal/core/ports/driven"
)

// Ensure RowWriter implements the interface.
var _ driven.RowWriter = (*RowWriter)(nil)

// RowWriter writes rows to a CSV file with a fixed column order.
type RowWriter struct {
	file    *os.File
	csv     *csv.Writer
	columns []string
}

// CreateRowWriter creates (or truncates) the output file and writes the
// header. Columns fix the output order: schema order, always.
func CreateRowWriter(path string, columns []string) (*RowWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		file.Close()
		return nil, fmt.Errorf("writing header: %w", err)
	}

	return &RowWriter{file: file, csv: writer, columns: columns}, nil
}

// Write emits one row. Every column is written, blank when the row has no
// value for it.
func (w *RowWriter) Write(row domain.Row) error {
	record := make([]string, len(w.columns))
	for i, name := range w.columns {
		record[i] = row[name]
	}
	return w.csv.Write(record)
}

// Close flushes and closes the output file.
func (w *RowWriter) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
