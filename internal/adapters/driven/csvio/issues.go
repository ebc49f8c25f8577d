package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/digital-land/harmonise-cli/internal/core/domain"
	"github.com/digital-land/harmonise-cli/internal/core/ports/driven"
)

// Ensure IssueWriter implements the interface.
var _ driven.IssueWriter = (*IssueWriter)(nil)

// issueColumns is the fixed issue log header.
var issueColumns = []string{"row-number", "field", "datatype", "value"}

// IssueWriter appends issue records to a CSV log file.
type IssueWriter struct {
	file *os.File
	csv  *csv.Writer
}

// CreateIssueWriter creates (or truncates) the log file and writes its
// header.
func CreateIssueWriter(path string) (*IssueWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating issue log: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(issueColumns); err != nil {
		file.Close()
		return nil, fmt.Errorf("writing issue log header: %w", err)
	}

	return &IssueWriter{file: file, csv: writer}, nil
}

// Write appends one issue record.
func (w *IssueWriter) Write(issue domain.Issue) error {
	return w.csv.Write([]string{
		strconv.Itoa(issue.RowNumber),
		issue.Field,
		issue.Datatype,
		issue.Value,
	})
}

// Close flushes and closes the log file.
func (w *IssueWriter) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
