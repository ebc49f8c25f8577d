package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/digital-land/harmonise-cli/internal/core/domain"
	"github.com/digital-land/harmonise-cli/internal/core/ports/driven"
	"github.com/digital-land/harmonise-cli/internal/core/ports/driving"
	"github.com/digital-land/harmonise-cli/internal/logger"
)

// Ensure HarmoniseService implements the interface.
var _ driving.Harmoniser = (*HarmoniseService)(nil)

// HarmoniseService is the row pipeline: it normalises every schema field of
// every input row, runs the geometry post-pass, and emits the result. It is
// the single writer of the issue sink and the sole owner of the row counter.
type HarmoniseService struct {
	runID    string
	schema   *domain.Schema
	registry Registry
	geometry driven.RowNormaliser
	reader   driven.RowReader
	writer   driven.RowWriter
	issues   driven.IssueWriter
}

// Registry is the value classifier the pipeline dispatches through.
type Registry interface {
	// Normalise coerces one raw value for the given field.
	Normalise(field *domain.Field, raw string) (string, *domain.Issue)
}

// NewHarmoniseService wires the pipeline. runID may be empty, in which case
// a fresh one is generated.
func NewHarmoniseService(
	runID string,
	schema *domain.Schema,
	registry Registry,
	geometry driven.RowNormaliser,
	reader driven.RowReader,
	writer driven.RowWriter,
	issues driven.IssueWriter,
) *HarmoniseService {
	if runID == "" {
		runID = uuid.New().String()
	}
	return &HarmoniseService{
		runID:    runID,
		schema:   schema,
		registry: registry,
		geometry: geometry,
		reader:   reader,
		writer:   writer,
		issues:   issues,
	}
}

// Run processes the entire input to completion. Rows are handled strictly
// in input order with a 1-based counter incremented once per row. No row is
// ever dropped: a row whose every field failed coercion is still written,
// entirely blank, with each failure logged as an issue.
func (s *HarmoniseService) Run(ctx context.Context) (*domain.RunSummary, error) {
	started := time.Now()
	summary := &domain.RunSummary{
		RunID:            s.runID,
		IssuesByDatatype: make(map[string]int),
		StartedAt:        started,
	}

	if err := s.checkColumns(); err != nil {
		return nil, err
	}

	logger.Section("harmonise")
	logger.Debug("run %s: %d fields", s.runID, len(s.schema.Fields))

	rowNumber := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		in, err := s.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", rowNumber+1, err)
		}
		rowNumber++

		out := make(domain.Row, len(s.schema.Fields))
		for i := range s.schema.Fields {
			field := &s.schema.Fields[i]
			canonical, issue := s.registry.Normalise(field, in[field.Name])
			if issue != nil {
				if err := s.record(summary, rowNumber, issue); err != nil {
					return nil, err
				}
			}
			out[field.Name] = canonical
		}

		out, issue := s.geometry.NormaliseRow(out)
		if issue != nil {
			if err := s.record(summary, rowNumber, issue); err != nil {
				return nil, err
			}
		}

		if err := s.writer.Write(out); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", rowNumber, err)
		}
	}

	summary.Rows = rowNumber
	summary.Duration = time.Since(started)
	logger.Info("processed %d rows, %d issues in %s",
		summary.Rows, summary.Issues, summary.Duration.Round(time.Millisecond))
	return summary, nil
}

// checkColumns verifies every declared column is present in the input.
// A missing declared column is a structural failure, not a per-value one.
func (s *HarmoniseService) checkColumns() error {
	have := make(map[string]struct{})
	for _, name := range s.reader.Columns() {
		have[name] = struct{}{}
	}

	for _, name := range s.schema.FieldNames() {
		if _, ok := have[name]; !ok {
			return fmt.Errorf("%w: %q", domain.ErrMissingColumn, name)
		}
	}
	return nil
}

// record stamps the row number on an issue and writes it to the sink.
func (s *HarmoniseService) record(summary *domain.RunSummary, rowNumber int, issue *domain.Issue) error {
	issue.RowNumber = rowNumber
	if err := s.issues.Write(*issue); err != nil {
		return fmt.Errorf("recording issue at row %d: %w", rowNumber, err)
	}
	summary.Issues++
	summary.IssuesByDatatype[issue.Datatype]++
	logger.Debug("row %d: %s %s value %q", rowNumber, issue.Field, issue.Datatype, issue.Value)
	return nil
}
