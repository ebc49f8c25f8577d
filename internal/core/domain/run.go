package domain

import "time"

// Run records one harmonisation of an input file, for the run history.
type Run struct {
	// ID is the unique run identifier.
	ID string

	// InputPath is the source CSV.
	InputPath string

	// OutputPath is the harmonised CSV.
	OutputPath string

	// SchemaPath is the schema document used.
	SchemaPath string

	// Rows is the number of input rows processed.
	Rows int

	// Issues is the total number of issues recorded.
	Issues int

	// StartedAt is when the run began.
	StartedAt time.Time

	// Duration is how long the run took.
	Duration time.Duration
}

// RunSummary is what the pipeline reports after processing an input.
type RunSummary struct {
	// RunID identifies the run.
	RunID string

	// Rows is the number of input rows processed.
	Rows int

	// Issues is the total number of issues recorded.
	Issues int

	// IssuesByDatatype counts issues per datatype label.
	IssuesByDatatype map[string]int

	// StartedAt is when processing began.
	StartedAt time.Time

	// Duration is how long processing took.
	Duration time.Duration
}
