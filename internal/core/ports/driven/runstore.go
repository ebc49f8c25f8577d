package driven

import (
	"context"
	"time"

	"github.com/digital-land/harmonise-cli/internal/core/domain"
)

// RunStore persists the run history. Optional: a nil store disables it.
type RunStore interface {
	// CreateRun records a run before processing begins, so issues written
	// during the run can reference it.
	CreateRun(ctx context.Context, run domain.Run) error

	// FinishRun records the final counts and duration for a run.
	FinishRun(ctx context.Context, runID string, rows, issues int, duration time.Duration) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)

	// RunIssues returns the issues recorded for a run, in insertion order.
	RunIssues(ctx context.Context, runID string) ([]domain.Issue, error)
}
