package driving

import (
	"context"

	"github.com/digital-land/harmonise-cli/internal/core/domain"
)

// Harmoniser runs the row pipeline over one input file.
type Harmoniser interface {
	// Run processes every input row to completion and reports a summary.
	// Structural failures (missing columns, unreadable input) return an
	// error; per-value failures are recorded as issues and never abort.
	Run(ctx context.Context) (*domain.RunSummary, error)
}
