package driven

import "github.com/digital-land/harmonise-cli/internal/core/domain"

// IssueWriter is the side channel for values that could not be normalised.
// The pipeline is the only writer; implementations need no locking.
type IssueWriter interface {
	// Write appends one issue record.
	Write(issue domain.Issue) error
}
