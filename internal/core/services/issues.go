package services

import (
	"github.com/digital-land/harmonise-cli/internal/core/domain"
	"github.com/digital-land/harmonise-cli/internal/core/ports/driven"
)

// multiIssueWriter fans one issue out to several sinks.
type multiIssueWriter struct {
	writers []driven.IssueWriter
}

// NewMultiIssueWriter combines issue sinks; a write goes to each in order
// and the first failure stops the run.
func NewMultiIssueWriter(writers ...driven.IssueWriter) driven.IssueWriter {
	return &multiIssueWriter{writers: writers}
}

// Write appends the issue to every sink.
func (m *multiIssueWriter) Write(issue domain.Issue) error {
	for _, w := range m.writers {
		if err := w.Write(issue); err != nil {
			return err
		}
	}
	return nil
}
