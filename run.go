package pdfextractor

import (
	"context"
	"time"
)

// Run is one recorded document processing attempt.
type Run struct {
	ID             string
	DocumentName   string
	Status         string
	Error          string
	Elapsed        time.Duration
	PagesProcessed int
	PagesFailed    int
	OutputDir      string
	CreatedAt      time.Time
}

// RunFilter selects runs for listing. Nil fields match everything.
type RunFilter struct {
	DocumentName *string
	Status       *string

	Limit  int
	Offset int
}

// RunService records and lists processing history.
type RunService interface {
	RunRecorder

	// ListRuns returns runs matching the filter, newest first.
	ListRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}
