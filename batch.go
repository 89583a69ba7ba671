package pdfextractor

import (
	"context"
	"time"
)

// FailedDocument names a document whose processing failed, with the error.
type FailedDocument struct {
	Name string
	Err  *Error
}

// BatchSummary aggregates all document results of one batch. It is built
// incrementally by the batch orchestrator and never mutated after the batch
// finishes.
type BatchSummary struct {
	// Total is the number of documents discovered.
	Total int

	// Succeeded and Failed list document names in processing order.
	Succeeded []string
	Failed    []FailedDocument

	Elapsed time.Duration
}

// SuccessCount returns the number of successfully processed documents.
func (s *BatchSummary) SuccessCount() int { return len(s.Succeeded) }

// FailureCount returns the number of failed documents.
func (s *BatchSummary) FailureCount() int { return len(s.Failed) }

// ErrorLog records document failures during a batch. The log lives alongside
// the input documents, not in the output directory, and is append-only.
type ErrorLog interface {
	Append(ctx context.Context, documentName string, err error) error
}
