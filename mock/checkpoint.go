package mock

import (
	"context"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

var _ pdfextractor.CheckpointStore = (*CheckpointStore)(nil)

// CheckpointStore is a mock implementation of pdfextractor.CheckpointStore.
type CheckpointStore struct {
	ResumePointFn func(ctx context.Context, doc *pdfextractor.Document) (int, error)
	RecordPageFn  func(ctx context.Context, doc *pdfextractor.Document, rec *pdfextractor.PageRecord) error
}

func (s *CheckpointStore) ResumePoint(ctx context.Context, doc *pdfextractor.Document) (int, error) {
	return s.ResumePointFn(ctx, doc)
}

func (s *CheckpointStore) RecordPage(ctx context.Context, doc *pdfextractor.Document, rec *pdfextractor.PageRecord) error {
	return s.RecordPageFn(ctx, doc, rec)
}

var _ pdfextractor.RunRecorder = (*RunRecorder)(nil)

// RunRecorder is a mock implementation of pdfextractor.RunRecorder.
type RunRecorder struct {
	RecordRunFn func(ctx context.Context, result *pdfextractor.DocumentResult) error
}

func (r *RunRecorder) RecordRun(ctx context.Context, result *pdfextractor.DocumentResult) error {
	return r.RecordRunFn(ctx, result)
}
