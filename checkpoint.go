package pdfextractor

import "context"

// CheckpointStore tracks which pages of a document have completed
// transcription, enabling resume across restarts. A page counts as completed
// only when its persisted artifacts (image and text) still exist on durable
// storage: the store verifies existence, never just recorded intent, so a
// page whose output disappeared is reprocessed rather than silently skipped.
//
// There is no rollback operation. Completed pages are invalidated only by
// external deletion or corruption of their artifacts.
type CheckpointStore interface {
	// ResumePoint returns the highest contiguous completed page index for the
	// document, or 0 when nothing is resumable.
	ResumePoint(ctx context.Context, doc *Document) (int, error)

	// RecordPage appends or updates the completion state for one page. It is
	// safe to call concurrently from multiple page workers.
	RecordPage(ctx context.Context, doc *Document, rec *PageRecord) error
}

// RunRecorder persists document results for batch history.
type RunRecorder interface {
	RecordRun(ctx context.Context, result *DocumentResult) error
}
