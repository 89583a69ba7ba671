// Package pipeline provides document processing orchestration. It coordinates
// page rendering, transcription, checkpointing, consolidation, and analytics
// for one document, and drives directory batches across many documents with
// per-document fault isolation.
package pipeline

import (
	"log/slog"
	"time"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// Runner drives one document end to end. Page-scoped collaborator failures
// are absorbed into PageRecords; only document-scoped faults produce a failed
// DocumentResult.
type Runner struct {
	Renderer    pdfextractor.PageRenderer
	Transcriber pdfextractor.Transcriber
	Checkpoints pdfextractor.CheckpointStore
	Artifacts   pdfextractor.ArtifactStore
	Outputs     pdfextractor.OutputWriter

	// Names is optional. When nil the proper-names report is skipped and the
	// run is reported as degraded, not failed.
	Names pdfextractor.NameExtractor

	Config pdfextractor.Config
	Logger *slog.Logger

	// RetryAttempts bounds transcription attempts per page (zero means 3);
	// RetryDelay is the initial backoff between attempts (zero means 500ms).
	RetryAttempts uint
	RetryDelay    time.Duration
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// State identifies a stage of the document runner's state machine.
type State string

// Document runner states. Failed is reachable from every non-terminal state.
const (
	StateDiscovering   State = "discovering"
	StateResuming      State = "resuming"
	StateRunningPages  State = "running_pages"
	StateConsolidating State = "consolidating"
	StateAggregating   State = "aggregating"
	StateSucceeded     State = "succeeded"
	StateFailed        State = "failed"
)

// ProgressType indicates the type of page progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressPageDone
	ProgressPageFailed
	ProgressFinished
)

// ProgressEvent reports progress while a document's pages are processed.
type ProgressEvent struct {
	Type      ProgressType
	Page      int
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is a callback for reporting page progress. Events are
// delivered from a single goroutine in completion order.
type ProgressFunc func(event ProgressEvent)
