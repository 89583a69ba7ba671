package pdfextractor

import (
	"context"
	"strings"
	"time"
)

// Document represents one input file to be converted to text. It is immutable
// once discovered: created by a DocumentOpener, consumed by the document
// runner, never mutated.
type Document struct {
	// Name is the document's base name without the file extension.
	Name string

	// Path is the location of the source file on disk.
	Path string

	// TotalPages is the number of pages in the document.
	TotalPages int
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	if d.TotalPages < 1 {
		return Errorf(EINVALID, "document %q has no pages", d.Name)
	}
	return nil
}

// SafeName returns the document name with spaces replaced by underscores,
// suitable for use as a directory name component.
func (d *Document) SafeName() string {
	return strings.ReplaceAll(d.Name, " ", "_")
}

// DocumentOpener validates a document file and discovers its page count.
type DocumentOpener interface {
	// OpenDocument returns EINPUT if the file is missing, unreadable, corrupt,
	// or contains no pages, and EINVALID if it is not a PDF.
	OpenDocument(ctx context.Context, path string) (*Document, error)
}

// PageRange is an inclusive, 1-based range of pages to process. It replaces
// the interactive range selection of earlier tooling: callers decide the
// range up front and the pipeline itself is range-agnostic.
type PageRange struct {
	Start int
	End   int
}

// FullRange returns the range covering every page of the document.
func FullRange(doc *Document) PageRange {
	return PageRange{Start: 1, End: doc.TotalPages}
}

// Validate returns an error if the range is not within 1..totalPages.
func (r PageRange) Validate(totalPages int) error {
	if r.Start < 1 || r.End < r.Start || r.End > totalPages {
		return Errorf(EINVALID, "page range %d-%d outside document bounds 1-%d", r.Start, r.End, totalPages)
	}
	return nil
}

// Len returns the number of pages in the range.
func (r PageRange) Len() int {
	return r.End - r.Start + 1
}

// Document result statuses.
const (
	DocumentSucceeded = "success"
	DocumentFailed    = "failure"
)

// DocumentResult is the outcome of processing one document. A document with
// failed pages but a written combined output is still a success; only
// document-scoped faults (unreadable source, storage failure) produce a
// failure result.
type DocumentResult struct {
	Document *Document

	// Status is DocumentSucceeded or DocumentFailed.
	Status string

	// Err carries the document-scoped error when Status is DocumentFailed.
	Err *Error

	Elapsed time.Duration

	// PagesProcessed counts pages that completed transcription, including
	// pages restored from a checkpoint. PagesFailed counts pages that
	// produced a failure marker instead of text.
	PagesProcessed int
	PagesFailed    int

	// Artifact paths, set on success.
	OutputDir      string
	CombinedPath   string
	WordReportPath string
	NameReportPath string
}
