package pdfextractor

import "context"

// ArtifactStore persists per-page artifacts to stable storage. Artifacts are
// written before a page is recorded in the checkpoint store, so a later
// resume always finds the outputs a checkpoint refers to.
type ArtifactStore interface {
	// SavePageImage writes the rendered image for a page, returning its path.
	SavePageImage(ctx context.Context, doc *Document, page int, png []byte) (string, error)

	// SavePageText writes the transcribed text (or failure marker) for a
	// page, returning its path.
	SavePageText(ctx context.Context, doc *Document, page int, text string) (string, error)

	// LoadPageText reads a page's persisted text. Returns ENOTFOUND if the
	// text artifact does not exist.
	LoadPageText(ctx context.Context, doc *Document, page int) (string, error)

	// HasPage reports whether both of a page's artifacts exist and are
	// non-empty.
	HasPage(ctx context.Context, doc *Document, page int) (bool, error)
}

// OutputWriter persists document-level outputs: the combined text and the two
// analytic reports.
type OutputWriter interface {
	// WriteCombined writes the consolidated document text, returning its path.
	WriteCombined(ctx context.Context, doc *Document, text string) (string, error)

	// WriteWordReport writes the word-frequency CSV report, returning its path.
	WriteWordReport(ctx context.Context, doc *Document, stats *WordStats) (string, error)

	// WriteNameReport writes the person-name CSV report, returning its path.
	WriteNameReport(ctx context.Context, doc *Document, stats *NameStats) (string, error)
}
