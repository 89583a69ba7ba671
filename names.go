package pdfextractor

import "context"

// NameExtractor detects person names in text. The capability is optional:
// a nil extractor means the proper-names report is skipped, which is a
// degraded-mode condition rather than an error.
type NameExtractor interface {
	// ExtractNames returns every occurrence of a person's name in the text,
	// in order of appearance. Names are reported verbatim; aggregation
	// compares them by exact extractor output.
	ExtractNames(ctx context.Context, text string) ([]string, error)
}
