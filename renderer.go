package pdfextractor

import "context"

// PageRenderer rasterizes one document page to an encoded PNG image.
// Implementations hide the rendering engine (e.g., poppler's pdftoppm).
type PageRenderer interface {
	// RenderPage renders the 1-based page at the given resolution in DPI.
	// Returns ERENDER on corrupt or unsupported input.
	RenderPage(ctx context.Context, doc *Document, page int, dpi int) ([]byte, error)
}
