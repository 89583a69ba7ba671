// Package mock provides mock implementations of pdfextractor interfaces for testing.
package mock

import (
	"context"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

var _ pdfextractor.PageRenderer = (*PageRenderer)(nil)

// PageRenderer is a mock implementation of pdfextractor.PageRenderer.
type PageRenderer struct {
	RenderPageFn func(ctx context.Context, doc *pdfextractor.Document, page, dpi int) ([]byte, error)
}

func (r *PageRenderer) RenderPage(ctx context.Context, doc *pdfextractor.Document, page, dpi int) ([]byte, error) {
	return r.RenderPageFn(ctx, doc, page, dpi)
}
