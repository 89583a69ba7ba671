// Package slog provides logging decorators for the pipeline's collaborator
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// Ensure LoggingRenderer implements pdfextractor.PageRenderer.
var _ pdfextractor.PageRenderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a PageRenderer with debug logging.
type LoggingRenderer struct {
	next   pdfextractor.PageRenderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next pdfextractor.PageRenderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// RenderPage delegates to the wrapped renderer and logs the operation.
func (r *LoggingRenderer) RenderPage(ctx context.Context, doc *pdfextractor.Document, page, dpi int) (png []byte, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("render page",
			"document", doc.Name,
			"page", page,
			"dpi", dpi,
			"bytes", len(png),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderPage(ctx, doc, page, dpi)
}
