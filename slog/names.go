package slog

import (
	"context"
	"log/slog"
	"time"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// Ensure LoggingNameExtractor implements pdfextractor.NameExtractor.
var _ pdfextractor.NameExtractor = (*LoggingNameExtractor)(nil)

// LoggingNameExtractor wraps a NameExtractor with debug logging.
type LoggingNameExtractor struct {
	next   pdfextractor.NameExtractor
	logger *slog.Logger
}

// NewLoggingNameExtractor creates a new LoggingNameExtractor.
func NewLoggingNameExtractor(next pdfextractor.NameExtractor, logger *slog.Logger) *LoggingNameExtractor {
	return &LoggingNameExtractor{next: next, logger: logger}
}

// ExtractNames delegates to the wrapped extractor and logs the operation.
func (e *LoggingNameExtractor) ExtractNames(ctx context.Context, text string) (names []string, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract names",
			"text_bytes", len(text),
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractNames(ctx, text)
}
