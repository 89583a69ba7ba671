package slog

import (
	"context"
	"log/slog"
	"time"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// Ensure LoggingTranscriber implements pdfextractor.Transcriber.
var _ pdfextractor.Transcriber = (*LoggingTranscriber)(nil)

// LoggingTranscriber wraps a Transcriber with debug logging.
type LoggingTranscriber struct {
	next   pdfextractor.Transcriber
	logger *slog.Logger
}

// NewLoggingTranscriber creates a new LoggingTranscriber.
func NewLoggingTranscriber(next pdfextractor.Transcriber, logger *slog.Logger) *LoggingTranscriber {
	return &LoggingTranscriber{next: next, logger: logger}
}

// Transcribe delegates to the wrapped transcriber and logs the operation.
func (t *LoggingTranscriber) Transcribe(ctx context.Context, image []byte, languages string) (text string, err error) {
	defer func(begin time.Time) {
		t.logger.Debug("transcribe page",
			"languages", languages,
			"image_bytes", len(image),
			"text_bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Transcribe(ctx, image, languages)
}
