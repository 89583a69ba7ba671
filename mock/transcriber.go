package mock

import (
	"context"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

var _ pdfextractor.Transcriber = (*Transcriber)(nil)

// Transcriber is a mock implementation of pdfextractor.Transcriber.
type Transcriber struct {
	TranscribeFn func(ctx context.Context, image []byte, languages string) (string, error)
}

func (t *Transcriber) Transcribe(ctx context.Context, image []byte, languages string) (string, error) {
	return t.TranscribeFn(ctx, image, languages)
}

var _ pdfextractor.NameExtractor = (*NameExtractor)(nil)

// NameExtractor is a mock implementation of pdfextractor.NameExtractor.
type NameExtractor struct {
	ExtractNamesFn func(ctx context.Context, text string) ([]string, error)
}

func (e *NameExtractor) ExtractNames(ctx context.Context, text string) ([]string, error) {
	return e.ExtractNamesFn(ctx, text)
}
