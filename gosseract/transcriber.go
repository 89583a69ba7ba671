// Package gosseract implements OCR transcription using the Tesseract engine
// via the gosseract client.
package gosseract

import (
	"context"
	"strings"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
	"github.com/otiai10/gosseract/v2"
)

// Compile-time interface verification.
var _ pdfextractor.Transcriber = (*Transcriber)(nil)

// Transcriber performs OCR on rendered page images. Each call uses a fresh
// gosseract client so concurrent page workers never share Tesseract state.
type Transcriber struct {
	clientFactory func() *gosseract.Client
}

// NewTranscriber constructs a Tesseract-backed Transcriber.
func NewTranscriber() *Transcriber {
	return &Transcriber{clientFactory: gosseract.NewClient}
}

// Transcribe runs OCR on a PNG image and returns the recognized text with
// surrounding whitespace trimmed. The languages argument uses Tesseract's
// "+"-separated form, e.g. "eng+fra".
func (t *Transcriber) Transcribe(ctx context.Context, image []byte, languages string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(image) == 0 {
		return "", pdfextractor.Errorf(pdfextractor.ETRANSCRIBE, "empty image")
	}

	c := t.clientFactory()
	defer c.Close()

	if langs := pdfextractor.ParseLanguages(languages); len(langs) > 0 {
		if err := c.SetLanguage(langs...); err != nil {
			return "", pdfextractor.Errorf(pdfextractor.ETRANSCRIBE, "set languages %q: %v", languages, err)
		}
	}
	if err := c.SetImageFromBytes(image); err != nil {
		return "", pdfextractor.Errorf(pdfextractor.ETRANSCRIBE, "set image: %v", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", pdfextractor.Errorf(pdfextractor.ETRANSCRIBE, "recognize text: %v", err)
	}

	return strings.TrimSpace(text), nil
}
