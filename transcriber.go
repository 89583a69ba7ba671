package pdfextractor

import (
	"context"
	"strings"
)

// Transcriber converts a raster image into text.
// Implementations hide the OCR engine (e.g., tesseract via gosseract).
type Transcriber interface {
	// Transcribe runs OCR over an encoded image. The languages spec is one or
	// more tesseract language codes combined with "+" (e.g., "eng+fra").
	// Returns ETRANSCRIBE on failure.
	Transcribe(ctx context.Context, image []byte, languages string) (string, error)
}

// ParseLanguages splits a combined languages spec into individual codes,
// dropping empty segments. ParseLanguages("eng+fra") returns ["eng", "fra"].
func ParseLanguages(spec string) []string {
	var langs []string
	for _, l := range strings.Split(spec, "+") {
		if l = strings.TrimSpace(l); l != "" {
			langs = append(langs, l)
		}
	}
	return langs
}
