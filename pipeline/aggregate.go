package pipeline

import (
	"context"
	"regexp"
	"sort"
	"strings"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// minWordLength drops very short tokens, which are mostly OCR noise.
const minWordLength = 3

var wordPattern = regexp.MustCompile(`[a-zA-Z0-9]+`)

// TokenizeWords splits text into normalized words: alphanumeric runs,
// case-folded, shorter tokens discarded.
func TokenizeWords(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	kept := words[:0]
	for _, w := range words {
		if len(w) >= minWordLength {
			kept = append(kept, w)
		}
	}
	return kept
}

// AggregateWords computes word-frequency statistics across all done pages.
// Failed pages contribute nothing. The result is deterministic for a given
// set of records.
func AggregateWords(records []pdfextractor.PageRecord) *pdfextractor.WordStats {
	stats := pdfextractor.NewWordStats()
	for _, rec := range sortedByPage(records) {
		if rec.Status != pdfextractor.PageDone {
			continue
		}
		stats.AddPage(rec.Page, TokenizeWords(rec.Text))
	}
	return stats
}

// AggregateNames computes person-name statistics across all done pages using
// the external extractor. Names are aggregated by exact extractor output:
// no case folding and no length filter. A nil extractor yields an empty
// table; a per-page extractor failure degrades that page only. The returned
// error is non-nil only when the context is canceled.
func AggregateNames(ctx context.Context, extractor pdfextractor.NameExtractor, records []pdfextractor.PageRecord) (*pdfextractor.NameStats, error) {
	stats := pdfextractor.NewNameStats()
	if extractor == nil {
		return stats, nil
	}
	for _, rec := range sortedByPage(records) {
		if rec.Status != pdfextractor.PageDone {
			continue
		}
		names, err := extractor.ExtractNames(ctx, rec.Text)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			stats.DegradedPages++
			continue
		}
		for _, name := range names {
			if name = strings.TrimSpace(name); name != "" {
				stats.Add(name, rec.Page)
			}
		}
	}
	return stats, nil
}

// sortedByPage returns records in ascending page order without mutating the
// input. Aggregation iterates ascending so first-appearance tie-breaks are
// well defined.
func sortedByPage(records []pdfextractor.PageRecord) []pdfextractor.PageRecord {
	sorted := append([]pdfextractor.PageRecord(nil), records...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Page < sorted[j].Page })
	return sorted
}
