package pipeline

import (
	"fmt"
	"sort"
	"strings"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// Consolidate merges per-page records into one combined document, strictly in
// ascending page order. Done pages contribute their text under a page-boundary
// marker; failed pages contribute a visible failure marker embedding the page
// index and error detail. No page's slot is ever omitted, so readers can align
// combined-output content with original page numbers.
func Consolidate(records []pdfextractor.PageRecord) string {
	sorted := append([]pdfextractor.PageRecord(nil), records...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Page < sorted[j].Page })

	var b strings.Builder
	for i := range sorted {
		rec := &sorted[i]
		switch rec.Status {
		case pdfextractor.PageDone:
			fmt.Fprintf(&b, "--- Page %d ---\n", rec.Page)
			b.WriteString(rec.Text)
			b.WriteString("\n\n")
		case pdfextractor.PageFailed:
			fmt.Fprintf(&b, "--- Page %d FAILED: %s ---\n\n", rec.Page, rec.Err)
		default:
			fmt.Fprintf(&b, "--- Page %d FAILED: %s: page was never processed ---\n\n", rec.Page, pdfextractor.EINTERNAL)
		}
	}
	return b.String()
}
