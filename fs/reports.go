package fs

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// WriteWordReport writes the word-frequency CSV report: a document summary
// block, per-page word counts, and per-word occurrence rows sorted descending
// by total count.
func (s *Store) WriteWordReport(ctx context.Context, doc *pdfextractor.Document, stats *pdfextractor.WordStats) (string, error) {
	path := s.layout.WordReportPath(doc)
	err := writeCSV(path, func(w *csv.Writer) error {
		records := [][]string{
			{"=== DOCUMENT SUMMARY ==="},
			{"Type", "Value"},
			{"Total Words", strconv.Itoa(stats.TotalWords())},
			{"Total Pages Analyzed", strconv.Itoa(stats.PagesAnalyzed())},
			{"Unique Words", strconv.Itoa(stats.UniqueWords())},
			{""},
			{"=== PER-PAGE WORD COUNTS ==="},
			{"Page Number", "Word Count"},
		}
		for _, pc := range stats.PageCounts() {
			records = append(records, []string{strconv.Itoa(pc.Page), strconv.Itoa(pc.Words)})
		}
		records = append(records,
			[]string{""},
			[]string{"=== WORD OCCURRENCE DETAILS ==="},
			[]string{"Word", "Total Occurrences", "Pages"},
		)
		for _, row := range stats.Rows() {
			records = append(records, []string{row.Token, strconv.Itoa(row.Count), formatPages(row.Pages)})
		}
		return w.WriteAll(records)
	})
	if err != nil {
		return "", pdfextractor.Errorf(pdfextractor.EOUTPUT, "write word report: %v", err)
	}
	return path, nil
}

// WriteNameReport writes the person-name CSV report sorted descending by
// total occurrence count.
func (s *Store) WriteNameReport(ctx context.Context, doc *pdfextractor.Document, stats *pdfextractor.NameStats) (string, error) {
	path := s.layout.NameReportPath(doc)
	err := writeCSV(path, func(w *csv.Writer) error {
		records := [][]string{
			{"=== PROPER NAMES REPORT ==="},
			{"Name", "Total Occurrences", "Pages"},
		}
		for _, row := range stats.Rows() {
			records = append(records, []string{row.Token, strconv.Itoa(row.Count), formatPages(row.Pages)})
		}
		return w.WriteAll(records)
	})
	if err != nil {
		return "", pdfextractor.Errorf(pdfextractor.EOUTPUT, "write name report: %v", err)
	}
	return path, nil
}

func writeCSV(path string, fill func(w *csv.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := fill(w); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// formatPages renders an ascending page list as "1, 4, 9".
func formatPages(pages []int) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}
