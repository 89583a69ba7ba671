// Package fs provides file-based storage for per-page artifacts, consolidated
// output, CSV reports, and the batch error log.
package fs

import (
	"fmt"
	"path/filepath"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// Fixed names inside a document's output directory. These are part of the
// on-disk contract: the checkpoint store re-validates artifacts by these
// paths on resume.
const (
	outputDirSuffix = "_processed"
	imageDirName    = "png_images"
	textDirName     = "text_files"
	combinedName    = "combined_output.txt"
	wordReportName  = "word_count_report.csv"
	nameReportName  = "proper_names_report.csv"
)

// Layout maps documents and pages to their output paths. All per-document
// output lives under <base>/<document>_processed.
type Layout struct {
	base string
}

// NewLayout creates a Layout rooted at the given base directory.
func NewLayout(base string) Layout {
	return Layout{base: base}
}

// DocDir returns the document's output directory.
func (l Layout) DocDir(doc *pdfextractor.Document) string {
	return filepath.Join(l.base, doc.SafeName()+outputDirSuffix)
}

// ImageDir returns the directory holding rendered page images.
func (l Layout) ImageDir(doc *pdfextractor.Document) string {
	return filepath.Join(l.DocDir(doc), imageDirName)
}

// TextDir returns the directory holding per-page text files.
func (l Layout) TextDir(doc *pdfextractor.Document) string {
	return filepath.Join(l.DocDir(doc), textDirName)
}

// ImagePath returns the path of one page's rendered image.
func (l Layout) ImagePath(doc *pdfextractor.Document, page int) string {
	return filepath.Join(l.ImageDir(doc), fmt.Sprintf("%04d.png", page))
}

// TextPath returns the path of one page's text file.
func (l Layout) TextPath(doc *pdfextractor.Document, page int) string {
	return filepath.Join(l.TextDir(doc), fmt.Sprintf("%04d.txt", page))
}

// CombinedPath returns the path of the consolidated output file.
func (l Layout) CombinedPath(doc *pdfextractor.Document) string {
	return filepath.Join(l.DocDir(doc), combinedName)
}

// WordReportPath returns the path of the word-frequency report.
func (l Layout) WordReportPath(doc *pdfextractor.Document) string {
	return filepath.Join(l.DocDir(doc), wordReportName)
}

// NameReportPath returns the path of the person-name report.
func (l Layout) NameReportPath(doc *pdfextractor.Document) string {
	return filepath.Join(l.DocDir(doc), nameReportName)
}
