package mock

import (
	"context"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

var _ pdfextractor.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of pdfextractor.ArtifactStore.
type ArtifactStore struct {
	SavePageImageFn func(ctx context.Context, doc *pdfextractor.Document, page int, png []byte) (string, error)
	SavePageTextFn  func(ctx context.Context, doc *pdfextractor.Document, page int, text string) (string, error)
	LoadPageTextFn  func(ctx context.Context, doc *pdfextractor.Document, page int) (string, error)
	HasPageFn       func(ctx context.Context, doc *pdfextractor.Document, page int) (bool, error)
}

func (s *ArtifactStore) SavePageImage(ctx context.Context, doc *pdfextractor.Document, page int, png []byte) (string, error) {
	return s.SavePageImageFn(ctx, doc, page, png)
}

func (s *ArtifactStore) SavePageText(ctx context.Context, doc *pdfextractor.Document, page int, text string) (string, error) {
	return s.SavePageTextFn(ctx, doc, page, text)
}

func (s *ArtifactStore) LoadPageText(ctx context.Context, doc *pdfextractor.Document, page int) (string, error) {
	return s.LoadPageTextFn(ctx, doc, page)
}

func (s *ArtifactStore) HasPage(ctx context.Context, doc *pdfextractor.Document, page int) (bool, error) {
	return s.HasPageFn(ctx, doc, page)
}

var _ pdfextractor.OutputWriter = (*OutputWriter)(nil)

// OutputWriter is a mock implementation of pdfextractor.OutputWriter.
type OutputWriter struct {
	WriteCombinedFn   func(ctx context.Context, doc *pdfextractor.Document, text string) (string, error)
	WriteWordReportFn func(ctx context.Context, doc *pdfextractor.Document, stats *pdfextractor.WordStats) (string, error)
	WriteNameReportFn func(ctx context.Context, doc *pdfextractor.Document, stats *pdfextractor.NameStats) (string, error)
}

func (w *OutputWriter) WriteCombined(ctx context.Context, doc *pdfextractor.Document, text string) (string, error) {
	return w.WriteCombinedFn(ctx, doc, text)
}

func (w *OutputWriter) WriteWordReport(ctx context.Context, doc *pdfextractor.Document, stats *pdfextractor.WordStats) (string, error) {
	return w.WriteWordReportFn(ctx, doc, stats)
}

func (w *OutputWriter) WriteNameReport(ctx context.Context, doc *pdfextractor.Document, stats *pdfextractor.NameStats) (string, error) {
	return w.WriteNameReportFn(ctx, doc, stats)
}
