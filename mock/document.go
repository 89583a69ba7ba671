package mock

import (
	"context"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

var _ pdfextractor.DocumentOpener = (*DocumentOpener)(nil)

// DocumentOpener is a mock implementation of pdfextractor.DocumentOpener.
type DocumentOpener struct {
	OpenDocumentFn func(ctx context.Context, path string) (*pdfextractor.Document, error)
}

func (o *DocumentOpener) OpenDocument(ctx context.Context, path string) (*pdfextractor.Document, error) {
	return o.OpenDocumentFn(ctx, path)
}

var _ pdfextractor.ErrorLog = (*ErrorLog)(nil)

// ErrorLog is a mock implementation of pdfextractor.ErrorLog.
type ErrorLog struct {
	AppendFn func(ctx context.Context, documentName string, err error) error
}

func (l *ErrorLog) Append(ctx context.Context, documentName string, err error) error {
	return l.AppendFn(ctx, documentName, err)
}
