// Package pdfcpu implements document opening using the pdfcpu library.
package pdfcpu

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Compile-time interface verification.
var _ pdfextractor.DocumentOpener = (*Opener)(nil)

// Opener validates PDF files and discovers their page counts.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// OpenDocument validates the file at path and returns a Document with its
// page count. The file itself is not kept open; pages are rendered later
// directly from the path.
func (o *Opener) OpenDocument(ctx context.Context, path string) (*pdfextractor.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, pdfextractor.Errorf(pdfextractor.EINPUT, "cannot access %q: %v", path, err)
	}
	if info.IsDir() {
		return nil, pdfextractor.Errorf(pdfextractor.EINPUT, "%q is a directory", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, pdfextractor.Errorf(pdfextractor.EINVALID, "%q is not a PDF file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pdfextractor.Errorf(pdfextractor.EINPUT, "cannot open %q: %v", path, err)
	}
	defer f.Close()

	pageCount, err := api.PageCount(f, nil)
	if err != nil {
		return nil, pdfextractor.Errorf(pdfextractor.EINPUT, "%q is corrupt or unsupported: %v", path, err)
	}
	if pageCount < 1 {
		return nil, pdfextractor.Errorf(pdfextractor.EINPUT, "%q has no pages", path)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &pdfextractor.Document{
		Name:       name,
		Path:       path,
		TotalPages: pageCount,
	}, nil
}
