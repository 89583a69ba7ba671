package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// Ensure Store implements the storage interfaces at compile time.
var (
	_ pdfextractor.ArtifactStore = (*Store)(nil)
	_ pdfextractor.OutputWriter  = (*Store)(nil)
)

// Store persists page artifacts and document outputs under a Layout. Page
// artifacts are written before the page is checkpointed, so the files a
// checkpoint refers to always exist by the time the checkpoint does.
type Store struct {
	layout Layout
}

// NewStore creates a Store writing under the given base output directory.
func NewStore(base string) *Store {
	return &Store{layout: NewLayout(base)}
}

// Layout returns the store's path layout.
func (s *Store) Layout() Layout {
	return s.layout
}

func (s *Store) SavePageImage(ctx context.Context, doc *pdfextractor.Document, page int, png []byte) (string, error) {
	path := s.layout.ImagePath(doc, page)
	if err := writeFile(path, png); err != nil {
		return "", pdfextractor.Errorf(pdfextractor.EOUTPUT, "write page image: %v", err)
	}
	return path, nil
}

func (s *Store) SavePageText(ctx context.Context, doc *pdfextractor.Document, page int, text string) (string, error) {
	path := s.layout.TextPath(doc, page)
	if err := writeFile(path, []byte(text)); err != nil {
		return "", pdfextractor.Errorf(pdfextractor.EOUTPUT, "write page text: %v", err)
	}
	return path, nil
}

func (s *Store) LoadPageText(ctx context.Context, doc *pdfextractor.Document, page int) (string, error) {
	data, err := os.ReadFile(s.layout.TextPath(doc, page))
	if errors.Is(err, fs.ErrNotExist) {
		return "", pdfextractor.Errorf(pdfextractor.ENOTFOUND, "no text artifact for page %d of %q", page, doc.Name)
	} else if err != nil {
		return "", pdfextractor.Errorf(pdfextractor.EOUTPUT, "read page text: %v", err)
	}
	return string(data), nil
}

// HasPage reports whether both artifacts exist and are non-empty. An empty
// file counts as missing: a partial write must force reprocessing, never a
// silent skip.
func (s *Store) HasPage(ctx context.Context, doc *pdfextractor.Document, page int) (bool, error) {
	for _, path := range []string{s.layout.ImagePath(doc, page), s.layout.TextPath(doc, page)} {
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		} else if err != nil {
			return false, pdfextractor.Errorf(pdfextractor.EOUTPUT, "stat artifact: %v", err)
		}
		if info.Size() == 0 {
			return false, nil
		}
	}
	return true, nil
}

func (s *Store) WriteCombined(ctx context.Context, doc *pdfextractor.Document, text string) (string, error) {
	path := s.layout.CombinedPath(doc)
	if err := writeFile(path, []byte(text)); err != nil {
		return "", pdfextractor.Errorf(pdfextractor.EOUTPUT, "write combined output: %v", err)
	}
	return path, nil
}

// writeFile writes data, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
