package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// DocumentRunner processes one document and reports the outcome as a value.
type DocumentRunner interface {
	Run(ctx context.Context, doc *pdfextractor.Document, pages pdfextractor.PageRange, progress ProgressFunc) *pdfextractor.DocumentResult
}

var _ DocumentRunner = (*Runner)(nil)

// BatchEvent reports batch progress. Result is nil when the document is
// starting and set when it finishes.
type BatchEvent struct {
	Index  int
	Total  int
	Name   string
	Result *pdfextractor.DocumentResult
}

// BatchProgressFunc is a callback for reporting batch progress.
type BatchProgressFunc func(event BatchEvent)

// Batch orchestrates a directory of documents: discovery, sequential
// per-document runs, failure logging, and the final summary. Documents are
// processed one at a time to bound peak resource usage; one document's
// failure never stops the batch.
type Batch struct {
	Opener pdfextractor.DocumentOpener
	Runner DocumentRunner

	// Log records failed documents alongside the inputs. Optional.
	Log pdfextractor.ErrorLog

	// History records every document result. Optional.
	History pdfextractor.RunRecorder

	Logger *slog.Logger
}

func (b *Batch) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// DiscoverDocuments lists PDF files directly inside dir (case-insensitive
// extension match, non-recursive), sorted lexicographically so repeated runs
// process documents in the same order.
func DiscoverDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, pdfextractor.Errorf(pdfextractor.EINPUT, "cannot read directory %q: %v", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// RunBatch processes every document in dir sequentially, forcing all-pages
// mode, and returns the batch summary. Failed documents are appended to the
// error log and the summary; processing always continues with the next
// document. An error is returned only for environment failure (unreadable
// directory). An empty directory yields an empty summary, not an error.
func (b *Batch) RunBatch(ctx context.Context, dir string, progress BatchProgressFunc) (*pdfextractor.BatchSummary, error) {
	begin := time.Now()
	log := b.logger()

	paths, err := DiscoverDocuments(dir)
	if err != nil {
		return nil, err
	}

	summary := &pdfextractor.BatchSummary{Total: len(paths)}
	for i, path := range paths {
		if ctx.Err() != nil {
			// Interrupt: the document that was running has drained; the rest
			// of the batch is abandoned.
			log.Warn("batch interrupted", "remaining", len(paths)-i)
			break
		}

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if progress != nil {
			progress(BatchEvent{Index: i + 1, Total: len(paths), Name: name})
		}

		var result *pdfextractor.DocumentResult
		if doc, err := b.Opener.OpenDocument(ctx, path); err != nil {
			result = &pdfextractor.DocumentResult{
				Document: &pdfextractor.Document{Name: name, Path: path},
				Status:   pdfextractor.DocumentFailed,
				Err:      pdfextractor.AsError(err),
			}
		} else {
			// Batch mode always processes all pages.
			result = b.Runner.Run(ctx, doc, pdfextractor.FullRange(doc), nil)
		}

		if b.History != nil {
			if err := b.History.RecordRun(ctx, result); err != nil {
				log.Warn("could not record run", "document", name, "err", err)
			}
		}

		if result.Status == pdfextractor.DocumentSucceeded {
			summary.Succeeded = append(summary.Succeeded, name)
		} else {
			summary.Failed = append(summary.Failed, pdfextractor.FailedDocument{Name: name, Err: result.Err})
			if b.Log != nil {
				if err := b.Log.Append(ctx, filepath.Base(path), result.Err); err != nil {
					log.Warn("could not append to error log", "err", err)
				}
			}
		}

		if progress != nil {
			progress(BatchEvent{Index: i + 1, Total: len(paths), Name: name, Result: result})
		}
	}

	summary.Elapsed = time.Since(begin)
	return summary, nil
}
