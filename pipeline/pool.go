package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// pageResult pairs a record with its slot in the results slice so final
// ordering is by page index regardless of completion order.
type pageResult struct {
	idx int
	rec pdfextractor.PageRecord
}

// RunPages processes pages start..end (inclusive, 1-based) on a bounded
// worker pool and returns one record per page in ascending page order. The
// pool always waits for every dispatched page to finish. On cancellation,
// in-flight pages drain normally; pages not yet started are returned as
// failed records instead of being run.
func (r *Runner) RunPages(ctx context.Context, doc *pdfextractor.Document, start, end int, progress ProgressFunc) []pdfextractor.PageRecord {
	n := end - start + 1
	if n <= 0 {
		return nil
	}
	records := make([]pdfextractor.PageRecord, n)
	resultCh := make(chan pageResult, n)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: n})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Config.WorkerCount())

	go func() {
		for i := 0; i < n; i++ {
			idx, page := i, start+i
			g.Go(func() error {
				var rec pdfextractor.PageRecord
				if err := gctx.Err(); err != nil {
					rec = pdfextractor.FailedPage(page,
						pdfextractor.Errorf(pdfextractor.EINTERNAL, "page %d not started: %v", page, err))
				} else {
					rec = r.ProcessPage(gctx, doc, page)
				}
				resultCh <- pageResult{idx: idx, rec: rec}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results as they complete; progress events are delivered from
	// this single goroutine.
	completed := 0
	for res := range resultCh {
		completed++
		records[res.idx] = res.rec

		if progress != nil {
			event := ProgressEvent{
				Page:      res.rec.Page,
				Completed: completed,
				Total:     n,
			}
			if res.rec.Status == pdfextractor.PageFailed {
				event.Type = ProgressPageFailed
				event.Err = res.rec.Err
			} else {
				event.Type = ProgressPageDone
			}
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: n, Total: n})
	}
	return records
}
