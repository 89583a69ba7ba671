package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// Run drives one document through the state machine
// Discovering → Resuming → RunningPages → Consolidating → Aggregating →
// Succeeded, with Failed reachable from every non-terminal state. It always
// returns a DocumentResult; callers inspect the result rather than catching
// errors. Individual page failures never fail the document — only
// document-scoped faults do.
func (r *Runner) Run(ctx context.Context, doc *pdfextractor.Document, pages pdfextractor.PageRange, progress ProgressFunc) *pdfextractor.DocumentResult {
	begin := time.Now()
	log := r.logger().With("document", doc.Name)

	fail := func(state State, err error) *pdfextractor.DocumentResult {
		e := pdfextractor.AsError(err)
		log.Error("document failed", "state", string(state), "err", e)
		return &pdfextractor.DocumentResult{
			Document: doc,
			Status:   pdfextractor.DocumentFailed,
			Err:      e,
			Elapsed:  time.Since(begin),
		}
	}

	// Discovering: the document must exist and be readable.
	log.Debug("state transition", "state", StateDiscovering)
	if err := doc.Validate(); err != nil {
		return fail(StateDiscovering, pdfextractor.Errorf(pdfextractor.EINPUT, "%s", pdfextractor.ErrorMessage(err)))
	}
	if err := pages.Validate(doc.TotalPages); err != nil {
		return fail(StateDiscovering, pdfextractor.Errorf(pdfextractor.EINPUT, "%s", pdfextractor.ErrorMessage(err)))
	}
	if f, err := os.Open(doc.Path); err != nil {
		return fail(StateDiscovering, pdfextractor.Errorf(pdfextractor.EINPUT, "document not readable: %v", err))
	} else {
		f.Close()
	}

	// Resuming: compute the resume point from the checkpoint store. A broken
	// checkpoint store costs a from-scratch run, never a failed document.
	log.Debug("state transition", "state", StateResuming)
	resume := 0
	if r.Checkpoints != nil {
		var err error
		if resume, err = r.Checkpoints.ResumePoint(ctx, doc); err != nil {
			log.Warn("checkpoint unavailable, processing from scratch", "err", err)
			resume = 0
		}
	}
	if resume > pages.End {
		resume = pages.End
	}

	records := make([]pdfextractor.PageRecord, 0, pages.Len())

	// Restore checkpointed pages in the range from their persisted text. The
	// checkpoint store verified these artifacts moments ago, so a read
	// failure here is a storage fault.
	for page := pages.Start; page <= resume; page++ {
		text, err := r.Artifacts.LoadPageText(ctx, doc, page)
		if err != nil {
			return fail(StateResuming, pdfextractor.Errorf(pdfextractor.EOUTPUT,
				"page %d checkpointed but unreadable: %s", page, pdfextractor.ErrorMessage(err)))
		}
		records = append(records, pdfextractor.DonePage(page, text))
	}

	// RunningPages: the pool absorbs page failures and always completes.
	start := pages.Start
	if resume >= start {
		start = resume + 1
	}
	if start <= pages.End {
		log.Debug("state transition", "state", StateRunningPages,
			"from", start, "to", pages.End, "resumed", resume)
		records = append(records, r.RunPages(ctx, doc, start, pages.End, progress)...)
	} else {
		log.Info("all pages checkpointed, skipping page processing")
	}

	if err := ctx.Err(); err != nil {
		// Dispatched pages drained and their artifacts persist for the next
		// run; the document itself did not finish.
		return fail(StateRunningPages, pdfextractor.Errorf(pdfextractor.EINTERNAL, "processing interrupted: %v", err))
	}

	// Consolidating.
	log.Debug("state transition", "state", StateConsolidating)
	combinedPath, err := r.Outputs.WriteCombined(ctx, doc, Consolidate(records))
	if err != nil {
		return fail(StateConsolidating, outputError(err))
	}

	// Aggregating.
	log.Debug("state transition", "state", StateAggregating)
	wordPath, err := r.Outputs.WriteWordReport(ctx, doc, AggregateWords(records))
	if err != nil {
		return fail(StateAggregating, outputError(err))
	}

	var namePath string
	if r.Names == nil {
		log.Warn("name extractor unavailable, skipping proper names report")
	} else {
		names, err := AggregateNames(ctx, r.Names, records)
		if err != nil {
			return fail(StateAggregating, pdfextractor.Errorf(pdfextractor.EINTERNAL, "processing interrupted: %v", err))
		}
		if names.DegradedPages > 0 {
			log.Warn("name extraction degraded", "pages_skipped", names.DegradedPages)
		}
		if namePath, err = r.Outputs.WriteNameReport(ctx, doc, names); err != nil {
			return fail(StateAggregating, outputError(err))
		}
	}

	var processed, failedPages int
	for i := range records {
		switch records[i].Status {
		case pdfextractor.PageDone:
			processed++
		case pdfextractor.PageFailed:
			failedPages++
		}
	}

	log.Info("document processed", "state", StateSucceeded,
		"pages", processed, "failed_pages", failedPages, "elapsed", time.Since(begin))

	return &pdfextractor.DocumentResult{
		Document:       doc,
		Status:         pdfextractor.DocumentSucceeded,
		Elapsed:        time.Since(begin),
		PagesProcessed: processed,
		PagesFailed:    failedPages,
		OutputDir:      filepath.Dir(combinedPath),
		CombinedPath:   combinedPath,
		WordReportPath: wordPath,
		NameReportPath: namePath,
	}
}

// outputError coerces storage errors into the output-error category while
// preserving errors that already carry a domain code.
func outputError(err error) error {
	if pdfextractor.ErrorCode(err) == pdfextractor.EINTERNAL {
		return pdfextractor.Errorf(pdfextractor.EOUTPUT, "%s", pdfextractor.ErrorMessage(err))
	}
	return err
}
