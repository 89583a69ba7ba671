package pipeline

import (
	"context"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// ProcessPage renders and transcribes a single page, persisting both
// artifacts before returning. It never returns an error: any collaborator
// failure is caught and surfaced as a failed PageRecord, so one page can
// never abort sibling pages or the worker pool.
func (r *Runner) ProcessPage(ctx context.Context, doc *pdfextractor.Document, page int) pdfextractor.PageRecord {
	log := r.logger().With("document", doc.Name, "page", page)

	// Pages whose artifacts survived a previous run are not reprocessed.
	// A persisted failure marker does not count: failed pages are retried.
	if ok, err := r.Artifacts.HasPage(ctx, doc, page); err == nil && ok {
		if text, err := r.Artifacts.LoadPageText(ctx, doc, page); err == nil && !pdfextractor.IsFailureMarker(text) {
			log.Debug("page artifacts already present, skipping")
			return pdfextractor.DonePage(page, text)
		}
	}

	fail := func(err error) pdfextractor.PageRecord {
		rec := pdfextractor.FailedPage(page, err)
		// Fill the page's text slot with a marker so the on-disk layout keeps
		// a slot for every page.
		if _, werr := r.Artifacts.SavePageText(ctx, doc, page, pdfextractor.FailureMarker(err)); werr != nil {
			log.Warn("could not persist failure marker", "err", werr)
		}
		log.Warn("page failed", "err", rec.Err)
		return rec
	}

	image, err := r.Renderer.RenderPage(ctx, doc, page, r.Config.DPI)
	if err != nil {
		return fail(err)
	}
	if _, err := r.Artifacts.SavePageImage(ctx, doc, page, image); err != nil {
		return fail(err)
	}

	text, err := r.transcribe(ctx, image)
	if err != nil {
		return fail(err)
	}
	if _, err := r.Artifacts.SavePageText(ctx, doc, page, text); err != nil {
		return fail(err)
	}

	rec := pdfextractor.DonePage(page, text)
	if r.Checkpoints != nil {
		if err := r.Checkpoints.RecordPage(ctx, doc, &rec); err != nil {
			// The artifacts exist, so a missed checkpoint only costs a
			// re-verification on the next run.
			log.Warn("could not checkpoint page", "err", err)
		}
	}
	return rec
}
