package main

import (
	"fmt"
	"strconv"
	"strings"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
	"github.com/D2X-Enterprises/pdf-extractor/pipeline"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	doc, err := deps.Opener.OpenDocument(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfextractor.ErrorMessage(err))
		return err
	}

	pages, err := parsePages(c.Pages, doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfextractor.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processing %s: pages %d-%d of %d (dpi %d, languages %s)\n",
		doc.Name, pages.Start, pages.End, doc.TotalPages, deps.Config.DPI, deps.Config.Languages)

	result := deps.Runner.Run(deps.Ctx, doc, pages, func(event pipeline.ProgressEvent) {
		switch event.Type {
		case pipeline.ProgressPageDone:
			fmt.Fprintf(deps.Stdout, "  [SUCCESS] Page %04d processed (%d/%d)\n", event.Page, event.Completed, event.Total)
		case pipeline.ProgressPageFailed:
			fmt.Fprintf(deps.Stdout, "  [FAILURE] Page %04d failed: %s\n", event.Page, pdfextractor.ErrorMessage(event.Err))
		}
	})

	if err := deps.Runs.RecordRun(deps.Ctx, result); err != nil {
		deps.Logger.Warn("failed to record run", "document", doc.Name, "err", err)
	}

	printResult(deps, result)

	if result.Status == pdfextractor.DocumentFailed {
		return result.Err
	}
	return nil
}

func printResult(deps *Dependencies, result *pdfextractor.DocumentResult) {
	fmt.Fprintf(deps.Stdout, "\nTotal time: %.2f seconds\n", result.Elapsed.Seconds())
	fmt.Fprintf(deps.Stdout, "Pages successful: %d. Pages failed: %d.\n",
		result.PagesProcessed, result.PagesFailed)

	if result.Status == pdfextractor.DocumentFailed {
		fmt.Fprintf(deps.Stdout, "FAILURE: %s\n", result.Err.Error())
		return
	}

	fmt.Fprintf(deps.Stdout, "Output directory: %s\n", result.OutputDir)
	fmt.Fprintf(deps.Stdout, "Combined text: %s\n", result.CombinedPath)
	fmt.Fprintf(deps.Stdout, "Word count report: %s\n", result.WordReportPath)
	if result.NameReportPath != "" {
		fmt.Fprintf(deps.Stdout, "Proper names report: %s\n", result.NameReportPath)
	} else {
		fmt.Fprintln(deps.Stdout, "Proper names report skipped (no extractor configured).")
	}
}

// parsePages parses an inclusive "start-end" page range, or a single page
// number. An empty spec means all pages.
func parsePages(spec string, doc *pdfextractor.Document) (pdfextractor.PageRange, error) {
	if spec == "" {
		return pdfextractor.FullRange(doc), nil
	}

	var r pdfextractor.PageRange
	start, end, found := strings.Cut(spec, "-")
	var err error
	if r.Start, err = strconv.Atoi(strings.TrimSpace(start)); err != nil {
		return r, pdfextractor.Errorf(pdfextractor.EINVALID, "invalid page range %q", spec)
	}
	if found {
		if r.End, err = strconv.Atoi(strings.TrimSpace(end)); err != nil {
			return r, pdfextractor.Errorf(pdfextractor.EINVALID, "invalid page range %q", spec)
		}
	} else {
		r.End = r.Start
	}

	if err := r.Validate(doc.TotalPages); err != nil {
		return r, err
	}
	return r, nil
}
