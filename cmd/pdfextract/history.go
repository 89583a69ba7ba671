package main

import (
	"fmt"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := pdfextractor.RunFilter{Limit: c.Limit}
	if c.Document != "" {
		filter.DocumentName = &c.Document
	}

	runs, err := deps.Runs.ListRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfextractor.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded.")
		return nil
	}

	for _, run := range runs {
		line := fmt.Sprintf("%s  %s  %s  %d page(s), %d failed  %.2fs",
			run.CreatedAt.Format("2006-01-02 15:04:05"), run.DocumentName, run.Status,
			run.PagesProcessed, run.PagesFailed, run.Elapsed.Seconds())
		if run.Error != "" {
			line += "  " + run.Error
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	return nil
}
