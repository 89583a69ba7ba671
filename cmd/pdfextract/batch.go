package main

import (
	"fmt"
	"strings"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
	"github.com/D2X-Enterprises/pdf-extractor/fs"
	"github.com/D2X-Enterprises/pdf-extractor/pipeline"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	rule := strings.Repeat("=", 70)

	batch := &pipeline.Batch{
		Opener:  deps.Opener,
		Runner:  deps.Runner,
		Log:     fs.NewErrorLog(c.Dir),
		History: deps.Runs,
		Logger:  deps.Logger,
	}

	fmt.Fprintln(deps.Stdout, rule)
	fmt.Fprintln(deps.Stdout, "BATCH PROCESSING MODE")
	fmt.Fprintln(deps.Stdout, rule)

	summary, err := batch.RunBatch(deps.Ctx, c.Dir, func(event pipeline.BatchEvent) {
		if event.Result == nil {
			fmt.Fprintf(deps.Stdout, "\nProcessing PDF %d/%d: %s\n", event.Index, event.Total, event.Name)
			return
		}
		switch event.Result.Status {
		case pdfextractor.DocumentSucceeded:
			fmt.Fprintf(deps.Stdout, "SUCCESS: %s completed (%d page(s), %d failed)\n",
				event.Name, event.Result.PagesProcessed, event.Result.PagesFailed)
		case pdfextractor.DocumentFailed:
			fmt.Fprintf(deps.Stdout, "FAILURE: %s encountered an error\n", event.Name)
			fmt.Fprintf(deps.Stdout, "Error: %s\n", event.Result.Err.Error())
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfextractor.ErrorMessage(err))
		return err
	}

	if summary.Total == 0 {
		fmt.Fprintf(deps.Stdout, "\nNo PDF files found in directory: %s\n", c.Dir)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "\n%s\n", rule)
	fmt.Fprintln(deps.Stdout, "BATCH PROCESSING COMPLETE")
	fmt.Fprintln(deps.Stdout, rule)
	fmt.Fprintf(deps.Stdout, "Total time: %.2f seconds\n", summary.Elapsed.Seconds())
	fmt.Fprintf(deps.Stdout, "Total PDFs processed: %d\n", summary.Total)
	fmt.Fprintf(deps.Stdout, "Successful: %d\n", summary.SuccessCount())
	fmt.Fprintf(deps.Stdout, "Failed: %d\n", summary.FailureCount())

	if len(summary.Succeeded) > 0 {
		fmt.Fprintln(deps.Stdout, "\nSuccessfully processed files:")
		for _, name := range summary.Succeeded {
			fmt.Fprintf(deps.Stdout, "  - %s\n", name)
		}
	}
	if len(summary.Failed) > 0 {
		fmt.Fprintln(deps.Stdout, "\nFailed files:")
		for _, failed := range summary.Failed {
			fmt.Fprintf(deps.Stdout, "  - %s\n", failed.Name)
			fmt.Fprintf(deps.Stdout, "    Error: %s\n", failed.Err.Error())
		}
		fmt.Fprintf(deps.Stdout, "\nDetailed error logs available in: %s\n", fs.NewErrorLog(c.Dir).Path())
	}
	fmt.Fprintln(deps.Stdout, rule)

	return nil
}
