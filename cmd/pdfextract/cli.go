package main

import (
	"context"
	"io"
	"log/slog"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
	"github.com/D2X-Enterprises/pdf-extractor/pipeline"
	"github.com/D2X-Enterprises/pdf-extractor/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB     *sqlite.DB
	Config pdfextractor.Config
	Opener pdfextractor.DocumentOpener
	Runner *pipeline.Runner
	Runs   pdfextractor.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	OutputDir    string `short:"o" default:"." help:"Base directory for per-document output directories"`
	DPI          int    `default:"300" help:"Rendering resolution in DPI"`
	Lang         string `default:"eng" help:"OCR languages, '+'-separated (e.g. eng+fra)"`
	Concurrency  int    `short:"c" default:"0" help:"Page worker count (0 = number of CPUs)"`
	CheckpointDB string `help:"Checkpoint database path (default: <output-dir>/pdfextract.db)"`
	Verbose      bool   `short:"v" help:"Enable debug logging"`

	Run     RunCmd     `cmd:"" help:"Process a single PDF file"`
	Batch   BatchCmd   `cmd:"" help:"Process every PDF in a directory"`
	History HistoryCmd `cmd:"" help:"List recorded processing runs"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Path  string `arg:"" help:"PDF file to process"`
	Pages string `short:"p" help:"Inclusive page range, e.g. 5-20 (default: all pages)"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Dir string `arg:"" help:"Directory containing PDF files"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Document string `short:"d" help:"Filter by document name"`
	Limit    int    `short:"n" default:"20" help:"Maximum runs to list"`
}
