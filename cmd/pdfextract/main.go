package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
	"github.com/D2X-Enterprises/pdf-extractor/fs"
	"github.com/D2X-Enterprises/pdf-extractor/gemini"
	"github.com/D2X-Enterprises/pdf-extractor/gosseract"
	"github.com/D2X-Enterprises/pdf-extractor/pdfcpu"
	"github.com/D2X-Enterprises/pdf-extractor/pipeline"
	"github.com/D2X-Enterprises/pdf-extractor/poppler"
	pdfslog "github.com/D2X-Enterprises/pdf-extractor/slog"
	"github.com/D2X-Enterprises/pdf-extractor/sqlite"
	"google.golang.org/genai"
)

// geminiRPS bounds name extraction calls against the API quota.
const geminiRPS = 1.0

func main() {
	// A second interrupt kills the process outright; the first one cancels
	// the context so in-flight pages drain and the checkpoint stays clean.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used for checkpoints and run history.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pdfextract"),
		kong.Description("Concurrent PDF to PNG and OCR text extractor with resume support and batch directory processing."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pdfextract --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	config := pdfextractor.Config{
		OutputDir:   cli.OutputDir,
		DPI:         cli.DPI,
		Languages:   cli.Lang,
		Concurrency: cli.Concurrency,
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", config.OutputDir, err)
	}

	// Open checkpoint database
	dbPath := cli.CheckpointDB
	if dbPath == "" {
		dbPath = filepath.Join(config.OutputDir, "pdfextract.db")
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open checkpoint database at %q: %w", dbPath, err)
	}
	defer m.Close()

	store := fs.NewStore(config.OutputDir)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		DB:     m.DB,
		Config: config,
		Opener: pdfcpu.NewOpener(),
		Runs:   sqlite.NewRunService(m.DB),
	}

	// Wire the pipeline only for commands that process documents.
	if cmd == "run" || cmd == "batch" {
		var names pdfextractor.NameExtractor
		if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			names = pdfslog.NewLoggingNameExtractor(gemini.NewNameExtractor(client, geminiRPS), logger)
		} else {
			logger.Warn("GEMINI_API_KEY not set, proper names report will be skipped")
		}

		deps.Runner = &pipeline.Runner{
			Renderer:    pdfslog.NewLoggingRenderer(poppler.NewRenderer(), logger),
			Transcriber: pdfslog.NewLoggingTranscriber(gosseract.NewTranscriber(), logger),
			Checkpoints: sqlite.NewCheckpointStore(m.DB, store),
			Artifacts:   store,
			Outputs:     store,
			Names:       names,
			Config:      config,
			Logger:      logger,
		}
	}

	return kongCtx.Run(deps)
}
