package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
	"github.com/D2X-Enterprises/pdf-extractor/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryOutputs is an in-memory OutputWriter capturing what the runner wrote.
type memoryOutputs struct {
	mu       sync.Mutex
	combined string
	words    *pdfextractor.WordStats
	names    *pdfextractor.NameStats
}

func (m *memoryOutputs) WriteCombined(ctx context.Context, doc *pdfextractor.Document, text string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.combined = text
	return filepath.Join("out", doc.SafeName()+"_processed", "combined_output.txt"), nil
}

func (m *memoryOutputs) WriteWordReport(ctx context.Context, doc *pdfextractor.Document, stats *pdfextractor.WordStats) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.words = stats
	return filepath.Join("out", doc.SafeName()+"_processed", "word_count_report.csv"), nil
}

func (m *memoryOutputs) WriteNameReport(ctx context.Context, doc *pdfextractor.Document, stats *pdfextractor.NameStats) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.names = stats
	return filepath.Join("out", doc.SafeName()+"_processed", "proper_names_report.csv"), nil
}

// writeTestPDF creates a stand-in source file and returns a document for it.
func writeTestPDF(t *testing.T, pages int) *pdfextractor.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7"), 0644))
	return &pdfextractor.Document{Name: "test doc", Path: path, TotalPages: pages}
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("processes all pages and writes outputs", func(t *testing.T) {
		t.Parallel()

		runner := newTestRunner(2)
		outputs := &memoryOutputs{}
		runner.Outputs = outputs
		doc := writeTestPDF(t, 3)

		result := runner.Run(context.Background(), doc, pdfextractor.FullRange(doc), nil)

		require.Equal(t, pdfextractor.DocumentSucceeded, result.Status)
		assert.Equal(t, 3, result.PagesProcessed)
		assert.Zero(t, result.PagesFailed)
		assert.Contains(t, outputs.combined, "--- Page 1 ---")
		assert.Contains(t, outputs.combined, "--- Page 3 ---")
		assert.NotNil(t, outputs.words)
		assert.NotEmpty(t, result.CombinedPath)
		assert.NotEmpty(t, result.WordReportPath)
		assert.Equal(t, filepath.Dir(result.CombinedPath), result.OutputDir)
		assert.Empty(t, result.NameReportPath) // no extractor configured
	})

	t.Run("unreadable source fails with input error", func(t *testing.T) {
		t.Parallel()

		runner := newTestRunner(1)
		runner.Outputs = &memoryOutputs{}
		doc := &pdfextractor.Document{Name: "ghost", Path: filepath.Join(t.TempDir(), "missing.pdf"), TotalPages: 2}

		result := runner.Run(context.Background(), doc, pdfextractor.FullRange(doc), nil)

		require.Equal(t, pdfextractor.DocumentFailed, result.Status)
		assert.Equal(t, pdfextractor.EINPUT, result.Err.Code)
	})

	t.Run("invalid range fails with input error", func(t *testing.T) {
		t.Parallel()

		runner := newTestRunner(1)
		runner.Outputs = &memoryOutputs{}
		doc := writeTestPDF(t, 3)

		result := runner.Run(context.Background(), doc, pdfextractor.PageRange{Start: 2, End: 9}, nil)

		require.Equal(t, pdfextractor.DocumentFailed, result.Status)
		assert.Equal(t, pdfextractor.EINPUT, result.Err.Code)
	})

	t.Run("resume skips checkpointed pages", func(t *testing.T) {
		t.Parallel()

		runner := newTestRunner(1)
		outputs := &memoryOutputs{}
		runner.Outputs = outputs
		doc := writeTestPDF(t, 5)

		artifacts := newMemoryArtifacts()
		runner.Artifacts = artifacts
		for page := 1; page <= 2; page++ {
			_, err := artifacts.SavePageImage(context.Background(), doc, page, []byte("png"))
			require.NoError(t, err)
			_, err = artifacts.SavePageText(context.Background(), doc, page, "restored")
			require.NoError(t, err)
		}
		runner.Checkpoints = &mock.CheckpointStore{
			ResumePointFn: func(ctx context.Context, doc *pdfextractor.Document) (int, error) {
				return 2, nil
			},
			RecordPageFn: func(ctx context.Context, doc *pdfextractor.Document, rec *pdfextractor.PageRecord) error {
				assert.Greater(t, rec.Page, 2, "checkpointed pages must not be reprocessed")
				return nil
			},
		}

		var rendered []int
		var mu sync.Mutex
		runner.Renderer = &mock.PageRenderer{
			RenderPageFn: func(ctx context.Context, doc *pdfextractor.Document, page, dpi int) ([]byte, error) {
				mu.Lock()
				rendered = append(rendered, page)
				mu.Unlock()
				return []byte("png"), nil
			},
		}

		result := runner.Run(context.Background(), doc, pdfextractor.FullRange(doc), nil)

		require.Equal(t, pdfextractor.DocumentSucceeded, result.Status)
		assert.Equal(t, 5, result.PagesProcessed)
		assert.ElementsMatch(t, []int{3, 4, 5}, rendered)
		assert.Contains(t, outputs.combined, "--- Page 1 ---\nrestored")
	})

	t.Run("fully checkpointed document skips the pool entirely", func(t *testing.T) {
		t.Parallel()

		runner := newTestRunner(1)
		runner.Outputs = &memoryOutputs{}
		doc := writeTestPDF(t, 2)

		artifacts := newMemoryArtifacts()
		runner.Artifacts = artifacts
		for page := 1; page <= 2; page++ {
			_, err := artifacts.SavePageImage(context.Background(), doc, page, []byte("png"))
			require.NoError(t, err)
			_, err = artifacts.SavePageText(context.Background(), doc, page, "done earlier")
			require.NoError(t, err)
		}
		runner.Checkpoints = &mock.CheckpointStore{
			ResumePointFn: func(ctx context.Context, doc *pdfextractor.Document) (int, error) {
				return 2, nil
			},
		}
		runner.Renderer = &mock.PageRenderer{
			RenderPageFn: func(ctx context.Context, doc *pdfextractor.Document, page, dpi int) ([]byte, error) {
				t.Error("no page should be rendered")
				return nil, nil
			},
		}

		result := runner.Run(context.Background(), doc, pdfextractor.FullRange(doc), nil)
		require.Equal(t, pdfextractor.DocumentSucceeded, result.Status)
		assert.Equal(t, 2, result.PagesProcessed)
	})

	t.Run("broken checkpoint store costs a from-scratch run", func(t *testing.T) {
		t.Parallel()

		runner := newTestRunner(1)
		runner.Outputs = &memoryOutputs{}
		runner.Checkpoints = &mock.CheckpointStore{
			ResumePointFn: func(ctx context.Context, doc *pdfextractor.Document) (int, error) {
				return 0, pdfextractor.Errorf(pdfextractor.EINTERNAL, "database is locked")
			},
			RecordPageFn: func(ctx context.Context, doc *pdfextractor.Document, rec *pdfextractor.PageRecord) error {
				return nil
			},
		}
		doc := writeTestPDF(t, 2)

		result := runner.Run(context.Background(), doc, pdfextractor.FullRange(doc), nil)
		require.Equal(t, pdfextractor.DocumentSucceeded, result.Status)
		assert.Equal(t, 2, result.PagesProcessed)
	})

	t.Run("combined write failure fails the document with output error", func(t *testing.T) {
		t.Parallel()

		runner := newTestRunner(1)
		runner.Outputs = &mock.OutputWriter{
			WriteCombinedFn: func(ctx context.Context, doc *pdfextractor.Document, text string) (string, error) {
				return "", pdfextractor.Errorf(pdfextractor.EOUTPUT, "disk full")
			},
		}
		doc := writeTestPDF(t, 1)

		result := runner.Run(context.Background(), doc, pdfextractor.FullRange(doc), nil)
		require.Equal(t, pdfextractor.DocumentFailed, result.Status)
		assert.Equal(t, pdfextractor.EOUTPUT, result.Err.Code)
	})

	t.Run("page failures do not fail the document", func(t *testing.T) {
		t.Parallel()

		runner := newTestRunner(2)
		outputs := &memoryOutputs{}
		runner.Outputs = outputs
		runner.Transcriber = &mock.Transcriber{
			TranscribeFn: func(ctx context.Context, image []byte, languages string) (string, error) {
				return "", pdfextractor.Errorf(pdfextractor.ETRANSCRIBE, "unreadable scan")
			},
		}
		doc := writeTestPDF(t, 2)

		result := runner.Run(context.Background(), doc, pdfextractor.FullRange(doc), nil)

		require.Equal(t, pdfextractor.DocumentSucceeded, result.Status)
		assert.Zero(t, result.PagesProcessed)
		assert.Equal(t, 2, result.PagesFailed)
		assert.Contains(t, outputs.combined, "FAILED: transcription_error")
	})

	t.Run("name extractor failure degrades, storage failure fails", func(t *testing.T) {
		t.Parallel()

		runner := newTestRunner(1)
		outputs := &memoryOutputs{}
		runner.Outputs = outputs
		runner.Names = &mock.NameExtractor{
			ExtractNamesFn: func(ctx context.Context, text string) ([]string, error) {
				return []string{"Jane Doe"}, nil
			},
		}
		doc := writeTestPDF(t, 1)

		result := runner.Run(context.Background(), doc, pdfextractor.FullRange(doc), nil)
		require.Equal(t, pdfextractor.DocumentSucceeded, result.Status)
		require.NotNil(t, outputs.names)
		assert.Equal(t, 1, outputs.names.Len())
		assert.NotEmpty(t, result.NameReportPath)
	})

	t.Run("interrupted run reports failure after draining", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		runner := newTestRunner(1)
		runner.Outputs = &memoryOutputs{}
		runner.Transcriber = &mock.Transcriber{
			TranscribeFn: func(ctx context.Context, image []byte, languages string) (string, error) {
				cancel()
				return "partial", nil
			},
		}
		doc := writeTestPDF(t, 3)

		result := runner.Run(ctx, doc, pdfextractor.FullRange(doc), nil)

		require.Equal(t, pdfextractor.DocumentFailed, result.Status)
		assert.Equal(t, pdfextractor.EINTERNAL, result.Err.Code)
		assert.Contains(t, result.Err.Message, "interrupted")
	})
}
