package sqlite

import (
	"context"
	"strings"
	"time"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pdfextractor.RunService = (*RunService)(nil)

// RunService implements pdfextractor.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// RecordRun persists one document result to the run history.
func (s *RunService) RecordRun(ctx context.Context, result *pdfextractor.DocumentResult) error {
	errText := ""
	if result.Err != nil {
		errText = result.Err.Error()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, document_name, status, error, elapsed_ms, pages_processed, pages_failed, output_dir, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), result.Document.Name, result.Status, errText,
		result.Elapsed.Milliseconds(), result.PagesProcessed, result.PagesFailed,
		result.OutputDir, time.Now().UTC().Format(time.RFC3339))

	return err
}

// ListRuns retrieves runs matching the filter, newest first.
func (s *RunService) ListRuns(ctx context.Context, filter pdfextractor.RunFilter) ([]*pdfextractor.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, document_name, status, error, elapsed_ms, pages_processed, pages_failed, output_dir, created_at FROM runs WHERE 1=1")

	if filter.DocumentName != nil {
		query.WriteString(" AND document_name = ?")
		args = append(args, *filter.DocumentName)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}

	query.WriteString(" ORDER BY created_at DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*pdfextractor.Run
	for rows.Next() {
		var run pdfextractor.Run
		var elapsedMS int64
		var createdAt string

		if err := rows.Scan(&run.ID, &run.DocumentName, &run.Status, &run.Error,
			&elapsedMS, &run.PagesProcessed, &run.PagesFailed, &run.OutputDir, &createdAt); err != nil {
			return nil, err
		}

		run.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}
