package sqlite

import (
	"context"
	"time"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// Compile-time interface verification.
var _ pdfextractor.CheckpointStore = (*CheckpointStore)(nil)

// CheckpointStore implements pdfextractor.CheckpointStore using SQLite for
// page completion records and an ArtifactStore for artifact verification.
// The database row records intent; the artifact on disk is the proof. A page
// counts as completed only when both agree.
type CheckpointStore struct {
	db        *DB
	artifacts pdfextractor.ArtifactStore
}

// NewCheckpointStore creates a new CheckpointStore.
func NewCheckpointStore(db *DB, artifacts pdfextractor.ArtifactStore) *CheckpointStore {
	return &CheckpointStore{db: db, artifacts: artifacts}
}

// RecordPage records a completed page. Failed pages are not recorded: their
// on-disk failure marker is enough to drive retry on the next run.
func (s *CheckpointStore) RecordPage(ctx context.Context, doc *pdfextractor.Document, rec *pdfextractor.PageRecord) error {
	if rec.Status != pdfextractor.PageDone {
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (document_name, page, text_hash, completed_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (document_name, page) DO UPDATE SET
			text_hash = excluded.text_hash,
			completed_at = excluded.completed_at
	`, doc.Name, rec.Page, rec.TextHash(), time.Now().UTC().Format(time.RFC3339))

	return err
}

// ResumePoint returns the highest contiguous completed page for the document.
// A page is completed when its artifacts exist, its text is not a failure
// marker, and its content hash matches the recorded one. Pages with artifacts
// but no database row (produced by earlier tooling) count on existence alone.
func (s *CheckpointStore) ResumePoint(ctx context.Context, doc *pdfextractor.Document) (int, error) {
	hashes, err := s.recordedHashes(ctx, doc.Name)
	if err != nil {
		return 0, err
	}

	resume := 0
	for page := 1; page <= doc.TotalPages; page++ {
		ok, err := s.pageCompleted(ctx, doc, page, hashes)
		if err != nil {
			return 0, err
		}
		if !ok {
			break
		}
		resume = page
	}

	return resume, nil
}

// pageCompleted verifies a single page against its artifacts and recorded hash.
func (s *CheckpointStore) pageCompleted(ctx context.Context, doc *pdfextractor.Document, page int, hashes map[int]string) (bool, error) {
	exists, err := s.artifacts.HasPage(ctx, doc, page)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	text, err := s.artifacts.LoadPageText(ctx, doc, page)
	if err != nil {
		if pdfextractor.ErrorCode(err) == pdfextractor.ENOTFOUND {
			return false, nil
		}
		return false, err
	}
	if pdfextractor.IsFailureMarker(text) {
		return false, nil
	}

	if hash, recorded := hashes[page]; recorded && hash != pdfextractor.HashText(text) {
		return false, nil
	}

	return true, nil
}

// recordedHashes loads all recorded text hashes for a document.
func (s *CheckpointStore) recordedHashes(ctx context.Context, documentName string) (map[int]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT page, text_hash
		FROM pages
		WHERE document_name = ?
	`, documentName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hashes := make(map[int]string)
	for rows.Next() {
		var page int
		var hash string
		if err := rows.Scan(&page, &hash); err != nil {
			return nil, err
		}
		hashes[page] = hash
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return hashes, nil
}
