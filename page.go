package pdfextractor

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Page statuses.
const (
	PagePending = "pending"
	PageDone    = "done"
	PageFailed  = "failed"
)

// PageRecord holds one page's processing state. Page indices are 1-based and
// unique within a document. Text is present when Status is PageDone; Err is
// present when Status is PageFailed.
type PageRecord struct {
	Page   int
	Status string
	Text   string
	Err    *Error
}

// DonePage returns a completed record for the given page.
func DonePage(page int, text string) PageRecord {
	return PageRecord{Page: page, Status: PageDone, Text: text}
}

// FailedPage returns a failed record carrying the error's code and message.
func FailedPage(page int, err error) PageRecord {
	return PageRecord{Page: page, Status: PageFailed, Err: AsError(err)}
}

// TextHash returns the content hash of the record's text, recorded in
// checkpoints so a resume can detect corrupted partial writes.
func (r *PageRecord) TextHash() string {
	return HashText(r.Text)
}

// HashText computes the xxhash of text as a hex string.
func HashText(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}

// failureMarkerPrefix opens a failed page's text file. The prefix is part of
// the on-disk format: resume logic uses it to distinguish transcribed text
// from a recorded failure, so page failures are retried on a later run.
const failureMarkerPrefix = "OCR FAILED FOR THIS PAGE: "

// FailureMarker returns the text written to a failed page's text slot.
func FailureMarker(err error) string {
	return failureMarkerPrefix + AsError(err).Error()
}

// IsFailureMarker reports whether text records a page failure rather than
// transcribed content.
func IsFailureMarker(text string) bool {
	return strings.HasPrefix(text, failureMarkerPrefix)
}
