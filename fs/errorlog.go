package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// Ensure ErrorLog implements pdfextractor.ErrorLog at compile time.
var _ pdfextractor.ErrorLog = (*ErrorLog)(nil)

// errorLogName is the batch error log file, created alongside the input
// documents rather than in the output directory.
const errorLogName = "error_log.txt"

// ErrorLog appends failed-document entries to a plain text log using a fixed
// delimited block format kept for compatibility with existing tooling.
type ErrorLog struct {
	dir string

	// now is replaceable for tests.
	now func() time.Time
}

// NewErrorLog creates an ErrorLog writing into the given input directory.
func NewErrorLog(dir string) *ErrorLog {
	return &ErrorLog{dir: dir, now: time.Now}
}

// Path returns the log file location.
func (l *ErrorLog) Path() string {
	return filepath.Join(l.dir, errorLogName)
}

// Append writes one delimited entry for a failed document.
func (l *ErrorLog) Append(ctx context.Context, documentName string, err error) error {
	rule := strings.Repeat("=", 70)
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	fmt.Fprintf(&b, "[%s] ERROR processing: %s\n", l.now().Format("2006-01-02 15:04:05"), documentName)
	b.WriteString(strings.Repeat("-", 70))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s: %s\n", pdfextractor.ErrorCode(err), pdfextractor.ErrorMessage(err))
	b.WriteString(rule)
	b.WriteString("\n\n")

	f, oerr := os.OpenFile(l.Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if oerr != nil {
		return pdfextractor.Errorf(pdfextractor.EOUTPUT, "open error log: %v", oerr)
	}
	defer f.Close()
	if _, werr := f.WriteString(b.String()); werr != nil {
		return pdfextractor.Errorf(pdfextractor.EOUTPUT, "append error log: %v", werr)
	}
	return nil
}
