// Package poppler implements page rendering by shelling out to pdftoppm from
// poppler-utils. pdftoppm rasterizes the page as displayed, which is what OCR
// needs; extracting embedded image objects would miss vector and text content.
package poppler

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
)

// Compile-time interface verification.
var _ pdfextractor.PageRenderer = (*Renderer)(nil)

// defaultCommand is the pdftoppm binary resolved from PATH.
const defaultCommand = "pdftoppm"

// Renderer renders single PDF pages to PNG via pdftoppm.
type Renderer struct {
	// Command overrides the pdftoppm binary, mainly for tests.
	Command string
}

// NewRenderer creates a Renderer using the pdftoppm binary from PATH.
func NewRenderer() *Renderer {
	return &Renderer{Command: defaultCommand}
}

// RenderPage renders one page of the document to PNG bytes at the given DPI.
func (r *Renderer) RenderPage(ctx context.Context, doc *pdfextractor.Document, page, dpi int) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "pdfextract-page-*")
	if err != nil {
		return nil, pdfextractor.Errorf(pdfextractor.ERENDER, "failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	outputPrefix := filepath.Join(tmpDir, "page")

	cmd := exec.CommandContext(ctx, r.command(), Args(doc, page, dpi, outputPrefix)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, pdfextractor.Errorf(pdfextractor.ERENDER,
			"pdftoppm failed for page %d of %q: %v (output: %s)", page, doc.Name, err, string(output))
	}

	data, err := os.ReadFile(outputPrefix + ".png")
	if err != nil {
		return nil, pdfextractor.Errorf(pdfextractor.ERENDER,
			"pdftoppm did not produce page %d of %q: %v", page, doc.Name, err)
	}
	if len(data) == 0 {
		return nil, pdfextractor.Errorf(pdfextractor.ERENDER,
			"pdftoppm produced an empty image for page %d of %q", page, doc.Name)
	}

	return data, nil
}

func (r *Renderer) command() string {
	if r.Command != "" {
		return r.Command
	}
	return defaultCommand
}

// Args returns the pdftoppm argument list for a single page render.
//
// -png: output PNG format
// -f/-l: render only the requested page
// -r: resolution in DPI
// -singlefile: no page number suffix on the output file
func Args(doc *pdfextractor.Document, page, dpi int, outputPrefix string) []string {
	pageStr := strconv.Itoa(page)
	return []string{
		"-png",
		"-f", pageStr,
		"-l", pageStr,
		"-r", strconv.Itoa(dpi),
		"-singlefile",
		doc.Path,
		outputPrefix,
	}
}
