package pdfextractor_test

import (
	"errors"
	"testing"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("formats code and message", func(t *testing.T) {
		t.Parallel()

		err := pdfextractor.Errorf(pdfextractor.EINPUT, "cannot open %q", "book.pdf")
		assert.Equal(t, `input_error: cannot open "book.pdf"`, err.Error())
	})

	t.Run("code of coded error", func(t *testing.T) {
		t.Parallel()

		err := pdfextractor.Errorf(pdfextractor.ERENDER, "boom")
		assert.Equal(t, pdfextractor.ERENDER, pdfextractor.ErrorCode(err))
		assert.Equal(t, "boom", pdfextractor.ErrorMessage(err))
	})

	t.Run("code of nil error is empty", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", pdfextractor.ErrorCode(nil))
		assert.Equal(t, "", pdfextractor.ErrorMessage(nil))
	})

	t.Run("uncoded error maps to internal", func(t *testing.T) {
		t.Parallel()

		err := errors.New("disk on fire")
		assert.Equal(t, pdfextractor.EINTERNAL, pdfextractor.ErrorCode(err))
		assert.Equal(t, "disk on fire", pdfextractor.ErrorMessage(err))
	})

	t.Run("AsError preserves coded errors", func(t *testing.T) {
		t.Parallel()

		coded := pdfextractor.Errorf(pdfextractor.EOUTPUT, "no space")
		assert.Same(t, coded, pdfextractor.AsError(coded))

		wrapped := pdfextractor.AsError(errors.New("plain"))
		assert.Equal(t, pdfextractor.EINTERNAL, wrapped.Code)
		assert.Equal(t, "plain", wrapped.Message)
	})
}
