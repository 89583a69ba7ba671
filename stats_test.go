package pdfextractor_test

import (
	"testing"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordStats(t *testing.T) {
	t.Parallel()

	t.Run("counts totals and uniques", func(t *testing.T) {
		t.Parallel()

		stats := pdfextractor.NewWordStats()
		stats.AddPage(1, []string{"the", "quick", "the"})
		stats.AddPage(2, []string{"quick", "fox"})

		assert.Equal(t, 5, stats.TotalWords())
		assert.Equal(t, 3, stats.UniqueWords())
		assert.Equal(t, 2, stats.PagesAnalyzed())
	})

	t.Run("empty pages still count as analyzed", func(t *testing.T) {
		t.Parallel()

		stats := pdfextractor.NewWordStats()
		stats.AddPage(1, nil)

		assert.Equal(t, 0, stats.TotalWords())
		assert.Equal(t, 1, stats.PagesAnalyzed())
		assert.Equal(t, []pdfextractor.PageCount{{Page: 1, Words: 0}}, stats.PageCounts())
	})

	t.Run("page counts are ordered by page", func(t *testing.T) {
		t.Parallel()

		stats := pdfextractor.NewWordStats()
		stats.AddPage(1, []string{"one"})
		stats.AddPage(2, []string{"two", "words"})
		stats.AddPage(3, []string{"and", "three", "more"})

		assert.Equal(t, []pdfextractor.PageCount{
			{Page: 1, Words: 1},
			{Page: 2, Words: 2},
			{Page: 3, Words: 3},
		}, stats.PageCounts())
	})

	t.Run("rows sort by count then first appearance then token", func(t *testing.T) {
		t.Parallel()

		stats := pdfextractor.NewWordStats()
		// "beta" and "alpha" both occur twice; "beta" appears first (page 1)
		// so it precedes "alpha" (page 2). "zeta" and "echo" tie on count
		// and first page, so the token ascending tie-break applies.
		stats.AddPage(1, []string{"beta", "zeta", "echo"})
		stats.AddPage(2, []string{"alpha", "beta"})
		stats.AddPage(3, []string{"alpha"})

		rows := stats.Rows()
		require.Len(t, rows, 4)
		assert.Equal(t, "beta", rows[0].Token)
		assert.Equal(t, "alpha", rows[1].Token)
		assert.Equal(t, "echo", rows[2].Token)
		assert.Equal(t, "zeta", rows[3].Token)

		assert.Equal(t, []int{1, 2}, rows[0].Pages)
		assert.Equal(t, []int{2, 3}, rows[1].Pages)
	})

	t.Run("duplicate pages are deduplicated in page lists", func(t *testing.T) {
		t.Parallel()

		stats := pdfextractor.NewWordStats()
		stats.AddPage(4, []string{"word", "word", "word"})

		rows := stats.Rows()
		require.Len(t, rows, 1)
		assert.Equal(t, 3, rows[0].Count)
		assert.Equal(t, []int{4}, rows[0].Pages)
	})

	t.Run("rows export is idempotent", func(t *testing.T) {
		t.Parallel()

		stats := pdfextractor.NewWordStats()
		stats.AddPage(1, []string{"aaa", "bbb"})
		stats.AddPage(2, []string{"aaa"})

		assert.Equal(t, stats.Rows(), stats.Rows())
	})
}

func TestNameStats(t *testing.T) {
	t.Parallel()

	t.Run("names are compared verbatim", func(t *testing.T) {
		t.Parallel()

		stats := pdfextractor.NewNameStats()
		stats.Add("John Smith", 1)
		stats.Add("John Smith", 2)
		stats.Add("john smith", 2)

		assert.Equal(t, 2, stats.Len())
		rows := stats.Rows()
		require.Len(t, rows, 2)
		assert.Equal(t, "John Smith", rows[0].Token)
		assert.Equal(t, 2, rows[0].Count)
		assert.Equal(t, []int{1, 2}, rows[0].Pages)
	})

	t.Run("empty table exports no rows", func(t *testing.T) {
		t.Parallel()

		stats := pdfextractor.NewNameStats()
		assert.Zero(t, stats.Len())
		assert.Empty(t, stats.Rows())
	})
}
