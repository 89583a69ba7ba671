package main

import (
	"testing"

	"github.com/alecthomas/kong"
	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCLI(t *testing.T, args ...string) *CLI {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Name("pdfextract"), kong.Exit(func(int) {}))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return cli
}

func TestCLI_Defaults(t *testing.T) {
	t.Parallel()

	cli := parseCLI(t, "run", "book.pdf")
	assert.Equal(t, ".", cli.OutputDir)
	assert.Equal(t, 300, cli.DPI)
	assert.Equal(t, "eng", cli.Lang)
	assert.Zero(t, cli.Concurrency)
	assert.Empty(t, cli.CheckpointDB)
	assert.False(t, cli.Verbose)
	assert.Equal(t, "book.pdf", cli.Run.Path)
	assert.Empty(t, cli.Run.Pages)
}

func TestCLI_Flags(t *testing.T) {
	t.Parallel()

	cli := parseCLI(t,
		"--output-dir", "/out",
		"--dpi", "600",
		"--lang", "eng+deu",
		"--concurrency", "8",
		"--verbose",
		"run", "scan.pdf", "--pages", "5-20",
	)
	assert.Equal(t, "/out", cli.OutputDir)
	assert.Equal(t, 600, cli.DPI)
	assert.Equal(t, "eng+deu", cli.Lang)
	assert.Equal(t, 8, cli.Concurrency)
	assert.True(t, cli.Verbose)
	assert.Equal(t, "scan.pdf", cli.Run.Path)
	assert.Equal(t, "5-20", cli.Run.Pages)
}

func TestCLI_BatchAndHistory(t *testing.T) {
	t.Parallel()

	cli := parseCLI(t, "batch", "/in/pdfs")
	assert.Equal(t, "/in/pdfs", cli.Batch.Dir)

	cli = parseCLI(t, "history", "--document", "letters", "-n", "5")
	assert.Equal(t, "letters", cli.History.Document)
	assert.Equal(t, 5, cli.History.Limit)
}

func TestParsePages(t *testing.T) {
	t.Parallel()

	doc := &pdfextractor.Document{Name: "book", Path: "/in/book.pdf", TotalPages: 30}

	t.Run("empty spec means all pages", func(t *testing.T) {
		t.Parallel()

		r, err := parsePages("", doc)
		require.NoError(t, err)
		assert.Equal(t, pdfextractor.PageRange{Start: 1, End: 30}, r)
	})

	t.Run("start-end range", func(t *testing.T) {
		t.Parallel()

		r, err := parsePages("5-20", doc)
		require.NoError(t, err)
		assert.Equal(t, pdfextractor.PageRange{Start: 5, End: 20}, r)
	})

	t.Run("single page", func(t *testing.T) {
		t.Parallel()

		r, err := parsePages("7", doc)
		require.NoError(t, err)
		assert.Equal(t, pdfextractor.PageRange{Start: 7, End: 7}, r)
	})

	t.Run("tolerates spaces", func(t *testing.T) {
		t.Parallel()

		r, err := parsePages(" 3 - 9 ", doc)
		require.NoError(t, err)
		assert.Equal(t, pdfextractor.PageRange{Start: 3, End: 9}, r)
	})

	t.Run("rejects malformed specs", func(t *testing.T) {
		t.Parallel()

		for _, spec := range []string{"abc", "1-x", "-", "1-2-3"} {
			_, err := parsePages(spec, doc)
			require.Error(t, err, "spec %q", spec)
			assert.Equal(t, pdfextractor.EINVALID, pdfextractor.ErrorCode(err))
		}
	})

	t.Run("rejects out of bounds ranges", func(t *testing.T) {
		t.Parallel()

		for _, spec := range []string{"0-5", "9-5", "1-31"} {
			_, err := parsePages(spec, doc)
			require.Error(t, err, "spec %q", spec)
			assert.Equal(t, pdfextractor.EINVALID, pdfextractor.ErrorCode(err))
		}
	})
}
