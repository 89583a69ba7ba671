package pdfextractor

import "sort"

// StatRow is one exported row of a frequency table: a token, its total
// occurrence count, and the ascending list of pages it occurs on.
type StatRow struct {
	Token string
	Count int
	Pages []int
}

// statEntry accumulates occurrences of one token. first remembers the page of
// the token's first Add call, which breaks count ties at export time.
type statEntry struct {
	count int
	pages []int
	first int
}

func (e *statEntry) add(page int) {
	e.count++
	for _, p := range e.pages {
		if p == page {
			return
		}
	}
	e.pages = append(e.pages, page)
}

// WordStats maps normalized words to occurrence counts and page sets, scoped
// to one document. It also tracks per-page word counts for the report's
// summary section. Derived and read-only once computed.
type WordStats struct {
	entries   map[string]*statEntry
	pageWords map[int]int
	total     int
}

// NewWordStats returns an empty word-frequency table.
func NewWordStats() *WordStats {
	return &WordStats{
		entries:   make(map[string]*statEntry),
		pageWords: make(map[int]int),
	}
}

// AddPage records all normalized words of one page. Pages must be added in
// ascending page order for the documented tie-break (first-appearance page)
// to hold.
func (s *WordStats) AddPage(page int, words []string) {
	s.pageWords[page] = len(words)
	s.total += len(words)
	for _, w := range words {
		e, ok := s.entries[w]
		if !ok {
			e = &statEntry{first: page}
			s.entries[w] = e
		}
		e.add(page)
	}
}

// TotalWords returns the word count across all analyzed pages.
func (s *WordStats) TotalWords() int { return s.total }

// UniqueWords returns the number of distinct words.
func (s *WordStats) UniqueWords() int { return len(s.entries) }

// PagesAnalyzed returns the number of pages that contributed words.
func (s *WordStats) PagesAnalyzed() int { return len(s.pageWords) }

// PageCount is the word count of a single page.
type PageCount struct {
	Page  int
	Words int
}

// PageCounts returns per-page word counts in ascending page order.
func (s *WordStats) PageCounts() []PageCount {
	counts := make([]PageCount, 0, len(s.pageWords))
	for page, n := range s.pageWords {
		counts = append(counts, PageCount{Page: page, Words: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Page < counts[j].Page })
	return counts
}

// Rows exports the table sorted descending by total occurrence count, ties
// broken by first-appearance page ascending, then token ascending.
func (s *WordStats) Rows() []StatRow {
	return exportRows(s.entries)
}

// NameStats maps detected person names to occurrence counts and page sets.
// Unlike words, names are not normalized: they are compared by exact
// extractor output.
type NameStats struct {
	entries map[string]*statEntry

	// DegradedPages counts pages skipped because the extractor failed on
	// them. Non-zero values indicate partial results, not an error.
	DegradedPages int
}

// NewNameStats returns an empty name-frequency table.
func NewNameStats() *NameStats {
	return &NameStats{entries: make(map[string]*statEntry)}
}

// Add records one occurrence of a name on a page.
func (s *NameStats) Add(name string, page int) {
	e, ok := s.entries[name]
	if !ok {
		e = &statEntry{first: page}
		s.entries[name] = e
	}
	e.add(page)
}

// Len returns the number of distinct names.
func (s *NameStats) Len() int { return len(s.entries) }

// Rows exports the table with the same ordering rules as WordStats.Rows.
func (s *NameStats) Rows() []StatRow {
	return exportRows(s.entries)
}

func exportRows(entries map[string]*statEntry) []StatRow {
	rows := make([]StatRow, 0, len(entries))
	for token, e := range entries {
		pages := append([]int(nil), e.pages...)
		sort.Ints(pages)
		rows = append(rows, StatRow{Token: token, Count: e.count, Pages: pages})
	}
	first := func(r StatRow) int { return entries[r.Token].first }
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		if first(rows[i]) != first(rows[j]) {
			return first(rows[i]) < first(rows[j])
		}
		return rows[i].Token < rows[j].Token
	})
	return rows
}
