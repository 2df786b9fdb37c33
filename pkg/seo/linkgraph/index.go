// Package linkgraph builds a directed similarity graph over the full
// page corpus and answers "most relevant pages to X" queries for
// internal-link suggestion.
package linkgraph

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cranemast/seo/pkg/seo/catalog"
	"github.com/cranemast/seo/pkg/seo/ingest"
)

// Query defaults.
const (
	DefaultLimit        = 5
	DefaultMinRelevance = 0.3

	buildWorkers = 4
)

// Entry holds the relevance scores for one ordered page pair. All
// three sub-scores are symmetric set-similarity measures, so
// Entry(A,B).OverallScore always equals Entry(B,A).OverallScore; the
// storage is directed purely for O(1) lookup.
type Entry struct {
	SourceURL           string  `json:"sourceUrl"`
	TargetURL           string  `json:"targetUrl"`
	Similarity          float64 `json:"similarity"`
	ContextualRelevance float64 `json:"contextualRelevance"`
	CategoryRelevance   float64 `json:"categoryRelevance"`
	OverallScore        float64 `json:"overallScore"`
}

// Ranked is one related-page query result.
type Ranked struct {
	URL   string  `json:"url"`
	Score float64 `json:"score"`
}

// RelevanceIndex is an explicitly owned relevance matrix with
// lifecycle build → query → discard/replace. Writes (Build,
// UpdatePage) are serialized internally, but callers should still
// follow single-writer discipline: concurrent UpdatePage calls on
// overlapping neighborhoods are rebuild churn even when safe.
type RelevanceIndex struct {
	store catalog.Store
	tok   *ingest.Tokenizer

	mu     sync.RWMutex
	pages  map[string]catalog.PageData
	matrix map[string]map[string]Entry // source → target → entry
}

// NewIndex creates an empty index over the given store. tok may be
// nil to use the default stopword list.
func NewIndex(store catalog.Store, tok *ingest.Tokenizer) *RelevanceIndex {
	if tok == nil {
		tok = ingest.NewTokenizer(ingest.DefaultStopwords())
	}
	return &RelevanceIndex{
		store:  store,
		tok:    tok,
		pages:  make(map[string]catalog.PageData),
		matrix: make(map[string]map[string]Entry),
	}
}

// Build loads the full corpus and computes every pairwise entry.
//
// Complexity is O(N²) in page count; acceptable only because the
// catalog is a few hundred pages, not web-scale. Pair scoring is
// read-only and independent per pair, so it runs on a small worker
// pool.
func (x *RelevanceIndex) Build(ctx context.Context) error {
	pages, err := x.store.ListPages(ctx)
	if err != nil {
		return fmt.Errorf("list pages: %w", err)
	}

	type pairJob struct {
		a, b catalog.PageData
	}

	jobs := make(chan pairJob, buildWorkers)
	results := make(chan Entry, buildWorkers)

	var wg sync.WaitGroup
	for w := 0; w < buildWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- x.scorePair(job.a, job.b)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < len(pages); i++ {
			for j := i + 1; j < len(pages); j++ {
				select {
				case jobs <- pairJob{a: pages[i], b: pages[j]}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	pageMap := make(map[string]catalog.PageData, len(pages))
	for _, p := range pages {
		pageMap[p.URL] = p
	}
	matrix := make(map[string]map[string]Entry, len(pages))

	for entry := range results {
		insertEntry(matrix, entry)
		insertEntry(matrix, mirror(entry))
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	x.mu.Lock()
	x.pages = pageMap
	x.matrix = matrix
	x.mu.Unlock()
	return nil
}

// UpdatePage upserts one page and recomputes only the 2×(N−1)
// entries touching it, without rebuilding the full matrix.
func (x *RelevanceIndex) UpdatePage(page catalog.PageData) {
	if page.URL == "" {
		return
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	x.pages[page.URL] = page
	delete(x.matrix, page.URL)
	for _, targets := range x.matrix {
		delete(targets, page.URL)
	}

	for url, other := range x.pages {
		if url == page.URL {
			continue
		}
		entry := x.scorePair(page, other)
		insertEntry(x.matrix, entry)
		insertEntry(x.matrix, mirror(entry))
	}
}

// Entry returns the stored entry for an ordered pair.
func (x *RelevanceIndex) Entry(sourceURL, targetURL string) (Entry, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if targets, ok := x.matrix[sourceURL]; ok {
		if e, ok := targets[targetURL]; ok {
			return e, true
		}
	}
	return Entry{}, false
}

// Len returns the number of indexed pages.
func (x *RelevanceIndex) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.pages)
}

// TopRelevant returns up to limit target URLs with OverallScore at or
// above minRelevance, sorted descending. The source page itself is
// never included. Zero/negative arguments take the defaults.
func (x *RelevanceIndex) TopRelevant(sourceURL string, limit int, minRelevance float64) []Ranked {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if minRelevance <= 0 {
		minRelevance = DefaultMinRelevance
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	targets, ok := x.matrix[sourceURL]
	if !ok {
		return nil
	}

	ranked := make([]Ranked, 0, len(targets))
	for url, entry := range targets {
		if entry.OverallScore >= minRelevance {
			ranked = append(ranked, Ranked{URL: url, Score: entry.OverallScore})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].URL < ranked[j].URL
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// scorePair computes the relevance entry for one ordered pair.
func (x *RelevanceIndex) scorePair(a, b catalog.PageData) Entry {
	similarity := jaccard(keywordSet(a.Keywords), keywordSet(b.Keywords))
	contextual := jaccard(
		descriptionTerms(x.tok, a.Description),
		descriptionTerms(x.tok, b.Description),
	)
	category := categoryRelevance(a.Category, b.Category)

	return Entry{
		SourceURL:           a.URL,
		TargetURL:           b.URL,
		Similarity:          similarity,
		ContextualRelevance: contextual,
		CategoryRelevance:   category,
		OverallScore:        weightKeywords*similarity + weightContextual*contextual + weightCategory*category,
	}
}

func insertEntry(matrix map[string]map[string]Entry, e Entry) {
	if matrix[e.SourceURL] == nil {
		matrix[e.SourceURL] = make(map[string]Entry)
	}
	matrix[e.SourceURL][e.TargetURL] = e
}

func mirror(e Entry) Entry {
	e.SourceURL, e.TargetURL = e.TargetURL, e.SourceURL
	return e
}
