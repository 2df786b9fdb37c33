// Package analyze computes per-document term relevance signals:
// keyword density, content length, readability, and window-based
// co-occurrence term discovery.
//
// All operations are pure functions over their inputs and safe to run
// concurrently across documents.
package analyze

import (
	"sort"
	"strings"

	"github.com/cranemast/seo/pkg/seo/ingest"
	"github.com/cranemast/seo/pkg/seo/lsi"
)

// Co-occurrence window configuration.
const (
	// DefaultWindow is the token distance within which a term counts
	// as co-occurring with a keyword hit.
	DefaultWindow = 5

	// MinWindow is the smallest usable window; smaller values are
	// clamped.
	MinWindow = 2

	// discoveredCeiling keeps discovered-term similarity strictly
	// below the curated convention in the lsi package.
	discoveredCeiling = 0.7
)

// ContentAnalysis is the per-document scoring result. Derived per
// call and never persisted.
type ContentAnalysis struct {
	KeywordDensity   map[string]float64 `json:"keywordDensity"`
	ContentLength    int                `json:"contentLength"`
	ReadabilityScore float64            `json:"readabilityScore"`
}

// Analyzer computes content analyses. The zero value is not usable;
// construct with NewAnalyzer.
type Analyzer struct {
	tok    *ingest.Tokenizer
	window int
}

// NewAnalyzer creates an analyzer using the given tokenizer for
// stop-word aware term discovery. A nil tokenizer gets the default
// stopword list.
func NewAnalyzer(tok *ingest.Tokenizer) *Analyzer {
	if tok == nil {
		tok = ingest.NewTokenizer(ingest.DefaultStopwords())
	}
	return &Analyzer{tok: tok, window: DefaultWindow}
}

// SetWindow overrides the co-occurrence window size.
func (a *Analyzer) SetWindow(n int) {
	if n < MinWindow {
		n = MinWindow
	}
	a.window = n
}

// Analyze scores content against the target keywords. Empty content
// yields a zero-valued analysis; keywords absent from the content
// yield density 0. It never fails.
func (a *Analyzer) Analyze(content string, targetKeywords []string) ContentAnalysis {
	analysis := ContentAnalysis{
		KeywordDensity: make(map[string]float64, len(targetKeywords)),
		ContentLength:  len(content),
	}
	if strings.TrimSpace(content) == "" {
		return analysis
	}

	words := ingest.Fold(content)
	wordCount := len(words)

	for _, kw := range targetKeywords {
		phrase := ingest.Fold(kw)
		if len(phrase) == 0 || wordCount == 0 {
			analysis.KeywordDensity[kw] = 0
			continue
		}
		occurrences := ingest.CountOccurrences(words, phrase)
		analysis.KeywordDensity[kw] = float64(occurrences) / float64(wordCount) * 100
	}

	analysis.ReadabilityScore = readability(content)
	return analysis
}

// DiscoverTerms surfaces the highest-frequency content-bearing terms
// co-occurring near keyword hits, as weak LSI candidates. Similarity
// is the candidate's co-occurrence count normalized by the strongest
// candidate, scaled to stay below the curated similarity convention.
func (a *Analyzer) DiscoverTerms(content, keyword string, limit int) []lsi.Keyword {
	if limit <= 0 {
		limit = 10
	}

	// The phrase is built from the same tokenization as the content
	// stream, so keywords carrying stop-words ("cranes for rent")
	// still line up with their collapsed hits.
	phrase := strings.Join(a.tok.Tokenize(keyword), " ")
	if phrase == "" || strings.TrimSpace(content) == "" {
		return nil
	}

	tokens := a.tok.Tokenize(content)
	tokens = ingest.NewPhraseSet([]string{phrase}).Collapse(tokens)

	counts := make(map[string]int)
	for i, tok := range tokens {
		if tok != phrase {
			continue
		}
		lo := i - a.window
		if lo < 0 {
			lo = 0
		}
		hi := i + a.window
		if hi >= len(tokens) {
			hi = len(tokens) - 1
		}
		for j := lo; j <= hi; j++ {
			if j == i || tokens[j] == phrase {
				continue
			}
			counts[tokens[j]]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	candidates := make([]lsi.Keyword, 0, len(counts))
	for term, c := range counts {
		candidates = append(candidates, lsi.Keyword{
			Keyword:    term,
			Similarity: discoveredCeiling * float64(c) / float64(maxCount),
			Context:    []string{phrase},
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Similarity != candidates[j].Similarity {
			return candidates[i].Similarity > candidates[j].Similarity
		}
		return candidates[i].Keyword < candidates[j].Keyword
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// readability scores text 0-100 from average sentence length (in
// words) and average word length (in runes). Long sentences and long
// words lower the score. Deterministic and stable under whitespace
// normalization since it only looks at word and sentence boundaries.
func readability(content string) float64 {
	words := strings.Fields(content)
	if len(words) == 0 {
		return 0
	}

	sentences := 0
	for _, r := range content {
		if r == '.' || r == '!' || r == '?' {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = 1
	}

	runeTotal := 0
	for _, w := range words {
		runeTotal += len([]rune(strings.Trim(w, ".,!?;:()\"'")))
	}

	avgSentence := float64(len(words)) / float64(sentences)
	avgWord := float64(runeTotal) / float64(len(words))

	score := 100 - 2.5*avgSentence - 10*(avgWord-4)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
