package linkgraph

import (
	"strings"

	"github.com/cranemast/seo/pkg/seo/ingest"
)

// Weighting of the three sub-scores in OverallScore.
const (
	weightKeywords    = 0.4
	weightContextual  = 0.4
	weightCategory    = 0.2
	minDescTermLength = 4
)

// Category relevance levels.
const (
	sameCategoryScore     = 1.0
	adjacentCategoryScore = 0.7
	distantCategoryScore  = 0.2
)

// categoryAdjacency is the fixed related-category table. Kept
// symmetric; categoryRelevance checks both directions anyway.
var categoryAdjacency = map[string][]string{
	"tower-cranes":   {"mobile-cranes", "crawler-cranes", "crane-rental", "parts"},
	"mobile-cranes":  {"tower-cranes", "crawler-cranes", "crane-rental", "parts"},
	"crawler-cranes": {"tower-cranes", "mobile-cranes", "crane-rental"},
	"crane-rental":   {"tower-cranes", "mobile-cranes", "crawler-cranes", "service"},
	"service":        {"crane-rental", "parts"},
	"parts":          {"tower-cranes", "mobile-cranes", "service"},
}

// jaccard computes Jaccard similarity between two string sets.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	intersection := 0
	for s := range a {
		if _, ok := b[s]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// keywordSet lower-cases a keyword list into a set.
func keywordSet(keywords []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			set[kw] = struct{}{}
		}
	}
	return set
}

// descriptionTerms tokenizes a description, dropping stop-words and
// terms shorter than minDescTermLength.
func descriptionTerms(tok *ingest.Tokenizer, description string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range tok.Tokenize(description) {
		if len([]rune(t)) < minDescTermLength {
			continue
		}
		set[t] = struct{}{}
	}
	return set
}

// categoryRelevance scores category affinity: same category 1.0,
// adjacent per the fixed table 0.7, otherwise 0.2.
func categoryRelevance(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return sameCategoryScore
	}
	if adjacent(a, b) || adjacent(b, a) {
		return adjacentCategoryScore
	}
	return distantCategoryScore
}

func adjacent(a, b string) bool {
	for _, c := range categoryAdjacency[a] {
		if c == b {
			return true
		}
	}
	return false
}
