// Package lsi maps primary keywords to ranked lists of semantically
// related terms, combining a curated industry taxonomy with
// co-occurrence candidates discovered in document text.
//
// This is a deterministic rule-plus-merge layer, not a trained model:
// curated entries carry a fixed similarity and discovered candidates
// carry simple frequency ratios.
package lsi

import (
	"sort"
	"strings"
)

// MaxKeywords caps the merged related-term list per mapping.
const MaxKeywords = 15

// Keyword is one related term with its affinity to the primary
// keyword. Similarity is normalized to [0,1]; 1.0 means an exact or
// curated match and lower values mean weaker co-occurrence evidence.
type Keyword struct {
	Keyword      string   `json:"keyword"`
	Similarity   float64  `json:"similarity"`
	Context      []string `json:"context,omitempty"`
	RelatedTerms []string `json:"relatedTerms,omitempty"`
}

// Mapping is the full expansion of one (keyword, context) pair.
type Mapping struct {
	PrimaryKeyword  string     `json:"primaryKeyword"`
	Keywords        []Keyword  `json:"lsiKeywords"`
	EntityType      EntityType `json:"entityType"`
	IndustryContext []string   `json:"industryContext"`
	RelatedTerms    []string   `json:"relatedTerms"`
	SemanticCluster string     `json:"semanticCluster"`
}

// Discoverer surfaces co-occurrence keyword candidates from document
// text. Implemented by the term relevance analyzer.
type Discoverer interface {
	DiscoverTerms(content, keyword string, limit int) []Keyword
}

// Mapper expands primary keywords using the taxonomy and an optional
// discoverer.
type Mapper struct {
	taxonomy *Taxonomy
	disc     Discoverer
}

// NewMapper creates a mapper. disc may be nil, in which case only
// curated terms are returned.
func NewMapper(taxonomy *Taxonomy, disc Discoverer) *Mapper {
	if taxonomy == nil {
		taxonomy = DefaultTaxonomy()
	}
	return &Mapper{taxonomy: taxonomy, disc: disc}
}

// Map expands primaryKeyword into a ranked mapping. context is
// optional document text used for co-occurrence discovery; curated
// entries are unaffected by it and always carry CuratedSimilarity.
func (m *Mapper) Map(primaryKeyword, context string) Mapping {
	primary := strings.TrimSpace(primaryKeyword)

	mapping := Mapping{
		PrimaryKeyword:  primary,
		EntityType:      ClassifyEntity(primary),
		SemanticCluster: SemanticCluster(primary),
		IndustryContext: []string{"construction", "heavy machinery", "lifting equipment"},
	}
	if primary == "" {
		return mapping
	}

	var merged []Keyword
	seen := make(map[string]struct{})
	add := func(k Keyword) {
		key := strings.ToLower(strings.TrimSpace(k.Keyword))
		if key == "" {
			return
		}
		// First occurrence wins: curated entries shadow discovered ones.
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		merged = append(merged, k)
	}

	if entry, ok := m.taxonomy.Lookup(primary); ok {
		if len(entry.Context) > 0 {
			mapping.IndustryContext = entry.Context
		}
		for _, term := range entry.Related {
			add(Keyword{
				Keyword:    term,
				Similarity: CuratedSimilarity,
				Context:    entry.Context,
			})
		}
	}

	if m.disc != nil && context != "" {
		for _, cand := range m.disc.DiscoverTerms(context, primary, MaxKeywords) {
			add(cand)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Similarity > merged[j].Similarity
	})
	if len(merged) > MaxKeywords {
		merged = merged[:MaxKeywords]
	}
	mapping.Keywords = merged

	related := make([]string, 0, len(merged))
	for _, k := range merged {
		related = append(related, strings.ToLower(k.Keyword))
	}
	mapping.RelatedTerms = related

	return mapping
}
