package lsi

import "strings"

// CuratedSimilarity is the similarity assigned to curated taxonomy
// entries. Curation is treated as ground truth, not computed.
const CuratedSimilarity = 0.8

// Entry is one curated taxonomy concept: a primary keyword with its
// related terms and usage context.
type Entry struct {
	Keyword string
	Related []string
	Context []string
}

// Taxonomy is the curated industry term map, keyed by normalized
// (lowercase, space-collapsed) keyword.
type Taxonomy struct {
	entries map[string]Entry
}

// NewTaxonomy creates an empty taxonomy.
func NewTaxonomy() *Taxonomy {
	return &Taxonomy{entries: make(map[string]Entry)}
}

// Add registers a curated entry. Related terms and context are kept
// in curation order; the keyword is normalized for lookup.
func (t *Taxonomy) Add(keyword string, related []string, context []string) {
	key := normalizeKey(keyword)
	if key == "" {
		return
	}
	t.entries[key] = Entry{Keyword: key, Related: related, Context: context}
}

// Lookup finds the curated entry for a keyword, case-insensitively.
func (t *Taxonomy) Lookup(keyword string) (Entry, bool) {
	e, ok := t.entries[normalizeKey(keyword)]
	return e, ok
}

// Keywords returns all curated primary keywords.
func (t *Taxonomy) Keywords() []string {
	out := make([]string, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, k)
	}
	return out
}

func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// DefaultTaxonomy returns the built-in crane-industry taxonomy.
// Site-specific curation can replace or extend it via config loading.
func DefaultTaxonomy() *Taxonomy {
	t := NewTaxonomy()

	ctx := []string{"construction", "heavy machinery", "lifting equipment"}

	t.Add("tower crane",
		[]string{"construction crane", "high-rise crane", "luffing jib crane", "self-erecting tower crane", "tower crane rental", "crane hire"},
		ctx)
	t.Add("tower crane rental",
		[]string{"crane hire", "tower crane hire", "rent tower crane", "crane rental rates", "crane rental company"},
		ctx)
	t.Add("mobile crane",
		[]string{"all-terrain crane", "truck mounted crane", "telescopic crane", "mobile crane hire", "city crane"},
		ctx)
	t.Add("crawler crane",
		[]string{"lattice boom crane", "tracked crane", "heavy lift crane", "crawler crane rental"},
		ctx)
	t.Add("crane rental",
		[]string{"crane hire", "rent a crane", "crane rental rates", "lifting equipment rental", "crane rental company"},
		ctx)
	t.Add("crane hire",
		[]string{"crane rental", "hire a crane", "crane hire rates", "operated crane hire"},
		ctx)
	t.Add("crane service",
		[]string{"crane maintenance", "crane inspection", "crane repair", "crane certification"},
		ctx)
	t.Add("crane parts",
		[]string{"crane spare parts", "hoist parts", "slewing ring", "wire rope", "crane components"},
		ctx)
	t.Add("crane operator",
		[]string{"certified crane operator", "crane crew", "operated crane hire", "lift planning"},
		ctx)
	t.Add("used crane",
		[]string{"second hand crane", "used crane for sale", "refurbished crane", "crane trade-in"},
		ctx)

	return t
}
