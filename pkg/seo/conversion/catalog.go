// Package conversion holds the static, intent-tagged keyword sets
// feeding the optimizer and metadata generation.
package conversion

import "strings"

// Intent classifies what a searcher wants to do.
type Intent string

const (
	IntentBuy     Intent = "buy"
	IntentRent    Intent = "rent"
	IntentQuote   Intent = "quote"
	IntentContact Intent = "contact"
	IntentPrice   Intent = "price"
)

// Priority ranks how aggressively a keyword should be targeted.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Keyword is one immutable catalog entry.
type Keyword struct {
	Keyword  string   `yaml:"keyword" json:"keyword"`
	Intent   Intent   `yaml:"intent" json:"intent"`
	Priority Priority `yaml:"priority" json:"priority"`
}

// Catalog groups conversion keywords by category and locale.
type Catalog struct {
	entries map[groupKey][]Keyword
}

type groupKey struct {
	category string
	locale   string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[groupKey][]Keyword)}
}

// Add registers keywords under a category/locale group.
func (c *Catalog) Add(category, locale string, keywords ...Keyword) {
	key := groupKey{strings.ToLower(category), strings.ToLower(locale)}
	c.entries[key] = append(c.entries[key], keywords...)
}

// ByCategory returns the keywords for a category and locale. Unknown
// locales fall back to English; unknown categories yield nil.
func (c *Catalog) ByCategory(category, locale string) []Keyword {
	key := groupKey{strings.ToLower(category), strings.ToLower(locale)}
	if kws, ok := c.entries[key]; ok {
		return append([]Keyword(nil), kws...)
	}
	key.locale = "en"
	if kws, ok := c.entries[key]; ok {
		return append([]Keyword(nil), kws...)
	}
	return nil
}

// ByIntent returns all keywords carrying the given intent, across
// every category and locale.
func (c *Catalog) ByIntent(intent Intent) []Keyword {
	var out []Keyword
	for _, kws := range c.entries {
		for _, kw := range kws {
			if kw.Intent == intent {
				out = append(out, kw)
			}
		}
	}
	return out
}

// DefaultCatalog returns the built-in crane-catalog keyword sets.
func DefaultCatalog() *Catalog {
	c := NewCatalog()

	c.Add("tower-cranes", "en",
		Keyword{"tower crane rental", IntentRent, PriorityHigh},
		Keyword{"rent tower crane", IntentRent, PriorityHigh},
		Keyword{"buy tower crane", IntentBuy, PriorityHigh},
		Keyword{"tower crane price", IntentPrice, PriorityMedium},
		Keyword{"tower crane quote", IntentQuote, PriorityMedium},
	)
	c.Add("tower-cranes", "nl",
		Keyword{"torenkraan huren", IntentRent, PriorityHigh},
		Keyword{"torenkraan kopen", IntentBuy, PriorityHigh},
		Keyword{"torenkraan prijs", IntentPrice, PriorityMedium},
	)
	c.Add("mobile-cranes", "en",
		Keyword{"mobile crane hire", IntentRent, PriorityHigh},
		Keyword{"mobile crane rental rates", IntentPrice, PriorityMedium},
		Keyword{"buy mobile crane", IntentBuy, PriorityMedium},
	)
	c.Add("mobile-cranes", "nl",
		Keyword{"mobiele kraan huren", IntentRent, PriorityHigh},
		Keyword{"mobiele kraan offerte", IntentQuote, PriorityMedium},
	)
	c.Add("crane-rental", "en",
		Keyword{"crane rental quote", IntentQuote, PriorityHigh},
		Keyword{"crane hire near me", IntentRent, PriorityHigh},
		Keyword{"crane rental rates", IntentPrice, PriorityMedium},
		Keyword{"contact crane company", IntentContact, PriorityLow},
	)
	c.Add("service", "en",
		Keyword{"crane inspection quote", IntentQuote, PriorityMedium},
		Keyword{"crane maintenance contract", IntentContact, PriorityMedium},
	)
	c.Add("parts", "en",
		Keyword{"buy crane parts", IntentBuy, PriorityMedium},
		Keyword{"crane parts price list", IntentPrice, PriorityLow},
	)

	return c
}
