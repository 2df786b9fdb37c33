package optimize

import (
	"strings"

	"github.com/cranemast/seo/pkg/seo/lsi"
)

// Metadata length limits, in characters.
const (
	MaxTitleLength = 60
	MaxMetaLength  = 155

	metaCTALimit = 120
	metaLSILimit = 140
)

// Substring markers signalling conversion intent in a target keyword.
var (
	rentMarkers = []string{"rent", "rental", "hire", "lease"}
	buyMarkers  = []string{"buy", "sale", "purchase", "kopen"}
	ctaMarkers  = []string{"buy", "rent", "sale", "quote", "contact", "hire", "price"}
)

// SuggestTitle builds "{primaryKeyword} | {siteName}", truncated to
// MaxTitleLength with an ellipsis.
func SuggestTitle(primaryKeyword, siteName string) string {
	title := primaryKeyword
	if siteName != "" {
		title = primaryKeyword + " | " + siteName
	}
	return truncate(title, MaxTitleLength)
}

// suggestMeta builds a meta description from the first two sentence
// clauses, working in the primary keyword, a conversion call-to-action
// when intent markers are present, and the top LSI term when room
// remains. Hard limit MaxMetaLength.
func (o *Optimizer) suggestMeta(content, primary string, targets []string, lsiKeywords []lsi.Keyword) string {
	meta := firstClauses(content, 2)

	if primary != "" && !strings.Contains(strings.ToLower(meta), strings.ToLower(primary)) {
		if meta == "" {
			meta = primary + "."
		} else {
			meta = primary + " - " + meta
		}
	}

	if intent, ok := conversionIntent(targets); ok && len([]rune(meta)) < metaCTALimit {
		meta = appendSentence(meta, callToAction(intent))
	}

	if len(lsiKeywords) > 0 && len([]rune(meta)) < metaLSILimit {
		top := lsiKeywords[0].Keyword
		if !strings.Contains(strings.ToLower(meta), strings.ToLower(top)) {
			meta = appendSentence(meta, strings.TrimSpace(top)+".")
		}
	}

	return truncate(meta, MaxMetaLength)
}

// firstClauses returns the first n sentence-delimited clauses joined
// back into a period-terminated string.
func firstClauses(content string, n int) string {
	fields := strings.FieldsFunc(content, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var clauses []string
	for _, f := range fields {
		clause := strings.Join(strings.Fields(f), " ")
		if clause == "" {
			continue
		}
		clauses = append(clauses, clause)
		if len(clauses) == n {
			break
		}
	}
	if len(clauses) == 0 {
		return ""
	}
	return strings.Join(clauses, ". ") + "."
}

// conversionIntent inspects target keywords for intent markers and
// returns the dominant one. Rent-type markers win over buy-type since
// rental is the primary catalog offering.
func conversionIntent(targets []string) (string, bool) {
	joined := strings.ToLower(strings.Join(targets, " "))

	hasCTA := false
	for _, m := range ctaMarkers {
		if strings.Contains(joined, m) {
			hasCTA = true
			break
		}
	}
	if !hasCTA {
		return "", false
	}

	for _, m := range rentMarkers {
		if strings.Contains(joined, m) {
			return "rent", true
		}
	}
	for _, m := range buyMarkers {
		if strings.Contains(joined, m) {
			return "buy", true
		}
	}
	return "generic", true
}

func callToAction(intent string) string {
	switch intent {
	case "rent":
		return "Get a free rental quote today."
	case "buy":
		return "Contact us for pricing and availability."
	default:
		return "Request more information today."
	}
}

func appendSentence(meta, sentence string) string {
	if meta == "" {
		return sentence
	}
	return meta + " " + sentence
}

// truncate hard-limits s to max characters, with an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
