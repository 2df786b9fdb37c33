package ingest

import "strings"

// PhraseSet recognizes multi-word keyword phrases in a token stream.
// Phrases are matched greedily, longest first, and collapsed into a
// single space-joined token so downstream co-occurrence logic treats
// "tower crane rental" as one unit.
type PhraseSet struct {
	phrases map[string]struct{}
	maxLen  int
}

// NewPhraseSet builds a phrase set from the given phrases.
// Single-word entries are accepted but collapse to themselves.
func NewPhraseSet(phrases []string) *PhraseSet {
	set := make(map[string]struct{}, len(phrases))
	maxLen := 1
	for _, p := range phrases {
		normalized := strings.Join(strings.Fields(strings.ToLower(p)), " ")
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
		if l := len(strings.Fields(normalized)); l > maxLen {
			maxLen = l
		}
	}
	return &PhraseSet{phrases: set, maxLen: maxLen}
}

// Collapse applies greedy longest-match phrase recognition, replacing
// each matched run of tokens with the joined phrase.
func (p *PhraseSet) Collapse(tokens []string) []string {
	if len(p.phrases) == 0 {
		return tokens
	}

	var result []string
	i := 0
	for i < len(tokens) {
		matchLen := 0

		maxPhrase := p.maxLen
		if remaining := len(tokens) - i; maxPhrase > remaining {
			maxPhrase = remaining
		}
		for n := maxPhrase; n >= 2; n-- {
			phrase := strings.Join(tokens[i:i+n], " ")
			if _, ok := p.phrases[phrase]; ok {
				result = append(result, phrase)
				matchLen = n
				break
			}
		}

		if matchLen > 0 {
			i += matchLen
		} else {
			result = append(result, tokens[i])
			i++
		}
	}

	return result
}

// CountOccurrences counts non-overlapping occurrences of phrase
// (as a word sequence) within words. Both sides are expected to be
// folded lowercase; see Fold.
func CountOccurrences(words []string, phrase []string) int {
	if len(phrase) == 0 || len(words) < len(phrase) {
		return 0
	}

	count := 0
	for i := 0; i+len(phrase) <= len(words); {
		if matchAt(words, phrase, i) {
			count++
			i += len(phrase)
		} else {
			i++
		}
	}
	return count
}

func matchAt(words, phrase []string, i int) bool {
	for j, p := range phrase {
		if words[i+j] != p {
			return false
		}
	}
	return true
}
