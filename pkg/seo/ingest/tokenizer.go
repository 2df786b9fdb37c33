package ingest

import (
	"strings"
	"unicode"
)

// Tokenizer handles text tokenization and normalization
type Tokenizer struct {
	stopwords map[string]struct{}
	minLen    int
}

// NewTokenizer creates a new tokenizer with the given stopword list
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops, minLen: 2}
}

// SetMinLength sets the minimum token length kept by Tokenize.
// Tokens shorter than n runes are dropped.
func (t *Tokenizer) SetMinLength(n int) {
	if n < 2 {
		n = 2
	}
	t.minLen = n
}

// Tokenize splits text into normalized lowercase tokens, removing
// stopwords, short tokens, and purely numeric tokens.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			if current.Len() > 0 {
				if word := t.processToken(current.String()); word != "" {
					tokens = append(tokens, word)
				}
				current.Reset()
			}
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		if word := t.processToken(current.String()); word != "" {
			tokens = append(tokens, word)
		}
	}

	return tokens
}

// processToken applies cleaning and stopword filtering.
func (t *Tokenizer) processToken(token string) string {
	word := cleanToken(token)
	if word == "" || len([]rune(word)) < t.minLen {
		return ""
	}

	// Mixed tokens like "ec-h", "k2", "l550" are kept; bare numbers are not.
	if isNumericOnly(word) {
		return ""
	}

	if t.isStopword(word) {
		return ""
	}

	return word
}

// cleanToken strips leading/trailing hyphens and normalizes consecutive hyphens
func cleanToken(token string) string {
	token = strings.Trim(token, "-")
	for strings.Contains(token, "--") {
		token = strings.ReplaceAll(token, "--", "-")
	}
	return token
}

// isNumericOnly returns true if the token contains only digits and hyphens.
func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}

func (t *Tokenizer) isStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}

// IsStopword reports whether the word is on the stopword list.
func (t *Tokenizer) IsStopword(word string) bool {
	return t.isStopword(strings.ToLower(word))
}

// AddStopword adds a word to the stopword list
func (t *Tokenizer) AddStopword(word string) {
	t.stopwords[strings.ToLower(word)] = struct{}{}
}

// Fold splits text into raw lowercase words without stopword or length
// filtering. Used for occurrence counting where every word counts
// toward the denominator.
func Fold(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			if current.Len() > 0 {
				if w := cleanToken(current.String()); w != "" {
					words = append(words, w)
				}
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		if w := cleanToken(current.String()); w != "" {
			words = append(words, w)
		}
	}
	return words
}
