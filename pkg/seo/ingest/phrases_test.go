package ingest

import (
	"reflect"
	"testing"
)

func TestCollapseLongestMatch(t *testing.T) {
	set := NewPhraseSet([]string{"tower crane", "tower crane rental"})

	got := set.Collapse([]string{"tower", "crane", "rental", "rates"})
	want := []string{"tower crane rental", "rates"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCollapseShorterPhrase(t *testing.T) {
	set := NewPhraseSet([]string{"tower crane", "tower crane rental"})

	got := set.Collapse([]string{"big", "tower", "crane", "onsite"})
	want := []string{"big", "tower crane", "onsite"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCollapseNoPhrases(t *testing.T) {
	set := NewPhraseSet(nil)
	tokens := []string{"tower", "crane"}
	if got := set.Collapse(tokens); !reflect.DeepEqual(got, tokens) {
		t.Fatalf("expected passthrough, got %v", got)
	}
}

func TestCollapseNonOverlapping(t *testing.T) {
	set := NewPhraseSet([]string{"crane crane"})

	// Greedy matching consumes matched tokens; no reuse across matches.
	got := set.Collapse([]string{"crane", "crane", "crane"})
	want := []string{"crane crane", "crane"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCountOccurrences(t *testing.T) {
	words := Fold("tower crane rental and tower crane rental and tower crane")

	if got := CountOccurrences(words, []string{"tower", "crane", "rental"}); got != 2 {
		t.Fatalf("expected 2 phrase occurrences, got %d", got)
	}
	if got := CountOccurrences(words, []string{"tower", "crane"}); got != 3 {
		t.Fatalf("expected 3 occurrences, got %d", got)
	}
	if got := CountOccurrences(words, []string{"mobile"}); got != 0 {
		t.Fatalf("expected 0 occurrences, got %d", got)
	}
	if got := CountOccurrences(words, nil); got != 0 {
		t.Fatalf("expected 0 for empty phrase, got %d", got)
	}
}

func TestCountOccurrencesNonOverlapping(t *testing.T) {
	words := []string{"a", "a", "a"}
	if got := CountOccurrences(words, []string{"a", "a"}); got != 1 {
		t.Fatalf("expected 1 non-overlapping match, got %d", got)
	}
}
