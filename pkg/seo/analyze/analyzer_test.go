package analyze

import (
	"math"
	"testing"
)

func TestAnalyzeDensity(t *testing.T) {
	a := NewAnalyzer(nil)

	// 10 words, "tower crane" appears twice as a phrase.
	content := "Tower crane rental here. Our tower crane lifts heavy loads."
	analysis := a.Analyze(content, []string{"tower crane", "excavator"})

	got := analysis.KeywordDensity["tower crane"]
	want := 2.0 / 10.0 * 100
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected density %.2f, got %.2f", want, got)
	}
	if analysis.KeywordDensity["excavator"] != 0 {
		t.Fatalf("absent keyword should have density 0, got %f", analysis.KeywordDensity["excavator"])
	}
	if analysis.ContentLength != len(content) {
		t.Fatalf("expected length %d, got %d", len(content), analysis.ContentLength)
	}
}

func TestAnalyzeEmptyContent(t *testing.T) {
	a := NewAnalyzer(nil)

	analysis := a.Analyze("   ", []string{"tower crane"})
	if len(analysis.KeywordDensity) != 0 {
		t.Fatalf("expected empty density map, got %v", analysis.KeywordDensity)
	}
	if analysis.ReadabilityScore != 0 {
		t.Fatalf("expected readability 0, got %f", analysis.ReadabilityScore)
	}
}

func TestAnalyzeEmptyKeywords(t *testing.T) {
	a := NewAnalyzer(nil)

	analysis := a.Analyze("Some crane content here.", nil)
	if len(analysis.KeywordDensity) != 0 {
		t.Fatalf("expected empty density map, got %v", analysis.KeywordDensity)
	}
	if analysis.ReadabilityScore <= 0 {
		t.Fatalf("expected positive readability, got %f", analysis.ReadabilityScore)
	}
}

func TestReadabilityOrdering(t *testing.T) {
	simple := readability("We rent cranes. Call us now. Get a quote.")
	complex := readability("Notwithstanding aforementioned considerations regarding multifaceted infrastructural requirements, comprehensive organizational assessments necessitate extraordinarily sophisticated methodological frameworks encompassing interdisciplinary stakeholder engagement.")

	if simple <= complex {
		t.Fatalf("simple text should score higher: simple=%.1f complex=%.1f", simple, complex)
	}
	if simple < 0 || simple > 100 || complex < 0 || complex > 100 {
		t.Fatalf("scores out of range: %.1f, %.1f", simple, complex)
	}
}

func TestDiscoverTerms(t *testing.T) {
	a := NewAnalyzer(nil)

	content := "Tower crane rental with certified operator. " +
		"Tower crane rental includes certified rigging crew. " +
		"Tower crane rental for construction projects."
	terms := a.DiscoverTerms(content, "tower crane rental", 5)
	if len(terms) == 0 {
		t.Fatal("expected discovered terms")
	}

	for i, term := range terms {
		if term.Similarity >= 0.7+1e-9 {
			t.Fatalf("discovered similarity must stay below curated: %q = %f", term.Keyword, term.Similarity)
		}
		if i > 0 && term.Similarity > terms[i-1].Similarity {
			t.Fatalf("terms not sorted by similarity at %d", i)
		}
		if term.Keyword == "tower crane rental" {
			t.Fatal("keyword itself must not be discovered")
		}
	}

	// "certified" appears twice near the keyword; it should be the top term.
	if terms[0].Keyword != "certified" {
		t.Fatalf("expected top term certified, got %q", terms[0].Keyword)
	}
	if math.Abs(terms[0].Similarity-0.7) > 1e-9 {
		t.Fatalf("top term should hit the ceiling, got %f", terms[0].Similarity)
	}
}

func TestDiscoverTermsLimit(t *testing.T) {
	a := NewAnalyzer(nil)

	content := "tower crane alpha bravo charlie delta echo foxtrot golf hotel india juliet"
	a.SetWindow(20)
	terms := a.DiscoverTerms(content, "tower crane", 3)
	if len(terms) != 3 {
		t.Fatalf("expected 3 terms, got %d", len(terms))
	}
}

func TestDiscoverTermsStopwordKeyword(t *testing.T) {
	a := NewAnalyzer(nil)

	content := "Cranes for rent with certified operators. " +
		"Cranes for rent across certified jobsites."
	terms := a.DiscoverTerms(content, "cranes for rent", 5)
	if len(terms) == 0 {
		t.Fatal("keyword carrying a stopword should still discover terms")
	}
	if terms[0].Keyword != "certified" {
		t.Fatalf("expected top term certified, got %q", terms[0].Keyword)
	}
}

func TestDiscoverTermsAbsentKeyword(t *testing.T) {
	a := NewAnalyzer(nil)
	if terms := a.DiscoverTerms("mobile crane hire", "tower crane", 5); terms != nil {
		t.Fatalf("expected nil for absent keyword, got %v", terms)
	}
	if terms := a.DiscoverTerms("", "tower crane", 5); terms != nil {
		t.Fatalf("expected nil for empty content, got %v", terms)
	}
}
