// Package optimize orchestrates the analyzer and the LSI mapper over
// one document, producing a recommendation report, an expanded
// keyword set, and suggested page metadata.
package optimize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cranemast/seo/pkg/seo/analyze"
	"github.com/cranemast/seo/pkg/seo/conversion"
	"github.com/cranemast/seo/pkg/seo/lsi"
)

// Default density bounds, in percent.
const (
	DefaultMinDensity = 0.5
	DefaultMaxDensity = 3.0

	maxLSIKeywords      = 10
	maxKeywordAdditions = 5
	minContentLength    = 1000
	minReadability      = 50
)

// Options configures a single optimization run. Use DefaultOptions to
// get the documented defaults; a hand-built Options with zero density
// bounds also gets them applied.
type Options struct {
	TargetKeywords []string
	MinDensity     float64
	MaxDensity     float64
	IncludeLSI     bool
	OptimizeMeta   bool
}

// DefaultOptions returns Options with LSI expansion and metadata
// generation enabled.
func DefaultOptions(targetKeywords ...string) Options {
	return Options{
		TargetKeywords: targetKeywords,
		MinDensity:     DefaultMinDensity,
		MaxDensity:     DefaultMaxDensity,
		IncludeLSI:     true,
		OptimizeMeta:   true,
	}
}

// Result is the optimization report for one document.
type Result struct {
	Analysis                 analyze.ContentAnalysis `json:"analysis"`
	OptimizedKeywords        []string                `json:"optimizedKeywords"`
	LSIKeywords              []lsi.Keyword           `json:"lsiKeywords"`
	Recommendations          []string                `json:"recommendations"`
	SuggestedTitle           string                  `json:"suggestedTitle,omitempty"`
	SuggestedMetaDescription string                  `json:"suggestedMetaDescription,omitempty"`
}

// Optimizer ties the analyzer, mapper, and conversion catalog
// together for one site.
type Optimizer struct {
	analyzer *analyze.Analyzer
	mapper   *lsi.Mapper
	conv     *conversion.Catalog
	siteName string
}

// NewOptimizer creates an optimizer. Nil collaborators get defaults.
func NewOptimizer(analyzer *analyze.Analyzer, mapper *lsi.Mapper, conv *conversion.Catalog, siteName string) *Optimizer {
	if analyzer == nil {
		analyzer = analyze.NewAnalyzer(nil)
	}
	if mapper == nil {
		mapper = lsi.NewMapper(nil, analyzer)
	}
	if conv == nil {
		conv = conversion.DefaultCatalog()
	}
	return &Optimizer{analyzer: analyzer, mapper: mapper, conv: conv, siteName: siteName}
}

// Optimize analyzes content against the target keywords and emits
// recommendations plus suggested metadata. Missing or empty keyword
// lists degrade to content-only analysis; nothing here fails.
func (o *Optimizer) Optimize(content string, opts Options) Result {
	if opts.MinDensity <= 0 {
		opts.MinDensity = DefaultMinDensity
	}
	if opts.MaxDensity <= 0 {
		opts.MaxDensity = DefaultMaxDensity
	}

	result := Result{
		Analysis: o.analyzer.Analyze(content, opts.TargetKeywords),
	}

	if opts.IncludeLSI && len(opts.TargetKeywords) > 0 {
		result.LSIKeywords = o.expandKeywords(content, opts.TargetKeywords)
	}

	result.OptimizedKeywords = optimizedKeywords(opts.TargetKeywords, result.LSIKeywords)
	result.Recommendations = o.recommendations(content, opts, result)

	if opts.OptimizeMeta && len(opts.TargetKeywords) > 0 {
		primary := opts.TargetKeywords[0]
		result.SuggestedTitle = SuggestTitle(primary, o.siteName)
		result.SuggestedMetaDescription = o.suggestMeta(content, primary, opts.TargetKeywords, result.LSIKeywords)
	}

	return result
}

// expandKeywords maps every target keyword and merges the related
// terms, deduplicated by lowercase keyword, strongest first.
func (o *Optimizer) expandKeywords(content string, targets []string) []lsi.Keyword {
	var merged []lsi.Keyword
	seen := make(map[string]struct{})
	for _, target := range targets {
		mapping := o.mapper.Map(target, content)
		for _, kw := range mapping.Keywords {
			key := strings.ToLower(kw.Keyword)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, kw)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Similarity > merged[j].Similarity
	})
	if len(merged) > maxLSIKeywords {
		merged = merged[:maxLSIKeywords]
	}
	return merged
}

func optimizedKeywords(targets []string, lsiKeywords []lsi.Keyword) []string {
	out := append([]string(nil), targets...)
	present := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		present[strings.ToLower(t)] = struct{}{}
	}

	added := 0
	for _, kw := range lsiKeywords {
		if added >= maxKeywordAdditions {
			break
		}
		if kw.Similarity <= 0.6 {
			continue
		}
		key := strings.ToLower(kw.Keyword)
		if _, ok := present[key]; ok {
			continue
		}
		present[key] = struct{}{}
		out = append(out, kw.Keyword)
		added++
	}
	return out
}

// recommendations emits all applicable advice, in fixed rule order.
func (o *Optimizer) recommendations(content string, opts Options, result Result) []string {
	var recs []string

	for _, kw := range opts.TargetKeywords {
		density := result.Analysis.KeywordDensity[kw]
		switch {
		case density < opts.MinDensity:
			recs = append(recs, fmt.Sprintf(
				"Increase density of %q: %.2f%% is below the %.2f%% minimum",
				kw, density, opts.MinDensity))
		case density > opts.MaxDensity:
			recs = append(recs, fmt.Sprintf(
				"Reduce density of %q: %.2f%% exceeds the %.2f%% maximum",
				kw, density, opts.MaxDensity))
		}
	}

	lowerContent := strings.ToLower(content)
	suggested := 0
	for _, kw := range result.LSIKeywords {
		if suggested >= 3 {
			break
		}
		if kw.Similarity <= 0.7 {
			continue
		}
		if strings.Contains(lowerContent, strings.ToLower(kw.Keyword)) {
			continue
		}
		recs = append(recs, fmt.Sprintf("Consider adding related term %q (similarity %.2f)", kw.Keyword, kw.Similarity))
		suggested++
	}

	if result.Analysis.ContentLength < minContentLength {
		recs = append(recs, fmt.Sprintf(
			"Content is %d characters; expand toward 1500+ words for stronger topical coverage",
			result.Analysis.ContentLength))
	}

	if result.Analysis.ReadabilityScore < minReadability {
		recs = append(recs, fmt.Sprintf(
			"Simplify sentences: readability score %.0f is below %d",
			result.Analysis.ReadabilityScore, minReadability))
	}

	return recs
}
