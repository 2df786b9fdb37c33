// Package seo is the content-intelligence engine facade for the
// catalog site: keyword scoring and expansion, content optimization,
// alt-text generation, internal-link suggestion, zombie-page
// detection, and performance budget gating.
package seo

import (
	"context"

	"github.com/cranemast/seo/pkg/seo/alttext"
	"github.com/cranemast/seo/pkg/seo/analyze"
	"github.com/cranemast/seo/pkg/seo/catalog"
	"github.com/cranemast/seo/pkg/seo/conversion"
	"github.com/cranemast/seo/pkg/seo/ingest"
	"github.com/cranemast/seo/pkg/seo/linkgraph"
	"github.com/cranemast/seo/pkg/seo/lsi"
	"github.com/cranemast/seo/pkg/seo/optimize"
	"github.com/cranemast/seo/pkg/seo/vitals"
	"github.com/cranemast/seo/pkg/seo/zombie"
)

// Options configures an Engine. Nil collaborators get defaults; Store
// is required only for the corpus-level operations (related pages,
// page audits).
type Options struct {
	Store      catalog.Store
	Signals    zombie.SignalProvider
	Taxonomy   *lsi.Taxonomy
	Conversion *conversion.Catalog
	Stopwords  []string
	SiteName   string
	Brand      string
}

// Engine wires the scoring components for one site.
type Engine struct {
	tokenizer *ingest.Tokenizer
	analyzer  *analyze.Analyzer
	mapper    *lsi.Mapper
	optimizer *optimize.Optimizer
	alttext   *alttext.Generator
	store     catalog.Store
	detector  *zombie.Detector
	monitor   *vitals.Monitor
}

// New creates an engine with the given dependencies.
func New(opts Options) *Engine {
	stopwords := opts.Stopwords
	if stopwords == nil {
		stopwords = ingest.DefaultStopwords()
	}
	tokenizer := ingest.NewTokenizer(stopwords)
	analyzer := analyze.NewAnalyzer(tokenizer)
	mapper := lsi.NewMapper(opts.Taxonomy, analyzer)
	conv := opts.Conversion
	if conv == nil {
		conv = conversion.DefaultCatalog()
	}

	e := &Engine{
		tokenizer: tokenizer,
		analyzer:  analyzer,
		mapper:    mapper,
		optimizer: optimize.NewOptimizer(analyzer, mapper, conv, opts.SiteName),
		alttext:   alttext.NewGenerator(mapper, opts.Brand),
		store:     opts.Store,
		monitor:   vitals.NewMonitor(),
	}
	if opts.Store != nil {
		e.detector = zombie.NewDetector(opts.Store, opts.Signals)
	}
	return e
}

// Close releases the underlying store, if any.
func (e *Engine) Close() error {
	if e.store != nil {
		return e.store.Close()
	}
	return nil
}

// Analyzer exposes the term relevance analyzer.
func (e *Engine) Analyzer() *analyze.Analyzer { return e.analyzer }

// Mapper exposes the LSI keyword mapper.
func (e *Engine) Mapper() *lsi.Mapper { return e.mapper }

// Monitor exposes the performance budget monitor.
func (e *Engine) Monitor() *vitals.Monitor { return e.monitor }

// OptimizePage runs the full optimization pipeline over one document
// with default options.
func (e *Engine) OptimizePage(content string, targetKeywords []string) optimize.Result {
	return e.optimizer.Optimize(content, optimize.DefaultOptions(targetKeywords...))
}

// Optimize runs the optimizer with explicit options.
func (e *Engine) Optimize(content string, opts optimize.Options) optimize.Result {
	return e.optimizer.Optimize(content, opts)
}

// AltText generates the best alt-text candidate for the options.
func (e *Engine) AltText(opts alttext.Options) string {
	return e.alttext.Generate(opts)
}

// NewIndex builds a fresh relevance index over the engine's store.
// The build is O(N²) in page count; callers running inside a request
// or build pipeline should impose their own timeout via ctx.
func (e *Engine) NewIndex(ctx context.Context) (*linkgraph.RelevanceIndex, error) {
	idx := linkgraph.NewIndex(e.store, e.tokenizer)
	if err := idx.Build(ctx); err != nil {
		return nil, err
	}
	return idx, nil
}

// RelatedPages builds a fresh index and queries it once. For repeated
// queries hold the index from NewIndex instead.
func (e *Engine) RelatedPages(ctx context.Context, sourceURL string, limit int) []linkgraph.Ranked {
	idx, err := e.NewIndex(ctx)
	if err != nil {
		return nil
	}
	return idx.TopRelevant(sourceURL, limit, 0)
}

// AuditPages runs zombie detection over the corpus. An empty report
// means the corpus could not be analyzed.
func (e *Engine) AuditPages(ctx context.Context) zombie.Report {
	if e.detector == nil {
		return zombie.Report{}
	}
	return e.detector.Detect(ctx)
}

// GateBuild evaluates a Web-Vitals sample as a release gate.
func (e *Engine) GateBuild(sample vitals.Sample) vitals.BuildVerdict {
	return e.monitor.ValidateBuild(sample)
}
