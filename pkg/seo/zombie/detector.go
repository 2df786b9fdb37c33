// Package zombie scores page staleness and traffic signals into a
// zombie likelihood and recommends index/no-index action. All output
// is advisory; nothing here mutates the site.
package zombie

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cranemast/seo/pkg/seo/catalog"
)

// Classification thresholds.
const (
	ZombieThreshold = 0.7
	AtRiskThreshold = 0.5

	staleWeight       = 0.4
	noTrafficWeight   = 0.4
	unavailableWeight = 0.2

	staleAfterMonths   = 6
	recentTrafficDays  = 90
	daysPerMonth       = 30.44
)

// SignalSource tells where traffic signals came from. Unknown means
// the page has no analytics wiring at all, which is distinct from a
// measured zero; unknown pages never take the zero-traffic penalty.
type SignalSource string

const (
	SourceMeasured  SignalSource = "measured"
	SourceSimulated SignalSource = "simulated"
	SourceUnknown   SignalSource = "unknown"
)

// Signals carries per-page traffic and engagement data from the
// analytics collaborator.
type Signals struct {
	Traffic         int          `json:"traffic"`
	LastTrafficDate *time.Time   `json:"lastTrafficDate,omitempty"`
	Engagement      float64      `json:"engagement"`
	BounceRate      float64      `json:"bounceRate"`
	AvgTimeOnPage   float64      `json:"avgTimeOnPage"`
	Source          SignalSource `json:"source"`
}

// SignalProvider supplies analytics signals for one page. A false
// second return means the page is not wired to analytics.
type SignalProvider interface {
	PageSignals(ctx context.Context, url string) (Signals, bool, error)
}

// PagePerformance is the per-page detection result.
type PagePerformance struct {
	URL             string       `json:"url"`
	Traffic         int          `json:"traffic"`
	LastTrafficDate *time.Time   `json:"lastTrafficDate,omitempty"`
	Engagement      float64      `json:"engagement"`
	BounceRate      float64      `json:"bounceRate"`
	AvgTimeOnPage   float64      `json:"avgTimeOnPage"`
	IsZombie        bool         `json:"isZombie"`
	ZombieScore     float64      `json:"zombieScore"`
	Recommendations []string     `json:"recommendations"`
	Source          SignalSource `json:"source"`
}

// Report is the corpus-level detection summary. An empty report means
// "unable to analyze", not "nothing to flag".
type Report struct {
	ID              string            `json:"id"`
	GeneratedAt     time.Time         `json:"generatedAt"`
	TotalPages      int               `json:"totalPages"`
	ZombiePages     int               `json:"zombiePages"`
	AtRiskPages     int               `json:"atRiskPages"`
	Simulated       bool              `json:"simulated"`
	Pages           []PagePerformance `json:"pages"`
	Recommendations []string          `json:"recommendations"`
}

// Detector scores the page corpus against traffic signals. Report and
// action ids come from a locked entropy source, so detection runs may
// overlap.
type Detector struct {
	store   catalog.Store
	signals SignalProvider
	now     func() time.Time
	entropy *ulid.LockedMonotonicReader
}

// NewDetector creates a detector. signals may be nil; pages then get
// the deterministic recency-based simulation, flagged as such.
func NewDetector(store catalog.Store, signals SignalProvider) *Detector {
	return &Detector{
		store:   store,
		signals: signals,
		now:     time.Now,
		entropy: &ulid.LockedMonotonicReader{MonotonicReader: ulid.Monotonic(rand.Reader, 0)},
	}
}

// SetClock overrides the time source, for deterministic scoring.
func (d *Detector) SetClock(now func() time.Time) {
	if now != nil {
		d.now = now
	}
}

// Detect scores every page. Store failure degrades to an empty
// report rather than failing the caller.
func (d *Detector) Detect(ctx context.Context) Report {
	now := d.now()
	report := Report{
		ID:          ulid.MustNew(ulid.Timestamp(now), d.entropy).String(),
		GeneratedAt: now,
	}

	pages, err := d.store.ListPages(ctx)
	if err != nil {
		return report
	}

	report.TotalPages = len(pages)
	for _, page := range pages {
		perf := d.scorePage(ctx, page, now)
		if perf.Source == SourceSimulated {
			report.Simulated = true
		}
		if perf.IsZombie {
			report.ZombiePages++
		} else if perf.ZombieScore >= AtRiskThreshold {
			report.AtRiskPages++
		}
		report.Pages = append(report.Pages, perf)
	}

	if report.ZombiePages > 0 {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("%d pages qualify for de-indexing; review the per-page actions", report.ZombiePages))
	}
	if report.AtRiskPages > 0 {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("%d pages are at risk; reinforce them with internal links", report.AtRiskPages))
	}
	if report.Simulated {
		report.Recommendations = append(report.Recommendations,
			"Traffic signals are simulated from update recency, not real analytics")
	}

	return report
}

func (d *Detector) scorePage(ctx context.Context, page catalog.PageData, now time.Time) PagePerformance {
	sig := d.pageSignals(ctx, page, now)

	score := classifyScore(page, sig, now)
	perf := PagePerformance{
		URL:             page.URL,
		Traffic:         sig.Traffic,
		LastTrafficDate: sig.LastTrafficDate,
		Engagement:      sig.Engagement,
		BounceRate:      sig.BounceRate,
		AvgTimeOnPage:   sig.AvgTimeOnPage,
		ZombieScore:     score,
		IsZombie:        isZombie(score),
		Source:          sig.Source,
	}

	switch {
	case perf.IsZombie:
		perf.Recommendations = []string{
			"Add a noindex directive or remove the page from the sitemap",
			"Redirect to a stronger related page",
			"Refresh the content if the topic still matters",
		}
	case score >= AtRiskThreshold:
		perf.Recommendations = []string{
			"Monitor traffic monthly",
			"Reinforce with internal links from related pages",
		}
	}

	return perf
}

// pageSignals fetches analytics signals, falling back to the
// deterministic recency simulation when the provider is absent or has
// no data for the page.
func (d *Detector) pageSignals(ctx context.Context, page catalog.PageData, now time.Time) Signals {
	if d.signals != nil {
		sig, ok, err := d.signals.PageSignals(ctx, page.URL)
		if err == nil && ok {
			if sig.Source == "" {
				sig.Source = SourceMeasured
			}
			return sig
		}
	}
	return simulateSignals(page, now)
}

// simulateSignals derives plausible traffic purely from update
// recency. Pages untouched past the staleness horizon get zero
// traffic; fresher pages decay linearly. Flagged as simulated so
// consumers never mistake this for real analytics.
func simulateSignals(page catalog.PageData, now time.Time) Signals {
	months := monthsSince(page.LastUpdated, now)

	sig := Signals{Source: SourceSimulated}
	if months > staleAfterMonths || page.LastUpdated.IsZero() {
		return sig
	}

	sig.Traffic = int((float64(staleAfterMonths) - months) * 20)
	if sig.Traffic < 0 {
		sig.Traffic = 0
	}
	if sig.Traffic > 0 {
		ts := page.LastUpdated
		sig.LastTrafficDate = &ts
		sig.Engagement = 0.5
		sig.BounceRate = 0.4
		sig.AvgTimeOnPage = 45
	}
	return sig
}

// classifyScore accumulates the three additive penalty terms. The sum
// of the weights is 1.0, so the score is capped by construction.
func classifyScore(page catalog.PageData, sig Signals, now time.Time) float64 {
	score := 0.0

	if monthsSince(page.LastUpdated, now) > staleAfterMonths {
		score += staleWeight
	}

	if sig.Source != SourceUnknown && sig.Traffic == 0 && !recentTraffic(sig, now) {
		score += noTrafficWeight
	}

	if !page.Available {
		score += unavailableWeight
	}

	return score
}

func isZombie(score float64) bool {
	return score >= ZombieThreshold
}

func recentTraffic(sig Signals, now time.Time) bool {
	if sig.LastTrafficDate == nil {
		return false
	}
	return now.Sub(*sig.LastTrafficDate) <= recentTrafficDays*24*time.Hour
}

func monthsSince(t time.Time, now time.Time) float64 {
	if t.IsZero() {
		return staleAfterMonths + 1
	}
	return now.Sub(t).Hours() / 24 / daysPerMonth
}
