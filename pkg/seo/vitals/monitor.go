// Package vitals evaluates Web-Vitals samples against fixed
// thresholds and performance budgets, and gates releases on the
// result. Classification (good / needs-improvement / poor) and budget
// violation are independent axes.
package vitals

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Status classifies a metric value against its thresholds.
type Status string

const (
	StatusGood             Status = "good"
	StatusNeedsImprovement Status = "needs-improvement"
	StatusPoor             Status = "poor"
)

// Metric names, matching the standard Web-Vitals identifiers.
const (
	MetricLCP  = "lcp"
	MetricFID  = "fid"
	MetricCLS  = "cls"
	MetricFCP  = "fcp"
	MetricTTFB = "ttfb"
	MetricINP  = "inp"
)

// metricOrder fixes report ordering.
var metricOrder = []string{MetricLCP, MetricFID, MetricCLS, MetricFCP, MetricTTFB, MetricINP}

// Threshold holds the good / needs-improvement boundaries for one
// metric. Values above NeedsImprovement are poor.
type Threshold struct {
	Good             float64 `yaml:"good" json:"good"`
	NeedsImprovement float64 `yaml:"needsImprovement" json:"needsImprovement"`
}

// Sample is a partial Web-Vitals measurement. Times are in
// milliseconds; CLS is unitless.
type Sample struct {
	LCP  *float64 `json:"lcp,omitempty"`
	FID  *float64 `json:"fid,omitempty"`
	CLS  *float64 `json:"cls,omitempty"`
	FCP  *float64 `json:"fcp,omitempty"`
	TTFB *float64 `json:"ttfb,omitempty"`
	INP  *float64 `json:"inp,omitempty"`
}

// Metric is one classified measurement.
type Metric struct {
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	Budget    float64   `json:"budget"`
	Status    Status    `json:"status"`
	Threshold Threshold `json:"threshold"`
}

// Report is the budget check result.
type Report struct {
	ID              string    `json:"id"`
	GeneratedAt     time.Time `json:"generatedAt"`
	Metrics         []Metric  `json:"metrics"`
	OverallStatus   Status    `json:"overallStatus"`
	Violations      []Metric  `json:"violations"`
	Recommendations []string  `json:"recommendations"`
}

// BuildVerdict is the release-gate result.
type BuildVerdict struct {
	Report     Report `json:"report"`
	ShouldFail bool   `json:"shouldFail"`
}

// DefaultThresholds returns the standard Web-Vitals boundaries.
func DefaultThresholds() map[string]Threshold {
	return map[string]Threshold{
		MetricLCP:  {Good: 2500, NeedsImprovement: 4000},
		MetricFID:  {Good: 100, NeedsImprovement: 300},
		MetricCLS:  {Good: 0.1, NeedsImprovement: 0.25},
		MetricFCP:  {Good: 1800, NeedsImprovement: 3000},
		MetricTTFB: {Good: 800, NeedsImprovement: 1800},
		MetricINP:  {Good: 200, NeedsImprovement: 500},
	}
}

// DefaultBudgets ties each budget to the metric's good boundary.
func DefaultBudgets() map[string]float64 {
	return map[string]float64{
		MetricLCP:  2500,
		MetricFID:  100,
		MetricCLS:  0.1,
		MetricFCP:  1800,
		MetricTTFB: 800,
		MetricINP:  200,
	}
}

var recommendations = map[string]string{
	MetricLCP:  "Compress and preload the largest above-the-fold image to lower LCP",
	MetricFID:  "Break up long main-thread tasks to lower FID",
	MetricCLS:  "Reserve space for images and embeds to reduce layout shift",
	MetricFCP:  "Inline critical CSS and defer non-essential scripts to lower FCP",
	MetricTTFB: "Cache rendered pages at the edge to lower TTFB",
	MetricINP:  "Debounce expensive input handlers to lower INP",
}

// Monitor evaluates samples. Threshold and budget updates are rare,
// single-writer configuration changes guarded by a mutex; checks take
// a read lock and are otherwise stateless. Report ids come from a
// locked entropy source, so checks may run concurrently.
type Monitor struct {
	mu         sync.RWMutex
	thresholds map[string]Threshold
	budgets    map[string]float64
	entropy    *ulid.LockedMonotonicReader
}

// NewMonitor creates a monitor with the default thresholds and
// budgets.
func NewMonitor() *Monitor {
	return &Monitor{
		thresholds: DefaultThresholds(),
		budgets:    DefaultBudgets(),
		entropy:    &ulid.LockedMonotonicReader{MonotonicReader: ulid.Monotonic(rand.Reader, 0)},
	}
}

// UpdateBudgets merges the given budgets over the current ones.
// Values are accepted as-is; budgets are internal tuning knobs.
func (m *Monitor) UpdateBudgets(budgets map[string]float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, b := range budgets {
		m.budgets[name] = b
	}
}

// UpdateThresholds merges the given thresholds over the current ones.
func (m *Monitor) UpdateThresholds(thresholds map[string]Threshold) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, t := range thresholds {
		m.thresholds[name] = t
	}
}

// CheckBudget classifies every metric present in the sample and
// collects budget violations. Missing metrics are skipped, never an
// error.
func (m *Monitor) CheckBudget(sample Sample) Report {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := time.Now()
	report := Report{
		ID:            ulid.MustNew(ulid.Timestamp(now), m.entropy).String(),
		GeneratedAt:   now,
		OverallStatus: StatusGood,
	}

	values := sample.byName()
	for _, name := range metricOrder {
		value, ok := values[name]
		if !ok {
			continue
		}

		threshold := m.thresholds[name]
		budget := m.budgets[name]
		metric := Metric{
			Name:      name,
			Value:     value,
			Budget:    budget,
			Status:    classify(value, threshold),
			Threshold: threshold,
		}
		report.Metrics = append(report.Metrics, metric)

		if worse(metric.Status, report.OverallStatus) {
			report.OverallStatus = metric.Status
		}
		if value > budget {
			report.Violations = append(report.Violations, metric)
			if rec, ok := recommendations[name]; ok {
				report.Recommendations = append(report.Recommendations, rec)
			}
		}
	}

	if len(report.Violations) > 0 {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("%d of %d sampled metrics exceed their budget", len(report.Violations), len(report.Metrics)))
	}

	return report
}

// ValidateBuild runs CheckBudget and derives the release-gate
// verdict: fail only when a budget is violated and the overall
// classification is poor.
func (m *Monitor) ValidateBuild(sample Sample) BuildVerdict {
	report := m.CheckBudget(sample)
	return BuildVerdict{
		Report:     report,
		ShouldFail: len(report.Violations) > 0 && report.OverallStatus == StatusPoor,
	}
}

// Observe streams a single-metric report to the callback. This is a
// thin adapter over the same classification logic for runtime
// performance-timeline sampling; it carries no additional contract.
func (m *Monitor) Observe(name string, value float64, fn func(Report)) {
	if fn == nil {
		return
	}
	sample := Sample{}
	if !sample.set(name, value) {
		return
	}
	fn(m.CheckBudget(sample))
}

func (s Sample) byName() map[string]float64 {
	out := make(map[string]float64, 6)
	add := func(name string, v *float64) {
		if v != nil {
			out[name] = *v
		}
	}
	add(MetricLCP, s.LCP)
	add(MetricFID, s.FID)
	add(MetricCLS, s.CLS)
	add(MetricFCP, s.FCP)
	add(MetricTTFB, s.TTFB)
	add(MetricINP, s.INP)
	return out
}

func (s *Sample) set(name string, value float64) bool {
	v := value
	switch name {
	case MetricLCP:
		s.LCP = &v
	case MetricFID:
		s.FID = &v
	case MetricCLS:
		s.CLS = &v
	case MetricFCP:
		s.FCP = &v
	case MetricTTFB:
		s.TTFB = &v
	case MetricINP:
		s.INP = &v
	default:
		return false
	}
	return true
}

// classify derives status purely from thresholds, independent of the
// budget comparison.
func classify(value float64, t Threshold) Status {
	switch {
	case value <= t.Good:
		return StatusGood
	case value <= t.NeedsImprovement:
		return StatusNeedsImprovement
	default:
		return StatusPoor
	}
}

func worse(a, b Status) bool {
	return rank(a) > rank(b)
}

func rank(s Status) int {
	switch s {
	case StatusPoor:
		return 2
	case StatusNeedsImprovement:
		return 1
	default:
		return 0
	}
}
