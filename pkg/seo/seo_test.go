package seo

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cranemast/seo/pkg/seo/alttext"
	"github.com/cranemast/seo/pkg/seo/catalog"
	"github.com/cranemast/seo/pkg/seo/catalog/memstore"
	"github.com/cranemast/seo/pkg/seo/vitals"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	store := memstore.New()
	ctx := context.Background()
	now := time.Now()
	pages := []catalog.PageData{
		{
			URL:         "/products/tower-cranes",
			Title:       "Tower Cranes",
			Description: "Tower crane rental and sales for construction projects",
			Keywords:    []string{"tower crane", "crane rental"},
			Category:    "tower-cranes",
			Language:    "en",
			LastUpdated: now.AddDate(0, -1, 0),
			Available:   true,
		},
		{
			URL:         "/products/mobile-cranes",
			Title:       "Mobile Cranes",
			Description: "Mobile crane rental for flexible construction lifting",
			Keywords:    []string{"mobile crane", "crane rental"},
			Category:    "mobile-cranes",
			Language:    "en",
			LastUpdated: now.AddDate(0, -2, 0),
			Available:   true,
		},
		{
			URL:         "/legacy/promo",
			Title:       "Old Promo",
			Description: "Expired promotional offer",
			Keywords:    []string{"promo"},
			Category:    "marketing",
			LastUpdated: now.AddDate(0, -12, 0),
			Available:   false,
		},
	}
	for _, p := range pages {
		if err := store.UpsertPage(ctx, p); err != nil {
			t.Fatalf("seed %s: %v", p.URL, err)
		}
	}

	engine := New(Options{Store: store, SiteName: "CraneMast", Brand: "CraneMast"})
	t.Cleanup(func() { engine.Close() })
	return engine
}

func TestOptimizePage(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.OptimizePage(
		"Tower crane rental in Amsterdam. We rent tower cranes for construction projects.",
		[]string{"tower crane rental"})

	if result.Analysis.KeywordDensity["tower crane rental"] <= 0 {
		t.Fatal("expected positive keyword density")
	}
	if len(result.LSIKeywords) == 0 {
		t.Fatal("expected LSI expansion")
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("expected recommendations for a short page")
	}
	if !strings.Contains(result.SuggestedTitle, "CraneMast") {
		t.Fatalf("title should carry the site name: %q", result.SuggestedTitle)
	}
}

func TestAltText(t *testing.T) {
	engine := newTestEngine(t)

	opts := alttext.DefaultOptions("tower crane")
	opts.ImageType = alttext.ImageCrane
	got := engine.AltText(opts)
	if !strings.Contains(strings.ToLower(got), "tower crane") {
		t.Fatalf("alt text should contain the keyword: %q", got)
	}
}

func TestRelatedPages(t *testing.T) {
	engine := newTestEngine(t)

	related := engine.RelatedPages(context.Background(), "/products/tower-cranes", 5)
	if len(related) == 0 {
		t.Fatal("expected related pages")
	}
	if related[0].URL != "/products/mobile-cranes" {
		t.Fatalf("expected mobile cranes first, got %s", related[0].URL)
	}
	for _, r := range related {
		if r.URL == "/products/tower-cranes" {
			t.Fatal("source page suggested to itself")
		}
	}
}

func TestAuditPages(t *testing.T) {
	engine := newTestEngine(t)

	report := engine.AuditPages(context.Background())
	if report.TotalPages != 3 {
		t.Fatalf("expected 3 audited pages, got %d", report.TotalPages)
	}
	if report.ZombiePages == 0 {
		t.Fatal("the stale unavailable page should be flagged")
	}
	if !report.Simulated {
		t.Fatal("audit without analytics should be flagged simulated")
	}

	var zombieURL string
	for _, p := range report.Pages {
		if p.IsZombie {
			zombieURL = p.URL
		}
	}
	if zombieURL != "/legacy/promo" {
		t.Fatalf("wrong page flagged: %q", zombieURL)
	}
}

func TestAuditPagesWithoutStore(t *testing.T) {
	engine := New(Options{})
	report := engine.AuditPages(context.Background())
	if report.TotalPages != 0 || len(report.Pages) != 0 {
		t.Fatalf("expected empty report without a store, got %+v", report)
	}
}

func TestGateBuild(t *testing.T) {
	engine := newTestEngine(t)

	slow := 5000.0
	verdict := engine.GateBuild(vitals.Sample{LCP: &slow})
	if !verdict.ShouldFail {
		t.Fatal("5s LCP should fail the gate")
	}

	fast := 1200.0
	verdict = engine.GateBuild(vitals.Sample{LCP: &fast})
	if verdict.ShouldFail {
		t.Fatal("fast LCP should pass the gate")
	}
}

func TestEngineAccessors(t *testing.T) {
	engine := newTestEngine(t)
	if engine.Analyzer() == nil || engine.Mapper() == nil || engine.Monitor() == nil {
		t.Fatal("accessors should expose wired components")
	}

	mapping := engine.Mapper().Map("tower crane", "")
	if len(mapping.Keywords) == 0 {
		t.Fatal("mapper should expand curated keywords")
	}
}
