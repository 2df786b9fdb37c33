package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cranemast/seo/pkg/seo/catalog"
)

func openTestStore(t *testing.T) catalog.Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	updated := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	page := catalog.PageData{
		URL:         "/products/tower-cranes",
		Title:       "Tower Cranes",
		Description: "Tower crane rental and sales",
		Keywords:    []string{"tower crane", "tower crane rental"},
		Category:    "tower-cranes",
		Language:    "en",
		LastUpdated: updated,
		Authority:   0.8,
		Available:   true,
	}
	if err := store.UpsertPage(ctx, page); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, ok, err := store.GetPage(ctx, page.URL)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Title != page.Title || got.Category != page.Category || got.Authority != page.Authority {
		t.Fatalf("unexpected page %+v", got)
	}
	if len(got.Keywords) != 2 || got.Keywords[1] != "tower crane rental" {
		t.Fatalf("keywords lost in round trip: %v", got.Keywords)
	}
	if !got.LastUpdated.Equal(updated) {
		t.Fatalf("timestamp drift: %v vs %v", got.LastUpdated, updated)
	}
	if !got.Available {
		t.Fatal("availability lost")
	}
}

func TestUpsertReplaces(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	page := catalog.PageData{URL: "/p", Title: "v1", LastUpdated: time.Now()}
	if err := store.UpsertPage(ctx, page); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	page.Title = "v2"
	if err := store.UpsertPage(ctx, page); err != nil {
		t.Fatalf("upsert replace: %v", err)
	}

	pages, err := store.ListPages(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pages) != 1 || pages[0].Title != "v2" {
		t.Fatalf("expected single replaced row, got %+v", pages)
	}
}

func TestGetMissing(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.GetPage(context.Background(), "/nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected miss")
	}
}

func TestListOrdered(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, url := range []string{"/c", "/a", "/b"} {
		if err := store.UpsertPage(ctx, catalog.PageData{URL: url, LastUpdated: time.Now()}); err != nil {
			t.Fatalf("upsert %s: %v", url, err)
		}
	}

	pages, err := store.ListPages(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, want := range []string{"/a", "/b", "/c"} {
		if pages[i].URL != want {
			t.Fatalf("expected %s at %d, got %s", want, i, pages[i].URL)
		}
	}
}

func TestSetAvailability(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.UpsertPage(ctx, catalog.PageData{URL: "/p", Available: true, LastUpdated: time.Now()}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := store.SetAvailability(ctx, "/p", false); err != nil {
		t.Fatalf("set availability: %v", err)
	}

	got, _, err := store.GetPage(ctx, "/p")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Available {
		t.Fatal("page should be inactive")
	}
}
