package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cranemast/seo/pkg/seo/catalog"
	"github.com/cranemast/seo/pkg/seo/internalerr"
)

func TestUpsertAndGet(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	page := catalog.PageData{
		URL:         "/products/tower-cranes",
		Title:       "Tower Cranes",
		Keywords:    []string{"tower crane", "tower crane rental"},
		Category:    "tower-cranes",
		Language:    "en",
		LastUpdated: time.Now(),
		Authority:   0.8,
		Available:   true,
	}
	if err := s.UpsertPage(ctx, page); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, ok, err := s.GetPage(ctx, page.URL)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Title != page.Title || len(got.Keywords) != 2 {
		t.Fatalf("unexpected page %+v", got)
	}

	// Replacing under the same URL must not duplicate.
	page.Title = "Tower Cranes v2"
	if err := s.UpsertPage(ctx, page); err != nil {
		t.Fatalf("upsert replace: %v", err)
	}
	pages, err := s.ListPages(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pages) != 1 || pages[0].Title != "Tower Cranes v2" {
		t.Fatalf("expected single replaced page, got %+v", pages)
	}
}

func TestUpsertEmptyURL(t *testing.T) {
	s := New()
	if err := s.UpsertPage(context.Background(), catalog.PageData{}); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetMissing(t *testing.T) {
	s := New()
	_, ok, err := s.GetPage(context.Background(), "/nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected miss")
	}
}

func TestListOrdered(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, url := range []string{"/c", "/a", "/b"} {
		if err := s.UpsertPage(ctx, catalog.PageData{URL: url}); err != nil {
			t.Fatalf("upsert %s: %v", url, err)
		}
	}

	pages, err := s.ListPages(ctx)
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
	s := New()
	ctx := context.Background()

	if err := s.SetAvailability(ctx, "/nope", false); !errors.Is(err, internalerr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.UpsertPage(ctx, catalog.PageData{URL: "/p", Available: true}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := s.SetAvailability(ctx, "/p", false); err != nil {
		t.Fatalf("set availability: %v", err)
	}
	got, _, _ := s.GetPage(ctx, "/p")
	if got.Available {
		t.Fatal("page should be inactive")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()
	if err := s.UpsertPage(ctx, catalog.PageData{URL: "/p", Keywords: []string{"crane"}}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, _, _ := s.GetPage(ctx, "/p")
	got.Keywords[0] = "mutated"
	again, _, _ := s.GetPage(ctx, "/p")
	if again.Keywords[0] != "crane" {
		t.Fatal("GetPage must not expose internal storage")
	}
}
