package conversion

import "testing"

func TestByCategory(t *testing.T) {
	c := DefaultCatalog()

	kws := c.ByCategory("tower-cranes", "nl")
	if len(kws) == 0 {
		t.Fatal("expected dutch tower-crane keywords")
	}
	for _, kw := range kws {
		if kw.Keyword == "tower crane rental" {
			t.Fatal("dutch group should not contain english entries")
		}
	}
}

func TestByCategoryLocaleFallback(t *testing.T) {
	c := DefaultCatalog()

	got := c.ByCategory("tower-cranes", "fr")
	want := c.ByCategory("tower-cranes", "en")
	if len(got) != len(want) {
		t.Fatalf("unknown locale should fall back to english: %d vs %d", len(got), len(want))
	}
}

func TestByCategoryUnknown(t *testing.T) {
	c := DefaultCatalog()
	if got := c.ByCategory("excavators", "en"); got != nil {
		t.Fatalf("expected nil for unknown category, got %v", got)
	}
}

func TestByCategoryCaseInsensitive(t *testing.T) {
	c := DefaultCatalog()
	if got := c.ByCategory("Tower-Cranes", "EN"); len(got) == 0 {
		t.Fatal("category and locale lookup should ignore case")
	}
}

func TestByCategoryReturnsCopy(t *testing.T) {
	c := DefaultCatalog()
	first := c.ByCategory("tower-cranes", "en")
	first[0].Keyword = "mutated"
	second := c.ByCategory("tower-cranes", "en")
	if second[0].Keyword == "mutated" {
		t.Fatal("ByCategory must not expose internal storage")
	}
}

func TestByIntent(t *testing.T) {
	c := DefaultCatalog()

	rents := c.ByIntent(IntentRent)
	if len(rents) == 0 {
		t.Fatal("expected rent-intent keywords")
	}
	for _, kw := range rents {
		if kw.Intent != IntentRent {
			t.Fatalf("keyword %q carries intent %s", kw.Keyword, kw.Intent)
		}
	}
}

func TestAddAppends(t *testing.T) {
	c := NewCatalog()
	c.Add("tower-cranes", "en", Keyword{"a", IntentRent, PriorityHigh})
	c.Add("tower-cranes", "en", Keyword{"b", IntentBuy, PriorityLow})

	if got := len(c.ByCategory("tower-cranes", "en")); got != 2 {
		t.Fatalf("expected 2 keywords after two adds, got %d", got)
	}
}
