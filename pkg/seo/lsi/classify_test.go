package lsi

import "testing"

func TestClassifyEntity(t *testing.T) {
	cases := []struct {
		keyword string
		want    EntityType
	}{
		{"tower crane", EntityProduct},
		{"crane rental", EntityService},
		{"crane hire amsterdam", EntityLocation},
		{"liebherr tower crane", EntityBrand},
		{"liebherr rental amsterdam", EntityBrand}, // brand wins over location and service
		{"concrete pump", EntityGeneral},
		{"Crane Rental", EntityService}, // case-insensitive
	}

	for _, tc := range cases {
		if got := ClassifyEntity(tc.keyword); got != tc.want {
			t.Errorf("ClassifyEntity(%q) = %s, want %s", tc.keyword, got, tc.want)
		}
	}
}

func TestSemanticCluster(t *testing.T) {
	cases := []struct {
		keyword string
		want    string
	}{
		{"tower crane", "tower-cranes"},
		{"tower crane rental", "crane-rental"}, // rental marker precedes product marker
		{"mobile crane", "mobile-cranes"},
		{"crawler crane", "crawler-cranes"},
		{"used crane for sale", "crane-sales"},
		{"crane maintenance", "crane-service"},
		{"crane spare parts", "crane-parts"},
		{"potain mast section", "potain-cranes"},
		{"concrete pump", DefaultCluster},
	}

	for _, tc := range cases {
		if got := SemanticCluster(tc.keyword); got != tc.want {
			t.Errorf("SemanticCluster(%q) = %q, want %q", tc.keyword, got, tc.want)
		}
	}
}

func TestTaxonomyLookup(t *testing.T) {
	tax := DefaultTaxonomy()

	entry, ok := tax.Lookup("  Tower   Crane ")
	if !ok {
		t.Fatal("expected lookup hit on normalized keyword")
	}
	if len(entry.Related) == 0 {
		t.Fatal("expected related terms")
	}

	if _, ok := tax.Lookup("bulldozer"); ok {
		t.Fatal("unexpected hit for uncurated keyword")
	}

	tax.Add("skyline crane", []string{"roof crane"}, nil)
	if _, ok := tax.Lookup("SKYLINE CRANE"); !ok {
		t.Fatal("added entry not found")
	}
	if got := len(tax.Keywords()); got < 11 {
		t.Fatalf("expected at least 11 keywords, got %d", got)
	}
}
