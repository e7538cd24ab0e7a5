package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	ds, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	if len(ds.Listings) != 27 {
		t.Errorf("listings: got %d, want 27", len(ds.Listings))
	}
	if len(ds.Agents) == 0 || len(ds.FAQs) == 0 || len(ds.Testimonials) == 0 || len(ds.Neighborhoods) == 0 {
		t.Errorf("static content missing: %+v", ds.Content)
	}

	seen := make(map[string]bool)
	for _, l := range ds.Listings {
		if seen[l.ID] {
			t.Errorf("duplicate id %q in embedded dataset", l.ID)
		}
		seen[l.ID] = true
	}
}

func TestLoadDatasetJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.json")
	doc := `{"listings": [{"id": "x1", "listingType": "rent", "type": "condo", "price": "$2,100/mo", "amenities": ["Gym"]}], ` +
		`"faqs": [{"id": "f1", "question": "Q?", "answer": "A.", "category": "general"}]}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	ds, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if len(ds.Listings) != 1 || ds.Listings[0].Price != "$2,100/mo" {
		t.Errorf("listings: got %+v", ds.Listings)
	}
	if len(ds.FAQs) != 1 || ds.FAQs[0].Category != "general" {
		t.Errorf("faqs: got %+v", ds.FAQs)
	}
}

func TestLoadDatasetMissingFile(t *testing.T) {
	if _, err := LoadDataset(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseDatasetRejectsMalformed(t *testing.T) {
	if _, err := ParseDataset([]byte("listings: [unclosed")); err == nil {
		t.Error("expected decode error")
	}
}
