package intern

import (
	"strings"
	"testing"
)

func TestFallbackCandidates(t *testing.T) {
	got := FallbackCandidates("machine learning")
	if len(got) != len(fallbackCompanies) {
		t.Fatalf("FallbackCandidates() returned %d, want %d", len(got), len(fallbackCompanies))
	}

	first := got[0]
	if first.ID != "sample-1" {
		t.Errorf("ID = %q, want sample-1", first.ID)
	}
	if first.Company != "Google" {
		t.Errorf("Company = %q, want Google", first.Company)
	}
	if !strings.Contains(first.URL, "machine+learning") {
		t.Errorf("URL missing encoded query: %q", first.URL)
	}
	if first.Source != "sample" {
		t.Errorf("Source = %q, want sample", first.Source)
	}

	for _, c := range got {
		if c.URL == "" || c.Title == "" || c.Salary == "" {
			t.Errorf("incomplete candidate: %+v", c)
		}
	}
}

func TestFallbackCandidatesEmptyQuery(t *testing.T) {
	got := FallbackCandidates("  ")
	if len(got) == 0 {
		t.Fatal("FallbackCandidates(blank) returned nothing")
	}
	if !strings.Contains(got[0].Title, "internship") {
		t.Errorf("Title = %q, want default query substituted", got[0].Title)
	}
}
