package portalserver

import (
	"testing"

	"github.com/anatolykoptev/go_campus/internal/engine"
)

func TestDedupeCandidates(t *testing.T) {
	in := []engine.Candidate{
		{Title: "SWE Intern", Company: "Acme", URL: "https://a/1"},
		{Title: "SWE Intern", Company: "Acme", URL: "https://a/1"},     // same URL
		{Title: "SWE Intern at Acme", Company: "Acme", URL: "https://b/2"}, // same posting, other source
		{Title: "Data Intern", Company: "Acme", URL: "https://a/3"},
	}

	got := dedupeCandidates(in)
	if len(got) != 2 {
		t.Fatalf("dedupeCandidates() kept %d, want 2: %+v", len(got), got)
	}
	if got[0].URL != "https://a/1" || got[1].URL != "https://a/3" {
		t.Errorf("kept wrong candidates: %+v", got)
	}
}

func TestDedupeCandidatesKeepsDistinct(t *testing.T) {
	in := []engine.Candidate{
		{Title: "SWE Intern", Company: "Acme", URL: ""},
		{Title: "SWE Intern", Company: "Beta", URL: ""},
	}
	if got := dedupeCandidates(in); len(got) != 2 {
		t.Errorf("dedupeCandidates() kept %d, want 2", len(got))
	}
}
