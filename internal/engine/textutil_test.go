package engine

import "testing"

func TestCanonicalJobKey(t *testing.T) {
	tests := []struct {
		name          string
		titleA, compA string
		titleB, compB string
		wantSame      bool
	}{
		{"identical", "SWE Intern", "Acme", "SWE Intern", "Acme", true},
		{"case and punctuation", "SWE Intern!", "Acme, Inc", "swe intern", "acme inc", true},
		{"board suffix stripped", "SWE Intern at Acme", "Acme", "SWE Intern", "Acme", true},
		{"different company", "SWE Intern", "Acme", "SWE Intern", "Beta", false},
		{"different title", "SWE Intern", "Acme", "Data Intern", "Acme", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := CanonicalJobKey(tt.titleA, tt.compA)
			b := CanonicalJobKey(tt.titleB, tt.compB)
			if (a == b) != tt.wantSame {
				t.Errorf("keys %q vs %q, wantSame=%v", a, b, tt.wantSame)
			}
		})
	}
}
