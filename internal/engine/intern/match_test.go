package intern

import (
	"reflect"
	"testing"

	"github.com/anatolykoptev/go_campus/internal/engine"
)

// --- BuildKeywords ---

func TestBuildKeywords(t *testing.T) {
	tests := []struct {
		name        string
		skills      []string
		preferences string
		want        []string
	}{
		{
			name:   "skills lowercased, order preserved",
			skills: []string{"React", "Node.js", "SQL"},
			want:   []string{"react", "node.js", "sql"},
		},
		{
			name:        "preference tokens appended after skills",
			skills:      []string{"Python"},
			preferences: "Backend Startups",
			want:        []string{"python", "backend", "startups"},
		},
		{
			name:        "short tokens discarded",
			skills:      nil,
			preferences: "ML at big co in NYC remote",
			want:        []string{"remote"},
		},
		{
			name:        "case-insensitive dedup keeps first occurrence",
			skills:      []string{"React", "react", "REACT"},
			preferences: "react frontend",
			want:        []string{"react", "frontend"},
		},
		{
			name:   "blank skills dropped",
			skills: []string{"  ", "Go", ""},
			want:   []string{"go"},
		},
		{
			name: "empty input",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildKeywords(tt.skills, tt.preferences)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildKeywords() = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- Match ---

func TestMatchScoring(t *testing.T) {
	keywords := BuildKeywords([]string{"React", "Node.js"}, "")

	tests := []struct {
		name        string
		candidate   engine.Candidate
		wantScore   int
		wantMatched []string
	}{
		{
			name: "keyword plus intern plus remote",
			candidate: engine.Candidate{
				Title:       "Frontend Intern",
				Company:     "TechCo",
				Location:    "Remote",
				Description: "Build UIs with React",
			},
			// 50 + 15 (react) + 20 (intern) + 10 (remote)
			wantScore:   95,
			wantMatched: []string{"react"},
		},
		{
			name: "no matches clamps to floor",
			candidate: engine.Candidate{
				Title:       "Accountant",
				Company:     "LedgerCorp",
				Location:    "Boston",
				Description: "Quarterly reporting",
			},
			wantScore: 60,
		},
		{
			name: "everything matched clamps to ceiling",
			candidate: engine.Candidate{
				Title:       "React Intern",
				Company:     "Node.js Foundation",
				Location:    "Remote",
				Description: "React and Node.js all day",
			},
			// 50 + 30 + 20 + 10 = 110, clamped
			wantScore:   98,
			wantMatched: []string{"react", "node.js"},
		},
		{
			name: "case-insensitive substring match",
			candidate: engine.Candidate{
				Title:       "Software Engineer",
				Company:     "Acme",
				Location:    "NYC",
				Description: "We use REACT heavily",
			},
			wantScore:   65,
			wantMatched: []string{"react"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(keywords, []engine.Candidate{tt.candidate})
			if len(got) != 1 {
				t.Fatalf("Match() returned %d results, want 1", len(got))
			}
			if got[0].MatchScore != tt.wantScore {
				t.Errorf("MatchScore = %d, want %d", got[0].MatchScore, tt.wantScore)
			}
			if !reflect.DeepEqual(got[0].MatchedTerms, tt.wantMatched) {
				t.Errorf("MatchedTerms = %v, want %v", got[0].MatchedTerms, tt.wantMatched)
			}
		})
	}
}

func TestMatchOrderingAndTruncation(t *testing.T) {
	keywords := []string{"go"}
	candidates := []engine.Candidate{
		{Title: "Barista", Company: "CafeA"},                        // 60
		{Title: "Go Intern", Company: "B", Location: "Remote"},      // 95
		{Title: "Go Developer", Company: "C"},                       // 65
		{Title: "Intern", Company: "D"},                             // 70
		{Title: "Go Intern", Company: "E"},                          // 85
		{Title: "Clerk", Company: "F"},                              // 60
		{Title: "Go Intern", Company: "G", Location: "Remote (US)"}, // 95
	}

	got := Match(keywords, candidates)
	if len(got) != 5 {
		t.Fatalf("Match() returned %d results, want 5", len(got))
	}

	// Descending scores, ties in input order.
	wantCompanies := []string{"B", "G", "E", "D", "C"}
	for i, want := range wantCompanies {
		if got[i].Company != want {
			t.Errorf("[%d] company = %q, want %q (score %d)", i, got[i].Company, want, got[i].MatchScore)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].MatchScore > got[i-1].MatchScore {
			t.Errorf("scores not descending at %d: %d > %d", i, got[i].MatchScore, got[i-1].MatchScore)
		}
	}
}

func TestMatchedTermsCap(t *testing.T) {
	keywords := BuildKeywords([]string{"go", "react", "sql", "docker", "linux"}, "")
	got := Match(keywords, []engine.Candidate{
		{Title: "Platform Intern", Description: "go react sql docker linux"},
	})
	if len(got) != 1 {
		t.Fatalf("Match() returned %d results, want 1", len(got))
	}
	want := []string{"go", "react", "sql"}
	if !reflect.DeepEqual(got[0].MatchedTerms, want) {
		t.Errorf("MatchedTerms = %v, want %v", got[0].MatchedTerms, want)
	}
	if got[0].MatchScore != 98 {
		t.Errorf("MatchScore = %d, want 98", got[0].MatchScore)
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	if got := Match(nil, []engine.Candidate{{Title: "Intern"}}); got != nil {
		t.Errorf("Match(no keywords) = %v, want nil", got)
	}
	if got := Match([]string{"go"}, nil); got != nil {
		t.Errorf("Match(no candidates) = %v, want nil", got)
	}
}
