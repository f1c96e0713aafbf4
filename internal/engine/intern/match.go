// Package intern implements the internship domain: candidate matching,
// the external job-feed client, the WeWorkRemotely RSS source, and the
// static fallback pool.
package intern

import (
	"sort"
	"strings"

	"github.com/anatolykoptev/go_campus/internal/engine"
)

// Scoring policy. Every scored candidate lands in [scoreFloor, scoreCeil].
const (
	keywordWeight = 15 // per matched keyword
	internBonus   = 20 // title contains "intern"
	remoteBonus   = 10 // location contains "remote"
	scoreBase     = 50
	scoreFloor    = 60
	scoreCeil     = 98

	maxMatches      = 5 // shortlist length
	maxMatchedTerms = 3 // matched terms shown per candidate
	minTokenLen     = 4 // preference tokens shorter than this are noise
)

// BuildKeywords combines resume/profile skills with tokenized preference text
// into one order-preserving, case-insensitively deduplicated keyword list.
// Preference tokens of length <= 3 are discarded.
func BuildKeywords(skills []string, preferences string) []string {
	seen := make(map[string]bool)
	var keywords []string

	add := func(kw string) {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			return
		}
		seen[kw] = true
		keywords = append(keywords, kw)
	}

	for _, s := range skills {
		add(s)
	}
	for _, tok := range strings.Fields(strings.ToLower(preferences)) {
		if len([]rune(tok)) >= minTokenLen {
			add(tok)
		}
	}
	return keywords
}

// Match scores every candidate against the keyword list and returns the
// shortlist: sorted by match_score descending (ties keep input order),
// truncated to the top 5. With no keywords or no candidates it returns nil.
// Absent candidate fields count as empty text.
func Match(keywords []string, candidates []engine.Candidate) []engine.ScoredCandidate {
	engine.IncrMatchRuns()

	if len(keywords) == 0 || len(candidates) == 0 {
		return nil
	}

	scored := make([]engine.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		score, matched := scoreCandidate(keywords, c)
		scored = append(scored, engine.ScoredCandidate{
			Candidate:    c,
			MatchScore:   score,
			MatchedTerms: matched,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})
	if len(scored) > maxMatches {
		scored = scored[:maxMatches]
	}
	return scored
}

// scoreCandidate computes the clamped score and the matched keyword subset
// (keyword order, capped for display).
func scoreCandidate(keywords []string, c engine.Candidate) (int, []string) {
	searchable := strings.ToLower(c.Title + " " + c.Description + " " + c.Company)

	raw := 0
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(searchable, kw) {
			raw += keywordWeight
			matched = append(matched, kw)
		}
	}

	if strings.Contains(strings.ToLower(c.Title), "intern") {
		raw += internBonus
	}
	if strings.Contains(strings.ToLower(c.Location), "remote") {
		raw += remoteBonus
	}

	score := scoreBase + raw
	if score < scoreFloor {
		score = scoreFloor
	}
	if score > scoreCeil {
		score = scoreCeil
	}

	if len(matched) > maxMatchedTerms {
		matched = matched[:maxMatchedTerms]
	}
	return score, matched
}
