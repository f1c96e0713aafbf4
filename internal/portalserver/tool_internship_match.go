package portalserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_campus/internal/engine"
	"github.com/anatolykoptev/go_campus/internal/engine/intern"
	"github.com/anatolykoptev/go_campus/internal/engine/resume"
	"github.com/anatolykoptev/go_campus/internal/toolutil"
)

func registerInternshipMatch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "internship_match",
		Description: "Match internship postings against a student's skills and preferences. Builds a keyword set from the given skills (or extracts them from resume text), scores every candidate by keyword overlap with bonuses for internship roles and remote locations, and returns the top matches with scores (60-98) and matched terms.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.InternshipMatchInput) (*mcp.CallToolResult, engine.InternshipMatchOutput, error) {
		skills := input.Skills
		if len(skills) == 0 && input.Resume != "" {
			skills = resume.ExtractSkills(input.Resume)
		}

		keywords := intern.BuildKeywords(skills, input.Preferences)
		if len(keywords) == 0 {
			// Nothing to score with: decline rather than fabricate matches.
			return nil, engine.InternshipMatchOutput{
				Query:   input.Query,
				Summary: "No skills or preferences to match on. Provide skills, preferences, or resume text.",
			}, nil
		}

		query := input.Query
		if query == "" {
			query = "internship"
		}

		cacheKey := engine.CacheKey("internship_match", strings.Join(keywords, ","), query, input.Location)
		if out, ok := toolutil.CacheLoadJSON[engine.InternshipMatchOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		candidates := collectCandidates(ctx, engine.InternshipSearchInput{
			Query:    query,
			Location: input.Location,
		})

		matches := intern.Match(keywords, candidates)

		out := engine.InternshipMatchOutput{
			Query:   query,
			Matches: matches,
			Summary: matchSummary(matches, keywords),
		}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

func matchSummary(matches []engine.ScoredCandidate, keywords []string) string {
	if len(matches) == 0 {
		return "No matches found for the given skills and preferences."
	}
	return fmt.Sprintf("Found %d matches (top score %d) using %d keywords.",
		len(matches), matches[0].MatchScore, len(keywords))
}
