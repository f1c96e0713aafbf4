package portalserver

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_campus/internal/engine"
	"github.com/anatolykoptev/go_campus/internal/engine/intern"
	"github.com/anatolykoptev/go_campus/internal/toolutil"
)

func registerInternshipSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "internship_search",
		Description: "Search internship and entry-level job postings across the configured job feed and WeWorkRemotely. Supports location, experience, employment-type, and date-posted filters. Always returns candidates: when live sources fail or come back empty, a curated pool of company career-page links is served instead.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.InternshipSearchInput) (*mcp.CallToolResult, engine.InternshipSearchOutput, error) {
		if input.Query == "" {
			return nil, engine.InternshipSearchOutput{}, fmt.Errorf("query is required")
		}

		cacheKey := engine.CacheKey("internship_search", input.Query, input.Location, input.Experience, input.JobType, input.DatePosted)
		if out, ok := toolutil.CacheLoadJSON[engine.InternshipSearchOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		candidates := collectCandidates(ctx, input)

		out := engine.InternshipSearchOutput{
			Query:      input.Query,
			Candidates: candidates,
			Summary:    searchSummary(input.Query, candidates),
		}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

// collectCandidates fans out to the live sources concurrently, dedupes the
// merged results, and degrades to the fallback pool when nothing usable
// comes back.
func collectCandidates(ctx context.Context, input engine.InternshipSearchInput) []engine.Candidate {
	var mu sync.Mutex
	var merged []engine.Candidate
	var wg sync.WaitGroup

	if engine.Cfg.JobFeedURL != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cs, err := intern.SearchFeed(ctx, intern.FeedParams{
				Query:      input.Query,
				Location:   input.Location,
				Experience: input.Experience,
				JobType:    input.JobType,
				DatePosted: input.DatePosted,
			})
			if err != nil {
				slog.Warn("internship_search: feed error", slog.Any("error", err))
				return
			}
			mu.Lock()
			merged = append(merged, cs...)
			mu.Unlock()
		}()
	}

	if engine.Cfg.WWREnabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cs, err := intern.SearchWWR(ctx, input.Query, 20)
			if err != nil {
				slog.Warn("internship_search: wwr error", slog.Any("error", err))
				return
			}
			mu.Lock()
			merged = append(merged, cs...)
			mu.Unlock()
		}()
	}

	wg.Wait()

	deduped := dedupeCandidates(merged)
	if len(deduped) == 0 {
		slog.Info("internship_search: no live results, serving fallback pool",
			slog.String("query", input.Query))
		return intern.FallbackCandidates(input.Query)
	}
	return deduped
}

// dedupeCandidates removes duplicates by URL and by normalized
// title+company, keeping first occurrence (feed results come first).
func dedupeCandidates(candidates []engine.Candidate) []engine.Candidate {
	seenURL := make(map[string]bool, len(candidates))
	seenKey := make(map[string]bool, len(candidates))
	var out []engine.Candidate
	for _, c := range candidates {
		if c.URL != "" && seenURL[c.URL] {
			continue
		}
		key := engine.CanonicalJobKey(c.Title, c.Company)
		if seenKey[key] {
			continue
		}
		if c.URL != "" {
			seenURL[c.URL] = true
		}
		seenKey[key] = true
		out = append(out, c)
	}
	return out
}

func searchSummary(query string, candidates []engine.Candidate) string {
	if len(candidates) == 0 {
		return fmt.Sprintf("No internships found for %q.", query)
	}
	fresh := 0
	for _, c := range candidates {
		if c.IsNew {
			fresh++
		}
	}
	if fresh > 0 {
		return fmt.Sprintf("Found %d internships for %q (%d posted in the last week).", len(candidates), query, fresh)
	}
	return fmt.Sprintf("Found %d internships for %q.", len(candidates), query)
}
