package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	LLMCalls           atomic.Int64
	LLMErrors          atomic.Int64
	FeedRequests       atomic.Int64
	FeedErrors         atomic.Int64
	WWRRequests        atomic.Int64
	FallbackServed     atomic.Int64
	MatchRuns          atomic.Int64
	ResumeParses       atomic.Int64
	RoadmapGenerations atomic.Int64
	RoadmapFallbacks   atomic.Int64
	ProgressSaves      atomic.Int64
	ProgressSaveErrors atomic.Int64
}

// Incrementors for the engine and its sub-packages.
func IncrLLMCalls()           { metrics.LLMCalls.Add(1) }
func IncrLLMErrors()          { metrics.LLMErrors.Add(1) }
func IncrFeedRequests()       { metrics.FeedRequests.Add(1) }
func IncrFeedErrors()         { metrics.FeedErrors.Add(1) }
func IncrWWRRequests()        { metrics.WWRRequests.Add(1) }
func IncrFallbackServed()     { metrics.FallbackServed.Add(1) }
func IncrMatchRuns()          { metrics.MatchRuns.Add(1) }
func IncrResumeParses()       { metrics.ResumeParses.Add(1) }
func IncrRoadmapGenerations() { metrics.RoadmapGenerations.Add(1) }
func IncrRoadmapFallbacks()   { metrics.RoadmapFallbacks.Add(1) }
func IncrProgressSaves()      { metrics.ProgressSaves.Add(1) }
func IncrProgressSaveErrors() { metrics.ProgressSaveErrors.Add(1) }

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"llm_calls":            metrics.LLMCalls.Load(),
		"llm_errors":           metrics.LLMErrors.Load(),
		"feed_requests":        metrics.FeedRequests.Load(),
		"feed_errors":          metrics.FeedErrors.Load(),
		"wwr_requests":         metrics.WWRRequests.Load(),
		"fallback_served":      metrics.FallbackServed.Load(),
		"match_runs":           metrics.MatchRuns.Load(),
		"resume_parses":        metrics.ResumeParses.Load(),
		"roadmap_generations":  metrics.RoadmapGenerations.Load(),
		"roadmap_fallbacks":    metrics.RoadmapFallbacks.Load(),
		"progress_saves":       metrics.ProgressSaves.Load(),
		"progress_save_errors": metrics.ProgressSaveErrors.Load(),
		"cache_hits":           hits,
		"cache_misses":         misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"llm_calls", "llm_errors",
		"feed_requests", "feed_errors", "wwr_requests", "fallback_served",
		"match_runs", "resume_parses",
		"roadmap_generations", "roadmap_fallbacks",
		"progress_saves", "progress_save_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
