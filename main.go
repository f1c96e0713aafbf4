// go_campus — Campus Portal MCP server.
//
// Exposes internship search and matching, resume skill extraction,
// AI-generated learning roadmaps with per-topic progress tracking, skill
// profiles, CampusBot chat, and mock interviews. Runs as HTTP MCP server or
// stdio transport.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_campus/internal/engine"
	"github.com/anatolykoptev/go_campus/internal/engine/profile"
	"github.com/anatolykoptev/go_campus/internal/engine/roadmap"
	"github.com/anatolykoptev/go_campus/internal/portalserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	cleanup := initEngine()
	defer cleanup()

	slog.Info("starting go_campus",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_campus",
		Version: version,
	}, nil)

	portalserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 10))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_campus",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() (cleanup func()) {
	c := engine.Config{
		LLMAPIKey:            env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks:   env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:           env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:             env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature:       env.Float("LLM_TEMPERATURE", 0.3),
		LLMMaxTokens:         env.Int("LLM_MAX_TOKENS", 8192),
		JobFeedURL:           env.Str("JOB_FEED_URL", ""),
		JobFeedAPIKey:        env.Str("JOB_FEED_API_KEY", ""),
		JobFeedRPS:           env.Float("JOB_FEED_RPS", 2),
		WWREnabled:           env.Str("WWR_ENABLED", "true") == "true",
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 10*time.Second),
		MaxContentChars:      env.Int("MAX_CONTENT_CHARS", 6000),
		ProgressDBPath:       env.Str("PROGRESS_DB_PATH", "campus_progress.db"),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
		llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
		llm.WithMaxTokens(c.LLMMaxTokens),
		llm.WithTemperature(c.LLMTemperature),
		llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)

	engine.Init(c)

	// Roadmap progress store (SQLite, always on).
	store, err := roadmap.OpenStore(c.ProgressDBPath)
	if err != nil {
		slog.Error("progress store init failed", slog.Any("error", err))
		os.Exit(1)
	}
	debounce := env.Duration("AUTOSAVE_DEBOUNCE", roadmap.DefaultDebounce)
	manager := roadmap.NewManager(store, debounce)
	portalserver.SetSessions(manager)
	slog.Info("progress store initialized",
		slog.String("path", c.ProgressDBPath),
		slog.Duration("debounce", debounce))

	// Skill profile DB (PostgreSQL, optional).
	if c.DatabaseURL != "" {
		db, err := profile.Connect(context.Background(), c.DatabaseURL)
		if err != nil {
			slog.Warn("profile DB init failed", slog.Any("error", err))
		} else {
			profile.SetProfileDB(db)
			slog.Info("profile DB initialized")
		}
	}

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := manager.Shutdown(ctx); err != nil {
			slog.Warn("flush on shutdown failed", slog.Any("error", err))
		}
		store.Close()
		if db := profile.GetProfileDB(); db != nil {
			db.Close()
		}
	}
}
