package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int

	JobFeedURL      string // external job-search service base URL ("" = feed disabled, fallback pool only)
	JobFeedAPIKey   string
	JobFeedRPS      float64 // requests per second allowed against the job feed
	WWREnabled      bool    // WeWorkRemotely RSS source
	FetchTimeout    time.Duration
	MaxContentChars int

	ProgressDBPath string // SQLite file for roadmap progress snapshots
	DatabaseURL    string // PostgreSQL for skill profiles ("" = profiles disabled)

	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	HTTPClient *http.Client
	LLMClient  *llm.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (intern, resume, roadmap).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
