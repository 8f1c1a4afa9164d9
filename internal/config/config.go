package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	// Server
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Cache
	RedisURI string
	CacheTTL time.Duration

	// External APIs
	GeminiAPIKey   string
	GeminiModel    string
	BraveAPIKey    string
	BraveSearchURL string

	// Generation
	RequestTimeout  time.Duration
	MaxRetries      int
	RateLimit       float64
	ResearchResults int
	EnrichPages     int

	// Workflow
	OptimizeThreshold float64
	RefineBelow       float64
	MaxRefinements    int

	// Export
	ExportDir string
}

// ErrMissingGeminiKey is returned when no Gemini API key is configured.
// The key is required at startup; there is no degraded mode without a model.
var ErrMissingGeminiKey = errors.New("GEMINI_API_KEY is required")

// NewConfig creates a new configuration from environment variables
func NewConfig() *Config {
	readTimeoutSec, _ := strconv.Atoi(getEnv("READ_TIMEOUT", "5"))
	writeTimeoutSec, _ := strconv.Atoi(getEnv("WRITE_TIMEOUT", "30"))
	cacheTTLMin, _ := strconv.Atoi(getEnv("CACHE_TTL_MINUTES", "1440"))
	requestTimeoutSec, _ := strconv.Atoi(getEnv("REQUEST_TIMEOUT", "60"))
	maxRetries, _ := strconv.Atoi(getEnv("MAX_RETRIES", "3"))
	rateLimit, _ := strconv.ParseFloat(getEnv("RATE_LIMIT", "5"), 64)
	researchResults, _ := strconv.Atoi(getEnv("RESEARCH_RESULTS", "5"))
	enrichPages, _ := strconv.Atoi(getEnv("RESEARCH_ENRICH_PAGES", "0"))
	optimizeThreshold, _ := strconv.ParseFloat(getEnv("SEO_OPTIMIZE_THRESHOLD", "85"), 64)
	refineBelow, _ := strconv.ParseFloat(getEnv("SEO_REFINE_BELOW", "60"), 64)
	maxRefinements, _ := strconv.Atoi(getEnv("MAX_REFINEMENTS", "2"))

	return &Config{
		// Server
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		ReadTimeout:  time.Duration(readTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(writeTimeoutSec) * time.Second,

		// Cache
		RedisURI: getEnv("REDIS_URI", "redis://localhost:6379/0"),
		CacheTTL: time.Duration(cacheTTLMin) * time.Minute,

		// External APIs
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-1.5-pro-latest"),
		BraveAPIKey:    getEnv("BRAVE_SEARCH_API_KEY", ""),
		BraveSearchURL: getEnv("BRAVE_SEARCH_URL", "https://api.search.brave.com/res/v1/web/search"),

		// Generation
		RequestTimeout:  time.Duration(requestTimeoutSec) * time.Second,
		MaxRetries:      maxRetries,
		RateLimit:       rateLimit,
		ResearchResults: researchResults,
		EnrichPages:     enrichPages,

		// Workflow
		OptimizeThreshold: optimizeThreshold,
		RefineBelow:       refineBelow,
		MaxRefinements:    maxRefinements,

		// Export
		ExportDir: getEnv("EXPORT_DIR", "."),
	}
}

// ValidateRequired checks configuration that must be present at startup
func (c *Config) ValidateRequired() error {
	if c.GeminiAPIKey == "" {
		return ErrMissingGeminiKey
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
